package code2pdf

// PlanSideBySide lays out inputs page by page, left to right.
//
// Sheet i holds page i of every input; an input that ran out of pages is
// padded with a blank filler the size of the first input's first page.
// Pages are placed at the running width of the sheet and share its bottom
// edge, so the sheet is as wide as its pages together and as tall as the
// tallest one. The plan has as many sheets as the longest input has pages.
func PlanSideBySide(dims [][]PageDim) []Sheet {
	filler, ok := fillerDim(dims)
	if !ok {
		return nil
	}

	sheetCount := 0
	for _, pages := range dims {
		sheetCount = max(sheetCount, len(pages))
	}

	sheets := make([]Sheet, 0, sheetCount)
	for i := range sheetCount {
		sheet := Sheet{Placements: make([]Placement, 0, len(dims))}
		for input, pages := range dims {
			dim, page := filler, -1
			if i < len(pages) {
				dim, page = pages[i], i
			}
			sheet.Placements = append(sheet.Placements, Placement{
				Input:  input,
				Page:   page,
				X:      sheet.Width,
				Width:  dim.Width,
				Height: dim.Height,
			})
			sheet.Width += dim.Width
			sheet.Height = max(sheet.Height, dim.Height)
		}
		sheets = append(sheets, sheet)
	}
	return sheets
}

// fillerDim is the first input's first page, or the first page of any
// input when the first one is empty.
func fillerDim(dims [][]PageDim) (PageDim, bool) {
	for _, pages := range dims {
		if len(pages) > 0 {
			return pages[0], true
		}
	}
	return PageDim{}, false
}
