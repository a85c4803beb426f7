package code2pdf

import (
	"bytes"
	"context"
	"fmt"

	"github.com/alnah/go-code2pdf/internal/fileutil"
)

// Side-by-side column settings.
const (
	columnFontSize = "8pt"
	cssPxPerPt     = 96.0 / 72.0
)

// columnMargins lists the margins of each column, by column count.
// Inner edges get narrower margins than outer ones.
var columnMargins = map[int][]string{
	2: {".5in .25in .5in .5in", ".5in .5in .5in .25in"},
	3: {".5in .25in .5in .5in", ".5in .375in .5in .375in", ".5in .5in .5in .25in"},
}

// RenderSideBySide renders two or three targets as columns of one page.
//
// A blank page of opts.Size is divided evenly into columns; each target is
// rendered alone at column width, with a smaller font and same-page links
// removed, then the results are composed page by page. Any failure aborts,
// a binary target included. The document has no bookmark.
func (r *Renderer) RenderSideBySide(ctx context.Context, targets []string, opts RenderOptions) (*Document, error) {
	margins, ok := columnMargins[len(targets)]
	if !ok {
		if len(targets) < 2 {
			return nil, ErrTooFewFiles
		}
		return nil, ErrTooManyFiles
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	blank, err := r.Blank(ctx, opts.Size)
	if err != nil {
		return nil, err
	}
	dims, err := pageDims(blank)
	if err != nil {
		return nil, err
	}
	if len(dims) == 0 {
		return nil, fmt.Errorf("%w: blank page has no pages", ErrReadPDF)
	}

	column := opts
	column.FontSize = columnFontSize
	column.Relative = false
	column.Size = columnSize(dims[0], len(targets))

	files := make([]string, 0, len(targets))
	var cleanups []func()
	defer func() {
		for _, cleanup := range cleanups {
			cleanup()
		}
	}()

	for i, target := range targets {
		column.Margin = margins[i]
		doc, err := r.Render(ctx, target, column)
		if err != nil {
			return nil, err
		}
		path, cleanup, err := fileutil.WriteTempFile(doc.PDF, "pdf")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCompose, err)
		}
		cleanups = append(cleanups, cleanup)
		files = append(files, path)
	}

	var buf bytes.Buffer
	if err := Compose(ctx, files, &buf); err != nil {
		return nil, err
	}
	pages, err := pageCount(buf.Bytes())
	if err != nil {
		return nil, err
	}

	return &Document{
		Title: DisplayTitle(targets[0], opts.ShowPath),
		PDF:   buf.Bytes(),
		Pages: pages,
	}, nil
}

// columnSize divides a page's width in CSS pixels between columns.
// Pixel values are truncated.
func columnSize(page PageDim, columns int) string {
	width := int(page.Width * cssPxPerPt / float64(columns))
	height := int(page.Height * cssPxPerPt)
	return fmt.Sprintf("%dpx %dpx", width, height)
}
