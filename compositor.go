package code2pdf

import (
	"context"
	"fmt"
	"io"

	"codeberg.org/go-pdf/fpdf"
	"codeberg.org/go-pdf/fpdf/contrib/gofpdi"
)

// pageBox is the page boundary imported from each input.
const pageBox = "/MediaBox"

// Compose writes one PDF whose page i shows page i of every file side by
// side, following PlanSideBySide. Filler slots stay blank.
// Recovers from importer panics, which gofpdi uses to report bad input.
func Compose(ctx context.Context, files []string, w io.Writer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrCompose, r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return err
	}

	dims := make([][]PageDim, len(files))
	for i, file := range files {
		dims[i], err = pageDimsFile(file)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrCompose, file, err)
		}
	}

	sheets := PlanSideBySide(dims)
	if len(sheets) == 0 {
		return fmt.Errorf("%w: no pages", ErrCompose)
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: sheets[0].Width, Ht: sheets[0].Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	importer := gofpdi.NewImporter()
	templates := make(map[[2]int]int)

	for _, sheet := range sheets {
		if err := ctx.Err(); err != nil {
			return err
		}

		pdf.AddPageFormat("P", fpdf.SizeType{Wd: sheet.Width, Ht: sheet.Height})
		for _, p := range sheet.Placements {
			if p.Filler() {
				continue
			}
			key := [2]int{p.Input, p.Page}
			tpl, ok := templates[key]
			if !ok {
				tpl = importer.ImportPage(pdf, files[p.Input], p.Page+1, pageBox)
				templates[key] = tpl
			}
			importer.UseImportedTemplate(pdf, tpl, p.X, sheet.Height-p.Height, p.Width, p.Height)
		}
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("%w: %v", ErrCompose, err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("%w: %v", ErrCompose, err)
	}
	return nil
}
