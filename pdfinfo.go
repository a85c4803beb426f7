package code2pdf

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

var disableConfigDir sync.Once

// pdfConfig returns a relaxed pdfcpu configuration. pdfcpu never writes
// its configuration directory on our behalf.
func pdfConfig() *model.Configuration {
	disableConfigDir.Do(api.DisableConfigDir)
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// pageDims returns the size of every page of a PDF held in memory.
func pageDims(pdf []byte) ([]PageDim, error) {
	return readPageDims(bytes.NewReader(pdf))
}

// pageDimsFile returns the size of every page of a PDF file.
func pageDimsFile(path string) ([]PageDim, error) {
	f, err := os.Open(path) // #nosec G304 -- temp file created by this package
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadPDF, err)
	}
	defer f.Close()
	return readPageDims(f)
}

func readPageDims(rs io.ReadSeeker) ([]PageDim, error) {
	dims, err := api.PageDims(rs, pdfConfig())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadPDF, err)
	}
	out := make([]PageDim, len(dims))
	for i, d := range dims {
		out[i] = PageDim{Width: d.Width, Height: d.Height}
	}
	return out, nil
}

// pageCount returns the number of pages of a PDF held in memory.
func pageCount(pdf []byte) (int, error) {
	n, err := api.PageCount(bytes.NewReader(pdf), pdfConfig())
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrReadPDF, err)
	}
	return n, nil
}
