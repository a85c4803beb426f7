package code2pdf

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"

	"codeberg.org/go-pdf/fpdf"

	"github.com/alnah/go-code2pdf/internal/fetch"
)

// Letter landscape in points.
const (
	letterWidth  = 792.0
	letterHeight = 612.0
)

// makePDF builds a PDF with the given number of pages of one size.
func makePDF(t testing.TB, pages int, width, height float64) []byte {
	t.Helper()

	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: width, Ht: height},
	})
	for i := range pages {
		pdf.AddPageFormat("P", fpdf.SizeType{Wd: width, Ht: height})
		pdf.SetFont("Helvetica", "", 12)
		pdf.Text(20, 40, fmt.Sprintf("page %d", i+1))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("building test PDF: %v", err)
	}
	return buf.Bytes()
}

// writePDF stores a generated PDF in a temp dir and returns its path.
func writePDF(t testing.TB, name string, pages int, width, height float64) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, makePDF(t, pages, width, height), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// ---------------------------------------------------------------------------
// Fakes
// ---------------------------------------------------------------------------

// fakeFetcher serves targets from memory.
type fakeFetcher struct {
	files map[string]string
	panic bool
}

func (f *fakeFetcher) Get(_ context.Context, target string) (string, error) {
	if f.panic {
		panic("fetcher exploded")
	}
	content, ok := f.files[target]
	if !ok {
		return "", fmt.Errorf("%w %s", fetch.ErrNotFound, target)
	}
	return content, nil
}

// fakeConverter prints pages without a browser. The page size follows a
// "size: Wpx Hpx;" rule when present, letter landscape otherwise, and a
// page mentioning "two-pages" gets two pages.
type fakeConverter struct {
	t      testing.TB
	err    error
	mu     sync.Mutex
	pages  []string
	closed bool
}

var pxSizeRule = regexp.MustCompile(`size: (\d+)px (\d+)px;`)

func (f *fakeConverter) ToPDF(ctx context.Context, htmlContent string) ([]byte, error) {
	f.mu.Lock()
	f.pages = append(f.pages, htmlContent)
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}

	width, height := letterWidth, letterHeight
	if m := pxSizeRule.FindStringSubmatch(htmlContent); m != nil {
		w, _ := strconv.Atoi(m[1])
		h, _ := strconv.Atoi(m[2])
		width, height = float64(w)/cssPxPerPt, float64(h)/cssPxPerPt
	}
	pages := 1
	if strings.Contains(htmlContent, "two-pages") {
		pages = 2
	}
	return makePDF(f.t, pages, width, height), nil
}

func (f *fakeConverter) Close() error {
	f.closed = true
	return nil
}

func (f *fakeConverter) printed() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.pages...)
}

// newTestRenderer returns a Renderer backed by the fakes.
func newTestRenderer(t testing.TB, files map[string]string, opts ...Option) (*Renderer, *fakeConverter) {
	t.Helper()

	opts = append([]Option{WithFetcher(&fakeFetcher{files: files})}, opts...)
	r, err := NewRenderer(opts...)
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	conv := &fakeConverter{t: t}
	r.pdfConverter = conv
	return r, conv
}
