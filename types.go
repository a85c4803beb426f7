package code2pdf

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alnah/go-code2pdf/internal/fileutil"
)

// Render defaults.
const (
	DefaultFontSize    = "10pt"
	DefaultMargin      = ".5in"
	DefaultSize        = "letter landscape"
	DefaultBrowserSize = "letter portrait"
)

// sizePattern is the character set accepted in a CSS @page size.
var sizePattern = regexp.MustCompile(`^[A-Za-z0-9\- ]+$`)

// lengthPattern is the character set accepted in font sizes and margins.
var lengthPattern = regexp.MustCompile(`^[A-Za-z0-9.%\- ]+$`)

// namedSizes are the CSS page sizes that default to landscape.
var namedSizes = []string{"A5", "A4", "A3", "B5", "B4", "JIS-B5", "JIS-B4", "letter", "legal", "ledger"}

// RenderOptions configures the rendering of one target.
type RenderOptions struct {
	Browser  bool   // render as a browser would instead of highlighting
	Color    bool   // syntax highlighting
	ShowPath bool   // full path in the running header, basename otherwise
	FontSize string // CSS length
	Margin   string // CSS margin shorthand
	Size     string // CSS @page size, required
	Relative bool   // keep same-page "#" links
}

// DefaultRenderOptions returns the options of a plain highlighted render.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Color:    true,
		ShowPath: true,
		FontSize: DefaultFontSize,
		Margin:   DefaultMargin,
		Size:     DefaultSize,
		Relative: true,
	}
}

// Validate checks that every CSS value is safe to embed in a stylesheet.
func (o RenderOptions) Validate() error {
	if !sizePattern.MatchString(o.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidSize, o.Size)
	}
	if !lengthPattern.MatchString(o.FontSize) {
		return fmt.Errorf("%w: font size %q", ErrInvalidLength, o.FontSize)
	}
	if !lengthPattern.MatchString(o.Margin) {
		return fmt.Errorf("%w: margin %q", ErrInvalidLength, o.Margin)
	}
	return nil
}

// ResolveSize returns the page size to render with. An empty size selects
// the mode default (portrait in browser mode, landscape otherwise). A given
// size is trimmed and validated, and a bare named size gets " landscape".
func ResolveSize(size string, browser bool) (string, error) {
	if size == "" {
		if browser {
			return DefaultBrowserSize, nil
		}
		return DefaultSize, nil
	}

	size = strings.TrimSpace(size)
	if !sizePattern.MatchString(size) {
		return "", ErrInvalidSize
	}
	for _, named := range namedSizes {
		if strings.EqualFold(size, named) {
			return size + " landscape", nil
		}
	}
	return size, nil
}

// DisplayTitle is the name shown in page headers and bookmarks.
func DisplayTitle(target string, showPath bool) string {
	if showPath {
		return target
	}
	return fileutil.BaseName(target)
}

// Bookmark is an outline entry pointing at a document's first page.
type Bookmark struct {
	Level  int
	Title  string
	Closed bool
}

// Document is one rendered PDF.
type Document struct {
	Title    string
	PDF      []byte
	Pages    int
	Bookmark *Bookmark // nil: no outline entry
}

// PageDim is the size of one PDF page in points.
type PageDim struct {
	Width  float64
	Height float64
}

// Placement puts page Page of input Input at horizontal offset X.
// Page -1 is a blank filler with the given size.
type Placement struct {
	Input  int
	Page   int
	X      float64
	Width  float64
	Height float64
}

// Filler reports whether the placement stands in for an exhausted input.
func (p Placement) Filler() bool {
	return p.Page < 0
}

// Sheet is one output page of a side-by-side document.
type Sheet struct {
	Width      float64
	Height     float64
	Placements []Placement
}
