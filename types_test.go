package code2pdf

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/alnah/go-code2pdf/internal/hints"
)

// ---------------------------------------------------------------------------
// TestResolveSize - Page size defaults and validation
// ---------------------------------------------------------------------------

func TestResolveSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		size    string
		browser bool
		want    string
		wantErr error
	}{
		{name: "default", size: "", want: "letter landscape"},
		{name: "browser default", size: "", browser: true, want: "letter portrait"},
		{name: "named size gets landscape", size: "A4", want: "A4 landscape"},
		{name: "named size is trimmed", size: "  legal ", want: "legal landscape"},
		{name: "named size ignores case", size: "jis-b5", want: "jis-b5 landscape"},
		{name: "named size in browser mode", size: "letter", browser: true, want: "letter landscape"},
		{name: "explicit orientation kept", size: "A4 portrait", want: "A4 portrait"},
		{name: "lengths kept", size: "210mm 297mm", want: "210mm 297mm"},
		{name: "css injection", size: "A4; } body {", wantErr: ErrInvalidSize},
		{name: "only spaces", size: "   ", wantErr: ErrInvalidSize},
		{name: "decimal point", size: "8.5in 11in", wantErr: ErrInvalidSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ResolveSize(tt.size, tt.browser)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ResolveSize(%q) error = %v, want %v", tt.size, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ResolveSize(%q) = %q, want %q", tt.size, got, tt.want)
			}
		})
	}
}

func TestResolveSize_HintExamples(t *testing.T) {
	t.Parallel()

	for _, size := range hints.SizeExamples {
		for _, browser := range []bool{false, true} {
			if _, err := ResolveSize(size, browser); err != nil {
				t.Errorf("ResolveSize(%q, %v) error = %v, want hint example accepted", size, browser, err)
			}
		}
	}
}

// ---------------------------------------------------------------------------
// TestRenderOptions_Validate - CSS value safety
// ---------------------------------------------------------------------------

func TestRenderOptions_Validate(t *testing.T) {
	t.Parallel()

	valid := DefaultRenderOptions()

	tests := []struct {
		name    string
		modify  func(*RenderOptions)
		wantErr error
	}{
		{name: "defaults", modify: func(*RenderOptions) {}},
		{name: "pixel size", modify: func(o *RenderOptions) { o.Size = "528px 816px" }},
		{name: "four margins", modify: func(o *RenderOptions) { o.Margin = ".5in .25in .5in .5in" }},
		{name: "percent font size", modify: func(o *RenderOptions) { o.FontSize = "80%" }},
		{name: "empty size", modify: func(o *RenderOptions) { o.Size = "" }, wantErr: ErrInvalidSize},
		{name: "size with brace", modify: func(o *RenderOptions) { o.Size = "A4 }" }, wantErr: ErrInvalidSize},
		{name: "font size with semicolon", modify: func(o *RenderOptions) { o.FontSize = "10pt; color: red" }, wantErr: ErrInvalidLength},
		{name: "margin with tag", modify: func(o *RenderOptions) { o.Margin = "</style>" }, wantErr: ErrInvalidLength},
		{name: "empty margin", modify: func(o *RenderOptions) { o.Margin = "" }, wantErr: ErrInvalidLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := valid
			tt.modify(&opts)
			if err := opts.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultRenderOptions(t *testing.T) {
	t.Parallel()

	got := DefaultRenderOptions()
	want := RenderOptions{
		Color:    true,
		ShowPath: true,
		FontSize: "10pt",
		Margin:   ".5in",
		Size:     "letter landscape",
		Relative: true,
	}
	if got != want {
		t.Errorf("DefaultRenderOptions() = %+v, want %+v", got, want)
	}
}

// ---------------------------------------------------------------------------
// TestDisplayTitle / TestCountErrors
// ---------------------------------------------------------------------------

func TestDisplayTitle(t *testing.T) {
	t.Parallel()

	path := filepath.Join("src", "pkg", "main.go")

	tests := []struct {
		name     string
		target   string
		showPath bool
		want     string
	}{
		{name: "full path", target: path, showPath: true, want: path},
		{name: "basename", target: path, showPath: false, want: "main.go"},
		{name: "url basename", target: "https://example.com/a/hello.c", showPath: false, want: "hello.c"},
		{name: "url full", target: "https://example.com/a/hello.c", showPath: true, want: "https://example.com/a/hello.c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := DisplayTitle(tt.target, tt.showPath); got != tt.want {
				t.Errorf("DisplayTitle(%q, %v) = %q, want %q", tt.target, tt.showPath, got, tt.want)
			}
		})
	}
}

func TestCountErrors(t *testing.T) {
	t.Parallel()

	for _, err := range []error{ErrTooFewFiles, ErrTooManyFiles, ErrBrowserCount} {
		if !errors.Is(err, ErrCountMismatch) {
			t.Errorf("errors.Is(%v, ErrCountMismatch) = false", err)
		}
	}
	if errors.Is(ErrTooFewFiles, ErrTooManyFiles) {
		t.Error("distinct count errors should not match each other")
	}
	if got := ErrBrowserCount.Error(); got != "can only render one input as browser would" {
		t.Errorf("ErrBrowserCount = %q", got)
	}
}

func TestPlacement_Filler(t *testing.T) {
	t.Parallel()

	if !(Placement{Page: -1}).Filler() {
		t.Error("Page -1 should be a filler")
	}
	if (Placement{Page: 0}).Filler() {
		t.Error("Page 0 should not be a filler")
	}
}
