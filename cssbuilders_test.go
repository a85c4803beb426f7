package code2pdf

// Notes:
// - escapeCSSString: tests CSS string escaping for quotes, backslashes, newlines
// - page rule builders are compared verbatim: they are the whole page layout

import "testing"

func TestEscapeCSSString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "src/main.go", want: "src/main.go"},
		{name: "single quote", input: "it's.py", want: `it\'s.py`},
		{name: "double quote", input: `a"b`, want: `a\"b`},
		{name: "backslash", input: `C:\src\a.c`, want: `C:\\src\\a.c`},
		{name: "newline", input: "a\nb", want: `a\A b`},
		{name: "carriage return dropped", input: "a\r\nb", want: `a\A b`},
		{name: "style close", input: "</style>", want: `\3C /style>`},
		{name: "percent kept", input: "100%.txt", want: "100%.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := escapeCSSString(tt.input); got != tt.want {
				t.Errorf("escapeCSSString(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestBuildCodeCSS(t *testing.T) {
	t.Parallel()

	opts := DefaultRenderOptions()
	got := buildCodeCSS("it's/main.go", opts)
	want := "@page { border-top: 1px #808080 solid; margin: .5in; padding-top: 1em; size: letter landscape; }\n" +
		"@page { @top-right { color: #808080; content: 'it\\'s/main.go'; padding-bottom: 1em; vertical-align: bottom; } }\n" +
		"* { font-family: monospace; font-size: 10pt; margin: 0; overflow-wrap: break-word; white-space: pre-wrap; }\n"

	if got != want {
		t.Errorf("buildCodeCSS() =\n%s\nwant\n%s", got, want)
	}
}

func TestBuildBrowserCSS(t *testing.T) {
	t.Parallel()

	opts := DefaultRenderOptions()
	opts.Size = "A4 portrait"
	opts.FontSize = "8pt"
	got := buildBrowserCSS(opts)
	want := "@page { margin: .5in; size: A4 portrait; }\nhtml { font-size: 8pt; }\n"

	if got != want {
		t.Errorf("buildBrowserCSS() = %q, want %q", got, want)
	}
}

func TestBuildBlankCSS(t *testing.T) {
	t.Parallel()

	if got, want := buildBlankCSS("ledger landscape"), "@page { size: ledger landscape; }\n"; got != want {
		t.Errorf("buildBlankCSS() = %q, want %q", got, want)
	}
}
