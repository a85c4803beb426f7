package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// ErrHighlight indicates syntax highlighting failed.
var ErrHighlight = errors.New("syntax highlighting failed")

// DefaultStyle is the chroma style used for highlighted source pages.
const DefaultStyle = "pygments"

// shebang marks an interpreter line at the start of a script.
const shebang = "#!"

// Highlighter renders source code as an HTML fragment using CSS classes.
// Line numbers are emitted inline, one per line, so that a page break
// never separates a number from its line.
type Highlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewHighlighter creates a Highlighter using the named chroma style.
// Unknown style names fall back to chroma's default style.
func NewHighlighter(style string) *Highlighter {
	if style == "" {
		style = DefaultStyle
	}
	return &Highlighter{
		style: styles.Get(style),
		formatter: chromahtml.New(
			chromahtml.WithClasses(true),
			chromahtml.WithLineNumbers(true),
			chromahtml.LineNumbersInTable(false),
		),
	}
}

// Highlight tokenises code with the lexer chosen by SelectLexer and returns
// the formatted HTML fragment.
func (h *Highlighter) Highlight(ctx context.Context, filename, code string, color bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	lexer := chroma.Coalesce(SelectLexer(filename, code, color))
	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlight, err)
	}

	var buf strings.Builder
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlight, err)
	}
	return buf.String(), nil
}

// CSS returns the stylesheet for the classes emitted by Highlight.
func (h *Highlighter) CSS() (string, error) {
	var buf strings.Builder
	if err := h.formatter.WriteCSS(&buf, h.style); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlight, err)
	}
	return buf.String(), nil
}

// SelectLexer picks a lexer through an ordered fallback chain:
// by file name, then by the shebang line when code starts with one,
// then plain text. Disabled color or blank code always yields plain text.
func SelectLexer(filename, code string, color bool) chroma.Lexer {
	if !color || strings.TrimSpace(code) == "" {
		return lexers.Fallback
	}

	for _, find := range []func() chroma.Lexer{
		func() chroma.Lexer { return lexers.Match(filename) },
		func() chroma.Lexer { return byShebang(code) },
	} {
		if lexer := find(); lexer != nil {
			return lexer
		}
	}
	return lexers.Fallback
}

// interpreterAliases maps interpreter names that are not chroma aliases.
var interpreterAliases = map[string]string{
	"node":   "javascript",
	"nodejs": "javascript",
	"deno":   "typescript",
	"pwsh":   "powershell",
}

// byShebang looks up the interpreter named on the first line of code,
// then lets chroma analyse that line.
func byShebang(code string) chroma.Lexer {
	if !strings.HasPrefix(code, shebang) {
		return nil
	}
	line, _, _ := strings.Cut(code, "\n")
	line = strings.TrimRight(line, "\r")

	if name := interpreter(line); name != "" {
		for _, candidate := range []string{name, strings.TrimRight(name, "0123456789.")} {
			if alias, ok := interpreterAliases[candidate]; ok {
				candidate = alias
			}
			if candidate == "" {
				continue
			}
			if lexer := lexers.Get(candidate); lexer != nil {
				return lexer
			}
		}
	}
	return lexers.Analyse(line)
}

// interpreter returns the program name of a shebang line, skipping env
// and its flags and assignments.
func interpreter(line string) string {
	fields := strings.Fields(strings.TrimPrefix(line, shebang))
	if len(fields) == 0 {
		return ""
	}
	name := baseName(fields[0])
	if name != "env" {
		return name
	}
	for _, field := range fields[1:] {
		if strings.HasPrefix(field, "-") || strings.Contains(field, "=") {
			continue
		}
		return baseName(field)
	}
	return ""
}

func baseName(path string) string {
	return strings.ToLower(path[strings.LastIndex(path, "/")+1:])
}
