package code2pdf

import (
	"fmt"
	"strings"
)

// ruleColor is used for the header rule, the running title and line numbers.
const ruleColor = "#808080"

// buildCodeCSS generates the page rules of a highlighted source page:
// a rule above the text, the title as a running header, and wrapped
// monospace text.
func buildCodeCSS(title string, opts RenderOptions) string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "@page { border-top: 1px %s solid; margin: %s; padding-top: 1em; size: %s; }\n",
		ruleColor, opts.Margin, opts.Size)
	fmt.Fprintf(&buf, "@page { @top-right { color: %s; content: '%s'; padding-bottom: 1em; vertical-align: bottom; } }\n",
		ruleColor, escapeCSSString(title))
	fmt.Fprintf(&buf, "* { font-family: monospace; font-size: %s; margin: 0; overflow-wrap: break-word; white-space: pre-wrap; }\n",
		opts.FontSize)

	return buf.String()
}

// buildBrowserCSS generates the page rules applied on top of a web page.
func buildBrowserCSS(opts RenderOptions) string {
	return fmt.Sprintf("@page { margin: %s; size: %s; }\nhtml { font-size: %s; }\n",
		opts.Margin, opts.Size, opts.FontSize)
}

// buildBlankCSS generates the page rule of an empty page.
func buildBlankCSS(size string) string {
	return fmt.Sprintf("@page { size: %s; }\n", size)
}

// escapeCSSString escapes a string for use inside a quoted CSS string.
// Prevents CSS injection by escaping backslashes, quotes and newlines.
// "<" is escaped so the value cannot close the surrounding <style> block.
func escapeCSSString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "<", `\3C `)
	s = strings.ReplaceAll(s, "\n", `\A `)
	s = strings.ReplaceAll(s, "\r", "")
	return s
}
