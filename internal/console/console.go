// Package console writes the command's human-readable output: progress
// lines, colored warnings and the final status, wrapped to the terminal width.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/term"
)

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 80

// plain prints without color codes.
const plain color.Color = 0

// clearLine erases the current terminal line and returns the cursor.
const clearLine = "\r\033[2K"

// Printer writes messages to stdout and diagnostics to stderr.
type Printer struct {
	stdout  io.Writer
	stderr  io.Writer
	quiet   bool
	verbose bool
	color   bool
	tty     bool
	width   int
	pending bool // a "Rendering X..." line awaits completion
}

// Option configures a Printer.
type Option func(*Printer)

// WithQuiet suppresses progress lines; warnings and errors still print.
func WithQuiet(quiet bool) Option {
	return func(p *Printer) { p.quiet = quiet }
}

// WithVerbose enables Debugf output.
func WithVerbose(verbose bool) Option {
	return func(p *Printer) { p.verbose = verbose }
}

// WithColor forces color on or off regardless of terminal detection.
func WithColor(enabled bool) Option {
	return func(p *Printer) { p.color = enabled }
}

// WithWidth forces the wrap width.
func WithWidth(width int) Option {
	return func(p *Printer) {
		if width > 0 {
			p.width = width
		}
	}
}

// New creates a Printer. Color, in-place progress and width are detected
// from stdout when it is a terminal.
func New(stdout, stderr io.Writer, opts ...Option) *Printer {
	p := &Printer{
		stdout: stdout,
		stderr: stderr,
		width:  DefaultWidth,
	}

	if fd, ok := terminalFD(stdout); ok {
		p.tty = true
		p.color = color.SupportColor()
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			p.width = w
		}
	}

	for _, opt := range opts {
		opt(p)
	}
	return p
}

// terminalFD returns the file descriptor of w when it is an interactive terminal.
func terminalFD(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd()) // #nosec G115 -- file descriptors fit in int
	return fd, term.IsTerminal(fd)
}

// Width returns the wrap width.
func (p *Printer) Width() int {
	return p.width
}

// Rendering announces that target is being rendered.
// On a terminal the line is rewritten in place by Rendered.
func (p *Printer) Rendering(target string) {
	if p.quiet {
		return
	}
	if p.tty {
		fmt.Fprintf(p.stdout, "Rendering %s...", target)
		p.pending = true
		return
	}
	fmt.Fprintf(p.stdout, "Rendering %s...\n", target)
}

// Rendered reports that target was rendered.
func (p *Printer) Rendered(target string) {
	if p.quiet {
		return
	}
	p.clear()
	p.line(p.stdout, fmt.Sprintf("Rendered %s.", target), plain)
}

// Warn prints a yellow message, e.g. a skipped binary file or a fatal error.
func (p *Printer) Warn(msg string) {
	p.clear()
	p.line(p.stdout, msg, color.Yellow)
}

// Cancelled prints the red cancellation notice.
func (p *Printer) Cancelled() {
	p.clear()
	p.line(p.stdout, "Rendering cancelled.", color.Red)
}

// Success prints a green completion message.
func (p *Printer) Success(msg string) {
	p.clear()
	p.line(p.stdout, msg, color.Green)
}

// Blank prints an empty line, ending any pending progress line.
func (p *Printer) Blank() {
	p.pending = false
	fmt.Fprintln(p.stdout)
}

// Debugf prints to stderr in verbose mode only.
func (p *Printer) Debugf(format string, args ...any) {
	if !p.verbose {
		return
	}
	fmt.Fprintf(p.stderr, format+"\n", args...)
}

// Errorf prints an unwrapped diagnostic to stderr, such as a stack trace.
func (p *Printer) Errorf(format string, args ...any) {
	p.clear()
	fmt.Fprintf(p.stderr, format, args...)
}

// clear erases a pending in-place progress line.
func (p *Printer) clear() {
	if !p.pending {
		return
	}
	fmt.Fprint(p.stdout, clearLine)
	p.pending = false
}

// line wraps msg to the terminal width and prints it, colored when enabled.
func (p *Printer) line(w io.Writer, msg string, c color.Color) {
	text := wrap(msg, p.width)
	if c != plain && p.color {
		text = c.Sprint(text)
	}
	fmt.Fprintln(w, text)
}

// wrap breaks msg at word boundaries to fit width; words longer than width
// (paths, URLs) are kept whole.
func wrap(msg string, width int) string {
	if width <= 0 || len(msg) <= width {
		return msg
	}
	return strings.TrimRight(wordwrap.WrapString(msg, uint(width)), " ") // #nosec G115 -- width > 0
}
