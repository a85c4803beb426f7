package main

import (
	"fmt"
	"io"
)

// printUsage prints the command's usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: render -o OUTPUT [flags] [INPUT ...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render source code as a PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  INPUT    File, directory, glob pattern or URL to render.")
	fmt.Fprintln(w, "           Read one per line from stdin when omitted or \"-\".")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>       File to output (\".pdf\" appended if missing)")
	fmt.Fprintln(w, "  -f, --force               Overwrite existing files without prompting")
	fmt.Fprintln(w, "  -s, --size <s>            Page size per CSS @page size, e.g. \"A4\",")
	fmt.Fprintln(w, "                            \"letter portrait\" (default: letter landscape)")
	fmt.Fprintln(w, "  -t, --timeout <d>         Time allowed to print one page (default: 60s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Mode:")
	fmt.Fprintln(w, "  -b, --browser             Render as a browser would")
	fmt.Fprintln(w, "  -y, --side-by-side        Render 2 or 3 inputs side by side")
	fmt.Fprintln(w, "  -C, --no-color            Disable syntax highlighting")
	fmt.Fprintln(w, "  -P, --no-path             Omit paths in headers")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Filters:")
	fmt.Fprintln(w, "  -i, --include <pattern>   Pattern to include (repeatable, * wildcard)")
	fmt.Fprintln(w, "  -x, --exclude <pattern>   Pattern to exclude (repeatable, * wildcard)")
	fmt.Fprintln(w, "  -r, --recursive           Let ** match across directories")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show warnings and errors")
	fmt.Fprintln(w, "  -v, --verbose             Show resolved settings")
	fmt.Fprintln(w, "  -V, --version             Show version and exit")
	fmt.Fprintln(w, "  -h, --help                Show this help and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  RENDER_CONFIG             Config file name or path")
	fmt.Fprintln(w, "  RENDER_SIZE               Page size")
	fmt.Fprintln(w, "  RENDER_TIMEOUT            Print timeout")
	fmt.Fprintln(w, "  ROD_BROWSER_BIN           Chrome binary to use")
	fmt.Fprintln(w, "  ROD_NO_SANDBOX=1          Run Chrome without sandbox (Docker/CI)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  render -o out.pdf hello.c")
	fmt.Fprintln(w, "  render -o out.pdf -r -x '*.pyc' 'src/**'")
	fmt.Fprintln(w, "  render -o diff.pdf -y old.py new.py")
	fmt.Fprintln(w, "  render -o page.pdf -b https://example.com/")
	fmt.Fprintln(w, "  find . -name '*.go' | render -o go.pdf")
}
