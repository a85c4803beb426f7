package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags that control the command itself.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	version bool
	help    bool
}

// filterFlags holds the include/exclude filters applied to resolved targets.
type filterFlags struct {
	include   []string
	exclude   []string
	recursive bool
}

// modeFlags selects how targets are rendered.
type modeFlags struct {
	browser    bool
	sideBySide bool
	noColor    bool
	noPath     bool
}

// renderFlags holds all flags of the render command.
type renderFlags struct {
	common  commonFlags
	filters filterFlags
	mode    modeFlags
	output  string
	size    string
	timeout string
	force   bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show warnings and errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show resolved settings")
	fs.BoolVarP(&f.version, "version", "V", false, "show program's version number and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "show this help message and exit")
}

// addFilterFlags adds filter flags to a FlagSet.
// Patterns are kept whole: commas belong to brace expressions, not lists.
func addFilterFlags(fs *flag.FlagSet, f *filterFlags) {
	fs.StringArrayVarP(&f.include, "include", "i", nil, "pattern to include")
	fs.StringArrayVarP(&f.exclude, "exclude", "x", nil, "pattern to exclude")
	fs.BoolVarP(&f.recursive, "recursive", "r", false, "recurse into directories")
}

// addModeFlags adds rendering mode flags to a FlagSet.
func addModeFlags(fs *flag.FlagSet, f *modeFlags) {
	fs.BoolVarP(&f.browser, "browser", "b", false, "render as a browser would")
	fs.BoolVarP(&f.sideBySide, "side-by-side", "y", false, "render inputs side by side")
	fs.BoolVarP(&f.noColor, "no-color", "C", false, "disable syntax highlighting")
	fs.BoolVarP(&f.noPath, "no-path", "P", false, "omit paths in headers")
}

// parseFlags parses render flags and returns positional args.
// A lone "-" is returned as a positional argument.
func parseFlags(args []string) (*renderFlags, []string, error) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	f := &renderFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "file to output")
	fs.BoolVarP(&f.force, "force", "f", false, "overwrite existing files without prompting")
	fs.StringVarP(&f.size, "size", "s", "", "size of page, per CSS @page size")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "time allowed to print one page (e.g., 30s, 2m)")

	// Flag groups
	addModeFlags(fs, &f.mode)
	addFilterFlags(fs, &f.filters)
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
