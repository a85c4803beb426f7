// Package resolve turns command-line patterns into an ordered list of
// render targets: brace and glob expansion, directory walking, URL
// pass-through and include/exclude filtering.
package resolve

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/maruel/natural"
)

// ErrNotRecognized is returned for a path that is neither a file, a
// directory nor a URL.
var ErrNotRecognized = errors.New("could not recognize")

// globMeta holds the characters that make an expression a pattern.
const globMeta = "*?["

// maxPatternLine bounds one line of patterns read from stdin.
const maxPatternLine = 1 << 20

// Options controls expansion and filtering.
type Options struct {
	Include   []string // keep only targets matching one of these
	Exclude   []string // drop targets matching any of these
	Recursive bool     // let ** cross directory boundaries
}

// Resolver expands patterns into targets.
type Resolver struct {
	include   *regexp.Regexp
	exclude   *regexp.Regexp
	recursive bool
}

// New creates a Resolver. Filter patterns match whole targets; '*' matches
// any run of characters (including '/'), everything else is literal.
func New(opts Options) *Resolver {
	return &Resolver{
		include:   compileFilter(opts.Include),
		exclude:   compileFilter(opts.Exclude),
		recursive: opts.Recursive,
	}
}

// compileFilter builds ^(?:p1|p2|...)$ from wildcard patterns, or nil.
func compileFilter(patterns []string) *regexp.Regexp {
	if len(patterns) == 0 {
		return nil
	}
	alternatives := make([]string, len(patterns))
	for i, p := range patterns {
		alternatives[i] = strings.ReplaceAll(regexp.QuoteMeta(p), `\*`, ".*")
	}
	return regexp.MustCompile("^(?:" + strings.Join(alternatives, "|") + ")$")
}

// Resolve expands patterns in order. URLs are kept as given, glob matches
// are naturally sorted per expansion, and directories are replaced by their
// files. Empty patterns are skipped; an empty result is not an error.
func (r *Resolver) Resolve(ctx context.Context, patterns []string) ([]string, error) {
	paths, err := r.expand(ctx, patterns)
	if err != nil {
		return nil, err
	}

	candidates := make([]string, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if IsURL(path) {
			candidates = append(candidates, path)
			continue
		}

		info, err := os.Stat(path)
		switch {
		case err == nil && info.Mode().IsRegular():
			candidates = append(candidates, path)
		case err == nil && info.IsDir():
			files, err := walk(ctx, path)
			if err != nil {
				return nil, err
			}
			candidates = append(candidates, files...)
		default:
			return nil, fmt.Errorf("%w %s", ErrNotRecognized, path)
		}
	}

	return r.filter(candidates), nil
}

// expand performs brace expansion and globbing.
func (r *Resolver) expand(ctx context.Context, patterns []string) ([]string, error) {
	var paths []string
	for _, pattern := range patterns {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if pattern == "" {
			continue
		}
		if IsURL(pattern) {
			paths = append(paths, pattern)
			continue
		}

		for _, expression := range ExpandBraces(pattern) {
			matches, err := r.glob(expression)
			if err != nil {
				return nil, err
			}
			SortNatural(matches)
			paths = append(paths, matches...)
		}
	}
	return paths, nil
}

// glob matches one brace-free expression against the filesystem.
func (r *Resolver) glob(expression string) ([]string, error) {
	// A literal path is kept even when it is a dangling link, which
	// FilepathGlob would drop.
	if !strings.ContainsAny(expression, globMeta) {
		if _, err := os.Lstat(expression); err != nil {
			return nil, nil
		}
		return []string{expression}, nil
	}

	// Braces were already expanded; whatever is left is literal.
	expression = strings.NewReplacer("{", "[{]", "}", "[}]").Replace(expression)
	if !r.recursive {
		for strings.Contains(expression, "**") {
			expression = strings.ReplaceAll(expression, "**", "*")
		}
	}

	matches, err := doublestar.FilepathGlob(expression)
	if errors.Is(err, doublestar.ErrBadPattern) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("globbing %s: %w", expression, err)
	}
	return matches, nil
}

// walk collects every file below root, naturally sorted.
func walk(ctx context.Context, root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		// Symlinked directories are not followed.
		if d.Type()&fs.ModeSymlink != 0 {
			if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
				return nil
			}
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	SortNatural(files)
	return files, nil
}

// filter applies include then exclude patterns.
func (r *Resolver) filter(candidates []string) []string {
	if r.include == nil && r.exclude == nil {
		return candidates
	}
	queue := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if r.include != nil && !r.include.MatchString(c) {
			continue
		}
		if r.exclude != nil && r.exclude.MatchString(c) {
			continue
		}
		queue = append(queue, c)
	}
	return queue
}

// SortNatural sorts paths in human order ("file2" before "file10"),
// ignoring case. Equal keys keep their relative order.
func SortNatural(paths []string) {
	sort.SliceStable(paths, func(i, j int) bool {
		return natural.Less(strings.ToLower(paths[i]), strings.ToLower(paths[j]))
	})
}

// IsURL reports whether a pattern is taken literally as a remote target.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http")
}

// ReadPatterns reads one pattern per line, trimming surrounding whitespace.
func ReadPatterns(r io.Reader) ([]string, error) {
	var patterns []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxPatternLine)
	for scanner.Scan() {
		patterns = append(patterns, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading patterns: %w", err)
	}
	return patterns, nil
}
