// Package fetch reads render targets from disk or over HTTP.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
)

// Sentinel errors for fetch operations.
var (
	ErrNotFound = errors.New("could not find")
	ErrRead     = errors.New("could not read")
	ErrFetch    = errors.New("could not GET")
)

// DefaultTimeout bounds one HTTP request.
const DefaultTimeout = 30 * time.Second

// MaxBodySize is the largest remote response accepted (32MB).
const MaxBodySize = 32 << 20

// rewrite maps a web page URL to its raw content URL.
type rewrite struct {
	pattern *regexp.Regexp
	apply   func(m []string) string
}

// rewrites is applied in order; every matching rule applies to the output
// of the previous one.
var rewrites = []rewrite{
	{
		pattern: regexp.MustCompile(`^(https?://github\.com/[^/]+/[^/]+)/blob/(.+)$`),
		apply:   func(m []string) string { return m[1] + "/raw/" + m[2] },
	},
	{
		pattern: regexp.MustCompile(`^(https?://gist\.github\.com/[^/]+/[^/#]+/?)(?:#file-(.+))?$`),
		apply: func(m []string) string {
			raw := strings.TrimSuffix(m[1], "/") + "/raw"
			if m[2] != "" {
				raw += "/" + m[2]
			}
			return raw
		},
	},
}

// RawURL rewrites known code hosting page URLs to their raw content.
func RawURL(target string) string {
	for _, r := range rewrites {
		if m := r.pattern.FindStringSubmatch(target); m != nil {
			target = r.apply(m)
		}
	}
	return target
}

// Fetcher reads targets. The zero value is not usable; use New.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		if d > 0 {
			f.client.Timeout = d
		}
	}
}

// WithHTTPClient replaces the HTTP client, e.g. with an httptest client.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		if c != nil {
			f.client = c
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) { f.userAgent = ua }
}

// New creates a Fetcher.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:    &http.Client{Timeout: DefaultTimeout},
		userAgent: "go-code2pdf",
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Get returns the decoded text of target. Local files are read as UTF-8
// with invalid bytes dropped; URLs are rewritten with RawURL first.
func (f *Fetcher) Get(ctx context.Context, target string) (string, error) {
	if IsURL(target) {
		return f.getURL(ctx, RawURL(target))
	}
	return readFile(target)
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is a user-selected input
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("%w %s: %v", ErrRead, path, err)
	}
	return strings.ToValidUTF8(string(data), ""), nil
}

func (f *Fetcher) getURL(ctx context.Context, target string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("%w %s: %v", ErrFetch, target, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("%w %s: %v", ErrFetch, target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w %s: %s", ErrFetch, target, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return "", fmt.Errorf("%w %s: %v", ErrFetch, target, err)
	}
	if len(data) > MaxBodySize {
		return "", fmt.Errorf("%w %s: response exceeds %dMB", ErrFetch, target, MaxBodySize>>20)
	}
	text, err := decode(data, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("%w %s: %v", ErrFetch, target, err)
	}
	return text, nil
}

// decode converts a response body to UTF-8 using the declared or sniffed
// charset. Undeclared bodies that are already valid UTF-8 are kept as is.
func decode(data []byte, contentType string) (string, error) {
	enc, name, certain := charset.DetermineEncoding(data, contentType)
	if name == "utf-8" || (!certain && utf8.Valid(data)) {
		return strings.ToValidUTF8(string(data), ""), nil
	}
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", name, err)
	}
	return string(decoded), nil
}

// IsURL reports whether target is an absolute http(s) URL.
func IsURL(target string) bool {
	return strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://")
}

// Join resolves ref against base. An absolute URL ref is returned as is,
// a URL base is resolved per RFC 3986, and a path base is joined against
// its directory.
func Join(base, ref string) string {
	if IsURL(ref) {
		return ref
	}
	if IsURL(base) {
		b, err := url.Parse(base)
		if err != nil {
			return ref
		}
		r, err := url.Parse(ref)
		if err != nil {
			return ref
		}
		return b.ResolveReference(r).String()
	}
	if filepath.IsAbs(ref) {
		return filepath.Clean(ref)
	}
	return filepath.Clean(filepath.Join(filepath.Dir(base), ref))
}
