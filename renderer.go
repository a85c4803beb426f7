package code2pdf

import (
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/alnah/go-code2pdf/internal/assets"
	"github.com/alnah/go-code2pdf/internal/fetch"
	"github.com/alnah/go-code2pdf/internal/fileutil"
	"github.com/alnah/go-code2pdf/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CSSInjector   = (*pipeline.CSSInjection)(nil)
	_ Fetcher                = (*fetch.Fetcher)(nil)
)

// defaultTimeout bounds the printing of one page.
const defaultTimeout = 60 * time.Second

// Stage is a step in rendering one target.
type Stage int

const (
	StageRendering Stage = iota // fetching and printing started
	StageRendered               // PDF produced
)

// ProgressFunc is called as each target moves through rendering.
type ProgressFunc func(stage Stage, target string)

// Fetcher retrieves the text of a target.
type Fetcher interface {
	Get(ctx context.Context, target string) (string, error)
}

// rendererConfig holds settings applied by options.
type rendererConfig struct {
	timeout   time.Duration
	style     string
	fetchOpts []fetch.Option
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTimeout sets the time allowed to print one page.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("code2pdf: WithTimeout duration must be positive")
	}
	return func(r *Renderer) {
		r.cfg.timeout = d
	}
}

// WithHTTPTimeout sets the time allowed to fetch one URL.
func WithHTTPTimeout(d time.Duration) Option {
	return func(r *Renderer) {
		r.cfg.fetchOpts = append(r.cfg.fetchOpts, fetch.WithTimeout(d))
	}
}

// WithUserAgent sets the User-Agent sent when fetching URLs.
func WithUserAgent(ua string) Option {
	return func(r *Renderer) {
		r.cfg.fetchOpts = append(r.cfg.fetchOpts, fetch.WithUserAgent(ua))
	}
}

// WithFetcher replaces the default file and HTTP fetcher.
func WithFetcher(f Fetcher) Option {
	return func(r *Renderer) {
		r.fetcher = f
	}
}

// WithProgress registers a callback for rendering progress.
func WithProgress(fn ProgressFunc) Option {
	return func(r *Renderer) {
		r.progress = fn
	}
}

// WithStyle selects the chroma style of highlighted pages.
func WithStyle(name string) Option {
	return func(r *Renderer) {
		r.cfg.style = name
	}
}

// Renderer turns targets into PDF documents.
// Create with NewRenderer(), and Close() when done to stop the browser.
// A Renderer is not safe for concurrent use.
type Renderer struct {
	cfg           rendererConfig
	fetcher       Fetcher
	progress      ProgressFunc
	highlighter   *pipeline.Highlighter
	htmlConverter pipeline.HTMLConverter
	cssInjector   pipeline.CSSInjector
	pdfConverter  pdfConverter

	codeTmpl  *template.Template
	plainTmpl *template.Template
	blankTmpl *template.Template
	codeCSS   string // chroma classes followed by static code rules
	plainCSS  string
}

// codePage is the data of the highlighted source template.
type codePage struct {
	Title string
	CSS   template.CSS
	Body  template.HTML
}

// plainPage is the data of the text/plain template.
type plainPage struct {
	Title string
	CSS   template.CSS
	Text  string
}

// blankPage is the data of the empty page template.
type blankPage struct {
	CSS template.CSS
}

// NewRenderer creates a Renderer with default configuration.
// The browser is only started by the first render.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		cfg:           rendererConfig{timeout: defaultTimeout},
		htmlConverter: pipeline.NewGoldmarkConverter(),
		cssInjector:   &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.fetcher == nil {
		r.fetcher = fetch.New(r.cfg.fetchOpts...)
	}
	r.highlighter = pipeline.NewHighlighter(r.cfg.style)

	if err := r.loadAssets(); err != nil {
		return nil, err
	}

	if r.pdfConverter == nil {
		r.pdfConverter = newRodConverter(r.cfg.timeout)
	}
	return r, nil
}

// loadAssets parses the embedded page templates and styles.
func (r *Renderer) loadAssets() error {
	var err error
	if r.codeTmpl, err = loadTemplate("code"); err != nil {
		return err
	}
	if r.plainTmpl, err = loadTemplate("plaintext"); err != nil {
		return err
	}
	if r.blankTmpl, err = loadTemplate("blank"); err != nil {
		return err
	}

	chromaCSS, err := r.highlighter.CSS()
	if err != nil {
		return err
	}
	codeCSS, err := assets.LoadStyle("code")
	if err != nil {
		return fmt.Errorf("loading code style: %w", err)
	}
	r.codeCSS = chromaCSS + codeCSS

	if r.plainCSS, err = assets.LoadStyle("plaintext"); err != nil {
		return fmt.Errorf("loading plaintext style: %w", err)
	}
	return nil
}

func loadTemplate(name string) (*template.Template, error) {
	content, err := assets.LoadTemplate(name)
	if err != nil {
		return nil, fmt.Errorf("loading %s template: %w", name, err)
	}
	tmpl, err := template.New(name).Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parsing %s template: %w", name, err)
	}
	return tmpl, nil
}

// Render fetches one target and prints it to PDF. The document carries a
// closed level 1 bookmark titled with its display title.
// A target containing a NUL byte is not highlighted: the error wraps
// ErrBinary, and callers may skip it and carry on.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (r *Renderer) Render(ctx context.Context, target string, opts RenderOptions) (doc *Document, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("internal error: %v", rec)
		}
	}()

	if err := opts.Validate(); err != nil {
		return nil, err
	}

	r.report(StageRendering, target)
	title := DisplayTitle(target, opts.ShowPath)

	var page string
	if opts.Browser {
		page, err = r.browserPage(ctx, target, title, opts)
	} else {
		page, err = r.codePage(ctx, target, title, opts)
	}
	if err != nil {
		return nil, err
	}

	pdf, err := r.print(ctx, page)
	if err != nil {
		return nil, err
	}
	pages, err := pageCount(pdf)
	if err != nil {
		return nil, err
	}

	r.report(StageRendered, target)
	return &Document{
		Title:    title,
		PDF:      pdf,
		Pages:    pages,
		Bookmark: &Bookmark{Level: 1, Title: title, Closed: true},
	}, nil
}

// Blank prints an empty page of the given CSS page size.
func (r *Renderer) Blank(ctx context.Context, size string) ([]byte, error) {
	if !sizePattern.MatchString(size) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSize, size)
	}
	page, err := execute(r.blankTmpl, blankPage{CSS: template.CSS(buildBlankCSS(size))}) // #nosec G203 -- size is validated
	if err != nil {
		return nil, err
	}
	return r.print(ctx, page)
}

// Fetch returns the text of a target.
func (r *Renderer) Fetch(ctx context.Context, target string) (string, error) {
	return r.fetcher.Get(ctx, target)
}

// Close releases resources (headless Chrome browser).
func (r *Renderer) Close() error {
	if r.pdfConverter != nil {
		return r.pdfConverter.Close()
	}
	return nil
}

// codePage builds the highlighted HTML page of a source file.
func (r *Renderer) codePage(ctx context.Context, target, title string, opts RenderOptions) (string, error) {
	code, err := r.fetcher.Get(ctx, target)
	if err != nil {
		return "", err
	}
	if strings.ContainsRune(code, 0) {
		return "", fmt.Errorf("could not render %s because %w", target, ErrBinary)
	}

	body, err := r.highlighter.Highlight(ctx, fileutil.BaseName(target), code, opts.Color)
	if err != nil {
		return "", err
	}

	return execute(r.codeTmpl, codePage{
		Title: title,
		CSS:   template.CSS(buildCodeCSS(title, opts) + r.codeCSS), // #nosec G203 -- values validated and escaped
		Body:  template.HTML(body),                                 // #nosec G203 -- chroma escapes the source
	})
}

// print converts a page to PDF within the render timeout.
func (r *Renderer) print(ctx context.Context, page string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.timeout)
	defer cancel()

	pdf, err := r.pdfConverter.ToPDF(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	return pdf, nil
}

func (r *Renderer) report(stage Stage, target string) {
	if r.progress != nil {
		r.progress(stage, target)
	}
}

func execute(tmpl *template.Template, data any) (string, error) {
	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %s template: %v", ErrHTMLConversion, tmpl.Name(), err)
	}
	return buf.String(), nil
}
