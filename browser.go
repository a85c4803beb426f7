package code2pdf

import (
	"context"
	"html/template"

	"github.com/alnah/go-code2pdf/internal/fetch"
	"github.com/alnah/go-code2pdf/internal/fileutil"
	"github.com/alnah/go-code2pdf/internal/pipeline"
)

// browserPage builds the HTML a browser would display for a target:
// Markdown is converted, web pages are kept, anything else is shown as
// preformatted text. Page rules for size, margins and font size are
// injected last.
func (r *Renderer) browserPage(ctx context.Context, target, title string, opts RenderOptions) (string, error) {
	content, err := r.fetcher.Get(ctx, target)
	if err != nil {
		return "", err
	}

	var page string
	switch {
	case pipeline.IsMarkdown(target):
		page, err = r.htmlConverter.ToHTML(ctx, title, content)
	case pipeline.IsHTML(target, content):
		page = content
	default:
		page, err = execute(r.plainTmpl, plainPage{
			Title: title,
			CSS:   template.CSS(r.plainCSS), // #nosec G203 -- embedded asset
			Text:  content,
		})
	}
	if err != nil {
		return "", err
	}

	base, err := baseURL(target)
	if err != nil {
		return "", err
	}
	page, err = pipeline.PrepareHTML(ctx, page, base, opts.Relative)
	if err != nil {
		return "", err
	}

	return r.cssInjector.InjectCSS(ctx, page, buildBrowserCSS(opts)), nil
}

// baseURL is the URL relative references of a target resolve against:
// the raw URL for remote targets, the containing directory for files.
func baseURL(target string) (string, error) {
	if fetch.IsURL(target) {
		return fetch.RawURL(target), nil
	}
	return fileutil.DirFileURL(target)
}

// FindFrames returns the frames of a two- or three-column frameset page,
// resolved against target, or nil when content is not such a page.
func FindFrames(target, content string) []string {
	srcs := pipeline.FindFrames(content)
	if srcs == nil {
		return nil
	}
	frames := make([]string, len(srcs))
	for i, src := range srcs {
		frames[i] = fetch.Join(target, src)
	}
	return frames
}
