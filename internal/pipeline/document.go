package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrHTMLParse indicates a page could not be parsed as HTML.
var ErrHTMLParse = errors.New("could not parse HTML")

// framesetCols matches the column layouts rendered side by side.
var framesetCols = regexp.MustCompile(`(50%,\s*50%|33%,\s*33%,\s*33%)`)

// Frame count bounds for a side-by-side frameset.
const (
	minFrames = 2
	maxFrames = 3
)

// IsMarkdown reports whether target names a Markdown file.
func IsMarkdown(target string) bool {
	switch strings.ToLower(path.Ext(stripQuery(target))) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// IsHTML reports whether target should be displayed as a web page,
// judging by its extension first and its sniffed content second.
func IsHTML(target, content string) bool {
	switch strings.ToLower(path.Ext(stripQuery(target))) {
	case ".html", ".htm", ".xhtml":
		return true
	}
	return mimetype.Detect([]byte(content)).Is("text/html")
}

// PrepareHTML parses a page and returns it ready for printing.
// When keepSamePageLinks is false, href attributes starting with "#" are
// removed. When baseURL is set and the page has no <base>, one is inserted
// at the top of <head> so relative resources resolve against the target.
func PrepareHTML(ctx context.Context, content, baseURL string, keepSamePageLinks bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLParse, err)
	}

	if !keepSamePageLinks {
		doc.Find(`a[href^="#"]`).RemoveAttr("href")
	}

	if baseURL != "" && doc.Find("base[href]").Length() == 0 {
		base := &html.Node{
			Type:     html.ElementNode,
			Data:     "base",
			DataAtom: atom.Base,
			Attr:     []html.Attribute{{Key: "href", Val: baseURL}},
		}
		doc.Find("head").First().PrependNodes(base)
	}

	out, err := goquery.OuterHtml(doc.Selection)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLParse, err)
	}
	return out, nil
}

// FindFrames returns the src of each frame when content holds exactly one
// two- or three-column frameset, and nil otherwise.
func FindFrames(content string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil
	}

	framesets := doc.Find("frameset").FilterFunction(func(_ int, s *goquery.Selection) bool {
		cols, ok := s.Attr("cols")
		return ok && framesetCols.MatchString(cols)
	})
	if framesets.Length() != 1 {
		return nil
	}

	frames := framesets.Find("frame")
	if frames.Length() < minFrames || frames.Length() > maxFrames {
		return nil
	}

	srcs := make([]string, 0, frames.Length())
	complete := true
	frames.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src, ok := s.Attr("src")
		if !ok {
			complete = false
			return false
		}
		srcs = append(srcs, src)
		return true
	})
	if !complete {
		return nil
	}
	return srcs
}

// stripQuery drops the query string and fragment of a URL target.
func stripQuery(target string) string {
	if !strings.HasPrefix(target, "http") {
		return target
	}
	if i := strings.IndexAny(target, "?#"); i != -1 {
		return target[:i]
	}
	return target
}
