package code2pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
)

// outputPerm is the permission of written PDF files.
const outputPerm = 0o644

// Write concatenates the documents, in order, into one PDF at path, with
// one outline entry per bookmarked document. It reports false without
// error when there is nothing to write.
func Write(ctx context.Context, path string, docs []*Document) (bool, error) {
	if len(docs) == 0 {
		return false, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	bookmarks, err := buildBookmarks(docs)
	if err != nil {
		return false, err
	}

	data, err := merge(docs)
	if err != nil {
		return false, err
	}

	if len(bookmarks) > 0 {
		var buf bytes.Buffer
		if err := api.AddBookmarks(bytes.NewReader(data), &buf, bookmarks, true, pdfConfig()); err != nil {
			return false, fmt.Errorf("%w %s: adding bookmarks: %v", ErrWritePDF, path, err)
		}
		data = buf.Bytes()
	}

	if err := ctx.Err(); err != nil {
		return false, err
	}
	if err := os.WriteFile(path, data, outputPerm); err != nil { // #nosec G306 -- PDF output is meant to be shared
		return false, fmt.Errorf("%w %s: %v", ErrWritePDF, path, err)
	}
	return true, nil
}

// merge concatenates the documents' pages.
func merge(docs []*Document) ([]byte, error) {
	if len(docs) == 1 {
		return docs[0].PDF, nil
	}

	readers := make([]io.ReadSeeker, len(docs))
	for i, doc := range docs {
		readers[i] = bytes.NewReader(doc.PDF)
	}

	var buf bytes.Buffer
	if err := api.MergeRaw(readers, &buf, false, pdfConfig()); err != nil {
		return nil, fmt.Errorf("%w: merging: %v", ErrWritePDF, err)
	}
	return buf.Bytes(), nil
}

// buildBookmarks returns one top-level outline entry per bookmarked
// document, pointing at the document's first page in the merged output.
func buildBookmarks(docs []*Document) ([]pdfcpu.Bookmark, error) {
	var bookmarks []pdfcpu.Bookmark
	page := 1
	for _, doc := range docs {
		pages := doc.Pages
		if pages <= 0 {
			n, err := pageCount(doc.PDF)
			if err != nil {
				return nil, fmt.Errorf("%w %s: %v", ErrWritePDF, doc.Title, err)
			}
			pages = n
		}
		if doc.Bookmark != nil {
			bookmarks = append(bookmarks, pdfcpu.Bookmark{
				Title:    doc.Bookmark.Title,
				PageFrom: page,
			})
		}
		page += pages
	}
	return bookmarks, nil
}
