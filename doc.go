// Package code2pdf renders source files and web pages to PDF using
// headless Chrome.
//
// # Quick Start
//
// Create a renderer, render targets, write them, and close when done:
//
//	r, err := code2pdf.NewRenderer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	doc, err := r.Render(ctx, "main.go", code2pdf.DefaultRenderOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if _, err := code2pdf.Write(ctx, "main.pdf", []*code2pdf.Document{doc}); err != nil {
//	    log.Fatal(err)
//	}
//
// A target is a file path or an http(s) URL. GitHub blob URLs and Gist
// URLs are fetched from their raw endpoints.
//
// # Rendering Modes
//
// By default a target is highlighted with chroma, with inline line numbers
// and its path as a running header. With RenderOptions.Browser the target
// is printed as a browser would display it: HTML as is, Markdown converted
// with Goldmark, anything else as plain text.
//
// RenderSideBySide renders two or three targets as columns of the same
// pages. PlanSideBySide and Compose expose the page layout and the
// composition of already printed PDFs.
//
// # Output
//
// Write concatenates documents into one PDF with one bookmark per document.
//
// # Errors
//
// Errors wrap the sentinels in errors.go. ErrBinary marks a target that was
// not rendered because it holds binary data; batch callers may skip it.
package code2pdf
