// Package pipeline implements the HTML stages that precede PDF printing.
//
// This package turns fetched target content into a standalone HTML page:
//   - Source code highlighting via chroma, with inline line numbers
//   - Markdown to HTML conversion via Goldmark (browser mode)
//   - HTML preparation via goquery: same-page link stripping, base URL
//     insertion and frameset detection
//   - CSS injection into HTML documents
//
// PDF generation is handled separately by the root code2pdf package using
// headless Chrome (go-rod). This separation keeps the pipeline focused on
// document content, while PDF rendering handles page layout and printing.
package pipeline
