// Package assets provides the CSS and HTML page templates embedded in the
// binary.
//
// # Directory Structure
//
//	styles/
//	├── code.css       # static rules for highlighted source pages
//	└── plaintext.css  # text shown "as a browser would"
//	templates/
//	├── code.html      # highlighted source page
//	├── plaintext.html # text/plain wrapped in <pre>
//	└── blank.html     # empty page of a given size
//
// Dynamic rules (page size, margins, font size, running header) are built
// by the caller and injected into the templates.
//
// # Security
//
// Asset names are validated to prevent path traversal.
package assets
