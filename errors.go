package code2pdf

import (
	"errors"

	"github.com/alnah/go-code2pdf/internal/fetch"
	"github.com/alnah/go-code2pdf/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrBinary         = errors.New("binary")
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Render options validation errors.
	ErrInvalidSize   = errors.New("invalid size")
	ErrInvalidLength = errors.New("invalid CSS length")

	// Input count errors. Each specific error also matches ErrCountMismatch.
	ErrCountMismatch = errors.New("wrong number of inputs")
	ErrTooFewFiles   = countError("too few files to render side by side")
	ErrTooManyFiles  = countError("too many files to render side by side")
	ErrBrowserCount  = countError("can only render one input as browser would")

	// PDF assembly errors.
	ErrReadPDF  = errors.New("could not read PDF")
	ErrCompose  = errors.New("could not compose pages side by side")
	ErrWritePDF = errors.New("could not write PDF")

	// Fetch errors.
	ErrNotFound = fetch.ErrNotFound
	ErrRead     = fetch.ErrRead
	ErrFetch    = fetch.ErrFetch
)

// countError is a specific ErrCountMismatch with its own message.
type countError string

func (e countError) Error() string { return string(e) }

func (e countError) Is(target error) bool { return target == ErrCountMismatch }
