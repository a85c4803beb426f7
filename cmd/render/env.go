package main

import (
	"context"
	"io"
	"os"

	code2pdf "github.com/alnah/go-code2pdf"
)

// renderService is the part of the renderer the command drives.
type renderService interface {
	Render(ctx context.Context, target string, opts code2pdf.RenderOptions) (*code2pdf.Document, error)
	RenderSideBySide(ctx context.Context, targets []string, opts code2pdf.RenderOptions) (*code2pdf.Document, error)
	Fetch(ctx context.Context, target string) (string, error)
	Close() error
}

// Compile-time interface implementation check.
var _ renderService = (*code2pdf.Renderer)(nil)

// Environment holds injectable dependencies for testability.
// Includes I/O, the renderer factory and the PDF writer.
type Environment struct {
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	NewService func(opts ...code2pdf.Option) (renderService, error)
	Write      func(ctx context.Context, path string, docs []*code2pdf.Document) (bool, error)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		NewService: newRenderService,
		Write:      code2pdf.Write,
	}
}

func newRenderService(opts ...code2pdf.Option) (renderService, error) {
	r, err := code2pdf.NewRenderer(opts...)
	if err != nil {
		return nil, err
	}
	return r, nil
}
