package main

// Notes:
// - Test infrastructure shared by the command tests: a fake renderService
//   and a recording writer, so runs never start Chrome.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	code2pdf "github.com/alnah/go-code2pdf"
)

// ---------------------------------------------------------------------------
// Mock Implementations - For unit testing
// ---------------------------------------------------------------------------

// fakeService renders every target to a one-page fake document.
type fakeService struct {
	errs     map[string]error  // Render error per target
	pages    map[string]string // Fetch content per target
	panicOn  string
	rendered []string
	columns  [][]string
	lastOpts code2pdf.RenderOptions
	closed   bool
}

func (s *fakeService) Render(_ context.Context, target string, opts code2pdf.RenderOptions) (*code2pdf.Document, error) {
	if target == s.panicOn {
		panic("boom")
	}
	s.lastOpts = opts
	if err := s.errs[target]; err != nil {
		return nil, err
	}
	s.rendered = append(s.rendered, target)
	return &code2pdf.Document{
		Title:    target,
		PDF:      []byte("%PDF-fake " + target),
		Pages:    1,
		Bookmark: &code2pdf.Bookmark{Level: 1, Title: target, Closed: true},
	}, nil
}

func (s *fakeService) RenderSideBySide(_ context.Context, targets []string, opts code2pdf.RenderOptions) (*code2pdf.Document, error) {
	s.lastOpts = opts
	s.columns = append(s.columns, targets)
	return &code2pdf.Document{Title: targets[0], PDF: []byte("%PDF-fake"), Pages: 1}, nil
}

func (s *fakeService) Fetch(_ context.Context, target string) (string, error) {
	if err := s.errs[target]; err != nil {
		return "", err
	}
	return s.pages[target], nil
}

func (s *fakeService) Close() error {
	s.closed = true
	return nil
}

// fakeWriter records what would have been written.
type fakeWriter struct {
	path string
	docs []*code2pdf.Document
}

func (w *fakeWriter) Write(_ context.Context, path string, docs []*code2pdf.Document) (bool, error) {
	w.path = path
	w.docs = docs
	return len(docs) > 0, nil
}

// testEnv wires a fake service and writer into an Environment.
type testEnv struct {
	env    *Environment
	svc    *fakeService
	writer *fakeWriter
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestEnv(stdin string) *testEnv {
	te := &testEnv{
		svc:    &fakeService{},
		writer: &fakeWriter{},
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}
	te.env = &Environment{
		Stdin:  strings.NewReader(stdin),
		Stdout: te.stdout,
		Stderr: te.stderr,
		NewService: func(...code2pdf.Option) (renderService, error) {
			return te.svc, nil
		},
		Write: te.writer.Write,
	}
	return te
}

// flat collapses whitespace so assertions survive line wrapping.
func flat(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// writeFiles creates files under a temp dir and returns their paths.
func writeFiles(t *testing.T, names ...string) (string, []string) {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
		if err := os.WriteFile(paths[i], []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir, paths
}
