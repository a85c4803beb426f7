package main

// Notes:
// - confirm: answers are fed through strings.Reader; a canceled context is
//   tested with a reader that never returns.
// - Read errors other than EOF are not tested.

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestConfirm - Yes/no prompts
// ---------------------------------------------------------------------------

func TestConfirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantErr   error
		wantAsked int
	}{
		{"y", "y\n", nil, 1},
		{"yes any case", "YeS\n", nil, 1},
		{"n", "n\n", errDeclined, 1},
		{"no with spaces", "  no \n", errDeclined, 1},
		{"re-ask until valid", "sure\n\nyes\n", nil, 3},
		{"answer without newline", "y", nil, 1},
		{"end of input", "", errDeclined, 1},
		{"end of input after invalid", "maybe\n", errDeclined, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			p := newPrompter(strings.NewReader(tt.input), &out)

			err := p.confirm(context.Background(), "Overwrite out.pdf?")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("confirm() error = %v, want %v", err, tt.wantErr)
			}
			if got := strings.Count(out.String(), "Overwrite out.pdf? "); got != tt.wantAsked {
				t.Errorf("asked %d times, want %d", got, tt.wantAsked)
			}
		})
	}
}

// blockingReader never returns, like a terminal nobody answers.
type blockingReader struct{ done chan struct{} }

func (r blockingReader) Read([]byte) (int, error) {
	<-r.done
	return 0, errors.New("closed")
}

func TestConfirm_Canceled(t *testing.T) {
	t.Parallel()

	in := blockingReader{done: make(chan struct{})}
	defer close(in.done)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := newPrompter(in, &out).confirm(ctx, "Create dir?")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("confirm() error = %v, want %v", err, context.Canceled)
	}
}
