package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// errDeclined reports that the user answered no, or gave no answer.
var errDeclined = errors.New("declined")

// prompter asks yes/no questions on the terminal.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// confirm asks question until the answer is y, yes, n or no (any case).
// Returns errDeclined for no or end of input, ctx.Err() when interrupted.
func (p *prompter) confirm(ctx context.Context, question string) error {
	for {
		fmt.Fprintf(p.out, "%s ", question)
		answer, err := p.readLine(ctx)
		if err != nil {
			return err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return nil
		case "n", "no":
			return errDeclined
		}
	}
}

// readLine reads one line, giving up when ctx is canceled.
// The pending read is abandoned on cancellation; the process exits right after.
func (p *prompter) readLine(ctx context.Context) (string, error) {
	type result struct {
		line string
		err  error
	}
	ch := make(chan result, 1)

	go func() {
		line, err := p.in.ReadString('\n')
		ch <- result{line, err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		if r.err == nil {
			return r.line, nil
		}
		if errors.Is(r.err, io.EOF) {
			if r.line != "" {
				return r.line, nil
			}
			fmt.Fprintln(p.out)
			return "", errDeclined
		}
		return "", fmt.Errorf("reading answer: %w", r.err)
	}
}
