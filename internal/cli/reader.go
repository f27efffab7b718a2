package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// ErrInputCancelled is returned when the context ends before a line arrives.
var ErrInputCancelled = errors.New("input canceled")

// NonBlockingReader reads chat input lines without trapping the caller in
// a blocking read: cancelling the context returns immediately.
type NonBlockingReader struct {
	src *bufio.Reader
	mu  sync.Mutex
}

// NewNonBlockingReader wraps in.
func NewNonBlockingReader(in io.Reader) *NonBlockingReader {
	if in == nil {
		panic("reader cannot be nil")
	}
	return &NonBlockingReader{src: bufio.NewReader(in)}
}

type line struct {
	err  error
	text string
}

// ReadLine returns the next line with surrounding whitespace removed. A
// last line without a newline is still returned; io.EOF follows it.
func (r *NonBlockingReader) ReadLine(ctx context.Context) (string, error) {
	ch := make(chan line, 1)

	// The goroutine outlives a cancelled call until the source returns;
	// mu keeps a later call from reading concurrently with it.
	go func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		text, err := r.src.ReadString('\n')
		if errors.Is(err, io.EOF) && text != "" {
			err = nil
		}
		ch <- line{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ErrInputCancelled
	case l := <-ch:
		if l.err != nil {
			return "", l.err
		}
		return strings.TrimSpace(l.text), nil
	}
}

// Prompt writes prompt to w and reads the answer.
func (r *NonBlockingReader) Prompt(ctx context.Context, w io.Writer, prompt string) (string, error) {
	if _, err := fmt.Fprint(w, FormatPrompt(prompt)); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}
	return r.ReadLine(ctx)
}
