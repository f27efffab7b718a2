package cli

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNonBlockingReader_ReadLine(t *testing.T) {
	nbr := NewNonBlockingReader(strings.NewReader("is this recyclable?\n  pizza box  \n\n/2\nbye"))
	ctx := context.Background()

	for _, want := range []string{"is this recyclable?", "pizza box", "", "/2", "bye"} {
		got, err := nbr.ReadLine(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := nbr.ReadLine(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

func TestNonBlockingReader_Cancellation(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() {
		_ = pw.Close()
		_ = pr.Close()
	})
	nbr := NewNonBlockingReader(pr)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := nbr.ReadLine(ctx)
	assert.ErrorIs(t, err, ErrInputCancelled)
}

func TestNonBlockingReader_NilPanics(t *testing.T) {
	assert.Panics(t, func() { NewNonBlockingReader(nil) })
}

func TestNonBlockingReader_Prompt(t *testing.T) {
	var out strings.Builder
	nbr := NewNonBlockingReader(strings.NewReader("glass jar\n"))

	answer, err := nbr.Prompt(context.Background(), &out, "you")
	require.NoError(t, err)
	assert.Equal(t, "glass jar", answer)
	assert.Contains(t, out.String(), "you →")
}
