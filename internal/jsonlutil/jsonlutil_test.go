package jsonlutil

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID string `json:"id"`
	N  int    `json:"n"`
}

func TestStartStreamsLines(t *testing.T) {
	var buf bytes.Buffer
	in, done := Start[row](&buf, 0, nil)
	in <- row{"a", 1}
	in <- row{"b", 2}
	close(in)
	require.NoError(t, <-done)
	assert.Equal(t, "{\"id\":\"a\",\"n\":1}\n{\"id\":\"b\",\"n\":2}\n", buf.String())
}

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

func TestStartDrainsAfterError(t *testing.T) {
	boom := errors.New("boom")
	in, done := Start[row](failWriter{boom}, 1, nil)
	// More values than the buffer holds must not block.
	for i := 0; i < 10; i++ {
		in <- row{N: i}
	}
	close(in)
	assert.ErrorIs(t, <-done, boom)
}

func TestStartSuppressesBroken(t *testing.T) {
	boom := errors.New("pipe")
	in, done := Start[row](failWriter{boom}, 1, func(err error) bool { return errors.Is(err, boom) })
	in <- row{}
	close(in)
	assert.NoError(t, <-done)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, 1, 2, 3))
	assert.Equal(t, "1\n2\n3\n", buf.String())
}
