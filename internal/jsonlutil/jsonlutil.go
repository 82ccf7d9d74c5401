// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
)

var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// Start runs a goroutine writing one JSON object per line for every value
// received on the returned channel. After the first failed write the
// remaining values are drained and dropped. Errors matching isBroken are
// reported as nil. The error channel yields exactly one value once the input
// channel is closed.
func Start[T any](out io.Writer, bufSize int, isBroken func(error) bool) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bwPool.Get().(*bufio.Writer)
		bw.Reset(out)
		defer func() {
			bw.Reset(io.Discard)
			bwPool.Put(bw)
		}()

		enc := json.NewEncoder(bw)
		var err error
		for v := range in {
			if err == nil {
				err = enc.Encode(v)
			}
		}
		if err == nil {
			err = bw.Flush()
		}
		if err != nil && isBroken != nil && isBroken(err) {
			err = nil
		}
		done <- err
		close(done)
	}()

	return in, done
}

// Write encodes each value of vs on its own line.
func Write[T any](w io.Writer, vs ...T) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for _, v := range vs {
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return bw.Flush()
}
