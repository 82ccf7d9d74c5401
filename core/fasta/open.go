// core/fasta/open.go
package fasta

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// readCloser closes every layer of a stacked reader, first error wins.
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *readCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a reader for path. "-" is stdin. Gzip input is detected by
// magic number (1F 8B) or a .gz suffix and decompressed transparently.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(bufio.NewReader(os.Stdin)), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	br := bufio.NewReaderSize(fh, 64*1024)
	sig, _ := br.Peek(2)
	if (len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(br)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &readCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return &readCloser{Reader: br, closers: []io.Closer{fh}}, nil
}
