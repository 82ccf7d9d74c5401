// core/fasta/stream.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record is one FASTA entry. Seq keeps the residues as written (case and
// gap characters included) minus whitespace.
type Record struct {
	ID  string
	Seq []byte
}

// StreamCtx parses FASTA from r and calls emit once per record, in file
// order. Cancellation is checked between lines. Returning an error from emit
// stops the scan and is returned as is.
func StreamCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		id     string
		seen   bool
		seq    = make([]byte, 0, 1<<16)
		lineNo int
	)
	flush := func() error {
		if !seen {
			return nil
		}
		return emit(Record{ID: id, Seq: append([]byte(nil), seq...)})
	}

	for sc.Scan() {
		lineNo++
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 || line[0] == ';' {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			id, seen = parseHeaderID(line[1:]), true
			seq = seq[:0]
			continue
		}
		if !seen {
			return fmt.Errorf("fasta: line %d: sequence data before first header", lineNo)
		}
		for _, c := range line {
			if c != ' ' && c != '\t' {
				seq = append(seq, c)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// StreamPathCtx opens path (see Open) and streams its records.
func StreamPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	if err := StreamCtx(ctx, rc, emit); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// ReadAll collects every record of path.
func ReadAll(ctx context.Context, path string) ([]Record, error) {
	var out []Record
	err := StreamPathCtx(ctx, path, func(r Record) error {
		out = append(out, r)
		return nil
	})
	return out, err
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
