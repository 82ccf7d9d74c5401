// internal/writers/alignment.go
package writers

import (
	"fmt"
	"io"

	"profseq/internal/jsonlutil"
	"profseq/internal/output"
	"profseq/pkg/api"
)

// StartAlignmentWriter spins up a writer goroutine for alignments. Text and
// jsonl are streamed record by record; json and yaml are buffered and written
// as one document when in is closed. The error channel yields exactly one
// value.
func StartAlignmentWriter(out io.Writer, format string, header bool, bufSize int) (chan<- api.AlignmentV1, <-chan error) {
	if format == "jsonl" {
		return jsonlutil.Start[api.AlignmentV1](out, bufSize, IsBrokenPipe)
	}
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan api.AlignmentV1, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case "text":
			if header {
				_, err = fmt.Fprintln(out, output.AlignmentHeader)
			}
			for a := range in {
				if err == nil {
					err = output.WriteAlignmentText(out, a)
				}
			}
		case "json", "yaml":
			buf := make([]api.AlignmentV1, 0, bufSize)
			for a := range in {
				buf = append(buf, a)
			}
			if format == "json" {
				err = output.EncodeJSON(out, buf)
			} else {
				err = output.EncodeYAML(out, buf)
			}
		default:
			for range in {
			}
			err = fmt.Errorf("unknown alignment format %q (no writer registered)", format)
		}
		errCh <- err
		close(errCh)
	}()
	return in, errCh
}
