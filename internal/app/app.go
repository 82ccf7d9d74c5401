// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"profseq/internal/cli"
	"profseq/internal/writers"
)

// RunContext executes the profseq command line and returns the process exit
// code. Output is buffered and flushed before returning.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	cmd := cli.NewCommand(outw, stderr)
	err := cmd.Run(parent, append([]string{"profseq"}, argv...))

	ferr := outw.Flush()
	switch {
	case writers.IsBrokenPipe(err) || writers.IsBrokenPipe(ferr):
		return cli.ExitOK
	case errors.Is(err, context.Canceled) || parent.Err() != nil:
		return cli.ExitInterrupted
	case err == nil && ferr == nil:
		return cli.ExitOK
	case err != nil:
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return cli.Code(err)
	default:
		_, _ = fmt.Fprintln(stderr, "error:", ferr)
		return cli.ExitWrite
	}
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
