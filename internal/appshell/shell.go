// internal/appshell/shell.go
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Runner executes a command line and returns its exit code.
type Runner func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

const exitInterrupted = 130

// Main runs run under a context cancelled by SIGINT or SIGTERM and exits the
// process with its code. A bare invocation prints help.
func Main(run Runner) {
	os.Exit(execute(run, os.Args[1:], os.Stdout, os.Stderr))
}

func execute(run Runner, argv []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(argv) == 0 {
		argv = []string{"--help"}
	}
	code := run(ctx, argv, stdout, stderr)
	if ctx.Err() != nil && code == 0 {
		code = exitInterrupted
	}
	return code
}
