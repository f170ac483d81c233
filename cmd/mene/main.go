// Command mene analyzes metabolic networks: scopes, producibility checks,
// cofactor completion and producing pathways.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/mene/core"
	"github.com/katalvlaran/mene/loader"
	"github.com/katalvlaran/mene/search"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "mene: %s: %v\n", kind(err), err)
		return 1
	}

	return 0
}

// kind names the failure class of err.
func kind(err error) string {
	switch {
	case errors.Is(err, loader.ErrResourceNotFound):
		return "resource not found"
	case errors.Is(err, loader.ErrMalformedInput):
		return "malformed input"
	case errors.Is(err, core.ErrInfeasiblePrecondition):
		return "infeasible precondition"
	case errors.Is(err, search.ErrEnumerationLimit):
		return "enumeration limit"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "interrupted"
	default:
		return "error"
	}
}
