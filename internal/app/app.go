// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"labnotex-core/calcerr"
	"labnotex/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitNegative = 1 // incompatible primer pair, infeasible series
	ExitUsage    = 2 // bad flags or invalid input
	ExitWrite    = 3 // output could not be written
)

// usageError marks flag/argument problems detected before any calculation.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// writeError marks failures while writing the report.
type writeError struct{ err error }

func (e writeError) Error() string { return e.err.Error() }
func (e writeError) Unwrap() error { return e.err }

// RunContext executes one labnotex invocation and returns its exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	r := &runner{stdout: stdout, stderr: stderr}
	root := newRootCmd(r)
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if r.log != nil {
		defer func() { _ = r.log.Sync() }()
	}
	return r.exitCode(err)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func (r *runner) exitCode(err error) int {
	if err == nil {
		if r.negative {
			return ExitNegative
		}
		return ExitOK
	}

	var we writeError
	if errors.As(err, &we) {
		if writers.IsBrokenPipe(we.err) {
			return ExitOK
		}
		r.fail(err)
		return ExitWrite
	}
	if ce, ok := calcerr.As(err); ok {
		if r.log != nil {
			r.log.Info("calculation rejected",
				zap.Stringer("kind", ce.Kind), zap.String("field", ce.Field), zap.String("reason", ce.Msg))
		}
		r.fail(err)
		if ce.Kind == calcerr.KindInfeasible {
			return ExitNegative
		}
		return ExitUsage
	}
	r.fail(err)
	return ExitUsage
}

func (r *runner) fail(err error) {
	_, _ = fmt.Fprintln(r.stderr, "error:", err)
}
