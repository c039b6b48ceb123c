// File: pkg/batch/types.go
package batch

import (
	"io"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Runner processes files one after another and reports to its writers.
type Runner struct {
	Stdout io.Writer   // Counts, enumerations, progress notices and the summary.
	Stderr io.Writer   // One "Error: <cause>" line per failed file.
	Logger *zap.Logger // Diagnostic logging; never carries user-facing output.
}

// NewRunner returns a Runner writing to stdout and stderr. A nil writer falls
// back to the matching process stream and a nil logger to a no-op logger.
func NewRunner(stdout, stderr io.Writer, logger *zap.Logger) *Runner {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{Stdout: stdout, Stderr: stderr, Logger: logger}
}

// Outcome aggregates the result of a batch.
type Outcome struct {
	Attempted int     // Number of files the runner tried to process.
	Failed    int     // Number of files that could not be processed.
	errs      []error // Per-file failures in processing order.
}

// Succeeded returns the number of files processed without error.
func (o Outcome) Succeeded() int {
	return o.Attempted - o.Failed
}

// ExitCode returns 1 when any file failed and 0 otherwise.
func (o Outcome) ExitCode() int {
	if o.Failed > 0 {
		return 1
	}
	return 0
}

// Err combines every per-file failure into one error, or returns nil.
func (o Outcome) Err() error {
	return multierr.Combine(o.errs...)
}

func (o *Outcome) record(err error) {
	o.Attempted++
	if err != nil {
		o.Failed++
		o.errs = append(o.errs, err)
	}
}
