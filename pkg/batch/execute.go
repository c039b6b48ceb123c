// File: pkg/batch/execute.go
package batch

import (
	"fmt"
	"time"

	"linecount/pkg/config"
	"linecount/pkg/fileset"

	"go.uber.org/zap"
)

// RunAll processes every file of set in order. A failed file is reported on
// Stderr and counted; processing always continues with the next file. A
// summary line closes the batch.
func (r *Runner) RunAll(set fileset.FileSet, flags config.Flags) Outcome {
	startTime := time.Now()
	r.Logger.Debug("Starting batch", zap.Int("fileCount", set.Len()),
		zap.Bool("enumerate", flags.EnumerateContents))

	var outcome Outcome
	for _, name := range set.Names() {
		outcome.record(r.process(name, flags))
	}

	fmt.Fprintf(r.Stdout, "Processed successfully: %d, failed %d\n", outcome.Succeeded(), outcome.Failed)

	r.Logger.Debug("Batch completed",
		zap.Int("succeeded", outcome.Succeeded()),
		zap.Int("failed", outcome.Failed),
		zap.Duration("elapsed", time.Since(startTime)))
	return outcome
}

// RunSingle processes the only file of set. A failure is reported on Stderr
// and yields exit code 1. No summary line is printed.
func (r *Runner) RunSingle(set fileset.FileSet, flags config.Flags) Outcome {
	var outcome Outcome
	for _, name := range set.Names() {
		err := r.process(name, flags)
		outcome.record(err)
		if err != nil {
			break
		}
	}
	return outcome
}

// process prints the start notice for name, runs it, and reports a failure
// on Stderr.
func (r *Runner) process(name string, flags config.Flags) error {
	fmt.Fprintf(r.Stdout, "Processing file: %s\n", name)

	err := r.RunOne(name, flags)
	if err != nil {
		r.Logger.Warn("Failed to process file", zap.String("filePath", name), zap.Error(err))
		fmt.Fprintf(r.Stderr, "Error: %v\n", err)
	}
	return err
}
