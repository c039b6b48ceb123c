package cmd

import (
	"io"

	"linecount/pkg/batch"
	"linecount/pkg/config"
	"linecount/pkg/fileset"

	"go.uber.org/zap"
)

// runCount resolves the file list from the positional arguments and runs the
// batch. An argument error is returned before any file is opened.
func runCount(invocation string, args []string, single bool, flags config.Flags, stdout, stderr io.Writer, logger *zap.Logger) (int, error) {
	variant := fileset.Multi
	if single {
		variant = fileset.Single
	}

	set, err := fileset.Resolve(append([]string{invocation}, args...), variant)
	if err != nil {
		return 1, err
	}
	logger.Debug("Resolved file set",
		zap.Stringer("variant", variant),
		zap.Strings("files", set.Names()),
		zap.Bool("enumerate", flags.EnumerateContents))

	runner := batch.NewRunner(stdout, stderr, logger)

	var outcome batch.Outcome
	if single {
		outcome = runner.RunSingle(set, flags)
	} else {
		outcome = runner.RunAll(set, flags)
	}

	if outcome.Failed > 0 {
		logger.Debug("Batch finished with failures",
			zap.Int("attempted", outcome.Attempted),
			zap.Int("failed", outcome.Failed),
			zap.Error(outcome.Err()))
	}
	return outcome.ExitCode(), nil
}
