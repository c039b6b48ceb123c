// File: pkg/batch/file_processing.go
package batch

import (
	"fmt"
	"os"

	"linecount/pkg/config"
	"linecount/pkg/counter"

	"go.uber.org/zap"
)

// RunOne reads the named file, counts its lines and prints
// "<name> contains <N> lines", followed by the numbered lines when
// enumeration is enabled. Read failures are returned as *IOError and nothing
// is printed for the file.
func (r *Runner) RunOne(name string, flags config.Flags) error {
	logger := r.Logger.With(zap.String("filePath", name))

	contents, err := readText(name)
	if err != nil {
		logger.Debug("Failed to read file", zap.Error(err))
		return &IOError{Path: name, Err: err}
	}
	logger.Debug("Successfully read file content", zap.Int("contentSizeBytes", len(contents)))

	if !flags.EnumerateContents {
		n := counter.Count(contents)
		logger.Debug("Counted lines", zap.Int("lines", n))
		_, err = fmt.Fprintf(r.Stdout, "%s contains %d lines\n", name, n)
		return err
	}

	n, enumerated := counter.CountAndEnumerate(contents)
	logger.Debug("Counted and enumerated lines", zap.Int("lines", n))
	if _, err := fmt.Fprintf(r.Stdout, "%s contains %d lines\n", name, n); err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.Stdout, enumerated)
	return err
}

// readText loads the whole file as text. The file is closed before
// returning, and partial content is discarded on error.
func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return decodeText(data)
}
