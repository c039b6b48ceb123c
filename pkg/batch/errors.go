// File: pkg/batch/errors.go
package batch

import "errors"

// ErrInvalidText is the cause of an IOError for content that is not valid UTF-8.
var ErrInvalidText = errors.New("stream did not contain valid UTF-8")

// IOError reports a file that could not be opened, read, or decoded as text.
type IOError struct {
	Path string // File as named on the command line.
	Err  error  // Underlying cause.
}

// Error returns the underlying cause, which already names the file for
// filesystem errors.
func (e *IOError) Error() string {
	if e == nil || e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *IOError) Unwrap() error { return e.Err }
