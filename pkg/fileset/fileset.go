// Package fileset turns invocation arguments into the ordered list of files a
// run will process.
package fileset

import (
	"errors"
	"fmt"
)

// ErrArguments is the kind of every ArgumentError.
var ErrArguments = errors.New("invalid arguments")

// ArgumentError reports a wrong number of command-line arguments.
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string {
	if e == nil {
		return ""
	}
	return e.Msg
}

func (e *ArgumentError) Unwrap() error { return ErrArguments }

func argumentErrorf(format string, args ...any) error {
	return &ArgumentError{Msg: fmt.Sprintf(format, args...)}
}

// Variant selects how many file arguments Resolve accepts.
type Variant int

const (
	// Single accepts exactly one file.
	Single Variant = iota
	// Multi accepts one or more files.
	Multi
)

func (v Variant) String() string {
	switch v {
	case Single:
		return "single"
	case Multi:
		return "multi"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// FileSet is an ordered, non-empty list of file names. Duplicates are kept.
type FileSet struct {
	names []string
}

// Names returns a copy of the file names in invocation order.
func (s FileSet) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of files in the set.
func (s FileSet) Len() int { return len(s.names) }

// Resolve builds a FileSet from the process arguments. arguments[0] is the
// invocation path and is skipped. The filesystem is not consulted.
func Resolve(arguments []string, variant Variant) (FileSet, error) {
	switch variant {
	case Single:
		if len(arguments) != 2 {
			return FileSet{}, argumentErrorf("Incorrect number of arguments. Expected 1.")
		}
	case Multi:
		if len(arguments) < 2 {
			return FileSet{}, argumentErrorf("Incorrect number of arguments. Expected at least 1.")
		}
	default:
		return FileSet{}, fmt.Errorf("unknown file set variant %s", variant)
	}

	names := make([]string, len(arguments)-1)
	copy(names, arguments[1:])
	return FileSet{names: names}, nil
}
