// File: pkg/batch/text.go
package batch

import (
	"fmt"
	"unicode/utf8"
)

// decodeText converts raw file bytes to a string, rejecting content that is
// not valid UTF-8. The offset of the first invalid byte is included.
func decodeText(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	return "", fmt.Errorf("%w (first invalid byte at offset %d)", ErrInvalidText, firstInvalid(data))
}

// firstInvalid returns the offset of the first byte that does not start a
// valid UTF-8 sequence.
func firstInvalid(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(data)
}
