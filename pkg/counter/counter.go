// Package counter counts and enumerates the lines of in-memory text.
package counter

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"
)

// Lines splits contents into lines. A line ends at "\n" (an optional "\r"
// before it belongs to the terminator), and a trailing terminator does not
// produce an extra empty line. A "\r" that is not followed by "\n" is content.
func Lines(contents string) []string {
	var lines []string

	scanner := bufio.NewScanner(strings.NewReader(contents))
	// A single line may be as long as the whole input.
	scanner.Buffer(make([]byte, 0, 4096), len(contents)+1)
	scanner.Split(scanLines)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines
}

// Count returns the number of lines in contents. Empty input has zero lines.
func Count(contents string) int {
	return len(Lines(contents))
}

// CountAndEnumerate returns the line count together with a rendition of
// contents where line i is written as "i. line". Rendered lines are joined
// with "\n" and carry no trailing newline.
func CountAndEnumerate(contents string) (int, string) {
	lines := Lines(contents)

	var enumerated strings.Builder
	for i, line := range lines {
		if i > 0 {
			enumerated.WriteByte('\n')
		}
		enumerated.WriteString(strconv.Itoa(i + 1))
		enumerated.WriteString(". ")
		enumerated.WriteString(line)
	}
	return len(lines), enumerated.String()
}

// scanLines is bufio.ScanLines, except that an unterminated last line keeps
// a trailing "\r".
func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) > 0 && bytes.IndexByte(data, '\n') < 0 {
		return len(data), data, nil
	}
	return bufio.ScanLines(data, atEOF)
}
