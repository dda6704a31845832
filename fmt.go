package layout

import (
	"fmt"
	"strings"
)

// Fmt normalizes a file of stored layout strings, one rectangle per line,
// rewriting each to the canonical form produced by Rect.String. Blank lines
// are kept as-is. Any malformed line fails the whole file.
func Fmt(input []byte) ([]byte, error) {
	lines := strings.Split(string(input), "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		r, err := ParseRect(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		lines[i] = r.String()
	}
	return []byte(strings.Join(lines, "\n")), nil
}
