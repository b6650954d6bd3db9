package wheel

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLabelLine bounds a single label line.
const maxLabelLine = 1 << 20

// ReadLabels reads one label per line, stopping after MaxSegments lines.
// Trailing whitespace is stripped; blank lines are kept as labels.
func ReadLabels(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLabelLine)
	var lines []string
	for len(lines) < MaxSegments && sc.Scan() {
		lines = append(lines, strings.TrimRightFunc(sc.Text(), isSpace))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read labels: %v: %w", err, ErrInvalidInput)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("label source is empty: %w", ErrInvalidInput)
	}
	return lines, nil
}

// LoadFile reads labels from a text file.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %v: %w", path, err, ErrInvalidInput)
	}
	defer f.Close()

	lines, err := ReadLabels(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\v', '\f':
		return true
	}
	return false
}
