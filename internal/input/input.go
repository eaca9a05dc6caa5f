// Package input provides helpers for reading argument values from stdin and
// files (@file syntax).
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ExpandValues expands values that use - (stdin) or @file syntax into the
// non-empty lines they contain. Plain values pass through unchanged. Stdin
// is read at most once; a second - is an error.
func ExpandValues(values []string, stdin io.Reader) ([]string, error) {
	var result []string
	stdinUsed := false
	for _, v := range values {
		switch {
		case v == "-":
			if stdinUsed {
				return nil, fmt.Errorf("stdin already used")
			}
			stdinUsed = true
			lines, err := ReadLines(stdin)
			if err != nil {
				return nil, fmt.Errorf("read stdin: %w", err)
			}
			result = append(result, lines...)
		case strings.HasPrefix(v, "@") && len(v) > 1:
			path := strings.TrimPrefix(v, "@")
			lines, err := readFile(path)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", path, err)
			}
			result = append(result, lines...)
		default:
			result = append(result, v)
		}
	}
	return result, nil
}

func readFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}

// ReadLines reads non-empty, trimmed lines from a reader. Lines starting
// with # are comments.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
