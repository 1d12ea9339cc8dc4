package gen

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/zeebo/errs/v2"
)

// Lines reads at most limit lines from r with their line endings removed. A
// final line without a newline is kept.
func Lines(r io.Reader, limit int) ([]string, error) {
	var lines []string
	br := bufio.NewReader(r)
	for len(lines) < limit {
		line, err := br.ReadString('\n')
		if errors.Is(err, io.EOF) {
			if line != "" {
				lines = append(lines, line)
			}
			return lines, nil
		} else if err != nil {
			return lines, errs.Wrap(err)
		}
		lines = append(lines, strings.TrimSuffix(line, "\n"))
	}
	return lines, nil
}
