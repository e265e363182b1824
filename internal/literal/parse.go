package literal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformed is wrapped by every Parse failure.
var ErrMalformed = errors.New("malformed literal")

// Parse reads text in the layout written by Formatter and returns the cells.
// Body lines are joined before splitting on ',' so wrap positions do not matter.
func Parse(r io.Reader) ([]int32, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)

	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	// count, '[', at least one body line, ']'
	if len(lines) < 4 {
		return nil, fmt.Errorf("%w: %d lines, want at least 4", ErrMalformed, len(lines))
	}

	count, err := strconv.Atoi(lines[0])
	if err != nil || count < 0 {
		return nil, fmt.Errorf("%w: bad count line %q", ErrMalformed, lines[0])
	}
	if lines[1] != OpenBracket {
		return nil, fmt.Errorf("%w: line 2 is %q, want %q", ErrMalformed, lines[1], OpenBracket)
	}
	last := len(lines) - 1
	if lines[last] != CloseBracket {
		return nil, fmt.Errorf("%w: last line is %q, want %q", ErrMalformed, lines[last], CloseBracket)
	}

	body := strings.Join(lines[2:last], "")
	cells := make([]int32, 0, count)
	if body != "" {
		for i, tok := range strings.Split(body, ",") {
			v, err := strconv.ParseInt(tok, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: cell %d: %v", ErrMalformed, i, err)
			}
			cells = append(cells, int32(v))
		}
	}

	if len(cells) != count {
		return nil, fmt.Errorf("%w: count line says %d, body has %d cells", ErrMalformed, count, len(cells))
	}
	return cells, nil
}
