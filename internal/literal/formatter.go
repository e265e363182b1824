// Package literal renders cell sequences as a bracketed, comma separated
// decimal list that can be pasted into source code as an array literal.
//
// Layout:
//
//	<count>
//	[
//	<body lines>
//	]
//
// Body lines wrap once their length passes WrapThreshold. The comma that
// separates two cells is appended before the second one, so a line that
// follows a wrap begins with ','.
package literal

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
)

// WrapThreshold is the line length that, once exceeded, flushes the current body line.
const WrapThreshold = 65

const (
	OpenBracket  = "["
	CloseBracket = "]"
)

// Formatter writes the literal layout to an output.
type Formatter struct {
	out   io.Writer
	lines int
}

// NewFormatter returns a formatter writing to w, or to stdout if w is nil.
func NewFormatter(w io.Writer) *Formatter {
	f := &Formatter{out: os.Stdout}
	f.SetOutput(w)
	return f
}

// SetOutput redirects the formatter output. A nil writer is ignored.
func (f *Formatter) SetOutput(w io.Writer) {
	if w != nil {
		f.out = w
	}
}

// Lines returns the number of lines written by the last Format call.
func (f *Formatter) Lines() int {
	return f.lines
}

// Format writes cells in the literal layout. Only write errors are returned.
func (f *Formatter) Format(cells []int32) error {
	bw := bufio.NewWriter(f.out)
	f.lines = 0

	f.writeLine(bw, strconv.Itoa(len(cells)))
	f.writeLine(bw, OpenBracket)

	var line []byte
	for i, c := range cells {
		if i > 0 {
			line = append(line, ',')
		}
		line = strconv.AppendInt(line, int64(c), 10)
		if len(line) > WrapThreshold {
			f.writeLine(bw, string(line))
			line = line[:0]
		}
	}
	// Always emitted, even when empty.
	f.writeLine(bw, string(line))

	f.writeLine(bw, CloseBracket)
	return bw.Flush()
}

func (f *Formatter) writeLine(bw *bufio.Writer, s string) {
	// bufio.Writer keeps the first error and reports it from Flush.
	bw.WriteString(s)
	bw.WriteByte('\n')
	f.lines++
}

// Format renders cells as a string.
func Format(cells []int32) string {
	var sb strings.Builder
	_ = NewFormatter(&sb).Format(cells)
	return sb.String()
}
