package image

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies image load failures.
type Kind int

const (
	KindNone Kind = iota
	KindIO        // file missing, unreadable, or short read
	KindFormat    // byte length not a whole number of cells
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "IOError"
	case KindFormat:
		return "FormatError"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is.
var (
	ErrIO     = errors.New("image io error")
	ErrFormat = errors.New("image format error")
)

// Error is returned by Load for any failure. It carries the path and, when
// known, the byte size of the image.
type Error struct {
	Kind Kind
	Path string
	Size int64
	Err  error
}

func newIOError(path string, err error) *Error {
	return &Error{Kind: KindIO, Path: path, Size: -1, Err: err}
}

func newFormatError(path string, size int64) *Error {
	return &Error{Kind: KindFormat, Path: path, Size: size}
}

func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(e.Kind.String())
	sb.WriteString(": ")

	switch e.Kind {
	case KindIO:
		sb.WriteString(fmt.Sprintf("cannot read image %q", e.Path))
	case KindFormat:
		sb.WriteString(fmt.Sprintf("image %q is %d bytes, not a multiple of the %d byte cell size", e.Path, e.Size, CellSize))
	default:
		sb.WriteString(fmt.Sprintf("image %q", e.Path))
	}

	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports ErrIO or ErrFormat according to Kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrIO:
		return e.Kind == KindIO
	case ErrFormat:
		return e.Kind == KindFormat
	}
	return false
}
