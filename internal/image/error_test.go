package image

import (
	"errors"
	"io/fs"
	"testing"
)

func TestErrorStrings(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "IO with cause",
			err:      newIOError("ngaImage", fs.ErrNotExist),
			expected: `IOError: cannot read image "ngaImage": file does not exist`,
		},
		{
			name:     "Format",
			err:      newFormatError("ngaImage", 5),
			expected: `FormatError: image "ngaImage" is 5 bytes, not a multiple of the 4 byte cell size`,
		},
		{
			name:     "Unknown kind",
			err:      &Error{Path: "x"},
			expected: `unknown: image "x"`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.expected {
				t.Errorf("Error() = %q, want %q", got, tc.expected)
			}
		})
	}
}

func TestErrorIs(t *testing.T) {
	ioErr := newIOError("a", fs.ErrPermission)
	if !errors.Is(ioErr, ErrIO) || errors.Is(ioErr, ErrFormat) {
		t.Errorf("io error classified wrongly")
	}
	if !errors.Is(ioErr, fs.ErrPermission) {
		t.Errorf("io error should unwrap to its cause")
	}

	fmtErr := newFormatError("a", 3)
	if !errors.Is(fmtErr, ErrFormat) || errors.Is(fmtErr, ErrIO) {
		t.Errorf("format error classified wrongly")
	}
}
