package literal

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []int32
	}{
		{"empty", "0\n[\n\n]\n", []int32{}},
		{"one", "1\n[\n-1\n]\n", []int32{-1}},
		{"wrapped", "4\n[\n1,2\n,3\n,4\n]\n", []int32{1, 2, 3, 4}},
		{"trailing blank body line", "2\n[\n5,6\n\n]\n", []int32{5, 6}},
		{"no final newline", "1\n[\n9\n]", []int32{9}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tc.in))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("cells mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"too short", "0\n[\n]\n"},
		{"bad count", "x\n[\n1\n]\n"},
		{"negative count", "-1\n[\n\n]\n"},
		{"missing open", "1\n(\n1\n]\n"},
		{"missing close", "1\n[\n1\n)\n"},
		{"count mismatch", "3\n[\n1,2\n]\n"},
		{"bad cell", "2\n[\n1,x\n]\n"},
		{"overflow", "1\n[\n2147483648\n]\n"},
		{"empty cell", "3\n[\n1,,2\n]\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.in))
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("expected ErrMalformed, got %v", err)
			}
		})
	}
}
