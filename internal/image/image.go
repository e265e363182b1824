// Package image loads Nga memory images: flat files of 32-bit signed cells
// with no header.
package image

import (
	"encoding/binary"
	"fmt"
	"os"
	"strings"
)

const (
	// CellSize is the width of one cell in bytes.
	CellSize = 4

	// DefaultPath is the conventional image name, relative to the working directory.
	DefaultPath = "ngaImage"
)

// ByteOrder names the byte order used to decode cells.
type ByteOrder string

const (
	LittleEndian ByteOrder = "little"
	BigEndian    ByteOrder = "big"
	NativeEndian ByteOrder = "native"
)

// ParseByteOrder accepts the names above, case-insensitively. An empty name
// selects little-endian.
func ParseByteOrder(name string) (ByteOrder, error) {
	switch ByteOrder(strings.ToLower(strings.TrimSpace(name))) {
	case "", LittleEndian:
		return LittleEndian, nil
	case BigEndian:
		return BigEndian, nil
	case NativeEndian:
		return NativeEndian, nil
	}
	return "", fmt.Errorf("unknown byte order %q (want little, big or native)", name)
}

func (o ByteOrder) binary() binary.ByteOrder {
	switch o {
	case BigEndian:
		return binary.BigEndian
	case NativeEndian:
		return binary.NativeEndian
	default:
		return binary.LittleEndian
	}
}

// Image is a decoded memory image. Cells is never modified after Load.
type Image struct {
	Path  string
	Order ByteOrder
	Cells []int32
}

// Len returns the number of cells.
func (img *Image) Len() int {
	return len(img.Cells)
}

// Size returns the byte size the image was decoded from.
func (img *Image) Size() int64 {
	return int64(len(img.Cells)) * CellSize
}

// Load reads the whole file at path and decodes it as cells in the given
// byte order. A zero-length file gives an empty image.
func Load(path string, order ByteOrder) (*Image, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, newIOError(path, err)
	}
	if info.IsDir() {
		return nil, newIOError(path, fmt.Errorf("is a directory"))
	}
	if info.Size()%CellSize != 0 {
		return nil, newFormatError(path, info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newIOError(path, err)
	}
	// The file may have changed between Stat and ReadFile.
	if len(data)%CellSize != 0 {
		return nil, newFormatError(path, int64(len(data)))
	}

	cells, err := Decode(data, order)
	if err != nil {
		return nil, newFormatError(path, int64(len(data)))
	}

	return &Image{
		Path:  path,
		Order: order,
		Cells: cells,
	}, nil
}

// Decode converts raw bytes to cells. len(data) must be a multiple of CellSize.
func Decode(data []byte, order ByteOrder) ([]int32, error) {
	if len(data)%CellSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d", ErrFormat, len(data), CellSize)
	}

	bo := order.binary()
	cells := make([]int32, len(data)/CellSize)
	for i := range cells {
		cells[i] = int32(bo.Uint32(data[i*CellSize:]))
	}
	return cells, nil
}

// Encode is the inverse of Decode.
func Encode(cells []int32, order ByteOrder) []byte {
	bo := order.binary()
	buf := make([]byte, len(cells)*CellSize)
	for i, c := range cells {
		bo.PutUint32(buf[i*CellSize:], uint32(c))
	}
	return buf
}
