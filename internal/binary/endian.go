package binary

import "encoding/binary"

// Endianness represents byte order for multi-byte values.
type Endianness int

const (
	// BigEndian uses big-endian byte order.
	// Used by: ID3v2 sizes, flags and counters.
	BigEndian Endianness = iota

	// LittleEndian uses little-endian byte order.
	// Used by: UTF-16LE text and some broken writers.
	LittleEndian
)

// ReadLE reads a numeric value of type T using little-endian byte order.
//
// This is a convenience wrapper for ReadEndian with LittleEndian.
func ReadLE[T uint8 | uint16 | uint32 | uint64](r *Reader, what string) T {
	return ReadEndian[T](r, what, LittleEndian)
}

// ReadBE reads a numeric value of type T using big-endian byte order.
//
// Example:
//
//	flags := binary.ReadBE[uint16](r, "frame flags")
func ReadBE[T uint8 | uint16 | uint32 | uint64](r *Reader, what string) T {
	return ReadEndian[T](r, what, BigEndian)
}

// ReadEndian reads a numeric value of type T with the given byte order.
//
// Like every Reader method it records a failed read on r and returns the
// zero value; check r.Err afterwards.
func ReadEndian[T uint8 | uint16 | uint32 | uint64](r *Reader, what string, endian Endianness) T {
	var zero T
	var size int

	switch any(zero).(type) {
	case uint8:
		size = 1
	case uint16:
		size = 2
	case uint32:
		size = 4
	case uint64:
		size = 8
	}

	buf := r.Bytes(size, what)
	if buf == nil {
		return zero
	}

	var order binary.ByteOrder = binary.BigEndian
	if endian == LittleEndian {
		order = binary.LittleEndian
	}

	var val T
	switch any(zero).(type) {
	case uint8:
		val = T(buf[0])
	case uint16:
		val = T(order.Uint16(buf))
	case uint32:
		val = T(order.Uint32(buf))
	case uint64:
		val = T(order.Uint64(buf))
	}

	return val
}
