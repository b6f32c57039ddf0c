package binary

import (
	"encoding/binary"
	"fmt"
	"math"
)

// BigEndianToFloat reconstructs an IEEE-754 value from a 32-bit, 64-bit or
// 80-bit (extended precision, as used by AIFF sample rates) big-endian word.
//
// ok is false for any other length. Infinite and NaN bit patterns decode to
// math.Inf and math.NaN. An empty or all-zero word decodes to 0.
func BigEndianToFloat(b []byte) (v float64, ok bool) {
	if len(b) == 0 {
		return 0, true
	}

	switch len(b) {
	case 4:
		return float64(math.Float32frombits(binary.BigEndian.Uint32(b))), true
	case 8:
		return math.Float64frombits(binary.BigEndian.Uint64(b)), true
	case 10:
		return extendedToFloat(b), true
	default:
		return 0, false
	}
}

// LittleEndianToFloat is BigEndianToFloat over the reversed byte order.
func LittleEndianToFloat(b []byte) (float64, bool) {
	return BigEndianToFloat(reversed(b))
}

// extendedToFloat decodes the 80-bit layout: 1 sign bit, 15 exponent bits and
// a 64-bit significand whose top bit is the explicit integer bit.
func extendedToFloat(b []byte) float64 {
	sign := b[0]&0x80 != 0
	exponent := int(binary.BigEndian.Uint16(b[0:2]) & 0x7FFF)
	significand := binary.BigEndian.Uint64(b[2:10])

	var v float64
	switch {
	case exponent == 0x7FFF && significand&(1<<63-1) != 0:
		return math.NaN()
	case exponent == 0x7FFF:
		v = math.Inf(1)
	case exponent == 0 && significand == 0:
		v = 0
	default:
		// significand carries 63 fraction bits after the integer bit
		v = math.Ldexp(float64(significand), exponent-16383-63)
	}

	if sign {
		return -v
	}
	return v
}

// DecimalBinaryToFloat reads a string of binary digits as the fraction after
// the binary point, so "1" is 0.5 and "01" is 0.25. An empty string is 0.
func DecimalBinaryToFloat(bits string) (float64, error) {
	var v float64
	for i, c := range bits {
		switch c {
		case '0':
		case '1':
			v += math.Ldexp(1, -(i + 1))
		default:
			return 0, fmt.Errorf("invalid binary digit %q at position %d", c, i)
		}
	}
	return v, nil
}
