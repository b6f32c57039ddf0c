package binary

import (
	"fmt"
	"strings"
)

// BigEndianToInt interprets b as a base-256 big-endian magnitude.
//
// With signed set, the top bit of the most significant byte is the two's
// complement sign bit, so 0xFF reads as -1 and 0x80 as -128. Inputs longer than
// eight bytes wrap. An empty slice yields 0.
func BigEndianToInt(b []byte, signed bool) int64 {
	if len(b) == 0 {
		return 0
	}

	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}

	if signed && len(b) < 8 && b[0]&0x80 != 0 {
		return int64(v) - int64(1)<<(8*uint(len(b)))
	}

	return int64(v)
}

// LittleEndianToInt is BigEndianToInt over the reversed byte order.
func LittleEndianToInt(b []byte, signed bool) int64 {
	return BigEndianToInt(reversed(b), signed)
}

// SynchsafeToInt decodes a synchsafe integer: each byte contributes its low
// seven bits, most significant byte first.
//
// ID3v2 uses this encoding for sizes so that no encoded byte can be mistaken
// for an MPEG frame sync (0xFF).
func SynchsafeToInt(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<7 | uint64(c&0x7F)
	}
	return v
}

// IntToLittleEndianBytes encodes v least significant byte first, zero padded
// on the right to minLength. With synchsafe set each output byte carries only
// seven bits.
func IntToLittleEndianBytes(v uint64, minLength int, synchsafe bool) []byte {
	out := make([]byte, 0, max(minLength, 8))
	for v > 0 {
		if synchsafe {
			out = append(out, byte(v&0x7F))
			v >>= 7
		} else {
			out = append(out, byte(v&0xFF))
			v >>= 8
		}
	}
	for len(out) < minLength {
		out = append(out, 0)
	}
	return out
}

// BigEndianToBitString renders b as a string of '0' and '1' characters, eight
// per byte.
func BigEndianToBitString(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b) * 8)
	for _, c := range b {
		fmt.Fprintf(&sb, "%08b", c)
	}
	return sb.String()
}

// HexOptions controls HexBytes rendering.
type HexOptions struct {
	// Text renders printable ASCII characters instead of hex pairs.
	// Non-printable bytes are shown as '.'.
	Text bool

	// Spaces separates each rendered byte with a space.
	Spaces bool
}

// HexBytes renders b for diagnostics.
func HexBytes(b []byte, opts HexOptions) string {
	var sb strings.Builder
	for _, c := range b {
		if opts.Text {
			if c >= 0x20 && c <= 0x7E {
				sb.WriteByte(c)
			} else {
				sb.WriteByte('.')
			}
		} else {
			fmt.Fprintf(&sb, "%02x", c)
		}
		if opts.Spaces {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

func reversed(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out
}
