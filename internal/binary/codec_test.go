package binary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBigEndianToInt(t *testing.T) {
	tests := []struct {
		name   string
		in     []byte
		signed bool
		want   int64
	}{
		{"empty", nil, false, 0},
		{"single byte", []byte{0x7F}, false, 127},
		{"unsigned high bit", []byte{0xFF}, false, 255},
		{"signed minus one", []byte{0xFF}, true, -1},
		{"signed minimum", []byte{0x80}, true, -128},
		{"signed positive", []byte{0x7F}, true, 127},
		{"two bytes", []byte{0x01, 0x00}, false, 256},
		{"signed two bytes", []byte{0xFF, 0xFE}, true, -2},
		{"four bytes", []byte{0x00, 0x00, 0x01, 0x01}, false, 257},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BigEndianToInt(tt.in, tt.signed))
		})
	}
}

func TestLittleEndianToInt(t *testing.T) {
	assert.Equal(t, int64(0x0201), LittleEndianToInt([]byte{0x01, 0x02}, false))
	assert.Equal(t, int64(-2), LittleEndianToInt([]byte{0xFE, 0xFF}, true))
}

func TestSynchsafeToInt(t *testing.T) {
	tests := []struct {
		in   []byte
		want uint64
	}{
		{[]byte{0x00, 0x00, 0x00, 0x00}, 0},
		{[]byte{0x00, 0x00, 0x00, 0x7F}, 127},
		{[]byte{0x00, 0x00, 0x01, 0x00}, 128},
		{[]byte{0x00, 0x00, 0x02, 0x01}, 257},
		{[]byte{0x7F, 0x7F, 0x7F, 0x7F}, 1<<28 - 1},
		// The high bit of each byte is ignored.
		{[]byte{0x00, 0x00, 0x00, 0xFF}, 127},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SynchsafeToInt(tt.in), "SynchsafeToInt(% x)", tt.in)
	}
}

func TestSynchsafeToInt_Monotonic(t *testing.T) {
	// Over bytes restricted to seven bits the decode is strictly increasing
	// in the big-endian ordering of the input.
	prev := SynchsafeToInt([]byte{0, 0})
	for hi := 0; hi < 0x80; hi++ {
		for lo := 0; lo < 0x80; lo++ {
			if hi == 0 && lo == 0 {
				continue
			}
			v := SynchsafeToInt([]byte{byte(hi), byte(lo)})
			if !assert.Greater(t, v, prev) {
				return
			}
			prev = v
		}
	}
}

func TestIntToLittleEndianBytes(t *testing.T) {
	assert.Equal(t, []byte{0x01, 0x02}, IntToLittleEndianBytes(0x0201, 0, false))
	assert.Equal(t, []byte{0x01, 0x02, 0x00, 0x00}, IntToLittleEndianBytes(0x0201, 4, false))
	assert.Equal(t, []byte{0x00, 0x00}, IntToLittleEndianBytes(0, 2, false))

	// 257 = 0b10_0000001 -> 0x01, 0x02 in seven-bit groups
	out := IntToLittleEndianBytes(257, 4, true)
	assert.Equal(t, []byte{0x01, 0x02, 0x00, 0x00}, out)
	for _, b := range out {
		assert.Less(t, b, byte(0x80))
	}
	assert.Equal(t, uint64(257), SynchsafeToInt(reversed(out)))
}

func TestBigEndianToBitString(t *testing.T) {
	assert.Equal(t, "", BigEndianToBitString(nil))
	assert.Equal(t, "1000000000000001", BigEndianToBitString([]byte{0x80, 0x01}))
}

func TestHexBytes(t *testing.T) {
	in := []byte{'T', 'I', 'T', '2', 0x00, 0xFF}
	assert.Equal(t, "54495432"+"00ff", HexBytes(in, HexOptions{}))
	assert.Equal(t, "54 49 54 32 00 ff ", HexBytes(in, HexOptions{Spaces: true}))
	assert.Equal(t, "TIT2..", HexBytes(in, HexOptions{Text: true}))
	assert.Equal(t, "T I T 2 . . ", HexBytes(in, HexOptions{Text: true, Spaces: true}))
}
