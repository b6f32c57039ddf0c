package id3v2

import (
	"errors"
	"testing"

	binutil "github.com/simonhull/id3meta/internal/binary"
	"github.com/simonhull/id3meta/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name      string
		in        []byte
		wantMajor byte
		wantLen   int64
		wantFlags types.TagFlags
	}{
		{
			name:      "v2.2 unsync and compression",
			in:        []byte{'I', 'D', '3', 2, 0, 0xC0, 0, 0, 0, 0x10},
			wantMajor: 2,
			wantLen:   16,
			wantFlags: types.TagFlags{Unsynchronised: true, Compressed: true},
		},
		{
			name:      "v2.3 extended and experimental",
			in:        []byte{'I', 'D', '3', 3, 0, 0x60, 0, 0, 0x02, 0x01},
			wantMajor: 3,
			wantLen:   257,
			wantFlags: types.TagFlags{ExtendedHeader: true, Experimental: true},
		},
		{
			name:      "v2.4 footer",
			in:        []byte{'I', 'D', '3', 4, 0, 0x10, 0x7F, 0x7F, 0x7F, 0x7F},
			wantMajor: 4,
			wantLen:   1<<28 - 1,
			wantFlags: types.TagFlags{Footer: true},
		},
		{
			name:      "v2.3 ignores footer bit",
			in:        []byte{'I', 'D', '3', 3, 0, 0x10, 0, 0, 0, 0},
			wantMajor: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := ParseHeader(tt.in, "test.mp3")
			require.NoError(t, err)
			require.NotNil(t, h)
			assert.Equal(t, tt.wantMajor, h.Major)
			assert.Equal(t, tt.wantLen, h.Length)
			assert.Equal(t, tt.wantFlags, h.Flags)
		})
	}
}

func TestParseHeader_NoMarker(t *testing.T) {
	for _, in := range [][]byte{nil, []byte("ID3"), []byte("TAG\x03\x00\x00\x00\x00\x00\x00")} {
		h, err := ParseHeader(in, "test.mp3")
		assert.NoError(t, err)
		assert.Nil(t, h)
	}
}

func TestHeader_TotalSize(t *testing.T) {
	h := &Header{Length: 100}
	assert.Equal(t, int64(110), h.TotalSize())

	h.Flags.Footer = true
	assert.Equal(t, int64(120), h.TotalSize())
}

func TestDecode_UnsupportedVersion(t *testing.T) {
	// Version 5 with an extended header flag and garbage that would fail
	// extended header parsing if it were attempted.
	data := tagBytes(5, 0x40, []byte{0xFF, 0xFF, 0xFF, 0xFF})

	res, err := Decode(binutil.NewBufferCursor(data, "v5.mp3"), 0, Options{})
	require.Error(t, err)
	assert.Nil(t, res.Tag)

	var uv *types.UnsupportedVersionError
	require.True(t, errors.As(err, &uv))
	assert.Equal(t, byte(5), uv.Major)
	assert.Equal(t, "v5.mp3", uv.Path)
}

func TestDecode_NoTag(t *testing.T) {
	res, err := Decode(binutil.NewBufferCursor([]byte("not a tag at all"), "x"), 0, Options{})
	require.NoError(t, err)
	assert.Nil(t, res.Tag)
	assert.Empty(t, res.Warnings)
}

func TestDecode_UndefinedVersion(t *testing.T) {
	res, err := Decode(binutil.NewBufferCursor(tagBytes(1, 0, make([]byte, 20)), "x"), 0, Options{})
	require.NoError(t, err)
	assert.Nil(t, res.Tag)
	assert.Len(t, res.Warnings, 1)
}

func TestDecode_OffsetsWithFooter(t *testing.T) {
	body := frameV4("TIT2", 0, text("Hi"))
	data := tagBytes(4, 0x10, body)
	data = append(data, "3DI\x04\x00\x10"...)
	data = append(data, synchsafe(len(body))...)

	tag := decodeTag(t, data).Tag
	require.NotNil(t, tag)
	assert.Equal(t, int64(0), tag.OffsetStart)
	assert.Equal(t, int64(10+len(body)+10), tag.OffsetEnd)
	assert.Equal(t, int64(len(body)), tag.HeaderLength)
	require.Len(t, tag.Frames, 1)
}

func TestDecode_TruncatedSource(t *testing.T) {
	data := tagBytes(3, 0, concat(frameV3("TIT2", 0, text("Title")), make([]byte, 50)))
	data = data[:len(data)-30]

	res := decodeTag(t, data)
	require.NotNil(t, res.Tag)
	require.Len(t, res.Tag.Frames, 1)
	assert.NotEmpty(t, res.Warnings)
}
