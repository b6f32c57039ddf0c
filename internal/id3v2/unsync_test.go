package id3v2

import (
	"testing"

	"github.com/simonhull/id3meta/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveUnsync(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []byte
	}{
		{"empty", nil, nil},
		{"no pairs", []byte{0xFF, 0xE0, 0x00}, []byte{0xFF, 0xE0, 0x00}},
		{"single pair", []byte{0xFF, 0x00}, []byte{0xFF}},
		{"only first pair collapses", []byte{0xFF, 0x00, 0x00}, []byte{0xFF, 0x00}},
		{"consecutive pairs", []byte{0xFF, 0x00, 0xFF, 0x00}, []byte{0xFF, 0xFF}},
		{"sync guard", []byte{0xFF, 0x00, 0xE0}, []byte{0xFF, 0xE0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RemoveUnsync(tt.in))
		})
	}
}

func TestDecode_V23TagLevelUnsync(t *testing.T) {
	// The payload on disk is FF 00 00 01; after reversal it reads FF 00 01,
	// so the frame size counts reversed bytes.
	stored := append([]byte("PRIV"), plain32(3)...)
	stored = append(stored, 0, 0, 0xFF, 0x00, 0x00, 0x01)

	tag := decodeTag(t, tagBytes(3, 0x80, stored)).Tag
	require.NotNil(t, tag)
	assert.True(t, tag.Flags.Unsynchronised)
	require.Len(t, tag.Frames, 1)
	assert.Equal(t, []byte{0xFF, 0x00, 0x01}, tag.Frames[0].Data)
}

func TestDecode_V24FrameLevelUnsync(t *testing.T) {
	body := frameV4("PRIV", v4Unsync, []byte{0xFF, 0x00, 0xE0, 0x01})
	tag := decodeTag(t, tagBytes(4, 0, body)).Tag

	require.Len(t, tag.Frames, 1)
	f := tag.Frames[0]
	assert.True(t, f.Flags.Unsynchronisation)
	assert.Equal(t, int64(4), f.Size)
	assert.Equal(t, []byte{0xFF, 0xE0, 0x01}, f.Data)
}

func TestDecode_V24TagUnsyncNotAppliedToRegion(t *testing.T) {
	// With the tag flag set in v2.4 the frame sizes still count stored
	// bytes, and every frame is reversed on its own.
	body := concat(
		frameV4("PRIV", 0, []byte{0xFF, 0x00, 0x00}),
		frameV4("TIT2", 0, text("ok")),
	)
	tag := decodeTag(t, tagBytes(4, 0x80, body)).Tag

	require.Len(t, tag.Frames, 2)
	assert.Equal(t, []byte{0xFF, 0x00}, tag.Frames[0].Data)
	assert.Equal(t, "ok", tag.Frames[1].Content.(*types.TextContent).Text())
}
