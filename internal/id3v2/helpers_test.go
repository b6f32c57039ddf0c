package id3v2

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/klauspost/compress/zlib"
	binutil "github.com/simonhull/id3meta/internal/binary"
	"github.com/simonhull/id3meta/internal/frames"
	"github.com/simonhull/id3meta/internal/registry"
	"github.com/stretchr/testify/require"
)

func synchsafe(n int) []byte {
	return []byte{byte(n >> 21 & 0x7F), byte(n >> 14 & 0x7F), byte(n >> 7 & 0x7F), byte(n & 0x7F)}
}

func plain32(n int) []byte {
	return binary.BigEndian.AppendUint32(nil, uint32(n))
}

// tagBytes builds a tag header followed by body.
func tagBytes(major, flags byte, body []byte) []byte {
	out := []byte{'I', 'D', '3', major, 0, flags}
	out = append(out, synchsafe(len(body))...)
	return append(out, body...)
}

func frameV2(id string, payload []byte) []byte {
	n := len(payload)
	out := append([]byte(id), byte(n>>16), byte(n>>8), byte(n))
	return append(out, payload...)
}

func frameV3(id string, flags uint16, payload []byte) []byte {
	out := append([]byte(id), plain32(len(payload))...)
	out = binary.BigEndian.AppendUint16(out, flags)
	return append(out, payload...)
}

func frameV4(id string, flags uint16, payload []byte) []byte {
	out := append([]byte(id), synchsafe(len(payload))...)
	out = binary.BigEndian.AppendUint16(out, flags)
	return append(out, payload...)
}

func text(s string) []byte {
	return append([]byte{0}, s...)
}

func concat(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

func zlibBytes(t *testing.T, b []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	_, err := zw.Write(b)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func testRegistry() *registry.Registry {
	r := registry.NewRegistry()
	frames.RegisterAll(r)
	return r
}

func decodeTag(t *testing.T, data []byte) Result {
	t.Helper()
	res, err := Decode(binutil.NewBufferCursor(data, "test.mp3"), 0, Options{
		Registry: testRegistry(),
		Quirks:   DefaultQuirks(),
	})
	require.NoError(t, err)
	return res
}
