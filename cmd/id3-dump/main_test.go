package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/simonhull/id3meta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleFile writes an ID3v2.3 tag holding one TIT2 frame, some audio
// bytes and an ID3v1 trailer.
func sampleFile(t *testing.T) string {
	t.Helper()

	frame := []byte("TIT2\x00\x00\x00\x06\x00\x00\x00Intro")
	tag := append([]byte{'I', 'D', '3', 3, 0, 0, 0, 0, 0, byte(len(frame))}, frame...)

	trailer := make([]byte, 128)
	copy(trailer, "TAG")
	copy(trailer[3:], "Intro")
	copy(trailer[33:], "Nullsoft")
	trailer[127] = 17

	data := append(tag, bytes.Repeat([]byte{0xFF, 0xFB}, 100)...)
	data = append(data, trailer...)

	path := filepath.Join(t.TempDir(), "sample.mp3")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestRun_Text(t *testing.T) {
	path := sampleFile(t)

	var out bytes.Buffer
	err := run(context.Background(), config{frames: true, hexBytes: 4}, discard(), []string{path}, &out)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "ID3v2.3.0 at 0-26")
	assert.Contains(t, text, "ID3v1.0")
	assert.Contains(t, text, "Nullsoft")
	assert.Contains(t, text, "Rock")
	assert.Contains(t, text, `"Intro"`)
	assert.Contains(t, text, "hex:  00 49 6e 74")
	assert.Contains(t, text, "text: . I n t")
}

func TestRun_JSON(t *testing.T) {
	path := sampleFile(t)

	var out bytes.Buffer
	err := run(context.Background(), config{jsonOutput: true}, discard(), []string{path}, &out)
	require.NoError(t, err)

	var decoded struct {
		Path         string
		AVDataOffset int64
		ID3v1        struct{ Artist string }
		ID3v2        struct{ Frames []struct{ ID string } }
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, path, decoded.Path)
	assert.Equal(t, int64(26), decoded.AVDataOffset)
	assert.Equal(t, "Nullsoft", decoded.ID3v1.Artist)
	require.Len(t, decoded.ID3v2.Frames, 1)
	assert.Equal(t, "TIT2", decoded.ID3v2.Frames[0].ID)
}

func TestRun_Failures(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), config{}, discard(), []string{
		sampleFile(t),
		filepath.Join(t.TempDir(), "missing.mp3"),
	}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 files failed")
	assert.Contains(t, out.String(), "sample.mp3")
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name    string
		content id3meta.FrameContent
		want    string
	}{
		{"nil", nil, ""},
		{"text", &id3meta.TextContent{Values: []string{"Rock", "Pop"}}, `"Rock / Pop"`},
		{"comment", &id3meta.CommentContent{Language: "eng", Text: "hi"}, `[eng] : "hi"`},
		{"counter", &id3meta.CounterContent{Count: 12}, "12 plays"},
		{"url", &id3meta.URLContent{URL: "http://example.com"}, "http://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describe(tt.content))
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger, err := newLogger(&buf, "debug", "json")
	require.NoError(t, err)
	logger.Debug("hello", "k", "v")
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	_, err = newLogger(&buf, "loud", "text")
	assert.Error(t, err)

	_, err = newLogger(&buf, "info", "xml")
	assert.Error(t, err)
}
