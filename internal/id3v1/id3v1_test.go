package id3v1

import (
	"bytes"
	"testing"

	"github.com/dhowden/tag"
	"github.com/simonhull/id3meta/internal/binary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fields struct {
	title, artist, album, year, comment string
	track                               byte
	genre                               byte
}

// encode builds a 128-byte trailer tag.
func encode(f fields) []byte {
	b := make([]byte, TagSize)
	copy(b, marker)
	copy(b[titleOffset:titleOffset+textFieldLen], f.title)
	copy(b[artistOffset:artistOffset+textFieldLen], f.artist)
	copy(b[albumOffset:albumOffset+textFieldLen], f.album)
	copy(b[yearOffset:yearOffset+yearLen], f.year)
	copy(b[commentOffset:commentOffset+textFieldLen], f.comment)
	if f.track != 0 {
		b[commentOffset+28] = 0
		b[commentOffset+29] = f.track
	}
	b[genreOffset] = f.genre
	return b
}

func withAudio(n int, trailers ...[]byte) []byte {
	data := bytes.Repeat([]byte{0xAA}, n)
	for _, t := range trailers {
		data = append(data, t...)
	}
	return data
}

func decodeBytes(t *testing.T, data []byte) Result {
	t.Helper()
	res, err := Decode(binary.NewBufferCursor(data, "test.mp3"))
	require.NoError(t, err)
	return res
}

func TestDecode_V10(t *testing.T) {
	data := withAudio(500, encode(fields{
		title:   "Llama Whippin' Intro",
		artist:  "Nullsoft",
		album:   "Juman Sucks",
		year:    "2003",
		comment: "This is a thirty byte comment!",
		genre:   17,
	}))

	res := decodeBytes(t, data)
	require.NotNil(t, res.Tag)
	assert.Equal(t, int64(128), res.Shrink)

	tg := res.Tag
	assert.Equal(t, "1.0", tg.Version)
	assert.Equal(t, "Llama Whippin' Intro", tg.Title)
	assert.Equal(t, "Nullsoft", tg.Artist)
	assert.Equal(t, "Juman Sucks", tg.Album)
	assert.Equal(t, "2003", tg.Year)
	assert.Equal(t, "This is a thirty byte comment!", tg.Comment)
	assert.Nil(t, tg.Track)
	assert.Equal(t, "Rock", tg.Genre)
	assert.Nil(t, tg.GenreID, "genre id is dropped once a name resolves")
	assert.Equal(t, int64(500), tg.OffsetStart)
	assert.Equal(t, int64(628), tg.OffsetEnd)
	assert.False(t, tg.Duplicate)
}

func TestDecode_V11Track(t *testing.T) {
	data := withAudio(300, encode(fields{title: "Song", comment: "short", track: 7, genre: 13}))

	tg := decodeBytes(t, data).Tag
	require.NotNil(t, tg)
	assert.Equal(t, "1.1", tg.Version)
	require.NotNil(t, tg.Track)
	assert.Equal(t, 7, *tg.Track)
	assert.Equal(t, "short", tg.Comment)
}

func TestParse_V11CommentIsCutTo28Bytes(t *testing.T) {
	w := encode(fields{})
	copy(w[commentOffset:], bytes.Repeat([]byte{'c'}, 28))
	w[commentOffset+28] = 0
	w[commentOffset+29] = 12

	tg := Parse(w)
	require.NotNil(t, tg.Track)
	assert.Equal(t, 12, *tg.Track)
	assert.Len(t, tg.Comment, 28)
}

func TestParse_Genre(t *testing.T) {
	tests := []struct {
		name     string
		id       byte
		wantName string
		wantID   *int
	}{
		{"known", 0, "Blues", nil},
		{"last winamp", 147, "Synthpop", nil},
		{"unknown sentinel", 255, "", intPtr(255)},
		{"out of table", 200, "", intPtr(200)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tg := Parse(encode(fields{genre: tt.id}))
			assert.Equal(t, tt.wantName, tg.Genre)
			assert.Equal(t, tt.wantID, tg.GenreID)
		})
	}
}

func TestParse_Latin1AndWhitespace(t *testing.T) {
	tg := Parse(encode(fields{title: "  Caf\xe9 del Mar  ", artist: "A\x00garbage"}))
	assert.Equal(t, "Café del Mar", tg.Title)
	assert.Equal(t, "A", tg.Artist)
}

func TestDecode_NoTag(t *testing.T) {
	res := decodeBytes(t, withAudio(400))
	assert.Nil(t, res.Tag)
	assert.Zero(t, res.Shrink)
}

func TestDecode_ShortSources(t *testing.T) {
	assert.Nil(t, decodeBytes(t, []byte("TAG")).Tag)
	assert.Nil(t, decodeBytes(t, nil).Tag)

	// Exactly one tag and nothing else: no room for a prior window.
	res := decodeBytes(t, encode(fields{title: "Only"}))
	require.NotNil(t, res.Tag)
	assert.Equal(t, "Only", res.Tag.Title)
	assert.Equal(t, int64(128), res.Shrink)
}

func TestDecode_DuplicateTag(t *testing.T) {
	data := withAudio(200, encode(fields{title: "Old"}), encode(fields{title: "New"}))

	res := decodeBytes(t, data)
	require.NotNil(t, res.Tag)
	assert.Equal(t, "New", res.Tag.Title)
	assert.True(t, res.Tag.Duplicate)
	assert.Equal(t, int64(256), res.Shrink)
}

func TestDecode_ForeignFooterIsNotDuplicate(t *testing.T) {
	ape := encode(fields{})
	copy(ape[96:], "APETAGEX")

	lyrics := encode(fields{})
	copy(lyrics[119:], "LYRICS")

	for name, prior := range map[string][]byte{"ape": ape, "lyrics3": lyrics} {
		t.Run(name, func(t *testing.T) {
			res := decodeBytes(t, withAudio(200, prior, encode(fields{title: "Real"})))
			require.NotNil(t, res.Tag)
			assert.False(t, res.Tag.Duplicate)
			assert.Equal(t, int64(128), res.Shrink)
		})
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	inputs := []fields{
		{title: "A", artist: "B", album: "C", year: "1999"},
		{title: "exactly thirty characters long", artist: "x", album: "", year: "20"},
		{title: "", artist: "", album: "", year: ""},
	}

	for _, in := range inputs {
		tg := Parse(encode(in))
		assert.Equal(t, in.title, tg.Title)
		assert.Equal(t, in.artist, tg.Artist)
		assert.Equal(t, in.album, tg.Album)
		assert.Equal(t, in.year, tg.Year)
	}
}

// TestDecode_MatchesDhowdenTag cross-checks decoding against an independent
// ID3v1 reader.
func TestDecode_MatchesDhowdenTag(t *testing.T) {
	data := withAudio(1024, encode(fields{
		title:   "Llama Whippin' Intro",
		artist:  "Nullsoft",
		album:   "Juman Sucks",
		year:    "2003",
		comment: "comment",
		track:   3,
		genre:   12,
	}))

	want, err := tag.ReadID3v1Tags(bytes.NewReader(data))
	require.NoError(t, err)

	got := decodeBytes(t, data).Tag
	require.NotNil(t, got)

	assert.Equal(t, want.Title(), got.Title)
	assert.Equal(t, want.Artist(), got.Artist)
	assert.Equal(t, want.Album(), got.Album)
	assert.Equal(t, want.Comment(), got.Comment)

	track, _ := want.Track()
	require.NotNil(t, got.Track)
	assert.Equal(t, track, *got.Track)
	assert.Equal(t, want.Genre(), got.Genre)
}

func intPtr(v int) *int { return &v }
