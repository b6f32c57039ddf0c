// Package id3v1 decodes the fixed 128-byte ID3v1 and ID3v1.1 trailer tag.
package id3v1

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/simonhull/id3meta/internal/binary"
	"github.com/simonhull/id3meta/internal/types"
	"golang.org/x/text/encoding/charmap"
)

const (
	// TagSize is the size of a trailer tag.
	TagSize = 128

	marker = "TAG"
)

// Field layout within the tag.
const (
	titleOffset   = 3
	artistOffset  = 33
	albumOffset   = 63
	yearOffset    = 93
	commentOffset = 97
	genreOffset   = 127

	textFieldLen = 30
	yearLen      = 4
)

// Signatures of other trailer formats that can precede an ID3v1 tag and
// start with the same three bytes.
var foreignFooters = []struct {
	sig    string
	offset int
}{
	{"APETAGEX", 96}, // APE tag footer
	{"LYRICS", 119},  // Lyrics3 footer ("LYRICS200" / "LYRICSEND")
}

// Result is the outcome of Decode.
type Result struct {
	// Tag is nil when the source has no trailer tag.
	Tag *types.ID3v1Tag

	// Shrink is the number of bytes to remove from the end of the audio data:
	// 0, 128, or 256 when a duplicate tag precedes the real one.
	Shrink int64
}

// Decode looks for a trailer tag in the last 128 bytes of cur.
//
// Sources shorter than 128 bytes have no tag. The duplicate check needs the
// 128 bytes in front of the tag, so it is skipped for sources shorter than
// 256 bytes.
func Decode(cur *binary.Cursor) (Result, error) {
	size := cur.Size()
	if size < TagSize {
		return Result{}, nil
	}

	var prior []byte
	if size >= 2*TagSize {
		if _, err := cur.Seek(-2*TagSize, io.SeekEnd); err != nil {
			return Result{}, err
		}
		b, err := cur.Read(TagSize)
		if err != nil {
			return Result{}, fmt.Errorf("reading data before trailer tag: %w", err)
		}
		prior = b
	}

	if _, err := cur.Seek(-TagSize, io.SeekEnd); err != nil {
		return Result{}, err
	}
	window, err := cur.Read(TagSize)
	if err != nil {
		return Result{}, fmt.Errorf("reading trailer tag: %w", err)
	}

	if len(window) < TagSize || string(window[:3]) != marker {
		return Result{}, nil
	}

	tag := Parse(window)
	tag.OffsetEnd = size
	tag.OffsetStart = size - TagSize

	res := Result{Tag: tag, Shrink: TagSize}
	if isDuplicate(prior) {
		tag.Duplicate = true
		res.Shrink += TagSize
	}

	return res, nil
}

// Parse decodes a 128-byte window that starts with "TAG". Offsets are left
// at zero.
func Parse(window []byte) *types.ID3v1Tag {
	tag := &types.ID3v1Tag{
		Title:   cutField(window[titleOffset : titleOffset+textFieldLen]),
		Artist:  cutField(window[artistOffset : artistOffset+textFieldLen]),
		Album:   cutField(window[albumOffset : albumOffset+textFieldLen]),
		Year:    cutField(window[yearOffset : yearOffset+yearLen]),
		Version: "1.0",
	}

	comment := window[commentOffset : commentOffset+textFieldLen]
	// ID3v1.1: comment byte 28 is zero and byte 29 holds the track number.
	if comment[28] == 0 && comment[29] != 0 {
		track := int(comment[29])
		tag.Track = &track
		tag.Version = "1.1"
		comment = comment[:28]
	}
	tag.Comment = cutField(comment)

	genreID := int(window[genreOffset])
	if name, ok := types.GenreName(genreID); ok && genreID != types.GenreUnknown {
		tag.Genre = name
	} else {
		tag.GenreID = &genreID
	}

	return tag
}

// isDuplicate reports whether the 128 bytes in front of a trailer tag hold
// a second, older trailer tag. Some taggers append a new ID3v1 tag even when
// one is already present.
func isDuplicate(prior []byte) bool {
	if len(prior) < TagSize || string(prior[:3]) != marker {
		return false
	}

	for _, f := range foreignFooters {
		if string(prior[f.offset:f.offset+len(f.sig)]) == f.sig {
			return false
		}
	}
	return true
}

// cutField trims a fixed-width field at the first zero byte, decodes it as
// ISO-8859-1 and strips surrounding whitespace.
func cutField(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}

	s, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		s = b
	}
	return strings.TrimSpace(string(s))
}
