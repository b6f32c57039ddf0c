package id3meta

import (
	"io"

	"github.com/simonhull/id3meta/internal/binary"
	"github.com/simonhull/id3meta/internal/id3v2"
	"github.com/simonhull/id3meta/internal/registry"
	"github.com/simonhull/id3meta/internal/types"
)

// Result records.
type (
	FileInfo       = types.FileInfo
	ID3v1Tag       = types.ID3v1Tag
	ID3v2Tag       = types.ID3v2Tag
	TagFlags       = types.TagFlags
	ExtendedHeader = types.ExtendedHeader
	Restrictions   = types.Restrictions
	Padding        = types.Padding
	Frame          = types.Frame
	FrameFlags     = types.FrameFlags
)

// Frame content produced by the built-in decoders.
type (
	FrameContent         = types.FrameContent
	TextContent          = types.TextContent
	UserTextContent      = types.UserTextContent
	URLContent           = types.URLContent
	UserURLContent       = types.UserURLContent
	CommentContent       = types.CommentContent
	UniqueIDContent      = types.UniqueIDContent
	CounterContent       = types.CounterContent
	PopularimeterContent = types.PopularimeterContent
	PictureContent       = types.PictureContent
)

// Frame decoder extension point.
type (
	FrameInput       = types.FrameInput
	FrameDecoder     = registry.FrameDecoder
	FrameDecoderFunc = registry.FrameDecoderFunc
	Registry         = registry.Registry
)

// Quirks lists writer defects the frame walk tolerates.
type Quirks = id3v2.Quirks

// Cursor is a seekable read position over a file or an in-memory buffer.
type Cursor = binary.Cursor

// NewCursor creates a Cursor over rs, which holds size bytes.
func NewCursor(rs io.ReadSeeker, size int64, name string) *Cursor {
	return binary.NewCursor(rs, size, name)
}

// NewBufferCursor creates a Cursor over an in-memory buffer.
func NewBufferCursor(b []byte, name string) *Cursor {
	return binary.NewBufferCursor(b, name)
}

// NewRegistry returns an empty frame decoder registry.
func NewRegistry() *Registry {
	return registry.NewRegistry()
}

// DefaultRegistry returns the registry holding the built-in decoders. It is
// shared; use Clone before registering decoders that should not apply to
// every analysis.
func DefaultRegistry() *Registry {
	return registry.Default()
}

// GenreName returns the name of an ID3v1 genre number.
func GenreName(id int) (string, bool) {
	return types.GenreName(id)
}

// FrameShortName returns the short name of a frame identifier, such as
// "title" for "TIT2".
func FrameShortName(id string) string {
	return types.FrameShortName(id)
}

// FrameLongName returns the descriptive name of a frame identifier.
func FrameLongName(id string) string {
	return types.FrameLongName(id)
}
