// Package types provides the records produced by tag analysis.
//
// This package defines FileInfo and the ID3v1 and ID3v2 tag records, the
// error types returned by analysis, and the static genre and frame name
// tables shared by every decoder.
package types

// FileInfo is the merged result of analysing one audio file.
//
// AVDataOffset and AVDataEnd bound the audio payload once every detected tag
// region has been excluded: 0 <= AVDataOffset <= AVDataEnd <= Size.
type FileInfo struct {
	// ID3v1 is the trailer tag, nil when absent.
	ID3v1 *ID3v1Tag

	// ID3v2 is the frame-based tag at the start of the file, nil when absent.
	ID3v2 *ID3v2Tag

	// Path to the analysed file (or the label given for an in-memory source)
	Path string

	// Warnings encountered during analysis (non-fatal issues)
	Warnings []Warning

	// Size is the total source size in bytes.
	Size int64

	// AVDataOffset is the first byte of audio data.
	AVDataOffset int64

	// AVDataEnd is one past the last byte of audio data.
	AVDataEnd int64
}

// AudioDataSize returns the number of bytes between AVDataOffset and AVDataEnd.
func (fi *FileInfo) AudioDataSize() int64 {
	return fi.AVDataEnd - fi.AVDataOffset
}

// ID3v1Tag is a decoded 128-byte trailer tag (ID3v1 or ID3v1.1).
type ID3v1Tag struct {
	// GenreID is the raw genre byte. It is nil once Genre has resolved.
	GenreID *int

	// Track is set only for ID3v1.1 tags.
	Track *int

	Title   string
	Artist  string
	Album   string
	Year    string
	Comment string

	// Genre is the resolved genre name, empty when unresolved or "Unknown".
	Genre string

	// Version is "1.0" or "1.1".
	Version string

	OffsetStart int64
	OffsetEnd   int64

	// Duplicate reports that a second, older trailer tag sits directly in
	// front of this one and was excluded from the audio data as well.
	Duplicate bool
}

// ID3v2Tag is a decoded frame-based tag (ID3v2.2, ID3v2.3 or ID3v2.4).
type ID3v2Tag struct {
	// Extended is the extended header, nil when absent.
	Extended *ExtendedHeader

	// Padding describes the bytes after the last valid frame, nil when the
	// frames fill the tag exactly.
	Padding *Padding

	Frames []Frame

	Flags TagFlags

	// HeaderLength is the synchsafe size from the tag header. It excludes
	// the 10-byte header and the footer.
	HeaderLength int64

	OffsetStart int64
	OffsetEnd   int64

	MajorVersion byte
	MinorVersion byte

	// FrameVersion is the version whose frame layout was used to read the
	// frames. It equals MajorVersion unless size recovery found the tag was
	// written with ID3v2.3 frame sizes under an ID3v2.4 header.
	FrameVersion byte
}

// Frame returns the first frame with the given identifier.
func (t *ID3v2Tag) Frame(id string) (Frame, bool) {
	for _, f := range t.Frames {
		if f.ID == id {
			return f, true
		}
	}
	return Frame{}, false
}

// TagFlags holds the tag-level header flags. Which flags can be set depends
// on the major version:
//
//	v2.2: Unsynchronised, Compressed
//	v2.3: Unsynchronised, ExtendedHeader, Experimental
//	v2.4: Unsynchronised, ExtendedHeader, Experimental, Footer
type TagFlags struct {
	Unsynchronised bool
	Compressed     bool
	ExtendedHeader bool
	Experimental   bool
	Footer         bool
}

// ExtendedHeader is the optional ID3v2.3/ID3v2.4 extended header.
type ExtendedHeader struct {
	// CRC is the total frame CRC, nil when not present.
	CRC *uint64

	// Restrictions is set only for ID3v2.4 tags with the restrictions flag.
	Restrictions *Restrictions

	// Length is the declared size. In ID3v2.3 it excludes the 4-byte size
	// field itself; in ID3v2.4 it is synchsafe and covers the whole header.
	Length int64

	// Consumed is the number of bytes read from the frame region.
	Consumed int64

	// PaddingSize is the ID3v2.3 padding size field.
	PaddingSize int64

	RawFlags  uint16
	FlagBytes int

	// Update marks an ID3v2.4 tag as an update of an earlier tag.
	Update bool
}

// Restrictions is the ID3v2.4 tag restrictions byte, %ppqrrstt.
type Restrictions struct {
	TagSize       byte // pp
	TextEncoding  byte // q
	TextSize      byte // rr
	ImageEncoding byte // s
	ImageSize     byte // tt
}

// Padding is the part of a tag's frame region not consumed by valid frames.
type Padding struct {
	// Start is the running offset within the tag where padding begins.
	Start int64

	Length int64

	// ErrorOffset is the offset of the first non-zero byte when Valid is
	// false.
	ErrorOffset int64

	// Valid reports whether every padding byte is zero.
	Valid bool
}
