package types

// Frame is one identifier/size/flags/payload unit of an ID3v2 tag.
type Frame struct {
	// Content is the payload decoded by a registered frame decoder, nil when
	// no decoder handles this identifier or decoding failed.
	Content FrameContent

	// Flags is nil for ID3v2.2 frames, which have no flag bytes.
	Flags *FrameFlags

	// ID is the 3-character (v2.2) or 4-character (v2.3, v2.4) identifier.
	ID string

	// LongName and ShortName come from the static frame name tables.
	LongName  string
	ShortName string

	// Data is the payload after frame-level transforms (extra header bytes
	// stripped, unsynchronisation reversed, decompressed).
	Data []byte

	// Size is the declared payload size.
	Size int64

	// Offset is the running offset of the frame header within the tag.
	Offset int64

	// DataLength is the data length indicator or decompressed size, 0 when
	// absent.
	DataLength int64

	// GroupID and EncryptionMethod are set when the matching flags are.
	GroupID          byte
	EncryptionMethod byte
}

// FrameFlags are the ID3v2.3/ID3v2.4 frame header flags.
type FrameFlags struct {
	TagAlterPreservation  bool
	FileAlterPreservation bool
	ReadOnly              bool
	GroupingIdentity      bool
	Compression           bool
	Encryption            bool

	// Unsynchronisation and DataLengthIndicator exist only in ID3v2.4.
	Unsynchronisation   bool
	DataLengthIndicator bool
}

// FrameInput is what a frame decoder receives.
type FrameInput struct {
	Flags   *FrameFlags
	ID      string
	Data    []byte
	Offset  int64
	Version byte
}

// FrameContent is the structured form of a frame payload.
//
// Implementations are plain structs; switch on the concrete type to read
// them:
//
//	switch c := frame.Content.(type) {
//	case *types.TextContent:
//		fmt.Println(c.Values)
//	case *types.CommentContent:
//		fmt.Println(c.Language, c.Text)
//	}
type FrameContent interface {
	// Kind names the variant, e.g. "text" or "comment".
	Kind() string
}

// TextContent is a text information frame (T***, T** in v2.2).
type TextContent struct {
	// Values holds each null-separated value. ID3v2.4 allows several.
	Values   []string
	Encoding byte
}

// Kind implements FrameContent.
func (*TextContent) Kind() string { return "text" }

// Text returns the first value, or "".
func (c *TextContent) Text() string {
	if len(c.Values) == 0 {
		return ""
	}
	return c.Values[0]
}

// UserTextContent is a user-defined text frame (TXXX, TXX).
type UserTextContent struct {
	Description string
	Value       string
	Encoding    byte
}

// Kind implements FrameContent.
func (*UserTextContent) Kind() string { return "user_text" }

// URLContent is a URL link frame (W***, W**).
type URLContent struct {
	URL string
}

// Kind implements FrameContent.
func (*URLContent) Kind() string { return "url" }

// UserURLContent is a user-defined URL frame (WXXX, WXX).
type UserURLContent struct {
	Description string
	URL         string
	Encoding    byte
}

// Kind implements FrameContent.
func (*UserURLContent) Kind() string { return "user_url" }

// CommentContent is a comment or unsynchronised lyrics frame (COMM, USLT,
// COM, ULT).
type CommentContent struct {
	Language    string
	Description string
	Text        string
	Encoding    byte
}

// Kind implements FrameContent.
func (*CommentContent) Kind() string { return "comment" }

// UniqueIDContent is a unique file identifier frame (UFID, UFI).
type UniqueIDContent struct {
	Owner      string
	Identifier []byte
}

// Kind implements FrameContent.
func (*UniqueIDContent) Kind() string { return "unique_id" }

// CounterContent is a play counter frame (PCNT, CNT).
type CounterContent struct {
	Count int64
}

// Kind implements FrameContent.
func (*CounterContent) Kind() string { return "counter" }

// PopularimeterContent is a popularimeter frame (POPM, POP).
type PopularimeterContent struct {
	Email  string
	Count  int64
	Rating byte
}

// Kind implements FrameContent.
func (*PopularimeterContent) Kind() string { return "popularimeter" }

// PictureContent is an attached picture frame (APIC, PIC).
type PictureContent struct {
	// MIMEType is the MIME type (APIC) or an "image/" type derived from the
	// 3-character image format (PIC).
	MIMEType    string
	Description string
	Data        []byte
	PictureType byte
	Encoding    byte
}

// Kind implements FrameContent.
func (*PictureContent) Kind() string { return "picture" }
