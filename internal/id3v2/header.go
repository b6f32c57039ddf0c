package id3v2

import (
	"github.com/simonhull/id3meta/internal/binary"
	"github.com/simonhull/id3meta/internal/types"
)

// HeaderSize is the size of the tag header and of the optional footer.
const HeaderSize = 10

// Tag header flag bits.
const (
	flagUnsync       = 0x80
	flagCompressed   = 0x40 // v2.2 only
	flagExtended     = 0x40 // v2.3+
	flagExperimental = 0x20
	flagFooter       = 0x10 // v2.4 only
)

// Header is the decoded 10-byte tag header.
//
//	ID3v2/file identifier      "ID3"
//	ID3v2 version              $04 00
//	ID3v2 flags                %abcd0000
//	ID3v2 size             4 * %0xxxxxxx
type Header struct {
	Flags types.TagFlags

	// Length is the size of the frame region: everything after the header,
	// excluding the footer.
	Length int64

	Major    byte
	Minor    byte
	RawFlags byte
}

// TotalSize returns the number of bytes the tag occupies, including the
// header and footer.
func (h *Header) TotalSize() int64 {
	n := HeaderSize + h.Length
	if h.Flags.Footer {
		n += HeaderSize
	}
	return n
}

// ParseHeader decodes a tag header. It returns nil without error when b
// does not start with "ID3", and *types.UnsupportedVersionError when the
// major version is above 4.
func ParseHeader(b []byte, name string) (*Header, error) {
	if len(b) < HeaderSize || string(b[:3]) != "ID3" {
		return nil, nil
	}

	r := binary.NewReader(b, 0, name)
	r.Skip(3, "tag identifier")
	h := &Header{
		Major:    r.Byte("major version"),
		Minor:    r.Byte("minor version"),
		RawFlags: r.Byte("tag flags"),
	}
	h.Length = int64(r.Synchsafe(4, "tag size"))
	if err := r.Err(); err != nil {
		return nil, err
	}

	if h.Major > 4 {
		return nil, &types.UnsupportedVersionError{Path: name, Major: h.Major, Minor: h.Minor}
	}

	h.Flags = decodeTagFlags(h.Major, h.RawFlags)
	return h, nil
}

// decodeTagFlags decodes the flag byte with the version's bit layout:
//
//	v2.2 %ab000000  unsynchronisation, compression
//	v2.3 %abc00000  unsynchronisation, extended header, experimental
//	v2.4 %abcd0000  as v2.3, plus footer present
func decodeTagFlags(major, raw byte) types.TagFlags {
	f := types.TagFlags{Unsynchronised: raw&flagUnsync != 0}

	switch major {
	case 2:
		f.Compressed = raw&flagCompressed != 0
	case 3:
		f.ExtendedHeader = raw&flagExtended != 0
		f.Experimental = raw&flagExperimental != 0
	case 4:
		f.ExtendedHeader = raw&flagExtended != 0
		f.Experimental = raw&flagExperimental != 0
		f.Footer = raw&flagFooter != 0
	}

	return f
}
