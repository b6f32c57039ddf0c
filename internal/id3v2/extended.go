package id3v2

import (
	"fmt"

	"github.com/simonhull/id3meta/internal/binary"
	"github.com/simonhull/id3meta/internal/types"
)

// Extended header flag bits.
const (
	extCRCv3 = 0x8000

	extUpdate       = 0x40
	extCRC          = 0x20
	extRestrictions = 0x10
)

// ParseExtendedHeader decodes the extended header at the start of the frame
// region. base is the region's offset in the source, used in errors.
//
// The returned header's Consumed field is the number of bytes read, which
// the caller removes from the region before walking frames.
func ParseExtendedHeader(region []byte, major byte, base int64, name string) (*types.ExtendedHeader, error) {
	r := binary.NewReader(region, base, name)

	var (
		eh  *types.ExtendedHeader
		err error
	)
	switch major {
	case 3:
		eh, err = parseExtendedV3(r)
	case 4:
		eh, err = parseExtendedV4(r)
	default:
		return nil, fmt.Errorf("%s: extended header not defined for ID3v2.%d", name, major)
	}
	if err != nil {
		return nil, err
	}

	eh.Consumed = int64(r.Offset())
	return eh, nil
}

// parseExtendedV3 reads the ID3v2.3 layout:
//
//	Extended header size   $xx xx xx xx   (excludes itself)
//	Extended Flags         $xx xx         %x0000000 00000000, x - CRC data present
//	Size of padding        $xx xx xx xx
//	Total frame CRC        $xx xx xx xx   (if x)
func parseExtendedV3(r *binary.Reader) (*types.ExtendedHeader, error) {
	eh := &types.ExtendedHeader{FlagBytes: 2}
	eh.Length = int64(binary.ReadBE[uint32](r, "extended header size"))
	eh.RawFlags = binary.ReadBE[uint16](r, "extended header flags")
	eh.PaddingSize = int64(binary.ReadBE[uint32](r, "padding size"))

	if eh.RawFlags&extCRCv3 != 0 {
		crc := uint64(binary.ReadBE[uint32](r, "extended header CRC"))
		eh.CRC = &crc
	}

	return eh, r.Err()
}

// parseExtendedV4 reads the ID3v2.4 layout:
//
//	Extended header size   4 * %0xxxxxxx  (includes itself)
//	Number of flag bytes       $01
//	Extended Flags             %0bcd0000
//
// followed, for each set flag in order, by a data length byte and its data:
// b (tag is an update, 0 bytes), c (CRC, 5 bytes synchsafe), d (tag
// restrictions, 1 byte).
func parseExtendedV4(r *binary.Reader) (*types.ExtendedHeader, error) {
	eh := &types.ExtendedHeader{}
	eh.Length = int64(r.Synchsafe(4, "extended header size"))
	eh.FlagBytes = int(r.Byte("extended flag byte count"))

	flagBytes := r.Bytes(eh.FlagBytes, "extended flags")
	if err := r.Err(); err != nil {
		return nil, err
	}
	if len(flagBytes) > 0 {
		eh.RawFlags = uint16(flagBytes[0])
	}

	if eh.RawFlags&extUpdate != 0 {
		eh.Update = true
		r.Bytes(int(r.Byte("update data length")), "update data")
	}

	if eh.RawFlags&extCRC != 0 {
		data := r.Bytes(int(r.Byte("CRC data length")), "CRC data")
		crc := binary.SynchsafeToInt(data)
		eh.CRC = &crc
	}

	if eh.RawFlags&extRestrictions != 0 {
		data := r.Bytes(int(r.Byte("restrictions data length")), "restrictions")
		if len(data) > 0 {
			eh.Restrictions = decodeRestrictions(data[0])
		}
	}

	return eh, r.Err()
}

// decodeRestrictions splits the %ppqrrstt restrictions byte.
func decodeRestrictions(b byte) *types.Restrictions {
	return &types.Restrictions{
		TagSize:       (b >> 6) & 0x03,
		TextEncoding:  (b >> 5) & 0x01,
		TextSize:      (b >> 3) & 0x03,
		ImageEncoding: (b >> 2) & 0x01,
		ImageSize:     b & 0x03,
	}
}

// declaredSize returns the extended header size the header claims, in the
// same terms as Consumed.
func declaredSize(eh *types.ExtendedHeader, major byte) int64 {
	if major == 3 {
		return eh.Length + 4
	}
	return eh.Length
}
