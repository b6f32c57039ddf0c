package id3v2

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
	"github.com/simonhull/id3meta/internal/binary"
	"github.com/simonhull/id3meta/internal/types"
)

// DefaultMaxFrameSize bounds the decompressed size of a compressed frame.
const DefaultMaxFrameSize = 16 << 20

var errFrameTooLarge = errors.New("decompressed frame exceeds size limit")

// Frame flag bits, ID3v2.3: %abc00000 %ijk00000
const (
	v3TagAlter   = 0x8000
	v3FileAlter  = 0x4000
	v3ReadOnly   = 0x2000
	v3Compressed = 0x0080
	v3Encrypted  = 0x0040
	v3Grouping   = 0x0020
)

// Frame flag bits, ID3v2.4: %0abc0000 %0h00kmnp
const (
	v4TagAlter   = 0x4000
	v4FileAlter  = 0x2000
	v4ReadOnly   = 0x1000
	v4Grouping   = 0x0040
	v4Compressed = 0x0008
	v4Encrypted  = 0x0004
	v4Unsync     = 0x0002
	v4DataLength = 0x0001
)

func decodeFrameFlags(version byte, raw uint16) *types.FrameFlags {
	switch version {
	case 3:
		return &types.FrameFlags{
			TagAlterPreservation:  raw&v3TagAlter != 0,
			FileAlterPreservation: raw&v3FileAlter != 0,
			ReadOnly:              raw&v3ReadOnly != 0,
			Compression:           raw&v3Compressed != 0,
			Encryption:            raw&v3Encrypted != 0,
			GroupingIdentity:      raw&v3Grouping != 0,
		}
	case 4:
		return &types.FrameFlags{
			TagAlterPreservation:  raw&v4TagAlter != 0,
			FileAlterPreservation: raw&v4FileAlter != 0,
			ReadOnly:              raw&v4ReadOnly != 0,
			GroupingIdentity:      raw&v4Grouping != 0,
			Compression:           raw&v4Compressed != 0,
			Encryption:            raw&v4Encrypted != 0,
			Unsynchronisation:     raw&v4Unsync != 0,
			DataLengthIndicator:   raw&v4DataLength != 0,
		}
	}
	return nil
}

// unpackPayload strips the extra frame header bytes the flags announce and
// reverses frame-level unsynchronisation and compression. f.Data holds the
// raw payload on entry and the usable payload on success. Encrypted
// payloads are left encrypted.
//
// ID3v2.3 appends, in order: decompressed size (4), encryption method (1),
// group identifier (1). ID3v2.4 appends group identifier (1), encryption
// method (1), data length indicator (4, synchsafe).
func unpackPayload(f *types.Frame, version byte, tagUnsync bool, maxSize int64) error {
	if f.Flags == nil {
		return nil
	}

	fl := f.Flags
	r := binary.NewReader(f.Data, f.Offset, f.ID)

	switch version {
	case 3:
		if fl.Compression {
			f.DataLength = int64(binary.ReadBE[uint32](r, "decompressed size"))
		}
		if fl.Encryption {
			f.EncryptionMethod = r.Byte("encryption method")
		}
		if fl.GroupingIdentity {
			f.GroupID = r.Byte("group identifier")
		}
	case 4:
		if fl.GroupingIdentity {
			f.GroupID = r.Byte("group identifier")
		}
		if fl.Encryption {
			f.EncryptionMethod = r.Byte("encryption method")
		}
		if fl.DataLengthIndicator {
			f.DataLength = int64(r.Synchsafe(4, "data length indicator"))
		}
	}

	data := r.Rest()
	if err := r.Err(); err != nil {
		return err
	}

	if version == 4 && (fl.Unsynchronisation || tagUnsync) {
		data = RemoveUnsync(data)
	}

	if fl.Compression && !fl.Encryption {
		inflated, err := inflate(data, maxSize)
		if err != nil {
			return fmt.Errorf("decompressing %s frame: %w", f.ID, err)
		}
		data = inflated
	}

	f.Data = data
	return nil
}

// inflate decompresses a zlib stream, reading at most maxSize bytes.
func inflate(data []byte, maxSize int64) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	out, err := io.ReadAll(io.LimitReader(zr, maxSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(out)) > maxSize {
		return nil, errFrameTooLarge
	}
	return out, nil
}
