package frames

import (
	"bytes"

	"github.com/simonhull/id3meta/internal/binary"
	"github.com/simonhull/id3meta/internal/types"
)

// decodeUniqueIDFrame decodes UFID (UFI) frames.
// Format: [owner\0][identifier, up to 64 bytes]
func decodeUniqueIDFrame(in types.FrameInput) (types.FrameContent, error) {
	i := bytes.IndexByte(in.Data, 0)
	if i < 0 {
		return nil, errNoTerminator
	}

	return &types.UniqueIDContent{
		Owner:      DecodeLatin1(in.Data[:i]),
		Identifier: bytes.Clone(in.Data[i+1:]),
	}, nil
}

// decodeCounterFrame decodes PCNT (CNT) frames: a big-endian counter of at
// least four bytes.
func decodeCounterFrame(in types.FrameInput) (types.FrameContent, error) {
	if len(in.Data) < 4 {
		return nil, errFrameTooShort
	}
	return &types.CounterContent{Count: binary.BigEndianToInt(in.Data, false)}, nil
}

// decodePopularimeterFrame decodes POPM (POP) frames.
// Format: [email\0][rating][counter, optional]
func decodePopularimeterFrame(in types.FrameInput) (types.FrameContent, error) {
	i := bytes.IndexByte(in.Data, 0)
	if i < 0 {
		return nil, errNoTerminator
	}

	r := binary.NewReader(in.Data[i+1:], int64(i+1), in.ID)
	rating := r.Byte("rating")
	if err := r.Err(); err != nil {
		return nil, err
	}

	return &types.PopularimeterContent{
		Email:  DecodeLatin1(in.Data[:i]),
		Rating: rating,
		Count:  binary.BigEndianToInt(r.Rest(), false),
	}, nil
}
