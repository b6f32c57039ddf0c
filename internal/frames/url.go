package frames

import (
	"github.com/simonhull/id3meta/internal/types"
)

// decodeURLFrame decodes W*** frames: a single ISO-8859-1 URL.
func decodeURLFrame(in types.FrameInput) (types.FrameContent, error) {
	if len(in.Data) == 0 {
		return nil, errEmptyFrame
	}
	return &types.URLContent{URL: DecodeLatin1(in.Data)}, nil
}

// decodeUserURLFrame decodes WXXX (WXX) frames.
// Format: [encoding][description\0][URL in ISO-8859-1]
func decodeUserURLFrame(in types.FrameInput) (types.FrameContent, error) {
	if len(in.Data) < 2 {
		return nil, errFrameTooShort
	}

	enc := in.Data[0]
	desc, url := splitTerminated(in.Data[1:], enc)
	if url == nil {
		return nil, errNoTerminator
	}

	return &types.UserURLContent{
		Description: decodeText(desc, enc),
		URL:         DecodeLatin1(url),
		Encoding:    enc,
	}, nil
}
