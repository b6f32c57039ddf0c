package frames

import (
	"github.com/simonhull/id3meta/internal/binary"
	"github.com/simonhull/id3meta/internal/types"
)

// decodeCommentFrame decodes COMM and USLT frames (COM, ULT in ID3v2.2).
// Format: [encoding][language(3)][short description\0][text]
func decodeCommentFrame(in types.FrameInput) (types.FrameContent, error) {
	r := binary.NewReader(in.Data, 0, in.ID)
	enc := r.Byte("text encoding")
	lang := r.String(3, "language")
	if err := r.Err(); err != nil {
		return nil, err
	}

	c := &types.CommentContent{
		Language: DecodeLatin1([]byte(lang)),
		Encoding: enc,
	}

	desc, text := splitTerminated(r.Rest(), enc)
	if text == nil {
		// No null terminator - treat all as text
		c.Text = decodeText(desc, enc)
		return c, nil
	}

	c.Description = decodeText(desc, enc)
	c.Text = decodeText(text, enc)
	return c, nil
}
