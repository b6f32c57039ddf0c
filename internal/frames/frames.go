// Package frames provides the built-in ID3v2 frame payload decoders.
//
// Importing this package registers decoders for text, URL, comment, lyrics,
// unique identifier, play counter, popularimeter and picture frames in the
// default registry. Register them in a custom registry with RegisterAll.
package frames

import (
	"strings"

	"github.com/simonhull/id3meta/internal/registry"
	"github.com/simonhull/id3meta/internal/types"
)

// Text frames written by common taggers that the name tables don't list.
var extraTextIDs = []string{"TCMP", "TSO2", "TSOC", "TCAT", "TDES", "TGID", "TKWD"}

// RegisterAll registers every built-in decoder in r.
func RegisterAll(r *registry.Registry) {
	for _, id := range types.KnownFrameIDs() {
		switch {
		case id == "TXXX" || id == "TXX":
			r.Register(registry.FrameDecoderFunc(decodeUserTextFrame), id)
		case id == "WXXX" || id == "WXX":
			r.Register(registry.FrameDecoderFunc(decodeUserURLFrame), id)
		case strings.HasPrefix(id, "T"):
			r.Register(registry.FrameDecoderFunc(decodeTextFrame), id)
		case strings.HasPrefix(id, "W"):
			r.Register(registry.FrameDecoderFunc(decodeURLFrame), id)
		}
	}

	r.Register(registry.FrameDecoderFunc(decodeTextFrame), extraTextIDs...)
	r.Register(registry.FrameDecoderFunc(decodeCommentFrame), "COMM", "COM", "USLT", "ULT")
	r.Register(registry.FrameDecoderFunc(decodeUniqueIDFrame), "UFID", "UFI")
	r.Register(registry.FrameDecoderFunc(decodeCounterFrame), "PCNT", "CNT")
	r.Register(registry.FrameDecoderFunc(decodePopularimeterFrame), "POPM", "POP")
	r.Register(registry.FrameDecoderFunc(decodePictureFrame), "APIC", "PIC")
}

func init() {
	RegisterAll(registry.Default())
}
