package frames

import (
	"errors"
	"strings"

	"github.com/simonhull/id3meta/internal/types"
)

var (
	errEmptyFrame    = errors.New("frame has no payload")
	errNoTerminator  = errors.New("description not null-terminated")
	errFrameTooShort = errors.New("frame too short")
)

// decodeTextFrame decodes T*** frames.
// Format: [encoding][value\0][value\0]...
func decodeTextFrame(in types.FrameInput) (types.FrameContent, error) {
	if len(in.Data) < 1 {
		return nil, errEmptyFrame
	}

	enc := in.Data[0]
	values := splitValues(in.Data[1:], enc)

	if in.ID == "TCON" || in.ID == "TCO" {
		values = resolveGenres(values)
	}

	return &types.TextContent{Values: values, Encoding: enc}, nil
}

// decodeUserTextFrame decodes TXXX (TXX) frames.
// Format: [encoding][description\0][value]
func decodeUserTextFrame(in types.FrameInput) (types.FrameContent, error) {
	if len(in.Data) < 2 {
		return nil, errFrameTooShort
	}

	enc := in.Data[0]
	desc, value := splitTerminated(in.Data[1:], enc)
	if value == nil {
		return nil, errNoTerminator
	}

	return &types.UserTextContent{
		Description: decodeText(desc, enc),
		Value:       decodeText(value, enc),
		Encoding:    enc,
	}, nil
}

// resolveGenres expands genre references in content type values.
//
// ID3v2.3 writes references in parentheses, optionally followed by a
// refinement: "(17)", "(4)(RX)", "(17)Rock". A literal leading parenthesis
// is escaped as "((". ID3v2.4 writes bare references: "17", "RX".
func resolveGenres(values []string) []string {
	var out []string
	add := func(g string) {
		if g != "" && !containsFold(out, g) {
			out = append(out, g)
		}
	}

	for _, v := range values {
		rest := v
		for strings.HasPrefix(rest, "(") && !strings.HasPrefix(rest, "((") {
			end := strings.IndexByte(rest, ')')
			if end < 0 {
				break
			}
			if name, ok := types.LookupGenre(rest[1:end]); ok {
				add(name)
			}
			rest = rest[end+1:]
		}

		if strings.HasPrefix(rest, "((") {
			rest = rest[1:]
		}
		rest = strings.TrimSpace(rest)

		if name, ok := types.LookupGenre(rest); ok {
			add(name)
			continue
		}
		add(rest)
	}

	return out
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
