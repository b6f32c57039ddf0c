package frames

import (
	"bytes"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Text encodings as stored in the first payload byte of text-bearing frames.
const (
	EncodingLatin1  byte = 0 // ISO-8859-1
	EncodingUTF16   byte = 1 // UTF-16 with BOM
	EncodingUTF16BE byte = 2 // UTF-16BE without BOM (ID3v2.4)
	EncodingUTF8    byte = 3 // UTF-8 (ID3v2.4)
)

// decoderFor returns the x/text encoding for an ID3v2 encoding byte.
// Unknown values are read as ISO-8859-1; UTF-8 returns nil.
func decoderFor(enc byte) encoding.Encoding {
	switch enc {
	case EncodingUTF16:
		// No BOM - assume big-endian
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	case EncodingUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case EncodingUTF8:
		return nil
	default:
		return charmap.ISO8859_1
	}
}

// decodeText decodes data in the given encoding. A trailing terminator is
// dropped. Undecodable input falls back to the raw bytes.
func decodeText(data []byte, enc byte) string {
	data = trimTerminator(data, enc)
	if len(data) == 0 {
		return ""
	}

	if isWide(enc) && len(data)%2 != 0 {
		data = data[:len(data)-1]
	}

	e := decoderFor(enc)
	if e == nil {
		return string(data)
	}

	out, err := e.NewDecoder().Bytes(data)
	if err != nil {
		return string(data)
	}
	return string(out)
}

// DecodeLatin1 decodes ISO-8859-1 bytes, stopping at the first zero byte.
func DecodeLatin1(data []byte) string {
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	return decodeText(data, EncodingLatin1)
}

func isWide(enc byte) bool {
	return enc == EncodingUTF16 || enc == EncodingUTF16BE
}

// findNullTerminator finds the null terminator based on encoding
func findNullTerminator(data []byte, enc byte) int {
	if !isWide(enc) {
		return bytes.IndexByte(data, 0)
	}

	// UTF-16 (double-byte null, aligned)
	for i := 0; i+1 < len(data); i += 2 {
		if data[i] == 0 && data[i+1] == 0 {
			return i
		}
	}
	return -1
}

// terminatorSize returns the size of the null terminator for the encoding
func terminatorSize(enc byte) int {
	if isWide(enc) {
		return 2
	}
	return 1
}

func trimTerminator(data []byte, enc byte) []byte {
	n := terminatorSize(enc)
	for len(data) >= n && allZero(data[len(data)-n:]) {
		data = data[:len(data)-n]
	}
	return data
}

func allZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}

// splitTerminated splits data at the first terminator. rest is nil when
// there is no terminator.
func splitTerminated(data []byte, enc byte) (head, rest []byte) {
	i := findNullTerminator(data, enc)
	if i < 0 {
		return data, nil
	}
	return data[:i], data[i+terminatorSize(enc):]
}

// splitValues splits a null-separated list of values. Trailing empty values
// are dropped.
func splitValues(data []byte, enc byte) []string {
	var values []string
	for len(data) > 0 {
		head, rest := splitTerminated(data, enc)
		values = append(values, decodeText(head, enc))
		if rest == nil {
			break
		}
		data = rest
	}

	for len(values) > 0 && values[len(values)-1] == "" {
		values = values[:len(values)-1]
	}
	return values
}
