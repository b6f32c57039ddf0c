package frames

import (
	"bytes"
	"errors"
	"strings"

	"github.com/simonhull/id3meta/internal/binary"
	"github.com/simonhull/id3meta/internal/types"
)

var (
	errPictureNoMIMETerm  = errors.New("picture MIME type not null-terminated")
	errPictureNoImageData = errors.New("picture frame has no image data")
)

// decodePictureFrame decodes APIC frames, and PIC frames in ID3v2.2.
//
// APIC format:
//
//	[1 byte]              Text encoding
//	[null-terminated]     MIME type
//	[1 byte]              Picture type
//	[null-terminated]     Description
//	[remaining]           Picture data
//
// PIC replaces the MIME type with a fixed 3-byte image format ("JPG", "PNG").
func decodePictureFrame(in types.FrameInput) (types.FrameContent, error) {
	r := binary.NewReader(in.Data, 0, in.ID)
	enc := r.Byte("text encoding")

	var mimeType string
	if in.ID == "PIC" {
		mimeType = formatToMIME(r.String(3, "image format"))
	} else {
		rest := in.Data[min(1, len(in.Data)):]
		end := bytes.IndexByte(rest, 0)
		if end < 0 {
			return nil, errPictureNoMIMETerm
		}
		mimeType = formatToMIME(DecodeLatin1(rest[:end]))
		r.Skip(end+1, "MIME type")
	}

	pictureType := r.Byte("picture type")
	if err := r.Err(); err != nil {
		return nil, err
	}

	desc, data := splitTerminated(r.Rest(), enc)
	if data == nil {
		// Some encoders don't null-terminate the description
		desc, data = nil, desc
	}
	if len(data) == 0 {
		return nil, errPictureNoImageData
	}

	if detected := detectMIMEType(data); detected != "" {
		mimeType = detected
	}

	return &types.PictureContent{
		MIMEType:    mimeType,
		Description: decodeText(desc, enc),
		Data:        data,
		PictureType: pictureType,
		Encoding:    enc,
	}, nil
}

// formatToMIME maps legacy image format markers to MIME types.
func formatToMIME(format string) string {
	switch strings.ToUpper(format) {
	case "JPG", "JPEG":
		return "image/jpeg"
	case "PNG":
		return "image/png"
	case "GIF":
		return "image/gif"
	case "BMP":
		return "image/bmp"
	case "", "-->":
		return ""
	}
	if !strings.Contains(format, "/") {
		return "image/" + strings.ToLower(format)
	}
	return format
}

// detectMIMEType detects image MIME type from magic bytes.
func detectMIMEType(data []byte) string {
	switch {
	case len(data) < 4:
		return ""
	case data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF:
		return "image/jpeg"
	case bytes.HasPrefix(data, []byte{0x89, 'P', 'N', 'G'}):
		return "image/png"
	case bytes.HasPrefix(data, []byte("GIF")):
		return "image/gif"
	case bytes.HasPrefix(data, []byte("BM")):
		return "image/bmp"
	case len(data) >= 12 && string(data[0:4]) == "RIFF" && string(data[8:12]) == "WEBP":
		return "image/webp"
	}
	return ""
}
