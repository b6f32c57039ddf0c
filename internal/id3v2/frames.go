package id3v2

import (
	"encoding/binary"

	binutil "github.com/simonhull/id3meta/internal/binary"
	"github.com/simonhull/id3meta/internal/types"
)

// frameHeaderSize is 6 for ID3v2.2 (3-byte identifier, 3-byte size) and 10
// for ID3v2.3/2.4 (4-byte identifier, 4-byte size, 2 flag bytes).
func frameHeaderSize(version byte) int {
	if version == 2 {
		return 6
	}
	return 10
}

func idLength(version byte) int {
	if version == 2 {
		return 3
	}
	return 4
}

// validID reports whether id is a well-formed identifier for version: an
// uppercase letter followed by two (v2.2) or three (v2.3/2.4) uppercase
// letters or digits.
func validID(id string, version byte) bool {
	if len(id) != idLength(version) {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'A' && c <= 'Z':
		case i > 0 && c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}

// frameSize decodes the size field: plain 24-bit in v2.2, plain 32-bit in
// v2.3, synchsafe 28-bit in v2.4.
func frameSize(header []byte, version byte) int64 {
	switch version {
	case 2:
		return binutil.BigEndianToInt(header[3:6], false)
	case 3:
		return int64(binary.BigEndian.Uint32(header[4:8]))
	default:
		return int64(binutil.SynchsafeToInt(header[4:8]))
	}
}

// walkFrames splits the frame region into frames. offset is the running
// offset of region[0] within the tag.
func (d *decoder) walkFrames(region []byte, offset int64) {
	pos := 0
	for pos < len(region) {
		rem := region[pos:]
		hs := frameHeaderSize(d.version)

		if len(rem) < hs || allZero(rem[:idLength(d.version)]) {
			d.tag.Padding = scanPadding(rem, offset)
			if p := d.tag.Padding; !p.Valid {
				d.warn("id3v2", p.ErrorOffset, "invalid padding, the remaining %d bytes are not zero", p.Length-(p.ErrorOffset-p.Start))
			}
			return
		}

		rawID := string(rem[:idLength(d.version)])
		body := rem[hs:]
		size := d.recoverSize(rawID, rem, body, offset)

		if d.opts.Quirks.isBrokenWriterID(rawID) && size <= int64(len(body)) {
			d.warn("frame", offset, "skipping %d-byte junk frame %q", size, rawID)
			pos += hs + int(size)
			offset += int64(hs) + size
			continue
		}

		id := d.opts.Quirks.rename(rawID)
		if !validID(id, d.version) {
			d.warn("frame", offset, "invalid frame identifier %q, remaining %d bytes treated as padding", rawID, len(rem))
			d.tag.Padding = scanPadding(rem, offset)
			return
		}

		declared := size
		clamped := size > int64(len(body))
		if clamped {
			d.warn("frame", offset, "frame %s declares %d bytes but only %d remain", id, size, len(body))
			size = int64(len(body))
		}

		f := types.Frame{
			ID:        id,
			Size:      declared,
			Offset:    offset,
			Data:      body[:size],
			LongName:  types.FrameLongName(id),
			ShortName: types.FrameShortName(id),
		}
		if d.version >= 3 {
			f.Flags = decodeFrameFlags(d.version, binary.BigEndian.Uint16(rem[8:10]))
		}

		d.finishFrame(&f)
		d.tag.Frames = append(d.tag.Frames, f)

		if clamped {
			return
		}

		pos += hs + int(size)
		offset += int64(hs) + size
	}
}

// recoverSize checks the declared frame size against the bytes that follow
// it and falls back, in order, to:
//
//  1. the declared size, if it ends exactly at the region end, at padding,
//     or at another valid identifier;
//  2. the declared size, if the identifier is a known broken-writer junk
//     frame;
//  3. for ID3v2.4, the size field read as a plain integer, if a valid
//     ID3v2.3 identifier follows it. The rest of the tag is then read with
//     ID3v2.3 frame sizes and flags.
//
// Otherwise the declared size is used as is.
func (d *decoder) recoverSize(id string, header, body []byte, offset int64) int64 {
	size := frameSize(header, d.version)

	if nextFrameOK(body, size, d.version) {
		return size
	}

	if d.version >= 3 && d.opts.Quirks.isBrokenWriterID(id) {
		return size
	}

	if d.version == 4 {
		plain := int64(binary.BigEndian.Uint32(header[4:8]))
		if plain+4 <= int64(len(body)) && validID(string(body[plain:plain+4]), 3) {
			d.warn("frame", offset, "frame %q has a non-synchsafe size, reading frames as ID3v2.3", id)
			d.opts.Logger.Debug("downgrading frame version",
				"path", d.name,
				"frame", id,
				"offset", offset,
				"synchsafe_size", size,
				"plain_size", plain)
			d.version = 3
			return plain
		}
	}

	return size
}

// nextFrameOK reports whether the bytes after a frame of the given size
// look like the end of the region, padding, or another frame.
func nextFrameOK(body []byte, size int64, version byte) bool {
	if size > int64(len(body)) {
		return false
	}

	next := body[size:]
	n := idLength(version)
	switch {
	case len(next) == 0:
		return true
	case allZero(next[:min(n, len(next))]):
		return true
	case len(next) < n:
		return false
	}
	return validID(string(next[:n]), version)
}

// finishFrame applies frame-level transforms and dispatches the payload to
// the registered decoder, if any. Failures leave the raw payload in place.
func (d *decoder) finishFrame(f *types.Frame) {
	if err := unpackPayload(f, d.version, d.tag.Flags.Unsynchronised, d.opts.MaxFrameSize); err != nil {
		d.warn("frame", f.Offset, "%s: %v", f.ID, err)
		return
	}

	if f.Flags != nil && f.Flags.Encryption {
		return
	}

	if d.opts.Registry == nil {
		return
	}
	dec := d.opts.Registry.Lookup(f.ID)
	if dec == nil {
		return
	}

	content, err := dec.DecodeFrame(types.FrameInput{
		ID:      f.ID,
		Data:    f.Data,
		Offset:  f.Offset,
		Flags:   f.Flags,
		Version: d.version,
	})
	if err != nil {
		d.warn("frame", f.Offset, "decoding %s frame: %v", f.ID, err)
		return
	}
	f.Content = content
}

// scanPadding describes rem as padding starting at offset. It is valid only
// if every byte is zero.
func scanPadding(rem []byte, offset int64) *types.Padding {
	p := &types.Padding{Start: offset, Length: int64(len(rem)), Valid: true}
	for i, b := range rem {
		if b != 0 {
			p.Valid = false
			p.ErrorOffset = offset + int64(i)
			break
		}
	}
	return p
}

func allZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
