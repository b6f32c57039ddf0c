// Package id3v2 decodes ID3v2.2, ID3v2.3 and ID3v2.4 tags.
//
// Decoding runs in stages: the 10-byte header, tag-level
// unsynchronisation, the optional extended header, and the frame walk with
// its size recovery heuristics. Frame payloads are handed to a
// registry.Registry for structured decoding; frames without a registered
// decoder keep their raw payload.
package id3v2

import (
	"fmt"
	"log/slog"

	"github.com/simonhull/id3meta/internal/binary"
	"github.com/simonhull/id3meta/internal/registry"
	"github.com/simonhull/id3meta/internal/types"
)

// Options configures Decode.
type Options struct {
	// Registry decodes frame payloads. Nil leaves every frame undecoded.
	Registry *registry.Registry

	// Logger receives debug events. Nil discards them.
	Logger *slog.Logger

	// Quirks lists tolerated writer defects. The zero value tolerates none;
	// see DefaultQuirks.
	Quirks Quirks

	// MaxFrameSize bounds decompressed frame payloads. Zero means
	// DefaultMaxFrameSize.
	MaxFrameSize int64
}

// Result is the outcome of Decode.
type Result struct {
	// Tag is nil when no tag starts at the given offset.
	Tag *types.ID3v2Tag

	Warnings []types.Warning
}

type decoder struct {
	tag      *types.ID3v2Tag
	opts     Options
	name     string
	warnings []types.Warning

	// version is the frame layout currently in use. It starts at the
	// tag's major version and may drop to 3 during size recovery.
	version byte
}

// Decode reads a tag starting at offset start of cur.
//
// A missing "ID3" marker is not an error: the Result has a nil Tag. A major
// version above 4 returns *types.UnsupportedVersionError before anything
// past the header is read. Structural problems inside the tag are reported
// as warnings.
func Decode(cur *binary.Cursor, start int64, opts Options) (Result, error) {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.MaxFrameSize <= 0 {
		opts.MaxFrameSize = DefaultMaxFrameSize
	}

	b, err := cur.ReadAt(start, HeaderSize)
	if err != nil {
		return Result{}, fmt.Errorf("reading ID3v2 header: %w", err)
	}

	h, err := ParseHeader(b, cur.Name())
	if err != nil || h == nil {
		return Result{}, err
	}

	if h.Major < 2 {
		w := types.Warning{
			Stage:   "id3v2",
			Message: fmt.Sprintf("ignoring tag header with undefined version 2.%d.%d", h.Major, h.Minor),
			Offset:  start,
		}
		return Result{Warnings: []types.Warning{w}}, nil
	}

	d := &decoder{
		opts:    opts,
		name:    cur.Name(),
		version: h.Major,
		tag: &types.ID3v2Tag{
			MajorVersion: h.Major,
			MinorVersion: h.Minor,
			Flags:        h.Flags,
			HeaderLength: h.Length,
			OffsetStart:  start,
			OffsetEnd:    start + h.TotalSize(),
		},
	}

	opts.Logger.Debug("found ID3v2 tag",
		"path", d.name,
		"version", fmt.Sprintf("2.%d.%d", h.Major, h.Minor),
		"offset", start,
		"length", h.Length,
		"flags", fmt.Sprintf("%08b", h.RawFlags))

	region, err := cur.ReadAt(start+HeaderSize, int(h.Length))
	if err != nil {
		return Result{}, fmt.Errorf("reading ID3v2 frames: %w", err)
	}
	if int64(len(region)) < h.Length {
		d.warn("id3v2", HeaderSize, "tag declares %d bytes but the source ends after %d", h.Length, len(region))
	}

	if h.Flags.Compressed {
		d.warn("id3v2", 0, "ID3v2.2 tag compression has no defined scheme, frames are read as stored")
	}

	// ID3v2.4 unsynchronises per frame instead.
	if h.Flags.Unsynchronised && h.Major <= 3 {
		region = RemoveUnsync(region)
	}

	offset := int64(HeaderSize)
	if h.Flags.ExtendedHeader && h.Major >= 3 {
		eh, err := ParseExtendedHeader(region, h.Major, start+HeaderSize, d.name)
		if err != nil {
			d.warn("id3v2", offset, "unreadable extended header: %v", err)
			d.tag.FrameVersion = d.version
			return d.result(), nil
		}

		if want := declaredSize(eh, h.Major); want != eh.Consumed {
			d.warn("id3v2", offset, "extended header declares %d bytes but %d were read", want, eh.Consumed)
		}
		opts.Logger.Debug("read extended header",
			"path", d.name,
			"consumed", eh.Consumed,
			"crc", eh.CRC != nil,
			"restrictions", eh.Restrictions != nil)

		d.tag.Extended = eh
		region = region[eh.Consumed:]
		offset += eh.Consumed
	}

	d.walkFrames(region, offset)
	d.tag.FrameVersion = d.version

	return d.result(), nil
}

func (d *decoder) result() Result {
	return Result{Tag: d.tag, Warnings: d.warnings}
}

// warn records a warning. offset is relative to the tag start.
func (d *decoder) warn(stage string, offset int64, format string, args ...any) {
	w := types.Warning{
		Stage:   stage,
		Message: fmt.Sprintf(format, args...),
		Offset:  d.tag.OffsetStart + offset,
	}
	d.warnings = append(d.warnings, w)
	d.opts.Logger.Debug("tag warning", "path", d.name, "stage", w.Stage, "offset", w.Offset, "message", w.Message)
}
