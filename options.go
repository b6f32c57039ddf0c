package id3meta

import (
	"log/slog"

	"github.com/simonhull/id3meta/internal/id3v2"
	"github.com/simonhull/id3meta/internal/registry"
)

// Option configures analysis.
//
// Options use the functional options pattern:
//
//	info, err := id3meta.Analyze("song.mp3",
//	    id3meta.WithStrictParsing(),
//	    id3meta.WithMaxFrameSize(4<<20),
//	)
type Option func(*analyzeOptions)

type analyzeOptions struct {
	logger         *slog.Logger
	registry       *registry.Registry
	quirks         id3v2.Quirks
	maxFrameSize   int64
	strictParsing  bool // Fail on the first warning
	ignoreWarnings bool // Drop all warnings
}

func defaultOptions() *analyzeOptions {
	return &analyzeOptions{
		logger:       slog.New(slog.DiscardHandler),
		registry:     registry.Default(),
		quirks:       id3v2.DefaultQuirks(),
		maxFrameSize: id3v2.DefaultMaxFrameSize,
	}
}

func newOptions(opts []Option) *analyzeOptions {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *analyzeOptions) id3v2Options() id3v2.Options {
	return id3v2.Options{
		Registry:     o.registry,
		Logger:       o.logger,
		Quirks:       o.quirks,
		MaxFrameSize: o.maxFrameSize,
	}
}

// WithLogger sends debug events (tags found, extended headers, size
// recovery, warnings) to logger. By default they are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(o *analyzeOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithRegistry decodes frame payloads with r instead of the default
// registry. An empty registry leaves every frame as raw bytes:
//
//	info, err := id3meta.Analyze("song.mp3", id3meta.WithRegistry(id3meta.NewRegistry()))
func WithRegistry(r *Registry) Option {
	return func(o *analyzeOptions) {
		o.registry = r
	}
}

// WithQuirks replaces the tolerated writer defects. Start from
// DefaultQuirks to extend the list rather than replace it.
func WithQuirks(q Quirks) Option {
	return func(o *analyzeOptions) {
		o.quirks = q.Clone()
	}
}

// WithStrictParsing treats any warning as a fatal error.
//
// By default analysis keeps going past malformed padding, invalid frame
// identifiers and undecodable frames, returning warnings alongside the data.
// With strict parsing the first warning is returned as a *CorruptedTagError.
//
// Example:
//
//	info, err := id3meta.Analyze("song.mp3", id3meta.WithStrictParsing())
//	var corrupt *id3meta.CorruptedTagError
//	if errors.As(err, &corrupt) {
//		log.Printf("bad tag at %d: %s", corrupt.Offset, corrupt.Reason)
//	}
func WithStrictParsing() Option {
	return func(o *analyzeOptions) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings discards all warnings. FileInfo.Warnings will always be
// empty.
func WithIgnoreWarnings() Option {
	return func(o *analyzeOptions) {
		o.ignoreWarnings = true
	}
}

// WithMaxFrameSize bounds the size of a decompressed frame payload. Frames
// that inflate past the limit keep their compressed bytes and produce a
// warning.
//
// Default is 16 MiB.
func WithMaxFrameSize(n int64) Option {
	return func(o *analyzeOptions) {
		if n > 0 {
			o.maxFrameSize = n
		}
	}
}
