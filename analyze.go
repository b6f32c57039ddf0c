package id3meta

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"runtime"

	"github.com/simonhull/id3meta/internal/binary"
	_ "github.com/simonhull/id3meta/internal/frames" // registers the built-in frame decoders
	"github.com/simonhull/id3meta/internal/id3v1"
	"github.com/simonhull/id3meta/internal/id3v2"
	"golang.org/x/sync/errgroup"
)

// remotePath matches a URI scheme prefix such as "http://", "s3:" or
// "ftp://user@". Single-letter prefixes are left alone so Windows drive
// letters are not mistaken for schemes.
var remotePath = regexp.MustCompile(`(?i)^([a-z][a-z0-9+.-]+):(//)?(.*?@)?`)

// Analyze opens the file at path and decodes its ID3v1 and ID3v2 tags.
//
// A file without tags is not an error: the returned FileInfo simply has nil
// tag fields and an audio range covering the whole file. Structural problems
// inside a tag are reported in FileInfo.Warnings.
//
// Options can be provided to customize decoding:
//
//	info, err := id3meta.Analyze("song.mp3",
//	    id3meta.WithStrictParsing(),
//	    id3meta.WithLogger(logger),
//	)
//
// Example:
//
//	info, err := id3meta.Analyze("song.mp3")
//	if err != nil {
//		return err
//	}
//	if info.ID3v2 != nil {
//		fmt.Println(info.ID3v2.Frame("TIT2").Content)
//	}
func Analyze(path string, opts ...Option) (*FileInfo, error) {
	return AnalyzeContext(context.Background(), path, opts...)
}

// AnalyzeContext is Analyze with cancellation. The context is checked before
// the file is opened and between the ID3v1 and ID3v2 stages.
func AnalyzeContext(ctx context.Context, path string, opts ...Option) (*FileInfo, error) {
	if remotePath.MatchString(path) {
		return nil, &UnsupportedSourceError{
			Path:   path,
			Reason: "remote sources are not supported",
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceUnavailableError{Path: path, Err: err}
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, &SourceUnavailableError{Path: path, Err: err}
	}
	if stat.IsDir() {
		return nil, &UnsupportedSourceError{Path: path, Reason: "path is a directory"}
	}

	return analyze(ctx, binary.NewCursor(f, stat.Size(), path), newOptions(opts))
}

// AnalyzeReader decodes tags from an already open source holding size bytes.
// name labels the source in errors and warnings. r is not closed.
func AnalyzeReader(r io.ReadSeeker, size int64, name string, opts ...Option) (*FileInfo, error) {
	return analyze(context.Background(), binary.NewCursor(r, size, name), newOptions(opts))
}

func analyze(ctx context.Context, cur *binary.Cursor, o *analyzeOptions) (*FileInfo, error) {
	size := cur.Size()
	info := &FileInfo{
		Path:      cur.Name(),
		Size:      size,
		AVDataEnd: size,
	}

	v1, err := id3v1.Decode(cur)
	if err != nil {
		return nil, fmt.Errorf("decode ID3v1: %w", err)
	}
	if v1.Tag != nil {
		info.ID3v1 = v1.Tag
		info.AVDataEnd = max(size-v1.Shrink, 0)
		o.logger.Debug("found ID3v1 tag",
			"path", info.Path,
			"version", v1.Tag.Version,
			"duplicate", v1.Tag.Duplicate)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v2, err := id3v2.Decode(cur, 0, o.id3v2Options())
	if err != nil {
		return nil, fmt.Errorf("decode ID3v2: %w", err)
	}
	info.Warnings = v2.Warnings
	if v2.Tag != nil {
		info.ID3v2 = v2.Tag
		// A tag that claims to reach into the trailer must not push the
		// audio start past its end.
		info.AVDataOffset = min(v2.Tag.OffsetEnd, info.AVDataEnd)
	}

	if o.strictParsing && len(info.Warnings) > 0 {
		w := info.Warnings[0]
		return nil, &CorruptedTagError{
			Path:   info.Path,
			Reason: fmt.Sprintf("%s: %s", w.Stage, w.Message),
			Offset: w.Offset,
		}
	}
	if o.ignoreWarnings {
		info.Warnings = nil
	}

	return info, nil
}

// ReadID3v1 decodes the trailer tag at the end of cur. The result is nil when
// the source has no trailer tag.
func ReadID3v1(cur *Cursor) (*ID3v1Tag, error) {
	res, err := id3v1.Decode(cur)
	return res.Tag, err
}

// ReadID3v2 decodes an ID3v2 tag that starts at offset in cur. The tag is nil
// when no tag marker is found there.
func ReadID3v2(cur *Cursor, offset int64, opts ...Option) (*ID3v2Tag, []Warning, error) {
	o := newOptions(opts)
	res, err := id3v2.Decode(cur, offset, o.id3v2Options())
	if err != nil {
		return nil, nil, err
	}
	if o.ignoreWarnings {
		res.Warnings = nil
	}
	return res.Tag, res.Warnings, nil
}

// AnalyzeMany analyses multiple files concurrently.
//
// Files are decoded in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. The first
// failure cancels the remaining work and is returned.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	infos, err := id3meta.AnalyzeMany(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, info := range infos {
//		fmt.Println(info.Path, info.AudioDataSize())
//	}
func AnalyzeMany(ctx context.Context, paths ...string) ([]*FileInfo, error) {
	return AnalyzeManyWith(ctx, paths, nil)
}

// AnalyzeManyWith is AnalyzeMany with options applied to every file. When
// progress is non-nil it is called once per finished file, from the worker
// goroutine that analysed it.
func AnalyzeManyWith(ctx context.Context, paths []string, progress func(path string), opts ...Option) ([]*FileInfo, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*FileInfo, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			info, err := AnalyzeContext(ctx, path, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = info
			if progress != nil {
				progress(path)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// DefaultQuirks returns the writer defects tolerated by default.
func DefaultQuirks() Quirks {
	return id3v2.DefaultQuirks()
}
