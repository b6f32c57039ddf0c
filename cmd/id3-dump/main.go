// Command id3-dump prints the ID3 tags found in audio files.
//
// Usage:
//
//	id3-dump [flags] file.mp3 [file.mp3 ...]
//	id3-dump -watch DIR
//
// Useful for confirming what the decoder actually reads from a file: every
// frame, its flags and offsets, padding, and the remaining audio range.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/simonhull/id3meta"
)

type config struct {
	jsonOutput bool
	frames     bool
	hexBytes   int
	strict     bool
	watchDir   string
	logLevel   string
	logFormat  string
}

func main() {
	var cfg config
	flag.BoolVar(&cfg.jsonOutput, "json", false, "print results as JSON")
	flag.BoolVar(&cfg.frames, "frames", true, "list ID3v2 frames")
	flag.IntVar(&cfg.hexBytes, "hex", 0, "dump the first N payload bytes of every frame")
	flag.BoolVar(&cfg.strict, "strict", false, "fail on the first tag warning")
	flag.StringVar(&cfg.watchDir, "watch", "", "analyse files as they are created or written in `DIR`")
	flag.StringVar(&cfg.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flag.StringVar(&cfg.logFormat, "log-format", "text", "log format (text, json)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: id3-dump [flags] <file.mp3>...\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger, err := newLogger(os.Stderr, cfg.logLevel, cfg.logFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if cfg.watchDir == "" && flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger, flag.Args(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, logger *slog.Logger, paths []string, w io.Writer) error {
	opts := []id3meta.Option{id3meta.WithLogger(logger)}
	if cfg.strict {
		opts = append(opts, id3meta.WithStrictParsing())
	}

	p := &printer{w: w, cfg: cfg}

	failed := 0
	for _, path := range paths {
		info, err := id3meta.AnalyzeContext(ctx, path, opts...)
		if err != nil {
			logger.Error("analysis failed", "path", path, "err", err)
			failed++
			continue
		}
		if err := p.print(info); err != nil {
			return err
		}
	}

	if cfg.watchDir != "" {
		return watch(ctx, cfg.watchDir, logger, func(path string) {
			info, err := id3meta.AnalyzeContext(ctx, path, opts...)
			if err != nil {
				logger.Warn("analysis failed", "path", path, "err", err)
				return
			}
			if err := p.print(info); err != nil {
				logger.Error("write failed", "err", err)
			}
		})
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(paths))
	}
	return nil
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}
