package id3meta_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/simonhull/id3meta"
)

// BenchmarkAnalyze measures the cost of analysing a single tagged file.
func BenchmarkAnalyze(b *testing.B) {
	path := writeFile(b, "bench.mp3", llamaTag(), audio(64<<10), llamaTrailer())

	b.ReportAllocs()
	for b.Loop() {
		if _, err := id3meta.Analyze(path); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAnalyzeReader measures decoding without file system overhead.
func BenchmarkAnalyzeReader(b *testing.B) {
	data := bytes.Join([][]byte{llamaTag(), audio(64 << 10), llamaTrailer()}, nil)
	r := bytes.NewReader(data)

	b.ReportAllocs()
	for b.Loop() {
		if _, err := id3meta.AnalyzeReader(r, int64(len(data)), "bench"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAnalyzeMany measures AnalyzeMany scalability.
func BenchmarkAnalyzeMany(b *testing.B) {
	for _, n := range []int{1, 10, 50} {
		b.Run(fmt.Sprintf("%d_files", n), func(b *testing.B) {
			paths := make([]string, n)
			for i := range paths {
				paths[i] = writeFile(b, "bench.mp3", llamaTag(), audio(4096), llamaTrailer())
			}
			ctx := context.Background()

			b.ReportAllocs()
			for b.Loop() {
				if _, err := id3meta.AnalyzeMany(ctx, paths...); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
