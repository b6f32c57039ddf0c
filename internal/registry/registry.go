// Package registry maps ID3v2 frame identifiers to payload decoders.
package registry

import (
	"slices"
	"sync"

	"github.com/simonhull/id3meta/internal/types"
)

// FrameDecoder is the interface per-type frame decoders implement.
type FrameDecoder interface {
	// DecodeFrame turns a frame payload into structured content.
	// An error leaves the frame undecoded; the raw payload is kept.
	DecodeFrame(in types.FrameInput) (types.FrameContent, error)
}

// FrameDecoderFunc adapts a plain function to FrameDecoder.
type FrameDecoderFunc func(in types.FrameInput) (types.FrameContent, error)

// DecodeFrame calls f(in).
func (f FrameDecoderFunc) DecodeFrame(in types.FrameInput) (types.FrameContent, error) {
	return f(in)
}

// Registry maps frame identifiers to decoders. It is safe for concurrent
// use. An empty Registry decodes nothing, so every frame passes through with
// its raw payload only.
type Registry struct {
	decoders map[string]FrameDecoder
	mu       sync.RWMutex
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{decoders: make(map[string]FrameDecoder)}
}

// Register registers a decoder for one or more frame identifiers, replacing
// any decoder already registered for them.
func (r *Registry) Register(d FrameDecoder, ids ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range ids {
		r.decoders[id] = d
	}
}

// Lookup returns the decoder for a frame identifier.
// Returns nil if no decoder is registered for the identifier.
func (r *Registry) Lookup(id string) FrameDecoder {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.decoders[id]
}

// IDs returns the registered identifiers in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.decoders))
	for id := range r.decoders {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Clone returns an independent copy of r.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c := NewRegistry()
	for id, d := range r.decoders {
		c.decoders[id] = d
	}
	return c
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry. Decoder packages fill it from
// their init functions.
func Default() *Registry {
	return defaultRegistry
}

// Register registers a decoder in the default registry.
// This is called by decoder packages during initialization (init functions).
func Register(d FrameDecoder, ids ...string) {
	defaultRegistry.Register(d, ids...)
}
