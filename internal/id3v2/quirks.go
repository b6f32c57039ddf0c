package id3v2

import (
	"maps"
	"slices"
)

// Quirks lists known tag-writer defects the frame walk tolerates.
type Quirks struct {
	// Renames maps malformed identifiers to the identifier they stand for.
	Renames map[string]string

	// BrokenWriterIDs are identifiers of junk frames written by broken
	// encoder plugins. Their declared size is trusted and the frame is
	// skipped.
	BrokenWriterIDs []string
}

// DefaultQuirks returns the built-in quirk lists.
func DefaultQuirks() Quirks {
	return Quirks{
		Renames: map[string]string{
			// iTunes X v2.0.3 and v3.0.1
			"COM ": "COMM",
		},
		BrokenWriterIDs: []string{
			// MP3ext
			"\x00MP3",
			"\x00\x00MP",
			" MP3",
			"MP3e",
		},
	}
}

// Clone returns a deep copy of q.
func (q Quirks) Clone() Quirks {
	return Quirks{
		Renames:         maps.Clone(q.Renames),
		BrokenWriterIDs: slices.Clone(q.BrokenWriterIDs),
	}
}

func (q Quirks) rename(id string) string {
	if to, ok := q.Renames[id]; ok {
		return to
	}
	return id
}

func (q Quirks) isBrokenWriterID(id string) bool {
	return slices.Contains(q.BrokenWriterIDs, id)
}
