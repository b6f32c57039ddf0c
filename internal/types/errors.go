package types

import "fmt"

// SourceUnavailableError is returned when a local source cannot be opened
// or sized.
type SourceUnavailableError struct {
	Err  error
	Path string
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("%s: source unavailable: %v", e.Path, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

// UnsupportedSourceError is returned for sources that are never opened,
// such as remote URLs.
type UnsupportedSourceError struct {
	Path   string
	Reason string
}

func (e *UnsupportedSourceError) Error() string {
	return fmt.Sprintf("%s: unsupported source: %s", e.Path, e.Reason)
}

// UnsupportedVersionError is returned when an ID3v2 header declares a major
// version above 4.
type UnsupportedVersionError struct {
	Path  string
	Major byte
	Minor byte
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("%s: unsupported ID3v2 version 2.%d.%d", e.Path, e.Major, e.Minor)
}

// OutOfBoundsError is returned when attempting to read beyond the end of a
// buffer or file.
type OutOfBoundsError struct {
	Path   string
	What   string
	Offset int64
	Length int
	Size   int64
}

func (e *OutOfBoundsError) Error() string {
	if e.Offset >= e.Size {
		return fmt.Sprintf("%s: offset %d out of bounds (size: %d) while reading %s",
			e.Path, e.Offset, e.Size, e.What)
	}
	return fmt.Sprintf("%s: read of %d bytes at offset %d would exceed size %d while reading %s",
		e.Path, e.Length, e.Offset, e.Size, e.What)
}

// CorruptedTagError is returned in strict mode when a tag is structurally
// invalid.
type CorruptedTagError struct {
	Path   string
	Reason string
	Offset int64
}

func (e *CorruptedTagError) Error() string {
	return fmt.Sprintf("%s: corrupted tag at offset %d: %s", e.Path, e.Offset, e.Reason)
}

// Warning represents a non-fatal issue encountered during parsing.
//
// Warnings indicate problems that don't prevent tag extraction but may
// indicate corrupted or unusual data. Examples include:
//   - An invalid frame identifier ending the frame walk
//   - A frame size recovered from a broken writer
//   - Non-zero bytes in padding
//
// Warnings are collected in FileInfo.Warnings during analysis.
type Warning struct {
	// Stage where the warning occurred
	Stage string // "id3v1", "id3v2", "frame"

	// Warning message
	Message string

	// Offset where the issue occurred (0 if not applicable)
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
