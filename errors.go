package id3meta

import (
	"github.com/simonhull/id3meta/internal/types"
)

// SourceUnavailableError is an alias to types.SourceUnavailableError.
type SourceUnavailableError = types.SourceUnavailableError

// UnsupportedSourceError is an alias to types.UnsupportedSourceError.
type UnsupportedSourceError = types.UnsupportedSourceError

// UnsupportedVersionError is an alias to types.UnsupportedVersionError.
type UnsupportedVersionError = types.UnsupportedVersionError

// OutOfBoundsError is an alias to types.OutOfBoundsError.
type OutOfBoundsError = types.OutOfBoundsError

// CorruptedTagError is an alias to types.CorruptedTagError.
type CorruptedTagError = types.CorruptedTagError

// Warning is an alias to types.Warning.
type Warning = types.Warning
