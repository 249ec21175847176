package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrEmptySources is returned when a Fallback is built from no sources.
	ErrEmptySources = errors.New("text: sources cannot be empty")

	// ErrGlyphNotFound is returned when no font covers a character.
	ErrGlyphNotFound = errors.New("text: glyph not found")

	// ErrInvalidChunk is returned by Chunk for a non-positive length.
	ErrInvalidChunk = errors.New("text: chunk length must be positive")
)
