package text

import (
	"fmt"
	"image"
)

// Source is a font that can report coverage and rasterize characters.
type Source interface {
	HasGlyph(r rune) bool
	Rasterize(ch rune, size int) (*image.Alpha, error)
}

// Fallback rasterizes each character with the first source that has it.
// Fallback is safe for concurrent use when its sources are.
type Fallback struct {
	sources []Source
}

// NewFallback creates a Fallback trying sources in order.
func NewFallback(sources ...Source) (*Fallback, error) {
	if len(sources) == 0 {
		return nil, ErrEmptySources
	}
	for i, s := range sources {
		if s == nil {
			return nil, fmt.Errorf("text: fallback source %d is nil", i)
		}
	}
	return &Fallback{sources: sources}, nil
}

// HasGlyph returns true if any source has the glyph.
func (f *Fallback) HasGlyph(r rune) bool {
	return f.sourceFor(r) != nil
}

// Rasterize renders ch with the first covering source.
func (f *Fallback) Rasterize(ch rune, size int) (*image.Alpha, error) {
	s := f.sourceFor(ch)
	if s == nil {
		return nil, fmt.Errorf("%w: %q in %d fallback sources", ErrGlyphNotFound, ch, len(f.sources))
	}
	return s.Rasterize(ch, size)
}

func (f *Fallback) sourceFor(r rune) Source {
	for _, s := range f.sources {
		if s.HasGlyph(r) {
			return s
		}
	}
	return nil
}
