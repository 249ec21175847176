package text

import (
	"errors"
	"image"
	"testing"
)

// fakeSource covers a fixed set of runes with solid masks.
type fakeSource struct {
	runes string
	calls int
}

func (f *fakeSource) HasGlyph(r rune) bool {
	for _, c := range f.runes {
		if c == r {
			return true
		}
	}
	return false
}

func (f *fakeSource) Rasterize(_ rune, size int) (*image.Alpha, error) {
	f.calls++
	m := image.NewAlpha(image.Rect(0, 0, size, size))
	for i := range m.Pix {
		m.Pix[i] = 255
	}
	return m, nil
}

func TestNewFallbackErrors(t *testing.T) {
	if _, err := NewFallback(); !errors.Is(err, ErrEmptySources) {
		t.Errorf("NewFallback() error = %v, want ErrEmptySources", err)
	}
	if _, err := NewFallback(&fakeSource{}, nil); err == nil {
		t.Error("NewFallback with nil source = nil error")
	}
}

func TestFallbackPicksFirstCoveringSource(t *testing.T) {
	cjk := &fakeSource{runes: "永之"}
	fb, err := NewFallback(loadTestFont(t), cjk)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := fb.Rasterize('A', 24); err != nil {
		t.Fatalf("Rasterize('A') = %v", err)
	}
	if cjk.calls != 0 {
		t.Error("'A' was rasterized by the fallback font")
	}

	mask, err := fb.Rasterize('永', 24)
	if err != nil {
		t.Fatalf("Rasterize('永') = %v", err)
	}
	if cjk.calls != 1 || mask.Pix[0] != 255 {
		t.Error("'永' was not rasterized by the fallback font")
	}

	if fb.HasGlyph('龍') {
		t.Error("HasGlyph('龍') = true")
	}
	if _, err := fb.Rasterize('龍', 24); !errors.Is(err, ErrGlyphNotFound) {
		t.Errorf("Rasterize('龍') error = %v, want ErrGlyphNotFound", err)
	}
}
