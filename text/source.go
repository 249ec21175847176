package text

import (
	"bytes"
	"fmt"
	"image"
	"math"
	"os"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ink/internal/cache"
)

// FontSource is a loaded font file that rasterizes single characters into
// em-box coverage masks.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use.
type FontSource struct {
	outlines *opentype.Font // x/image outlines, used for rasterization
	cmap     *gotext.Font   // go-text font, used for coverage lookups

	name   string
	config sourceConfig

	// masks keeps rendered glyphs; callers receive copies.
	masks *cache.Cache[maskKey, *image.Alpha]

	// mu guards faces; x/image faces are not safe for concurrent use.
	mu    sync.Mutex
	faces map[int]font.Face
}

type maskKey struct {
	ch   rune
	size int
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is not retained.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	outlines, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	// ParseTTF returns a *Face which embeds the thread-safe *Font.
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse cmap: %w", err)
	}

	s := &FontSource{
		outlines: outlines,
		cmap:     face.Font,
		config:   config,
		masks:    cache.New[maskKey, *image.Alpha](config.cacheLimit),
		faces:    make(map[int]font.Face),
	}
	if name, err := outlines.Name(nil, sfnt.NameIDFamily); err == nil {
		s.name = name
	}
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data, opts...)
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	return s.name
}

// HasGlyph reports whether the font maps r to a glyph.
func (s *FontSource) HasGlyph(r rune) bool {
	gid, ok := s.cmap.NominalGlyph(r)
	return ok && gid != 0
}

// Rasterize renders ch into a size x size em-box mask. The glyph is
// centred horizontally on its advance and sits on a baseline that splits
// the box in the ratio of the font's ascent to descent. Ink outside the
// box is cropped. The returned mask is owned by the caller.
func (s *FontSource) Rasterize(ch rune, size int) (*image.Alpha, error) {
	if size <= 0 {
		return nil, fmt.Errorf("text: size %d must be positive", size)
	}
	if !s.HasGlyph(ch) {
		return nil, fmt.Errorf("%w: %q in %q", ErrGlyphNotFound, ch, s.name)
	}

	mask, err := s.masks.GetOrCreate(maskKey{ch: ch, size: size}, func() (*image.Alpha, error) {
		return s.render(ch, size)
	})
	if err != nil {
		return nil, err
	}
	out := image.NewAlpha(mask.Rect)
	copy(out.Pix, mask.Pix)
	return out, nil
}

// CacheStats reports hits and misses of the glyph mask cache.
func (s *FontSource) CacheStats() cache.Stats {
	return s.masks.Stats()
}

// render draws ch into a fresh em-box mask.
func (s *FontSource) render(ch rune, size int) (*image.Alpha, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	face, err := s.face(size)
	if err != nil {
		return nil, err
	}

	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	advance, ok := face.GlyphAdvance(ch)
	if !ok {
		return mask, nil
	}

	m := face.Metrics()
	ascent := fixedToFloat64(m.Ascent)
	descent := fixedToFloat64(m.Descent)
	baseline := float64(size)
	if ascent+descent > 0 {
		baseline = float64(size) * ascent / (ascent + descent)
	}

	drawer := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot: fixed.Point26_6{
			X: floatToFixed((float64(size) - fixedToFloat64(advance)) / 2),
			Y: floatToFixed(math.Round(baseline)),
		},
	}
	drawer.DrawString(string(ch))
	return mask, nil
}

// face returns the cached face for size. s.mu must be held.
func (s *FontSource) face(size int) (font.Face, error) {
	if f, ok := s.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(s.outlines, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: s.config.hinting,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}
	s.faces[size] = f
	return f, nil
}

// Close releases the cached faces and masks.
func (s *FontSource) Close() error {
	s.masks.Clear()

	s.mu.Lock()
	defer s.mu.Unlock()
	for size, f := range s.faces {
		_ = f.Close()
		delete(s.faces, size)
	}
	return nil
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}

// floatToFixed converts a float64 to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits, so we multiply by 64.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
