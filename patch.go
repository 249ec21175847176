package ink

import "image"

// Patch is the single-channel working buffer of one glyph: the ink mask
// before and after deformation, erosion and diffusion. Values range from 0
// (no ink) to 255 (full ink). A Patch lives for one DrawChar call; stages
// that resample return a new Patch instead of mutating their input.
type Patch struct {
	width  int
	height int
	data   []uint8
}

// NewPatch creates an empty patch with the given dimensions.
func NewPatch(width, height int) *Patch {
	width, height = max(width, 0), max(height, 0)
	return &Patch{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// patchFromAlpha copies an alpha image into a new patch anchored at (0, 0).
// The source bounds may start anywhere.
func patchFromAlpha(a *image.Alpha) *Patch {
	b := a.Bounds()
	p := NewPatch(b.Dx(), b.Dy())
	for y := 0; y < p.height; y++ {
		i := a.PixOffset(b.Min.X, b.Min.Y+y)
		copy(p.data[y*p.width:(y+1)*p.width], a.Pix[i:i+p.width])
	}
	return p
}

// Alpha returns an *image.Alpha view sharing the patch's pixels.
func (p *Patch) Alpha() *image.Alpha {
	return &image.Alpha{
		Pix:    p.data,
		Stride: p.width,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// Bounds returns the patch dimensions as an image.Rectangle.
func (p *Patch) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// Width returns the patch width.
func (p *Patch) Width() int { return p.width }

// Height returns the patch height.
func (p *Patch) Height() int { return p.height }

// At returns the ink value at (x, y).
// Returns 0 for coordinates outside the patch bounds.
func (p *Patch) At(x, y int) uint8 {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0
	}
	return p.data[y*p.width+x]
}

// Set sets the ink value at (x, y).
// Coordinates outside the patch bounds are ignored.
func (p *Patch) Set(x, y int, value uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.data[y*p.width+x] = value
}

// Clone creates a copy of the patch.
func (p *Patch) Clone() *Patch {
	clone := NewPatch(p.width, p.height)
	copy(clone.data, p.data)
	return clone
}

// Data returns the underlying row-major pixel slice.
func (p *Patch) Data() []uint8 {
	return p.data
}

// Coverage counts pixels whose ink value is at least threshold.
func (p *Patch) Coverage(threshold uint8) int {
	n := 0
	for _, v := range p.data {
		if v >= threshold {
			n++
		}
	}
	return n
}
