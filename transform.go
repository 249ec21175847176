package ink

import (
	"fmt"
	stdimage "image"
	"math"

	"github.com/gogpu/ink/internal/image"
)

// Rasterizer turns a character into a coverage mask at a nominal pixel
// size. Implementations decide how the glyph sits inside the mask; the
// compositor centres the mask in its working patch.
type Rasterizer interface {
	Rasterize(ch rune, size int) (*stdimage.Alpha, error)
}

// RasterizerFunc adapts a function to the Rasterizer interface.
type RasterizerFunc func(ch rune, size int) (*stdimage.Alpha, error)

// Rasterize calls f(ch, size).
func (f RasterizerFunc) Rasterize(ch rune, size int) (*stdimage.Alpha, error) {
	return f(ch, size)
}

// patchPadding returns the margin around the glyph box. It grows with the
// glyph so rotated or halo'd strokes stay inside the patch.
func patchPadding(size int) int {
	return max(20, size/2)
}

// patchSide returns the side of the square working patch.
func patchSide(size int) int {
	return 2*size + 2*patchPadding(size)
}

// rasterPatch rasterizes ch and centres the mask in a fresh working patch.
// Mask content larger than the patch is cropped symmetrically.
func rasterPatch(r Rasterizer, ch rune, size int) (*Patch, error) {
	mask, err := r.Rasterize(ch, size)
	if err != nil {
		return nil, fmt.Errorf("ink: rasterize %q: %w", ch, err)
	}
	if mask == nil {
		return nil, fmt.Errorf("%w: rasterizer returned no mask for %q", ErrInvalidInput, ch)
	}

	side := patchSide(size)
	p := NewPatch(side, side)
	mb := mask.Bounds()
	ox := (side - mb.Dx()) / 2
	oy := (side - mb.Dy()) / 2
	for y := 0; y < mb.Dy(); y++ {
		py := oy + y
		if py < 0 || py >= side {
			continue
		}
		for x := 0; x < mb.Dx(); x++ {
			px := ox + x
			if px < 0 || px >= side {
				continue
			}
			p.data[py*side+px] = mask.AlphaAt(mb.Min.X+x, mb.Min.Y+y).A
		}
	}
	return p, nil
}

// shearPatch applies a horizontal shear about the patch centre. A
// destination pixel (x, y) samples the source at x + shear*(y - cy).
func shearPatch(p *Patch, shear float64) *Patch {
	cy := float64(p.height) / 2
	return patchFromAlpha(image.Transform(p.Alpha(), image.ShearAt(-shear, cy)))
}

// scalePatch resizes the glyph by (sx, sy) and re-centres it.
func scalePatch(p *Patch, sx, sy float64) *Patch {
	return patchFromAlpha(image.ScaleCentered(p.Alpha(), sx, sy))
}

// rotatePatch rotates counter-clockwise by deg degrees about the centre,
// keeping the patch size.
func rotatePatch(p *Patch, deg float64) *Patch {
	rad := deg * math.Pi / 180
	cx := float64(p.width) / 2
	cy := float64(p.height) / 2
	// y points down, so a visual counter-clockwise turn is a negative angle.
	return patchFromAlpha(image.Transform(p.Alpha(), image.RotateAt(-rad, cx, cy)))
}

// deform runs shear, scale and rotation in that order, skipping identity
// stages.
func deform(p *Patch, d Deformation) *Patch {
	if d.Shear != 0 {
		p = shearPatch(p, d.Shear)
	}
	sx := d.Scale
	sy := d.Scale * d.AnisotropyY
	if sx != 1 || sy != 1 {
		if !(sx > 0) || !(sy > 0) {
			Logger().Warn("ink: degenerate scale clamped", "scale", d.Scale, "anisotropy_y", d.AnisotropyY)
		}
		p = scalePatch(p, sx, sy)
	}
	if d.Rotation != 0 {
		p = rotatePatch(p, d.Rotation)
	}
	return p
}
