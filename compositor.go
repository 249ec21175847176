package ink

import (
	"fmt"
	"math"

	"github.com/gogpu/ink/internal/noise"
)

// MaxGlyphSize bounds the nominal glyph size accepted by DrawChar.
const MaxGlyphSize = 2048

// Glyph is one character to be written.
type Glyph struct {
	Char        rune
	Size        int
	Fill        Color
	Deformation Deformation
	Ink         Ink
}

// Compositor rasterizes characters through the deformation and ink
// physics stages and pastes them onto a canvas.
//
// A Compositor is not safe for concurrent use.
type Compositor struct {
	noise  *noise.Field
	jitter Point
}

// NewCompositor creates a compositor whose paper fibres come from a noise
// field seeded with noiseSeed. Anchors are jittered by up to ±jitter.
func NewCompositor(noiseSeed int64, jitter Point) *Compositor {
	return &Compositor{
		noise:  noise.New(noiseSeed),
		jitter: jitter,
	}
}

// DrawChar writes g centred on at. Random draws (erosion offset, then
// anchor jitter) come from rng. On error the canvas is left untouched.
func (c *Compositor) DrawChar(dst *Canvas, at Point, g Glyph, r Rasterizer, rng *RNG) error {
	if err := validateDraw(dst, g, r, rng); err != nil {
		return err
	}

	p, err := rasterPatch(r, g.Char, g.Size)
	if err != nil {
		return err
	}
	p = deform(p, g.Deformation)
	p = c.applyInk(p, g.Ink, rng)

	at = jitterPoint(rng, at, c.jitter)
	x0 := at.X - p.width/2
	y0 := at.Y - p.height/2
	dst.composite(p, x0, y0, g.Fill)

	Logger().Debug("ink: char drawn",
		"char", string(g.Char),
		"size", g.Size,
		"patch", p.width,
		"at", at,
		"dryness", g.Ink.Dryness,
		"blur", g.Ink.BlurSigma,
	)
	return nil
}

// applyInk runs erosion and diffusion. Each stage is skipped, without
// touching the RNG, when its parameter is negligible.
func (c *Compositor) applyInk(p *Patch, ink Ink, rng *RNG) *Patch {
	if ink.Dryness > minDryness {
		seed := rng.IntRange(0, maxRollSeed)
		rx, ry := rollOffset(seed, p.width, p.height)
		fiber := c.noise.FiberTexture(p.width, p.height)
		p = erode(p, fiber, rx, ry, ink.Dryness)
	} else {
		Logger().Debug("ink: erosion skipped", "dryness", ink.Dryness)
	}
	if ink.BlurSigma > minBlurSigma {
		p = diffuse(p, ink.BlurSigma)
	}
	return p
}

// jitterPoint offsets p by uniform integers in [-j.X, j.X] and
// [-j.Y, j.Y]. Nothing is drawn when both bounds are zero.
func jitterPoint(rng *RNG, p Point, j Point) Point {
	if j.X == 0 && j.Y == 0 {
		return p
	}
	return Point{
		X: p.X + rng.IntRange(-j.X, j.X),
		Y: p.Y + rng.IntRange(-j.Y, j.Y),
	}
}

func validateDraw(dst *Canvas, g Glyph, r Rasterizer, rng *RNG) error {
	switch {
	case dst == nil:
		return fmt.Errorf("%w: nil canvas", ErrInvalidInput)
	case r == nil:
		return fmt.Errorf("%w: nil rasterizer", ErrInvalidInput)
	case rng == nil:
		return fmt.Errorf("%w: nil rng", ErrInvalidInput)
	case g.Size <= 0 || g.Size > MaxGlyphSize:
		return fmt.Errorf("%w: size %d outside [1, %d]", ErrInvalidInput, g.Size, MaxGlyphSize)
	case !(g.Ink.Dryness >= 0 && g.Ink.Dryness <= 1):
		return fmt.Errorf("%w: dryness %v outside [0, 1]", ErrInvalidInput, g.Ink.Dryness)
	case !(g.Ink.BlurSigma >= 0) || math.IsInf(g.Ink.BlurSigma, 0):
		return fmt.Errorf("%w: blur sigma %v", ErrInvalidInput, g.Ink.BlurSigma)
	}
	d := g.Deformation
	for _, v := range [...]float64{d.Rotation, d.Shear, d.Scale, d.AnisotropyY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite deformation %+v", ErrInvalidInput, d)
		}
	}
	return nil
}
