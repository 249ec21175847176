package ink

import "fmt"

// Brush is one rendering session: the configuration, the single RNG every
// stochastic decision draws from, the multi-state glyph model with its
// segment memory, and the compositor with its paper fibres.
//
// A Brush is not safe for concurrent use. Render parallel works with
// separate brushes.
type Brush struct {
	cfg        Config
	rng        *RNG
	glyphs     *GlyphModel
	compositor *Compositor
}

// NewBrush creates a session. The configuration is validated before
// anything is allocated.
func NewBrush(opts ...Option) (*Brush, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("ink: new brush: %w", err)
	}

	noiseSeed := o.cfg.Seed
	if o.noiseSeed != nil {
		noiseSeed = *o.noiseSeed
	}

	b := &Brush{
		cfg:        o.cfg,
		rng:        NewRNG(o.cfg.Seed),
		glyphs:     NewGlyphModel(o.cfg.GlyphModel),
		compositor: NewCompositor(noiseSeed, o.cfg.CharJitter),
	}
	Logger().Info("ink: brush created", "seed", o.cfg.Seed, "noise_seed", noiseSeed, "glyphs", o.cfg.GlyphModel.Glyphs)
	return b, nil
}

// Config returns the session configuration.
func (b *Brush) Config() Config { return b.cfg }

// RNG returns the session stream.
func (b *Brush) RNG() *RNG { return b.rng }

// GlyphModel returns the session's multi-state glyph model.
func (b *Brush) GlyphModel() *GlyphModel { return b.glyphs }

// JitterPoint offsets p by the configured character jitter.
func (b *Brush) JitterPoint(p Point) Point {
	return jitterPoint(b.rng, p, b.cfg.CharJitter)
}

// BeginSegment draws the offset shared by every character of a new
// segment. Nothing is drawn when segment drift is disabled.
func (b *Brush) BeginSegment() Point {
	return jitterPoint(b.rng, Point{}, b.cfg.SegmentDrift)
}

// StepDrift advances a column's drift by one character.
func (b *Brush) StepDrift(s DriftState) DriftState {
	return s.Step(b.rng, b.cfg.Drift)
}

// SampleVariation draws ordinary per-character variation.
func (b *Brush) SampleVariation(ctx GlyphContext) Deformation {
	return SampleVariation(b.rng, b.cfg.Variation, ctx)
}

// SampleGlyph draws from the multi-state model regardless of ctx.Char.
func (b *Brush) SampleGlyph(ctx GlyphContext) GlyphSample {
	return b.glyphs.Sample(b.rng, ctx.Segment, ctx.Position)
}

// Deform routes ctx.Char to the multi-state model when it handles the
// character and to ordinary variation otherwise.
func (b *Brush) Deform(ctx GlyphContext) Deformation {
	if b.glyphs.Handles(ctx.Char) {
		return b.SampleGlyph(ctx).Deformation
	}
	return b.SampleVariation(ctx)
}

// DrawChar writes g centred on at using the session RNG.
func (b *Brush) DrawChar(dst *Canvas, at Point, g Glyph, r Rasterizer) error {
	return b.compositor.DrawChar(dst, at, g, r, b.rng)
}
