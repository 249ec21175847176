package ink

import (
	"fmt"
	"math"
)

// Config holds everything that shapes a brush session. It can be decoded
// from TOML; fields left out of a file keep the values they had before
// decoding, so decode on top of DefaultConfig.
type Config struct {
	// Seed drives the session RNG and, unless overridden, the paper fibres.
	Seed int64 `toml:"seed"`

	// CharJitter bounds the per-character anchor jitter in pixels.
	CharJitter Point `toml:"char_jitter"`

	// SegmentDrift bounds the offset drawn at the start of each segment.
	SegmentDrift Point `toml:"segment_drift"`

	Drift      DriftConfig      `toml:"column_drift"`
	Variation  VariationConfig  `toml:"variation"`
	GlyphModel GlyphModelConfig `toml:"glyph_model"`
}

// DefaultConfig returns a still brush: no jitter, no drift, no variation,
// and the default multi-state model for 之.
func DefaultConfig() Config {
	return Config{
		Seed:       42,
		Drift:      DriftConfig{Damping: 0.85},
		GlyphModel: DefaultGlyphModelConfig(),
	}
}

// ExpressiveConfig returns a lively hand suitable for running script.
func ExpressiveConfig() Config {
	cfg := DefaultConfig()
	cfg.CharJitter = Pt(2, 2)
	cfg.SegmentDrift = Pt(3, 0)
	cfg.Drift = DriftConfig{StepX: 2, StepY: 1, MaxX: 6, MaxY: 3, Damping: 0.85}
	cfg.Variation = VariationConfig{RotateDeg: 1.2, ShearX: 0.03, Scale: 0.03}
	return cfg
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	if c.CharJitter.X < 0 || c.CharJitter.Y < 0 {
		return fmt.Errorf("%w: char_jitter %v must be non-negative", ErrInvalidConfig, c.CharJitter)
	}
	if c.SegmentDrift.X < 0 || c.SegmentDrift.Y < 0 {
		return fmt.Errorf("%w: segment_drift %v must be non-negative", ErrInvalidConfig, c.SegmentDrift)
	}

	d := c.Drift
	if d.StepX < 0 || d.StepY < 0 || d.MaxX < 0 || d.MaxY < 0 {
		return fmt.Errorf("%w: column_drift steps and bounds must be non-negative", ErrInvalidConfig)
	}
	if !inUnit(d.Damping) {
		return fmt.Errorf("%w: column_drift.damping %v outside [0, 1]", ErrInvalidConfig, d.Damping)
	}

	v := c.Variation
	limits := [...]struct {
		name  string
		value float64
	}{
		{"rotate_deg", v.RotateDeg},
		{"shear_x", v.ShearX},
		{"scale", v.Scale},
	}
	for _, l := range limits {
		if !(l.value >= 0) || math.IsInf(l.value, 0) {
			return fmt.Errorf("%w: variation.%s %v must be finite and non-negative", ErrInvalidConfig, l.name, l.value)
		}
	}

	return c.GlyphModel.Validate()
}

// Validate reports the first out-of-range field.
func (g GlyphModelConfig) Validate() error {
	total := 0.0
	for _, p := range g.StateProbs {
		if !(p >= 0) || math.IsInf(p, 0) {
			return fmt.Errorf("%w: glyph_model.state_probs %v", ErrInvalidConfig, g.StateProbs)
		}
		total += p
	}
	if total <= 0 {
		return fmt.Errorf("%w: glyph_model.state_probs sum to zero", ErrInvalidConfig)
	}
	if !inUnit(g.Stickiness) {
		return fmt.Errorf("%w: glyph_model.stickiness %v outside [0, 1]", ErrInvalidConfig, g.Stickiness)
	}
	if !inUnit(g.MirrorProb) {
		return fmt.Errorf("%w: glyph_model.mirror_prob %v outside [0, 1]", ErrInvalidConfig, g.MirrorProb)
	}
	if !inUnit(g.DebiasGain) {
		return fmt.Errorf("%w: glyph_model.debias_gain %v outside [0, 1]", ErrInvalidConfig, g.DebiasGain)
	}
	if !(g.PositionWeight >= 0) || math.IsInf(g.PositionWeight, 0) {
		return fmt.Errorf("%w: glyph_model.position_weight %v", ErrInvalidConfig, g.PositionWeight)
	}
	return nil
}

func inUnit(v float64) bool {
	return v >= 0 && v <= 1
}
