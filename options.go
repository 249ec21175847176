package ink

// Option configures a Brush during creation.
//
// Example:
//
//	// Still brush, deterministic
//	b, err := ink.NewBrush(ink.WithSeed(7))
//
//	// Lively hand loaded from a file
//	b, err := ink.NewBrush(ink.WithConfig(cfg), ink.WithCharJitter(2, 2))
type Option func(*brushOptions)

// brushOptions holds optional configuration for Brush creation.
type brushOptions struct {
	cfg       Config
	noiseSeed *int64
}

// defaultOptions returns the default brush options.
func defaultOptions() brushOptions {
	return brushOptions{
		cfg:       DefaultConfig(),
		noiseSeed: nil, // falls back to cfg.Seed
	}
}

// WithConfig replaces the whole configuration. Options applied after it
// refine the replacement.
func WithConfig(cfg Config) Option {
	return func(o *brushOptions) {
		o.cfg = cfg
	}
}

// WithSeed sets the session seed.
func WithSeed(seed int64) Option {
	return func(o *brushOptions) {
		o.cfg.Seed = seed
	}
}

// WithNoiseSeed seeds the paper fibres independently of the session seed,
// so the same paper can be reused across differently seeded sessions.
func WithNoiseSeed(seed int64) Option {
	return func(o *brushOptions) {
		o.noiseSeed = &seed
	}
}

// WithCharJitter sets the per-character anchor jitter bounds.
func WithCharJitter(x, y int) Option {
	return func(o *brushOptions) {
		o.cfg.CharJitter = Pt(x, y)
	}
}

// WithSegmentDrift sets the per-segment offset bounds.
func WithSegmentDrift(x, y int) Option {
	return func(o *brushOptions) {
		o.cfg.SegmentDrift = Pt(x, y)
	}
}

// WithDrift sets the column drift parameters.
func WithDrift(d DriftConfig) Option {
	return func(o *brushOptions) {
		o.cfg.Drift = d
	}
}

// WithVariation sets the ordinary variation amplitudes.
func WithVariation(v VariationConfig) Option {
	return func(o *brushOptions) {
		o.cfg.Variation = v
	}
}

// WithGlyphModel sets the multi-state glyph model tuning.
func WithGlyphModel(g GlyphModelConfig) Option {
	return func(o *brushOptions) {
		o.cfg.GlyphModel = g
	}
}
