package text

import "golang.org/x/image/font"

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	cacheLimit int
	hinting    font.Hinting
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		cacheLimit: 512, // Default cache limit
		hinting:    font.HintingNone,
	}
}

// WithCacheLimit sets the maximum number of cached glyph masks.
// A value of 0 disables the cache limit.
func WithCacheLimit(n int) SourceOption {
	return func(c *sourceConfig) {
		c.cacheLimit = n
	}
}

// WithHinting sets the outline hinting used when rasterizing.
// Brush fonts usually look best unhinted, which is the default.
func WithHinting(h font.Hinting) SourceOption {
	return func(c *sourceConfig) {
		c.hinting = h
	}
}
