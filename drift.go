package ink

import "math"

// DriftConfig controls the slow lateral wander of a column.
type DriftConfig struct {
	// StepX and StepY bound the integer kick added per character.
	// A zero step freezes that axis and draws nothing from the RNG.
	StepX int `toml:"step_x"`
	StepY int `toml:"step_y"`

	// MaxX and MaxY clamp the accumulated offset. Zero means unbounded.
	MaxX int `toml:"max_x"`
	MaxY int `toml:"max_y"`

	// Damping is the fraction of the previous offset carried forward.
	Damping float64 `toml:"damping"`
}

// DriftState is the accumulated column drift. The zero value is the
// state at the start of a column.
type DriftState struct {
	DX, DY float64
}

// NewDriftState returns the drift at the start of a column.
func NewDriftState() DriftState {
	return DriftState{}
}

// Step advances the drift by one character. The x axis is drawn before
// the y axis; an axis with a zero step keeps its value untouched.
func (s DriftState) Step(rng *RNG, cfg DriftConfig) DriftState {
	next := s
	if cfg.StepX != 0 {
		next.DX = settle(cfg.Damping*s.DX+float64(rng.IntRange(-cfg.StepX, cfg.StepX)), cfg.MaxX)
	}
	if cfg.StepY != 0 {
		next.DY = settle(cfg.Damping*s.DY+float64(rng.IntRange(-cfg.StepY, cfg.StepY)), cfg.MaxY)
	}
	return next
}

// Offset returns the drift as a pixel offset.
func (s DriftState) Offset() Point {
	return Point{X: int(s.DX), Y: int(s.DY)}
}

// settle rounds v to the nearest integer and clamps it to ±limit.
func settle(v float64, limit int) float64 {
	v = math.Round(v)
	if limit == 0 {
		return v
	}
	l := math.Abs(float64(limit))
	return math.Max(-l, math.Min(l, v))
}
