package ink

import (
	"math"
)

// GlyphModelConfig tunes the multi-state glyph model.
type GlyphModelConfig struct {
	// Glyphs lists the characters that are written with the model.
	Glyphs string `toml:"glyphs"`

	// StateProbs are the base probabilities of stable, flow and vertical.
	StateProbs [numStates]float64 `toml:"state_probs"`

	// Stickiness is the chance of reusing the segment's previous pick.
	Stickiness float64 `toml:"stickiness"`

	// PositionWeight scales how much the position in the segment biases
	// the state choice.
	PositionWeight float64 `toml:"position_weight"`

	// MirrorProb is the chance of negating rotation and shear.
	MirrorProb float64 `toml:"mirror_prob"`

	// DebiasGain pulls each segment's shear mean back toward zero.
	DebiasGain float64 `toml:"debias_gain"`
}

// DefaultGlyphModelConfig returns the tuning used for 之.
func DefaultGlyphModelConfig() GlyphModelConfig {
	return GlyphModelConfig{
		Glyphs:         "之",
		StateProbs:     [numStates]float64{0.34, 0.40, 0.26},
		Stickiness:     0.10,
		PositionWeight: 0.24,
		MirrorProb:     0.68,
		DebiasGain:     0.82,
	}
}

// GlyphSample is one draw from the multi-state model.
type GlyphSample struct {
	Deformation

	State    GlyphState
	Template int

	// Reused reports that the segment's cached state and template were kept.
	Reused bool
}

type statePick struct {
	state    GlyphState
	template int
}

type shearStats struct {
	sum   float64
	count int
}

// SegmentMemory remembers, per text segment, the last state/template pick
// and the running mean of emitted shear. It lives for one rendering session.
type SegmentMemory struct {
	picks map[int]statePick
	shear map[int]shearStats
}

// NewSegmentMemory returns an empty memory.
func NewSegmentMemory() *SegmentMemory {
	return &SegmentMemory{
		picks: make(map[int]statePick),
		shear: make(map[int]shearStats),
	}
}

// Pick returns the cached state and template of a segment.
func (m *SegmentMemory) Pick(segment int) (GlyphState, int, bool) {
	p, ok := m.picks[segment]
	return p.state, p.template, ok
}

// ShearMean returns the mean recorded shear of a segment and how many
// values it averages. An unseen segment has mean 0.
func (m *SegmentMemory) ShearMean(segment int) (float64, int) {
	s := m.shear[segment]
	if s.count == 0 {
		return 0, 0
	}
	return s.sum / float64(s.count), s.count
}

// Reset forgets every segment.
func (m *SegmentMemory) Reset() {
	clear(m.picks)
	clear(m.shear)
}

func (m *SegmentMemory) remember(segment int, state GlyphState, template int) {
	m.picks[segment] = statePick{state: state, template: template}
}

func (m *SegmentMemory) recordShear(segment int, shear float64) {
	s := m.shear[segment]
	s.sum += shear
	s.count++
	m.shear[segment] = s
}

// GlyphModel writes structurally ambiguous characters in one of several
// habitual states, with segment-level stickiness and shear de-biasing.
//
// A GlyphModel is not safe for concurrent use.
type GlyphModel struct {
	cfg    GlyphModelConfig
	glyphs map[rune]struct{}
	memory *SegmentMemory
}

// NewGlyphModel creates a model with an empty segment memory.
func NewGlyphModel(cfg GlyphModelConfig) *GlyphModel {
	glyphs := make(map[rune]struct{})
	for _, r := range cfg.Glyphs {
		glyphs[r] = struct{}{}
	}
	return &GlyphModel{
		cfg:    cfg,
		glyphs: glyphs,
		memory: NewSegmentMemory(),
	}
}

// Config returns the model configuration.
func (m *GlyphModel) Config() GlyphModelConfig { return m.cfg }

// Handles reports whether ch is written with the model.
func (m *GlyphModel) Handles(ch rune) bool {
	_, ok := m.glyphs[ch]
	return ok
}

// Memory returns the session's segment memory.
func (m *GlyphModel) Memory() *SegmentMemory { return m.memory }

// StateProbabilities biases the base probabilities by the relative position
// p in the segment: early characters lean stable, middle ones lean flow,
// late ones lean vertical. The result sums to 1.
func (m *GlyphModel) StateProbabilities(p float64) [numStates]float64 {
	p = math.Max(0, math.Min(1, p))
	w := m.cfg.PositionWeight

	stableBias := (1 - p) * w
	flowBias := (1 - math.Abs(p-0.5)*2) * w
	vertBias := p * w * 0.8

	probs := [numStates]float64{
		math.Max(0.01, m.cfg.StateProbs[StateStable]+stableBias-0.3*vertBias),
		math.Max(0.01, m.cfg.StateProbs[StateFlow]+flowBias),
		math.Max(0.01, m.cfg.StateProbs[StateVertical]+vertBias-0.3*stableBias),
	}
	total := probs[0] + probs[1] + probs[2]
	for i := range probs {
		probs[i] /= total
	}
	return probs
}

// pick chooses the state and template for a segment, honouring stickiness.
func (m *GlyphModel) pick(rng *RNG, segment int, p float64) (GlyphState, int, bool) {
	if state, tpl, ok := m.memory.Pick(segment); ok {
		if rng.Float64() < m.cfg.Stickiness {
			return state, tpl, true
		}
	}

	probs := m.StateProbabilities(p)
	u := rng.Float64()
	state := StateVertical
	switch {
	case u < probs[StateStable]:
		state = StateStable
	case u < probs[StateStable]+probs[StateFlow]:
		state = StateFlow
	}
	tpl := rng.IntN(len(templateBank[state]))
	m.memory.remember(segment, state, tpl)
	return state, tpl, false
}

// Sample draws a deformation for a multi-state character in segment at
// relative position p. The emitted shear is corrected by the segment's
// running mean and then recorded.
func (m *GlyphModel) Sample(rng *RNG, segment int, p float64) GlyphSample {
	state, tpl, reused := m.pick(rng, segment, p)
	d := templateBank[state][tpl].sample(rng)

	if rng.Float64() < m.cfg.MirrorProb {
		d.Rotation = -d.Rotation
		d.Shear = -d.Shear
	}

	mean, _ := m.memory.ShearMean(segment)
	d.Shear -= m.cfg.DebiasGain * mean
	m.memory.recordShear(segment, d.Shear)

	return GlyphSample{
		Deformation: d,
		State:       state,
		Template:    tpl,
		Reused:      reused,
	}
}
