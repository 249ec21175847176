package ink

// GlyphState is the structural habit a multi-state glyph is written in.
type GlyphState uint8

const (
	// StateStable is the compact, upright form.
	StateStable GlyphState = iota
	// StateFlow is the running form with a pronounced lean.
	StateFlow
	// StateVertical is the elongated form used late in a segment.
	StateVertical

	numStates = 3
)

// String returns the state name.
func (s GlyphState) String() string {
	switch s {
	case StateStable:
		return "stable"
	case StateFlow:
		return "flow"
	case StateVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// VariantTemplate is one written variant of a glyph state: a base pose and
// the amplitude of the random perturbation around it.
type VariantTemplate struct {
	BaseRotation    float64
	BaseShear       float64
	BaseScale       float64
	BaseAnisotropyY float64
	AmpRotation     float64
	AmpShear        float64
	AmpScale        float64
	AmpAnisotropyY  float64
}

var templateBank = [numStates][]VariantTemplate{
	StateStable: {
		{0.0, 0.00, 1.00, 1.00, 0.9, 0.025, 0.020, 0.030},
		{0.3, -0.02, 0.99, 0.97, 1.0, 0.030, 0.020, 0.035},
		{-0.4, 0.03, 1.01, 0.95, 1.1, 0.030, 0.020, 0.040},
		{0.1, 0.01, 0.98, 1.03, 1.0, 0.025, 0.025, 0.040},
	},
	StateFlow: {
		{-0.6, 0.06, 1.02, 1.02, 1.6, 0.060, 0.030, 0.050},
		{0.7, -0.06, 0.99, 0.98, 1.7, 0.060, 0.030, 0.055},
		{-0.4, 0.05, 1.04, 0.96, 1.4, 0.055, 0.035, 0.050},
		{0.5, -0.05, 0.97, 1.05, 1.5, 0.055, 0.035, 0.055},
		{0.3, 0.04, 1.01, 1.00, 1.4, 0.055, 0.030, 0.050},
	},
	StateVertical: {
		{-0.6, 0.05, 1.00, 1.10, 1.3, 0.040, 0.025, 0.060},
		{0.7, -0.06, 0.98, 1.14, 1.4, 0.045, 0.025, 0.070},
		{0.1, 0.02, 1.01, 1.18, 1.1, 0.035, 0.020, 0.080},
		{-0.3, 0.03, 0.99, 1.22, 1.2, 0.040, 0.020, 0.085},
		{0.4, -0.02, 1.02, 1.12, 1.2, 0.035, 0.025, 0.070},
	},
}

// Templates returns a copy of the variant templates for a state.
// An unknown state yields nil.
func Templates(s GlyphState) []VariantTemplate {
	if int(s) >= numStates {
		return nil
	}
	out := make([]VariantTemplate, len(templateBank[s]))
	copy(out, templateBank[s])
	return out
}

// sample perturbs the template. Draws happen in the order rotation, shear,
// scale, anisotropy.
func (t VariantTemplate) sample(rng *RNG) Deformation {
	return Deformation{
		Rotation:    t.BaseRotation + rng.Uniform(-t.AmpRotation, t.AmpRotation),
		Shear:       t.BaseShear + rng.Uniform(-t.AmpShear, t.AmpShear),
		Scale:       t.BaseScale * (1 + rng.Uniform(-t.AmpScale, t.AmpScale)),
		AnisotropyY: t.BaseAnisotropyY * (1 + rng.Uniform(-t.AmpAnisotropyY, t.AmpAnisotropyY)),
	}
}
