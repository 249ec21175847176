package ink

// Weights of the column and row factors in the per-character amplitude.
const (
	columnWeight = 0.6
	rowWeight    = 0.4

	// Characters at the head of a column are written more carefully.
	boundaryRows    = 2
	boundaryDamping = 0.7

	// A character repeated next to itself is written more uniformly.
	repeatDamping = 0.65

	scaleDamping = 0.8
)

// VariationConfig sets the amplitude of ordinary per-character variation.
// A zero limit disables that axis.
type VariationConfig struct {
	RotateDeg float64 `toml:"rotate_deg"`
	ShearX    float64 `toml:"shear_x"`
	Scale     float64 `toml:"scale"`
}

// GlyphContext describes where a character sits in the text.
// Prev and Next are 0 when there is no neighbour.
type GlyphContext struct {
	Char    rune
	Prev    rune
	Next    rune
	Row     int
	Column  int
	Segment int

	// Position is the character's relative position in its segment, in [0, 1].
	Position float64
}

// Deformation is the geometric variation applied to one glyph.
type Deformation struct {
	Rotation    float64 // degrees, counter-clockwise
	Shear       float64 // horizontal shear factor
	Scale       float64 // uniform scale factor
	AnisotropyY float64 // extra vertical scale factor
}

// NoDeformation leaves a glyph untouched.
var NoDeformation = Deformation{Scale: 1, AnisotropyY: 1}

// SampleVariation draws the ordinary variation for a character. Rotation,
// shear and scale are drawn in that order; an axis whose limit is zero
// makes no draw.
func SampleVariation(rng *RNG, cfg VariationConfig, ctx GlyphContext) Deformation {
	amp := columnWeight + rowWeight
	if ctx.Row < boundaryRows {
		amp *= boundaryDamping
	}
	if ctx.Char != 0 && (ctx.Prev == ctx.Char || ctx.Next == ctx.Char) {
		amp *= repeatDamping
	}

	d := NoDeformation
	if cfg.RotateDeg != 0 {
		d.Rotation = rng.Uniform(-cfg.RotateDeg, cfg.RotateDeg) * amp
	}
	if cfg.ShearX != 0 {
		d.Shear = rng.Uniform(-cfg.ShearX, cfg.ShearX) * amp
	}
	if cfg.Scale != 0 {
		d.Scale = 1 + rng.Uniform(-cfg.Scale, cfg.Scale)*amp*scaleDamping
	}
	return d
}
