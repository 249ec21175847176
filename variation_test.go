package ink

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSampleVariationZeroConfig(t *testing.T) {
	a, b := NewRNG(1), NewRNG(1)
	got := SampleVariation(a, VariationConfig{}, GlyphContext{Char: '永', Row: 4})
	if got != NoDeformation {
		t.Errorf("SampleVariation(zero) = %+v, want %+v", got, NoDeformation)
	}
	if a.Float64() != b.Float64() {
		t.Error("zero config consumed random draws")
	}
}

func TestSampleVariationAmplitude(t *testing.T) {
	cfg := VariationConfig{RotateDeg: 2, ShearX: 0.1, Scale: 0.05}
	tests := []struct {
		name string
		ctx  GlyphContext
		amp  float64
	}{
		{"body", GlyphContext{Char: '永', Row: 5}, 1},
		{"head", GlyphContext{Char: '永', Row: 1}, boundaryDamping},
		{"repeat", GlyphContext{Char: '永', Prev: '永', Row: 5}, repeatDamping},
		{"head repeat", GlyphContext{Char: '永', Next: '永', Row: 0}, boundaryDamping * repeatDamping},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := NewRNG(3)
			maxRot := 0.0
			for range 500 {
				d := SampleVariation(rng, cfg, tt.ctx)
				if math.Abs(d.Rotation) > 2*tt.amp+1e-12 {
					t.Fatalf("Rotation = %v, exceeds %v", d.Rotation, 2*tt.amp)
				}
				if math.Abs(d.Shear) > 0.1*tt.amp+1e-12 {
					t.Fatalf("Shear = %v, exceeds %v", d.Shear, 0.1*tt.amp)
				}
				if math.Abs(d.Scale-1) > 0.05*tt.amp*scaleDamping+1e-12 {
					t.Fatalf("Scale = %v, exceeds 1±%v", d.Scale, 0.05*tt.amp*scaleDamping)
				}
				if d.AnisotropyY != 1 {
					t.Fatalf("AnisotropyY = %v, want 1", d.AnisotropyY)
				}
				maxRot = math.Max(maxRot, math.Abs(d.Rotation))
			}
			if maxRot < 1.5*tt.amp {
				t.Errorf("max |Rotation| = %v, expected near %v", maxRot, 2*tt.amp)
			}
		})
	}
}

func TestSampleVariationDeterministic(t *testing.T) {
	cfg := VariationConfig{RotateDeg: 1.5, ShearX: 0.04, Scale: 0.03}
	run := func() []Deformation {
		rng := NewRNG(21)
		var out []Deformation
		for row := range 12 {
			out = append(out, SampleVariation(rng, cfg, GlyphContext{Char: '書', Row: row}))
		}
		return out
	}
	if diff := cmp.Diff(run(), run()); diff != "" {
		t.Errorf("variation not reproducible (-first +second):\n%s", diff)
	}
}
