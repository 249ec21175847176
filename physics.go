package ink

import (
	"github.com/gogpu/ink/internal/filter"
)

// Dry-brush and diffusion constants.
const (
	// Dryness below this leaves the glyph untouched.
	minDryness = 0.001
	// Sigma below this leaves the glyph untouched.
	minBlurSigma = 0.01

	erosionThreshold = 0.7
	erosionContrast  = 5.0

	// Pixels with more than this alpha count as stroke interior.
	strokeAlpha = 0.1

	// The stroke core starts coreInset pixels from the edge and is fully
	// protected coreInset+coreRamp pixels in.
	coreInset = 1.5
	coreRamp  = 2.0

	// How much dryness weakens the core protection.
	coreDrying = 0.8

	haloStrength = 0.8

	maxRollSeed = 100000
)

// Ink describes the physical state of the brush for one character.
type Ink struct {
	// Dryness in [0, 1] breaks stroke edges along paper fibres.
	Dryness float64 `toml:"dryness"`
	// BlurSigma >= 0 is the radius of the wet halo, in pixels.
	BlurSigma float64 `toml:"blur_sigma"`
}

// rollOffset turns a seed drawn from the session RNG into a cyclic offset
// of the fibre field.
func rollOffset(seed, width, height int) (int, int) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	return seed % width, (seed / width) % height
}

// erode applies dry-brush erosion: ink survives where the shifted fibre
// field is above the dryness threshold, and the stroke core resists drying
// according to its distance from the stroke edge.
func erode(p *Patch, fiber [][]float64, rollX, rollY int, dryness float64) *Patch {
	w, h := p.width, p.height
	out := NewPatch(w, h)
	if w == 0 || h == 0 {
		return out
	}

	inside := make([]bool, w*h)
	for i, v := range p.data {
		inside[i] = float64(v)/255 > strokeAlpha
	}
	dist := filter.DistanceTransform(inside, w, h)

	threshold := dryness * erosionThreshold
	wet := 1 - coreDrying*dryness
	for y := 0; y < h; y++ {
		fy := mod(y-rollY, h)
		row := fiber[fy]
		for x := 0; x < w; x++ {
			i := y*w + x
			if p.data[i] == 0 {
				continue
			}
			m := clip01((row[mod(x-rollX, w)] - threshold) * erosionContrast)
			protect := clip01((dist[i]-coreInset)/coreRamp) * wet
			keep := m + (1-m)*protect
			out.data[i] = uint8(clamp255(float64(p.data[i]) * keep))
		}
	}
	return out
}

// diffuse adds a wet halo: each pixel keeps the larger of its own value
// and a damped Gaussian spread of its neighbourhood.
func diffuse(p *Patch, sigma float64) *Patch {
	if !(sigma > minBlurSigma) {
		return p.Clone()
	}
	src := make([]float64, len(p.data))
	for i, v := range p.data {
		src[i] = float64(v)
	}
	blurred := filter.GaussianBlur(src, p.width, p.height, sigma)

	out := NewPatch(p.width, p.height)
	for i, v := range src {
		out.data[i] = uint8(clamp255(max(v, haloStrength*blurred[i])))
	}
	return out
}

func clip01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// mod returns a modulo n in [0, n).
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
