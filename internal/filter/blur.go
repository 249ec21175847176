package filter

// GaussianBlur blurs a width x height plane with a separable Gaussian of
// the given sigma. Samples beyond the plane clamp to the nearest edge
// value. A non-positive sigma returns an unchanged copy.
func GaussianBlur(src []float64, width, height int, sigma float64) []float64 {
	dst := make([]float64, len(src))
	if width <= 0 || height <= 0 || len(src) < width*height {
		copy(dst, src)
		return dst
	}
	if !(sigma > 0) {
		copy(dst, src)
		return dst
	}

	kernel := CachedGaussianKernel(sigma)
	temp := make([]float64, width*height)

	// Pass 1: horizontal (src -> temp)
	blurHorizontal(src, temp, width, height, kernel)

	// Pass 2: vertical (temp -> dst)
	blurVertical(temp, dst, width, height, kernel)

	return dst
}

// blurHorizontal applies 1D horizontal convolution with edge extension.
func blurHorizontal(src, dst []float64, width, height int, kernel []float64) {
	half := len(kernel) / 2
	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			var acc float64
			for k, weight := range kernel {
				kx := x + k - half
				if kx < 0 {
					kx = 0
				} else if kx >= width {
					kx = width - 1
				}
				acc += src[row+kx] * weight
			}
			dst[row+x] = acc
		}
	}
}

// blurVertical applies 1D vertical convolution with edge extension.
func blurVertical(src, dst []float64, width, height int, kernel []float64) {
	half := len(kernel) / 2
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var acc float64
			for k, weight := range kernel {
				ky := y + k - half
				if ky < 0 {
					ky = 0
				} else if ky >= height {
					ky = height - 1
				}
				acc += src[ky*width+x] * weight
			}
			dst[y*width+x] = acc
		}
	}
}
