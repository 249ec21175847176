package ink

import (
	"image"
	"image/color"
)

// blockRasterizer renders every character as a solid square of the
// nominal size.
func blockRasterizer() Rasterizer {
	return RasterizerFunc(func(_ rune, size int) (*image.Alpha, error) {
		m := image.NewAlpha(image.Rect(0, 0, size, size))
		for i := range m.Pix {
			m.Pix[i] = 255
		}
		return m, nil
	})
}

// strokeRasterizer renders a hard-edged lattice of thick horizontal and
// vertical bars, a stand-in for a dense character such as 墨.
func strokeRasterizer() Rasterizer {
	return RasterizerFunc(func(_ rune, size int) (*image.Alpha, error) {
		m := image.NewAlpha(image.Rect(0, 0, size, size))
		bar := max(size/10, 2)
		gap := max(size/4, bar+1)
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				if x%gap < bar || y%gap < bar {
					m.SetAlpha(x, y, color.Alpha{A: 255})
				}
			}
		}
		return m, nil
	})
}

func countInk(c *Canvas, x0, x1 int, threshold uint8) int {
	n := 0
	for y := 0; y < c.Height(); y++ {
		for x := x0; x < x1; x++ {
			if 255-c.Pixel(x, y).R >= threshold {
				n++
			}
		}
	}
	return n
}
