package ink

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// Canvas is the page being written on: a straight-alpha RGBA buffer.
// Glyph patches are composited onto it in place.
type Canvas struct {
	width  int
	height int
	data   []uint8 // RGBA, 4 bytes per pixel, not premultiplied
}

// NewCanvas creates an opaque canvas filled with the paper colour.
func NewCanvas(width, height int, paper Color) *Canvas {
	width, height = max(width, 0), max(height, 0)
	c := &Canvas{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
	c.Fill(paper)
	return c
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int { return c.width }

// Height returns the height of the canvas.
func (c *Canvas) Height() int { return c.height }

// Data returns the raw pixel data (RGBA format).
func (c *Canvas) Data() []uint8 { return c.data }

// Fill paints the whole canvas with an opaque colour.
func (c *Canvas) Fill(paper Color) {
	for i := 0; i < len(c.data); i += 4 {
		c.data[i+0] = paper.R
		c.data[i+1] = paper.G
		c.data[i+2] = paper.B
		c.data[i+3] = 255
	}
}

// Pixel returns the colour of a single pixel.
// Out-of-bounds coordinates return transparent black.
func (c *Canvas) Pixel(x, y int) color.NRGBA {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return color.NRGBA{}
	}
	i := (y*c.width + x) * 4
	return color.NRGBA{R: c.data[i], G: c.data[i+1], B: c.data[i+2], A: c.data[i+3]}
}

// SetPixel sets the colour of a single pixel.
// Out-of-bounds coordinates are ignored.
func (c *Canvas) SetPixel(x, y int, v color.NRGBA) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	i := (y*c.width + x) * 4
	c.data[i+0] = v.R
	c.data[i+1] = v.G
	c.data[i+2] = v.B
	c.data[i+3] = v.A
}

// composite blends fill through mask with its top-left corner at (x0, y0)
// using the source-over operator. Parts of the mask outside the canvas are
// dropped.
func (c *Canvas) composite(mask *Patch, x0, y0 int, fill Color) {
	for my := 0; my < mask.height; my++ {
		y := y0 + my
		if y < 0 || y >= c.height {
			continue
		}
		for mx := 0; mx < mask.width; mx++ {
			x := x0 + mx
			if x < 0 || x >= c.width {
				continue
			}
			sa := mask.data[my*mask.width+mx]
			if sa == 0 {
				continue
			}
			i := (y*c.width + x) * 4
			blendOver(c.data[i:i+4:i+4], fill, sa)
		}
	}
}

// blendOver applies straight-alpha source-over: S*Sa + D*Da*(1-Sa).
func blendOver(dst []uint8, src Color, sa uint8) {
	if sa == 255 {
		dst[0], dst[1], dst[2], dst[3] = src.R, src.G, src.B, 255
		return
	}
	a := float64(sa) / 255
	da := float64(dst[3]) / 255
	outA := a + da*(1-a)
	if outA <= 0 {
		return
	}
	mix := func(s, d uint8) uint8 {
		v := (float64(s)*a + float64(d)*da*(1-a)) / outA
		return uint8(clamp255(v) + 0.5)
	}
	dst[0] = mix(src.R, dst[0])
	dst[1] = mix(src.G, dst[1])
	dst[2] = mix(src.B, dst[2])
	dst[3] = uint8(clamp255(outA*255) + 0.5)
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// ToImage copies the canvas into an *image.NRGBA.
func (c *Canvas) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	copy(img.Pix, c.data)
	return img
}

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.ToImage())
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := c.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.Pixel(x, y)
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}
