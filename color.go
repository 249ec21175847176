package ink

import (
	"fmt"
	"image/color"
)

// Color is an opaque 8-bit ink or paper colour.
type Color struct {
	R, G, B uint8
}

// RGB creates a Color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Common colours.
var (
	// InkBlack is the default ink: a slightly warm near-black.
	InkBlack = RGB(20, 20, 20)

	// RicePaper is the default paper tone.
	RicePaper = RGB(245, 240, 230)
)

// NRGBA returns the colour with the given straight alpha.
func (c Color) NRGBA(a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// String formats the colour as #rrggbb.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// MarshalText implements encoding.TextMarshaler so colours round-trip
// through TOML and flag values as hex strings.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseHex parses "#rgb", "rgb", "#rrggbb" or "rrggbb".
func ParseHex(hex string) (Color, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var v [6]uint8
	switch len(s) {
	case 3:
		for i := 0; i < 3; i++ {
			d, ok := hexDigit(s[i])
			if !ok {
				return Color{}, fmt.Errorf("%w: bad hex colour %q", ErrInvalidInput, hex)
			}
			v[2*i], v[2*i+1] = d, d
		}
	case 6:
		for i := 0; i < 6; i++ {
			d, ok := hexDigit(s[i])
			if !ok {
				return Color{}, fmt.Errorf("%w: bad hex colour %q", ErrInvalidInput, hex)
			}
			v[i] = d
		}
	default:
		return Color{}, fmt.Errorf("%w: bad hex colour %q", ErrInvalidInput, hex)
	}

	return Color{
		R: v[0]<<4 | v[1],
		G: v[2]<<4 | v[3],
		B: v[4]<<4 | v[5],
	}, nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
