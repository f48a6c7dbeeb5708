package fieldground

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA represents a straight-alpha color with components in [0, 1].
// Intermediate kernel results may leave that range (glow is additive);
// conversion to 8-bit clamps.
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return c.NRGBA()
}

// NRGBA converts the color to 8-bit straight alpha, clamping each channel.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: unorm8(c.R),
		G: unorm8(c.G),
		B: unorm8(c.B),
		A: unorm8(c.A),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBA{
		R: float64(n.R) / 65535,
		G: float64(n.G) / 65535,
		B: float64(n.B) / 65535,
		A: float64(n.A) / 65535,
	}
}

// Lerp interpolates all four channels: t=0 returns c, t=1 returns other.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: mix(c.R, other.R, t),
		G: mix(c.G, other.G, t),
		B: mix(c.B, other.B, t),
		A: mix(c.A, other.A, t),
	}
}

// MixRGB interpolates the color channels toward other and keeps c's alpha.
// Every overlay in the kernel blends this way: overlays tint the ground,
// they never change its coverage.
func (c RGBA) MixRGB(other RGBA, t float64) RGBA {
	return RGBA{
		R: mix(c.R, other.R, t),
		G: mix(c.G, other.G, t),
		B: mix(c.B, other.B, t),
		A: c.A,
	}
}

// ScaleRGB multiplies the color channels by s and keeps alpha.
func (c RGBA) ScaleRGB(s float64) RGBA {
	return RGBA{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A}
}

// ParseHex parses "RGB", "RRGGBB" or "RRGGBBAA", with or without a
// leading '#'.
func ParseHex(s string) (RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")

	alpha := 1.0
	if len(s) == 8 {
		a, err := strconv.ParseUint(s[6:], 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("fieldground: parse color %q: %w", s, err)
		}
		alpha = float64(a) / 255
		s = s[:6]
	}

	if len(s) != 3 && len(s) != 6 {
		return RGBA{}, fmt.Errorf("fieldground: parse color %q: want 3, 6 or 8 hex digits", s)
	}

	c, err := colorful.Hex("#" + s)
	if err != nil {
		return RGBA{}, fmt.Errorf("fieldground: parse color %q: %w", s, err)
	}
	return RGBA{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

// Hex returns the color as "#rrggbbaa".
func (c RGBA) Hex() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// unorm8 converts a [0, 1] channel to a byte, rounding to nearest.
func unorm8(x float64) uint8 {
	if !(x > 0) {
		return 0
	}
	if x >= 1 {
		return 255
	}
	return uint8(x*255 + 0.5)
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA{}
)
