package image

import "math"

// InterpolationMode defines how texture sampling is performed.
type InterpolationMode uint8

const (
	// InterpNearest selects the texel containing the coordinate.
	// Tile atlases are pixel art, so this is the default everywhere.
	InterpNearest InterpolationMode = iota

	// InterpBilinear performs linear interpolation between 4 neighboring texels.
	InterpBilinear
)

// String returns a string representation of the interpolation mode.
func (m InterpolationMode) String() string {
	switch m {
	case InterpNearest:
		return "Nearest"
	case InterpBilinear:
		return "Bilinear"
	default:
		return "Unknown"
	}
}

// Sample samples the image at normalized coordinates (u, v) and returns
// straight-alpha channels in [0, 1].
// (0,0) is the top-left corner and (1,1) the bottom-right corner.
// Out-of-bounds coordinates are clamped to the edge.
func Sample(img *ImageBuf, u, v float64, mode InterpolationMode) (r, g, b, a float64) {
	switch mode {
	case InterpBilinear:
		return SampleBilinear(img, u, v)
	default:
		return SampleNearest(img, u, v)
	}
}

// SampleNearest performs nearest-neighbor sampling at normalized coordinates (u, v).
func SampleNearest(img *ImageBuf, u, v float64) (r, g, b, a float64) {
	w, h := img.Bounds()

	x := clampTexel(math.Floor(u*float64(w)), w)
	y := clampTexel(math.Floor(v*float64(h)), h)

	return unorm(img.GetRGBA(x, y))
}

// SampleBilinear performs bilinear interpolation at normalized coordinates (u, v).
func SampleBilinear(img *ImageBuf, u, v float64) (r, g, b, a float64) {
	w, h := img.Bounds()

	// Texel centers sit at half-integer positions.
	fx := u*float64(w) - 0.5
	fy := v*float64(h) - 0.5

	x0f := math.Floor(fx)
	y0f := math.Floor(fy)
	tx := fx - x0f
	ty := fy - y0f

	x0 := clampTexel(x0f, w)
	y0 := clampTexel(y0f, h)
	x1 := clampTexel(x0f+1, w)
	y1 := clampTexel(y0f+1, h)

	r00, g00, b00, a00 := unorm(img.GetRGBA(x0, y0))
	r10, g10, b10, a10 := unorm(img.GetRGBA(x1, y0))
	r01, g01, b01, a01 := unorm(img.GetRGBA(x0, y1))
	r11, g11, b11, a11 := unorm(img.GetRGBA(x1, y1))

	r = lerp2D(r00, r10, r01, r11, tx, ty)
	g = lerp2D(g00, g10, g01, g11, tx, ty)
	b = lerp2D(b00, b10, b01, b11, tx, ty)
	a = lerp2D(a00, a10, a01, a11, tx, ty)
	return r, g, b, a
}

// clampTexel converts a floored texel coordinate to an index in [0, size-1].
// NaN and infinities land on an edge instead of overflowing the int conversion.
func clampTexel(f float64, size int) int {
	if !(f > 0) {
		return 0
	}
	if f >= float64(size-1) {
		return size - 1
	}
	return int(f)
}

// unorm converts 8-bit channels to [0, 1].
func unorm(r, g, b, a uint8) (float64, float64, float64, float64) {
	return float64(r) / 255, float64(g) / 255, float64(b) / 255, float64(a) / 255
}

// lerp performs linear interpolation between a and b.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// lerp2D performs bilinear interpolation on a 2x2 grid.
func lerp2D(v00, v10, v01, v11, tx, ty float64) float64 {
	v0 := lerp(v00, v10, tx)
	v1 := lerp(v01, v11, tx)
	return lerp(v0, v1, ty)
}
