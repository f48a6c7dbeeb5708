package fieldground

import (
	"errors"
	"fmt"
	"math"
)

// Parameter errors.
var (
	// ErrInvalidGrid is returned when the grid has no cells or non-finite
	// dimensions.
	ErrInvalidGrid = errors.New("fieldground: invalid grid dimensions")

	// ErrCountExceedsBuffer is returned when an active count is negative or
	// larger than the buffer it describes.
	ErrCountExceedsBuffer = errors.New("fieldground: count exceeds buffer length")
)

// FieldParameters is the per-frame uniform block. It is a value: the kernel
// copies it once per frame and never mutates it.
type FieldParameters struct {
	// Time is the animation clock in seconds. Wrapping is the host's concern.
	Time float64

	// GridColumns and GridRows are the playfield dimensions in cells.
	GridColumns float64
	GridRows    float64

	// ConnectionCount and PreviewCount define the active prefix of the
	// connection and preview buffers. Entries beyond them are never read.
	ConnectionCount int
	PreviewCount    int

	// ColorLow and ColorHigh are the connection gradient ends.
	ColorLow  RGBA
	ColorHigh RGBA

	// PulseSpeed is the flow speed in line lengths per second.
	PulseSpeed float64

	// GlowIntensity scales the additive glow of a pulse peak.
	GlowIntensity float64

	// LineWidth is the distance in UV units at which a line fades to
	// nothing; it is fully opaque up to half of it.
	LineWidth float64

	// Palette colors the preview highlights.
	Palette HighlightPalette
}

// DefaultParameters returns the stock look for a columns x rows grid with
// empty buffers.
func DefaultParameters(columns, rows int) FieldParameters {
	return FieldParameters{
		GridColumns:   float64(columns),
		GridRows:      float64(rows),
		ColorLow:      RGBA{R: 0.2, G: 0.8, B: 0.4, A: 1},
		ColorHigh:     RGBA{R: 0.4, G: 1.0, B: 0.6, A: 1},
		PulseSpeed:    2.0,
		GlowIntensity: 0.8,
		LineWidth:     0.005,
		Palette:       DefaultHighlightPalette(),
	}
}

// Grid returns the grid dimensions as a vector.
func (p *FieldParameters) Grid() Vec2 {
	return Vec2{X: p.GridColumns, Y: p.GridRows}
}

// validGrid reports whether both dimensions are finite and positive.
func (p *FieldParameters) validGrid() error {
	for _, d := range [...]float64{p.GridColumns, p.GridRows} {
		if !(d > 0) || math.IsInf(d, 0) {
			return fmt.Errorf("%w: %vx%v", ErrInvalidGrid, p.GridColumns, p.GridRows)
		}
	}
	return nil
}

// checkCount reports a count outside [0, length].
func checkCount(name string, count, length int) error {
	if count < 0 || count > length {
		return fmt.Errorf("%w: %s count %d, buffer holds %d",
			ErrCountExceedsBuffer, name, count, length)
	}
	return nil
}

// Material is the surface response handed to the lighting stage along with
// the base color.
type Material struct {
	Roughness float64
	Metallic  float64
}

// DefaultMaterial returns the ground's matte, non-metallic response.
func DefaultMaterial() Material {
	return Material{Roughness: 0.7, Metallic: 0.0}
}

// Fragment is the output of the compositor for one pixel.
type Fragment struct {
	Color RGBA
	Material
}
