package fieldground

import (
	"errors"
	"fmt"
	"image"

	intImage "github.com/gogpu/fieldground/internal/image"
)

// ErrMissingTexture is returned when a frame lacks its tile-index map or
// atlas.
var ErrMissingTexture = errors.New("fieldground: missing texture")

// Texture is a sampled 2D image. Coordinates are normalized with (0,0) at
// the top-left corner; out-of-range coordinates clamp to the edge.
// Implementations must be safe for concurrent Sample calls.
type Texture interface {
	Sample(u, v float64) RGBA
}

// Filter selects how an ImageTexture reconstructs between texels.
type Filter uint8

const (
	// FilterNearest returns the texel containing the coordinate.
	FilterNearest Filter = iota

	// FilterLinear blends the four nearest texels.
	FilterLinear
)

// String returns the filter name.
func (f Filter) String() string {
	switch f {
	case FilterNearest:
		return "nearest"
	case FilterLinear:
		return "linear"
	default:
		return "unknown"
	}
}

func (f Filter) mode() intImage.InterpolationMode {
	if f == FilterLinear {
		return intImage.InterpBilinear
	}
	return intImage.InterpNearest
}

// ImageTexture is a Texture backed by an 8-bit texel buffer.
type ImageTexture struct {
	buf    *intImage.ImageBuf
	filter Filter
}

// NewImageTexture copies img into a texture.
func NewImageTexture(img image.Image, filter Filter) (*ImageTexture, error) {
	buf, err := intImage.FromStdImage(img)
	if err != nil {
		return nil, fmt.Errorf("fieldground: texture: %w", err)
	}
	return &ImageTexture{buf: buf, filter: filter}, nil
}

// LoadTexture reads a PNG file into a texture.
func LoadTexture(path string, filter Filter) (*ImageTexture, error) {
	buf, err := intImage.LoadPNG(path)
	if err != nil {
		return nil, fmt.Errorf("fieldground: load texture: %w", err)
	}
	return &ImageTexture{buf: buf, filter: filter}, nil
}

// Sample implements Texture.
func (t *ImageTexture) Sample(u, v float64) RGBA {
	r, g, b, a := intImage.Sample(t.buf, u, v, t.filter.mode())
	return RGBA{R: r, G: g, B: b, A: a}
}

// Size returns the texture dimensions in texels.
func (t *ImageTexture) Size() (width, height int) {
	return t.buf.Bounds()
}

// Filter returns the texture's filter.
func (t *ImageTexture) Filter() Filter {
	return t.filter
}

// Image returns the texels as a standard image. The result shares memory
// with the texture and must not be modified.
func (t *ImageTexture) Image() *image.NRGBA {
	return t.buf.ToStdImage()
}

// SolidTexture samples the same color everywhere.
type SolidTexture RGBA

// Sample implements Texture.
func (s SolidTexture) Sample(_, _ float64) RGBA {
	return RGBA(s)
}
