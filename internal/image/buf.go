// Package image provides texel buffers, sampling and PNG I/O for
// fieldground textures.
//
// An ImageBuf is read concurrently by every worker while a frame renders,
// so sampling never mutates the buffer and never caches.
package image

import "errors"

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrOutOfBounds is returned when pixel coordinates are outside image bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")
)

// ImageBuf is a contiguous texel buffer with an optional row stride.
//
// Thread safety: ImageBuf is safe for concurrent read access. SetRGBA
// requires external synchronization.
type ImageBuf struct {
	data   []byte
	width  int
	height int
	stride int
	format Format
}

// NewImageBuf creates a zeroed buffer with the given dimensions and format.
func NewImageBuf(width, height int, format Format) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	stride := format.RowBytes(width)
	return &ImageBuf{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// Width returns the image width in texels.
func (b *ImageBuf) Width() int {
	return b.width
}

// Height returns the image height in texels.
func (b *ImageBuf) Height() int {
	return b.height
}

// Stride returns the number of bytes per row (including padding).
func (b *ImageBuf) Stride() int {
	return b.stride
}

// Format returns the texel format.
func (b *ImageBuf) Format() Format {
	return b.format
}

// Bounds returns the image dimensions as (width, height).
func (b *ImageBuf) Bounds() (int, int) {
	return b.width, b.height
}

// Data returns the raw texel data slice.
func (b *ImageBuf) Data() []byte {
	return b.data
}

// RowBytes returns the texel bytes of row y, or nil if y is out of bounds.
func (b *ImageBuf) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+b.format.RowBytes(b.width)]
}

// PixelOffset returns the byte offset of texel (x, y), or -1 when out of bounds.
func (b *ImageBuf) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.stride + x*b.format.BytesPerPixel()
}

// GetRGBA returns the texel at (x, y) in 0-255 range.
// Gray texels are replicated into r, g and b with opaque alpha.
// Returns (0,0,0,0) if coordinates are out of bounds.
func (b *ImageBuf) GetRGBA(x, y int) (r, g, bl, a uint8) {
	offset := b.PixelOffset(x, y)
	if offset < 0 {
		return 0, 0, 0, 0
	}

	switch b.format {
	case FormatGray8:
		v := b.data[offset]
		return v, v, v, 255
	case FormatRGBA8:
		return b.data[offset], b.data[offset+1], b.data[offset+2], b.data[offset+3]
	default:
		return 0, 0, 0, 0
	}
}

// SetRGBA stores a texel at (x, y).
// Gray buffers keep only the red channel, since tile-index maps encode
// their payload there.
func (b *ImageBuf) SetRGBA(x, y int, r, g, bl, a uint8) error {
	offset := b.PixelOffset(x, y)
	if offset < 0 {
		return ErrOutOfBounds
	}

	switch b.format {
	case FormatGray8:
		b.data[offset] = r
	case FormatRGBA8:
		b.data[offset] = r
		b.data[offset+1] = g
		b.data[offset+2] = bl
		b.data[offset+3] = a
	}
	return nil
}
