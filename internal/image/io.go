package image

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

// ErrEmptyImage is returned when a decoded image has no texels.
var ErrEmptyImage = errors.New("image: empty image")

// LoadPNG loads a PNG image from the given file path.
func LoadPNG(path string) (*ImageBuf, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodePNG(f)
}

// DecodePNG decodes a PNG image from the given reader.
func DecodePNG(r io.Reader) (*ImageBuf, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode PNG: %w", err)
	}
	return FromStdImage(img)
}

// FromStdImage copies a standard library image into a texel buffer.
//
// Gray sources (*image.Gray), such as tile-index maps saved as grayscale
// PNG, become Gray8 buffers. Straight-alpha sources (*image.NRGBA) are
// copied byte for byte. Any other image type is converted to RGBA8 with
// x/image/draw, which goes through the premultiplied color model; for the
// opaque atlases this package deals with the result is identical.
func FromStdImage(img image.Image) (*ImageBuf, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, ErrEmptyImage
	}

	if gray, ok := img.(*image.Gray); ok {
		buf, err := NewImageBuf(bounds.Dx(), bounds.Dy(), FormatGray8)
		if err != nil {
			return nil, err
		}
		for y := range buf.height {
			src := gray.Pix[gray.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
			copy(buf.RowBytes(y), src[:buf.stride])
		}
		return buf, nil
	}

	buf, err := NewImageBuf(bounds.Dx(), bounds.Dy(), FormatRGBA8)
	if err != nil {
		return nil, err
	}

	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range buf.height {
			src := nrgba.Pix[nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
			copy(buf.RowBytes(y), src[:buf.stride])
		}
		return buf, nil
	}

	dst := &image.NRGBA{
		Pix:    buf.data,
		Stride: buf.stride,
		Rect:   image.Rect(0, 0, buf.width, buf.height),
	}
	draw.Draw(dst, dst.Rect, img, bounds.Min, draw.Src)
	return buf, nil
}

// ToStdImage returns an *image.NRGBA view of an RGBA8 buffer, or a copy
// expanded to RGBA for gray buffers.
func (b *ImageBuf) ToStdImage() *image.NRGBA {
	rect := image.Rect(0, 0, b.width, b.height)
	if b.format == FormatRGBA8 {
		return &image.NRGBA{Pix: b.data, Stride: b.stride, Rect: rect}
	}

	out := image.NewNRGBA(rect)
	for y := range b.height {
		for x := range b.width {
			r, g, bl, a := b.GetRGBA(x, y)
			i := out.PixOffset(x, y)
			out.Pix[i], out.Pix[i+1], out.Pix[i+2], out.Pix[i+3] = r, g, bl, a
		}
	}
	return out
}

// EncodePNG writes the buffer as PNG to w.
func (b *ImageBuf) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, b.ToStdImage()); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// SavePNG saves the buffer as a PNG file.
func (b *ImageBuf) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := b.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
