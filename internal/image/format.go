package image

// Format describes how texels are laid out in an ImageBuf.
type Format uint8

const (
	// FormatRGBA8 is 8-bit straight-alpha RGBA, 4 bytes per texel.
	// Atlas strips and rendered frames use this format.
	FormatRGBA8 Format = iota

	// FormatGray8 is a single 8-bit channel, 1 byte per texel.
	// Tile-index maps can be stored compactly in this format;
	// sampling replicates the channel into R, G and B.
	FormatGray8

	formatCount
)

// BytesPerPixel returns the number of bytes used by one texel.
func (f Format) BytesPerPixel() int {
	switch f {
	case FormatRGBA8:
		return 4
	case FormatGray8:
		return 1
	default:
		return 0
	}
}

// RowBytes returns the minimum number of bytes needed for a row of width texels.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatRGBA8:
		return "RGBA8"
	case FormatGray8:
		return "Gray8"
	default:
		return "Unknown"
	}
}
