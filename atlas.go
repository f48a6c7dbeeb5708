package fieldground

import (
	"errors"
	"fmt"
	"math"
)

// Atlas defaults: a single-column strip of 21 sprites, 16x16 texels each,
// with 2 texels of padding between consecutive sprites.
const (
	AtlasSlots    = 21
	AtlasTileSize = 16
	AtlasPadding  = 2
)

// Atlas errors.
var (
	// ErrTileIndexOutOfRange is returned by DecodeSlot when a tile index
	// denormalizes outside [0, Slots).
	ErrTileIndexOutOfRange = errors.New("fieldground: tile index out of range")

	// ErrInvalidAtlasLayout is returned for layouts without slots or with a
	// non-positive tile size.
	ErrInvalidAtlasLayout = errors.New("fieldground: invalid atlas layout")
)

// AtlasLayout describes a vertical strip atlas. The last tile has no
// trailing padding.
type AtlasLayout struct {
	Slots    int
	TileSize int
	Padding  int
}

// DefaultAtlasLayout returns the 21-slot, 16-texel, 2-texel-padding strip.
func DefaultAtlasLayout() AtlasLayout {
	return AtlasLayout{Slots: AtlasSlots, TileSize: AtlasTileSize, Padding: AtlasPadding}
}

// Validate reports whether the layout can address any tile.
func (l AtlasLayout) Validate() error {
	if l.Slots <= 0 || l.TileSize <= 0 || l.Padding < 0 {
		return fmt.Errorf("%w: %d slots, tile %d, padding %d",
			ErrInvalidAtlasLayout, l.Slots, l.TileSize, l.Padding)
	}
	return nil
}

// Width returns the atlas width in texels.
func (l AtlasLayout) Width() int {
	return l.TileSize
}

// Height returns the atlas height in texels: Slots*TileSize + (Slots-1)*Padding.
func (l AtlasLayout) Height() int {
	return l.Slots*l.TileSize + (l.Slots-1)*l.Padding
}

// Stride returns the distance in texels between the tops of two
// consecutive tiles.
func (l AtlasLayout) Stride() int {
	return l.TileSize + l.Padding
}

// denormalize maps a normalized tile index to a slot number without any
// range check. Rounding is half-to-even, like WGSL round().
func (l AtlasLayout) denormalize(tileIndex float64) float64 {
	return math.RoundToEven(tileIndex * float64(l.Slots))
}

// DecodeSlot converts a normalized tile index to a slot number and rejects
// results outside [0, Slots).
func (l AtlasLayout) DecodeSlot(tileIndex float64) (int, error) {
	s := l.denormalize(tileIndex)
	if math.IsNaN(s) || s < 0 || s >= float64(l.Slots) {
		return 0, fmt.Errorf("%w: %v denormalizes to slot %v of %d",
			ErrTileIndexOutOfRange, tileIndex, s, l.Slots)
	}
	return int(s), nil
}

// ClampSlot converts a normalized tile index to the nearest valid slot.
// The second result is false when the index had to be clamped.
func (l AtlasLayout) ClampSlot(tileIndex float64) (int, bool) {
	s := l.denormalize(tileIndex)
	switch {
	case math.IsNaN(s) || s < 0:
		return 0, false
	case s >= float64(l.Slots):
		return l.Slots - 1, false
	default:
		return int(s), true
	}
}

// SlotUV maps a cell-local coordinate in [0,1]^2 into atlas UV for slot.
// X passes through unchanged because the strip is exactly one tile wide.
func (l AtlasLayout) SlotUV(slot int, local Vec2) Vec2 {
	return l.slotUV(float64(slot), local)
}

func (l AtlasLayout) slotUV(slot float64, local Vec2) Vec2 {
	top := slot * float64(l.Stride())
	return Vec2{
		X: local.X,
		Y: (top + local.Y*float64(l.TileSize)) / float64(l.Height()),
	}
}

// AtlasUV is the legacy lookup: it denormalizes the tile index and maps
// local into the slot's band without clamping. Indices outside [0, Slots)
// produce coordinates outside the atlas, which the sampler then clamps to
// an edge texel.
func (l AtlasLayout) AtlasUV(tileIndex float64, local Vec2) Vec2 {
	return l.slotUV(l.denormalize(tileIndex), local)
}

// SlotBand returns the [top, bottom] V range of slot in atlas UV.
func (l AtlasLayout) SlotBand(slot int) (top, bottom float64) {
	h := float64(l.Height())
	start := float64(slot * l.Stride())
	return start / h, (start + float64(l.TileSize)) / h
}

// EncodeTileIndex returns the normalized value a tile-index map stores for
// slot, quantized to 8 bits the same way the map texture is built.
func (l AtlasLayout) EncodeTileIndex(slot int) uint8 {
	return uint8(float64(slot) / float64(l.Slots) * 255)
}

// AtlasUV runs the legacy lookup against the default layout.
func AtlasUV(tileIndex float64, local Vec2) Vec2 {
	return DefaultAtlasLayout().AtlasUV(tileIndex, local)
}
