// Package parallel splits a frame into independent pixel tiles and renders
// them on a pool of worker goroutines.
//
// Tiles never overlap, so each worker writes only to its own region of the
// destination image and reads only frame-immutable inputs. No locking is
// needed around the pixel kernel.
package parallel

import "errors"

// Tile size constants.
const (
	// TileWidth is the width of a tile in pixels.
	TileWidth = 64

	// TileHeight is the height of a tile in pixels.
	TileHeight = 64
)

// ErrPoolClosed is returned when work is submitted to a closed pool.
var ErrPoolClosed = errors.New("parallel: worker pool closed")

// Tile is a rectangular region of the output image.
// Edge tiles may be smaller than TileWidth x TileHeight.
type Tile struct {
	// X is the tile column index (0-based).
	X int

	// Y is the tile row index (0-based).
	Y int

	// Width is the actual width in pixels.
	Width int

	// Height is the actual height in pixels.
	Height int
}

// Bounds returns the pixel bounds of this tile in canvas space.
// Returns (x, y, width, height) where x,y is the top-left corner.
func (t Tile) Bounds() (x, y, w, h int) {
	return t.X * TileWidth, t.Y * TileHeight, t.Width, t.Height
}

// Contains returns true if the canvas-space pixel (cx, cy) is within this tile.
func (t Tile) Contains(cx, cy int) bool {
	x, y, w, h := t.Bounds()
	return cx >= x && cx < x+w && cy >= y && cy < y+h
}

// Pixels returns the number of pixels covered by the tile.
func (t Tile) Pixels() int {
	return t.Width * t.Height
}
