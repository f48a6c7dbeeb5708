package parallel

// TileGrid partitions a canvas into 64x64 tiles in row-major order.
//
// Thread safety: TileGrid is immutable after construction apart from Resize,
// which must not run concurrently with readers.
type TileGrid struct {
	tiles  []Tile
	tilesX int
	tilesY int
	width  int
	height int
}

// NewTileGrid creates a grid covering a width x height canvas.
// Non-positive dimensions produce an empty grid.
func NewTileGrid(width, height int) *TileGrid {
	g := &TileGrid{}
	g.Resize(width, height)
	return g
}

// Resize recomputes the tiles for new canvas dimensions.
// If dimensions haven't changed, this is a no-op.
func (g *TileGrid) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		*g = TileGrid{}
		return
	}
	if g.width == width && g.height == height {
		return
	}

	g.width = width
	g.height = height
	g.tilesX = (width + TileWidth - 1) / TileWidth
	g.tilesY = (height + TileHeight - 1) / TileHeight
	g.tiles = make([]Tile, 0, g.tilesX*g.tilesY)

	for ty := range g.tilesY {
		for tx := range g.tilesX {
			g.tiles = append(g.tiles, Tile{
				X:      tx,
				Y:      ty,
				Width:  min(TileWidth, width-tx*TileWidth),
				Height: min(TileHeight, height-ty*TileHeight),
			})
		}
	}
}

// TileAt returns the tile at tile coordinates (tx, ty).
// The second result is false if the coordinates are out of bounds.
func (g *TileGrid) TileAt(tx, ty int) (Tile, bool) {
	if tx < 0 || tx >= g.tilesX || ty < 0 || ty >= g.tilesY {
		return Tile{}, false
	}
	return g.tiles[ty*g.tilesX+tx], true
}

// TileAtPixel returns the tile containing the canvas pixel (px, py).
func (g *TileGrid) TileAtPixel(px, py int) (Tile, bool) {
	if px < 0 || px >= g.width || py < 0 || py >= g.height {
		return Tile{}, false
	}
	return g.TileAt(px/TileWidth, py/TileHeight)
}

// Tiles returns all tiles in row-major order.
// The returned slice must not be modified.
func (g *TileGrid) Tiles() []Tile {
	return g.tiles
}

// TileCount returns the total number of tiles in the grid.
func (g *TileGrid) TileCount() int {
	return len(g.tiles)
}

// TilesX returns the number of tiles horizontally.
func (g *TileGrid) TilesX() int {
	return g.tilesX
}

// TilesY returns the number of tiles vertically.
func (g *TileGrid) TilesY() int {
	return g.tilesY
}

// Width returns the canvas width in pixels.
func (g *TileGrid) Width() int {
	return g.width
}

// Height returns the canvas height in pixels.
func (g *TileGrid) Height() int {
	return g.height
}
