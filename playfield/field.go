package playfield

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Field errors.
var (
	// ErrInvalidSize is returned for fields without cells.
	ErrInvalidSize = errors.New("playfield: invalid field size")

	// ErrOutOfBounds is returned for positions outside the field.
	ErrOutOfBounds = errors.New("playfield: position out of bounds")

	// ErrOccupied is returned when placing onto a cell that holds an emitter.
	ErrOccupied = errors.New("playfield: cell occupied")

	// ErrBlocked is returned when placing onto terrain that forbids emitters.
	ErrBlocked = errors.New("playfield: terrain blocks placement")
)

// Field is a grid of terrain tiles with emitters and the links between
// them. Links are derived data: call Rebuild after changing emitters or
// terrain.
//
// A Field is not safe for concurrent mutation.
type Field struct {
	width, height int
	tiles         []TileType
	emitters      map[Pos]Emitter
	links         []Link
}

// NewField creates a width x height field of empty soil.
func NewField(width, height int) (*Field, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Field{
		width:    width,
		height:   height,
		tiles:    make([]TileType, width*height),
		emitters: make(map[Pos]Emitter),
	}, nil
}

// Width returns the number of columns.
func (f *Field) Width() int { return f.width }

// Height returns the number of rows.
func (f *Field) Height() int { return f.height }

// Contains reports whether pos lies inside the field.
func (f *Field) Contains(pos Pos) bool {
	return pos.X >= 0 && pos.X < f.width && pos.Y >= 0 && pos.Y < f.height
}

func (f *Field) index(pos Pos) int {
	return pos.Y*f.width + pos.X
}

// Tile returns the terrain at pos. The second result is false outside the
// field.
func (f *Field) Tile(pos Pos) (TileType, bool) {
	if !f.Contains(pos) {
		return Empty, false
	}
	return f.tiles[f.index(pos)], true
}

// SetTile changes the terrain at pos.
func (f *Field) SetTile(pos Pos, t TileType) error {
	if !f.Contains(pos) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, pos)
	}
	if t >= tileTypeCount {
		return fmt.Errorf("%w: tile type %d", ErrInvalidScene, uint8(t))
	}
	f.tiles[f.index(pos)] = t
	return nil
}

// CanPlace reports whether an emitter could be placed at pos: inside the
// field, unoccupied, on terrain that allows emitters.
func (f *Field) CanPlace(pos Pos) bool {
	return f.checkPlace(pos) == nil
}

func (f *Field) checkPlace(pos Pos) error {
	t, ok := f.Tile(pos)
	switch {
	case !ok:
		return fmt.Errorf("%w: %v", ErrOutOfBounds, pos)
	case f.occupied(pos):
		return fmt.Errorf("%w: %v", ErrOccupied, pos)
	case !t.AllowsEmitter():
		return fmt.Errorf("%w: %v is %v", ErrBlocked, pos, t)
	}
	return nil
}

func (f *Field) occupied(pos Pos) bool {
	_, ok := f.emitters[pos]
	return ok
}

// Place puts e at pos.
func (f *Field) Place(pos Pos, e Emitter) error {
	if err := f.checkPlace(pos); err != nil {
		return err
	}
	f.emitters[pos] = Emitter{Offsets: slices.Clone(e.Offsets), Facing: e.Facing}
	return nil
}

// Remove deletes the emitter at pos and reports whether there was one.
func (f *Field) Remove(pos Pos) bool {
	if !f.occupied(pos) {
		return false
	}
	delete(f.emitters, pos)
	return true
}

// Emitter returns the emitter at pos.
func (f *Field) Emitter(pos Pos) (Emitter, bool) {
	e, ok := f.emitters[pos]
	return e, ok
}

// EmitterPositions returns the occupied cells in row-major order.
func (f *Field) EmitterPositions() []Pos {
	return slices.SortedFunc(maps.Keys(f.emitters), comparePos)
}

// EmitterCount returns the number of placed emitters.
func (f *Field) EmitterCount() int {
	return len(f.emitters)
}

func comparePos(a, b Pos) int {
	return cmp.Or(cmp.Compare(a.Y, b.Y), cmp.Compare(a.X, b.X))
}

// Resize changes the field dimensions. Tiles inside both the old and the
// new bounds are kept, new cells are empty soil, and emitters that fall
// outside are removed. Links are cleared.
func (f *Field) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	tiles := make([]TileType, width*height)
	for y := range min(f.height, height) {
		for x := range min(f.width, width) {
			tiles[y*width+x] = f.tiles[y*f.width+x]
		}
	}
	f.tiles = tiles
	f.width, f.height = width, height

	maps.DeleteFunc(f.emitters, func(p Pos, _ Emitter) bool {
		return !f.Contains(p)
	})
	f.links = nil
	return nil
}
