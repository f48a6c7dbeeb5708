package playfield

import (
	"fmt"
	"slices"
	"strings"
)

// Pos is a grid cell.
type Pos struct {
	X, Y int
}

// Add returns the cell at offset o from p.
func (p Pos) Add(o Offset) Pos {
	return Pos{X: p.X + o.X, Y: p.Y + o.Y}
}

// String returns "(x,y)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Offset is a cell displacement relative to an emitter facing Up.
type Offset struct {
	X, Y int
}

// Direction is the facing of an emitter.
type Direction uint8

// Facings in clockwise order.
const (
	Up Direction = iota
	Right
	Down
	Left
)

var directionNames = [...]string{Up: "up", Right: "right", Down: "down", Left: "left"}

// String returns the direction name.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection parses a direction name.
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range directionNames {
		if s == name {
			return Direction(i), nil
		}
	}
	return Up, fmt.Errorf("%w: direction %q", ErrInvalidScene, s)
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(b []byte) error {
	v, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Clockwise returns the next facing clockwise.
func (d Direction) Clockwise() Direction {
	return (d + 1) % 4
}

// Rotate turns an Up-relative offset to face d. Each step is a quarter
// turn clockwise: (x, y) -> (y, -x).
func (d Direction) Rotate(o Offset) Offset {
	switch d % 4 {
	case Right:
		return Offset{X: o.Y, Y: -o.X}
	case Down:
		return Offset{X: -o.X, Y: -o.Y}
	case Left:
		return Offset{X: -o.Y, Y: o.X}
	default:
		return o
	}
}

// Reach patterns of the stock emitters.
var (
	PatternForward  = []Offset{{0, 1}}
	PatternCardinal = []Offset{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	PatternDiagonal = []Offset{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	PatternAll      = []Offset{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
	PatternKnight   = []Offset{{2, 1}}
)

var patterns = map[string][]Offset{
	"none":     nil,
	"forward":  PatternForward,
	"cardinal": PatternCardinal,
	"diagonal": PatternDiagonal,
	"all":      PatternAll,
	"knight":   PatternKnight,
}

// Pattern returns a copy of the named reach pattern.
func Pattern(name string) ([]Offset, error) {
	p, ok := patterns[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: pattern %q", ErrInvalidScene, name)
	}
	return slices.Clone(p), nil
}

// PatternNames returns the known pattern names, sorted.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Emitter is a placed piece that links to other emitters at its offsets.
type Emitter struct {
	Offsets []Offset
	Facing  Direction
}

// NewEmitter creates an emitter with the named pattern.
func NewEmitter(pattern string, facing Direction) (Emitter, error) {
	offsets, err := Pattern(pattern)
	if err != nil {
		return Emitter{}, err
	}
	return Emitter{Offsets: offsets, Facing: facing}, nil
}

// Targets returns the cells e reaches when placed at pos, in offset order.
// Cells may lie outside the field.
func (e Emitter) Targets(pos Pos) []Pos {
	out := make([]Pos, len(e.Offsets))
	for i, o := range e.Offsets {
		out[i] = pos.Add(e.Facing.Rotate(o))
	}
	return out
}

// Rotated returns a copy of e turned one step clockwise.
func (e Emitter) Rotated() Emitter {
	return Emitter{Offsets: slices.Clone(e.Offsets), Facing: e.Facing.Clockwise()}
}
