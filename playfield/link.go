package playfield

import (
	"github.com/gogpu/fieldground"
)

// Link is a mycelium connection between two emitters.
type Link struct {
	From, To Pos

	// Strength is the product of the strength modifiers of every tile on
	// the path, capped at 1.
	Strength float64

	// Path is the cells the mycelium crosses, endpoints included.
	Path []Pos
}

// Links returns the links computed by the last Rebuild.
func (f *Field) Links() []Link {
	return f.links
}

// Rebuild recomputes all links and returns how many were created.
//
// Emitters are visited in row-major order and their targets in offset
// order. A target that holds another emitter is linked when the straight
// path to it crosses only tiles that allow mycelium and the resulting
// strength is positive.
func (f *Field) Rebuild() int {
	f.links = nil
	rejected := 0

	for _, from := range f.EmitterPositions() {
		e := f.emitters[from]
		for _, to := range e.Targets(from) {
			if to == from || !f.occupied(to) {
				continue
			}
			path, strength, ok := f.findPath(from, to)
			if !ok {
				rejected++
				continue
			}
			f.links = append(f.links, Link{From: from, To: to, Strength: strength, Path: path})
		}
	}

	fieldground.Logger().Info("playfield: links rebuilt",
		"emitters", len(f.emitters),
		"links", len(f.links),
		"rejected", rejected)
	return len(f.links)
}

// findPath walks the straight line between from and to.
func (f *Field) findPath(from, to Pos) ([]Pos, float64, bool) {
	path := Line(from, to)
	strength := 1.0
	for _, p := range path {
		t, ok := f.Tile(p)
		if !ok {
			continue
		}
		if !t.AllowsMycelium() {
			return nil, 0, false
		}
		strength *= t.StrengthModifier()
	}
	if strength <= 0 {
		return nil, 0, false
	}
	return path, min(strength, 1), true
}

// Line returns the cells on the Bresenham line from a to b, both included.
func Line(a, b Pos) []Pos {
	dx := abs(b.X - a.X)
	dy := abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X >= b.X {
		sx = -1
	}
	if a.Y >= b.Y {
		sy = -1
	}

	points := make([]Pos, 0, max(dx, dy)+1)
	err := dx - dy
	x, y := a.X, a.Y
	for {
		points = append(points, Pos{X: x, Y: y})
		if x == b.X && y == b.Y {
			return points
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
