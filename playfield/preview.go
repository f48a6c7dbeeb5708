package playfield

import (
	"github.com/gogpu/fieldground"
)

// PreviewSet is the classified placement preview for one hover position.
type PreviewSet struct {
	// Candidate is the hovered cell; valid only when HasCandidate is set.
	Candidate    Pos
	HasCandidate bool

	// Connected are targets of the candidate that hold an emitter.
	Connected []Pos

	// Dangling are targets of the candidate with nothing to link to.
	Dangling []Pos

	// ExistingTargets are empty cells that placed emitters reach.
	ExistingTargets []Pos
}

// Classify computes the preview for placing e at hover. Only in-bounds
// targets on terrain that allows emitters are reported. Existing targets
// are listed even when hover is not a valid placement.
func (f *Field) Classify(hover Pos, e Emitter) PreviewSet {
	var ps PreviewSet

	if f.CanPlace(hover) {
		ps.Candidate, ps.HasCandidate = hover, true
		for _, to := range e.Targets(hover) {
			if !f.targetable(to) {
				continue
			}
			if f.occupied(to) {
				ps.Connected = append(ps.Connected, to)
			} else {
				ps.Dangling = append(ps.Dangling, to)
			}
		}
	}

	ps.ExistingTargets = f.ExistingTargets()
	return ps
}

// ExistingTargets returns the empty cells reachable from placed emitters,
// in emitter order. A cell reached by several emitters is listed once per
// emitter.
func (f *Field) ExistingTargets() []Pos {
	var out []Pos
	for _, from := range f.EmitterPositions() {
		for _, to := range f.emitters[from].Targets(from) {
			if f.targetable(to) && !f.occupied(to) {
				out = append(out, to)
			}
		}
	}
	return out
}

// targetable reports whether pos is inside the field on terrain that
// allows emitters.
func (f *Field) targetable(pos Pos) bool {
	t, ok := f.Tile(pos)
	return ok && t.AllowsEmitter()
}

// Preview classifies the placement of e at hover and returns the
// highlights positioned at cell centers in UV space: candidate first, then
// connected, dangling and existing targets.
func (f *Field) Preview(hover Pos, e Emitter) []fieldground.PreviewHighlight {
	return f.Highlights(f.Classify(hover, e))
}

// Highlights converts a preview set to compositor highlights.
func (f *Field) Highlights(ps PreviewSet) []fieldground.PreviewHighlight {
	n := len(ps.Connected) + len(ps.Dangling) + len(ps.ExistingTargets)
	if ps.HasCandidate {
		n++
	}
	out := make([]fieldground.PreviewHighlight, 0, n)

	add := func(kind fieldground.HighlightKind, cells ...Pos) {
		for _, p := range cells {
			out = append(out, fieldground.PreviewHighlight{Position: f.CellCenter(p), Kind: kind})
		}
	}
	if ps.HasCandidate {
		add(fieldground.HighlightCandidate, ps.Candidate)
	}
	add(fieldground.HighlightConnected, ps.Connected...)
	add(fieldground.HighlightDangling, ps.Dangling...)
	add(fieldground.HighlightExistingTarget, ps.ExistingTargets...)
	return out
}

// CellCenter returns the UV position of the center of cell p.
func (f *Field) CellCenter(p Pos) fieldground.Vec2 {
	return fieldground.Vec2{
		X: (float64(p.X) + 0.5) / float64(f.width),
		Y: (float64(p.Y) + 0.5) / float64(f.height),
	}
}

// CellAt returns the cell under a UV position. The second result is false
// outside the surface.
func (f *Field) CellAt(uv fieldground.Vec2) (Pos, bool) {
	if uv.X < 0 || uv.Y < 0 || uv.X >= 1 || uv.Y >= 1 {
		return Pos{}, false
	}
	p := Pos{X: int(uv.X * float64(f.width)), Y: int(uv.Y * float64(f.height))}
	return p, f.Contains(p)
}
