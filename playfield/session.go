package playfield

import (
	"slices"
	"strings"

	"github.com/gogpu/fieldground"
)

// Session is the editing state of an interactive front end: a field, the
// hovered cell and the emitter about to be placed. Every mutation keeps the
// field's links current.
type Session struct {
	field   *Field
	hover   Pos
	names   []string
	pattern int
	facing  Direction
}

// NewSession starts editing f with the named pattern selected, facing up.
// The hover starts at the center cell.
func NewSession(f *Field, pattern string) (*Session, error) {
	pattern = strings.ToLower(strings.TrimSpace(pattern))
	if _, err := Pattern(pattern); err != nil {
		return nil, err
	}
	names := PatternNames()
	s := &Session{
		field:   f,
		hover:   Pos{X: f.Width() / 2, Y: f.Height() / 2},
		names:   names,
		pattern: slices.Index(names, pattern),
	}
	f.Rebuild()
	return s, nil
}

// Field returns the edited field.
func (s *Session) Field() *Field { return s.field }

// Hover returns the hovered cell.
func (s *Session) Hover() Pos { return s.hover }

// Pattern returns the name of the selected pattern.
func (s *Session) Pattern() string { return s.names[s.pattern] }

// Facing returns the direction of the emitter about to be placed.
func (s *Session) Facing() Direction { return s.facing }

// Emitter returns the emitter about to be placed.
func (s *Session) Emitter() Emitter {
	offsets, _ := Pattern(s.Pattern())
	return Emitter{Offsets: offsets, Facing: s.facing}
}

// SetHover moves the hover to p. It reports false and leaves the hover
// unchanged when p is outside the field.
func (s *Session) SetHover(p Pos) bool {
	if !s.field.Contains(p) {
		return false
	}
	s.hover = p
	return true
}

// Move shifts the hover by (dx, dy), stopping at the field border.
func (s *Session) Move(dx, dy int) {
	s.hover = Pos{
		X: min(max(s.hover.X+dx, 0), s.field.Width()-1),
		Y: min(max(s.hover.Y+dy, 0), s.field.Height()-1),
	}
}

// Rotate turns the pending emitter one step clockwise.
func (s *Session) Rotate() {
	s.facing = s.facing.Clockwise()
}

// CyclePattern selects the pattern step places after the current one in
// PatternNames order, wrapping around.
func (s *Session) CyclePattern(step int) {
	n := len(s.names)
	s.pattern = ((s.pattern+step)%n + n) % n
}

// Place puts the pending emitter at the hover.
func (s *Session) Place() error {
	if err := s.field.Place(s.hover, s.Emitter()); err != nil {
		return err
	}
	s.field.Rebuild()
	return nil
}

// Remove takes the emitter at the hover off the field.
func (s *Session) Remove() bool {
	if !s.field.Remove(s.hover) {
		return false
	}
	s.field.Rebuild()
	return true
}

// Previews returns the placement preview at the hover.
func (s *Session) Previews() []fieldground.PreviewHighlight {
	return s.field.Preview(s.hover, s.Emitter())
}

// Frame assembles the current state into a frame at the given time.
func (s *Session) Frame(params fieldground.FieldParameters, atlas fieldground.Texture, time float64) (*fieldground.Frame, error) {
	params.Time = time
	return Assemble(s.field, s.Previews(), params, atlas)
}
