package playfield

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/fieldground"
)

// ErrInvalidScene is returned for malformed scene files.
var ErrInvalidScene = errors.New("playfield: invalid scene")

// Scene is the JSON description of a board.
//
// Terrain can be given as Rows, one string per grid row using
//
//	. empty   f fertile   r rock   w water   m moss
//
// and refined with individual Tiles entries, which win over Rows.
type Scene struct {
	Width    int            `json:"width"`
	Height   int            `json:"height"`
	Rows     []string       `json:"rows,omitempty"`
	Tiles    []SceneTile    `json:"tiles,omitempty"`
	Emitters []SceneEmitter `json:"emitters,omitempty"`

	// Hover is the emitter being placed, if any.
	Hover *SceneEmitter `json:"hover,omitempty"`

	// Look overrides the default frame parameters.
	Look *SceneLook `json:"look,omitempty"`
}

// SceneTile sets the terrain of one cell.
type SceneTile struct {
	X    int      `json:"x"`
	Y    int      `json:"y"`
	Type TileType `json:"type"`
}

// SceneEmitter places an emitter. Offsets, when present, replace the named
// Pattern.
type SceneEmitter struct {
	X       int       `json:"x"`
	Y       int       `json:"y"`
	Pattern string    `json:"pattern,omitempty"`
	Offsets [][2]int  `json:"offsets,omitempty"`
	Facing  Direction `json:"facing"`
}

// SceneLook holds optional parameter overrides. Colors are hex strings.
type SceneLook struct {
	Time          *float64 `json:"time,omitempty"`
	ColorLow      string   `json:"color_low,omitempty"`
	ColorHigh     string   `json:"color_high,omitempty"`
	PulseSpeed    *float64 `json:"pulse_speed,omitempty"`
	GlowIntensity *float64 `json:"glow_intensity,omitempty"`
	LineWidth     *float64 `json:"line_width,omitempty"`
}

var rowGlyphs = map[rune]TileType{
	'.': Empty,
	'f': Fertile,
	'r': BlockedRock,
	'w': BlockedWater,
	'm': BlockedMoss,
}

// DecodeScene reads a JSON scene. Unknown fields are rejected.
func DecodeScene(r io.Reader) (*Scene, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var s Scene
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	return &s, nil
}

// LoadScene reads a JSON scene file.
func LoadScene(path string) (*Scene, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("playfield: open scene: %w", err)
	}
	defer f.Close()

	s, err := DecodeScene(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Encode writes s as indented JSON.
func (s *Scene) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// Field builds the board and computes its links.
func (s *Scene) Field() (*Field, error) {
	f, err := NewField(s.Width, s.Height)
	if err != nil {
		return nil, err
	}

	if len(s.Rows) > s.Height {
		return nil, fmt.Errorf("%w: %d rows for height %d", ErrInvalidScene, len(s.Rows), s.Height)
	}
	for y, row := range s.Rows {
		x := 0
		for _, r := range row {
			t, ok := rowGlyphs[r]
			if !ok {
				return nil, fmt.Errorf("%w: row %d: unknown tile %q", ErrInvalidScene, y, r)
			}
			if err := f.SetTile(Pos{X: x, Y: y}, t); err != nil {
				return nil, fmt.Errorf("%w: row %d: %w", ErrInvalidScene, y, err)
			}
			x++
		}
	}

	for _, t := range s.Tiles {
		if err := f.SetTile(Pos{X: t.X, Y: t.Y}, t.Type); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
		}
	}

	for i, se := range s.Emitters {
		e, err := se.Emitter()
		if err != nil {
			return nil, fmt.Errorf("emitter %d: %w", i, err)
		}
		if err := f.Place(Pos{X: se.X, Y: se.Y}, e); err != nil {
			return nil, fmt.Errorf("%w: emitter %d: %w", ErrInvalidScene, i, err)
		}
	}

	f.Rebuild()
	return f, nil
}

// Emitter returns the emitter described by se.
func (se SceneEmitter) Emitter() (Emitter, error) {
	if len(se.Offsets) > 0 {
		offsets := make([]Offset, len(se.Offsets))
		for i, o := range se.Offsets {
			offsets[i] = Offset{X: o[0], Y: o[1]}
		}
		return Emitter{Offsets: offsets, Facing: se.Facing}, nil
	}
	name := se.Pattern
	if name == "" {
		name = "none"
	}
	return NewEmitter(name, se.Facing)
}

// Pos returns the cell of se.
func (se SceneEmitter) Pos() Pos {
	return Pos{X: se.X, Y: se.Y}
}

// Parameters returns the default parameters for the scene's grid with the
// Look overrides applied.
func (s *Scene) Parameters() (fieldground.FieldParameters, error) {
	p := fieldground.DefaultParameters(s.Width, s.Height)
	l := s.Look
	if l == nil {
		return p, nil
	}

	if l.Time != nil {
		p.Time = *l.Time
	}
	if l.PulseSpeed != nil {
		p.PulseSpeed = *l.PulseSpeed
	}
	if l.GlowIntensity != nil {
		p.GlowIntensity = *l.GlowIntensity
	}
	if l.LineWidth != nil {
		p.LineWidth = *l.LineWidth
	}
	for _, c := range []struct {
		hex string
		dst *fieldground.RGBA
	}{
		{l.ColorLow, &p.ColorLow},
		{l.ColorHigh, &p.ColorHigh},
	} {
		if c.hex == "" {
			continue
		}
		v, err := fieldground.ParseHex(c.hex)
		if err != nil {
			return p, fmt.Errorf("%w: %w", ErrInvalidScene, err)
		}
		*c.dst = v
	}
	return p, nil
}
