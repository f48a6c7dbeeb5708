package playfield

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/fieldground"
	"github.com/gogpu/fieldground/shader"
)

// MaxConnections is the capacity of the connection buffer of a frame,
// matching the GPU uniform array.
const MaxConnections = shader.MaxConnections

// TileIndexMap encodes the sprite of every cell into the red channel of a
// width x height image, one texel per cell, row 0 at the top.
func (f *Field) TileIndexMap(layout fieldground.AtlasLayout) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.width, f.height))
	for y := range f.height {
		for x := range f.width {
			pos := Pos{X: x, Y: y}
			sprite := SelectSprite(f.tiles[f.index(pos)], pos)
			img.SetNRGBA(x, y, color.NRGBA{R: layout.EncodeTileIndex(sprite.Slot()), A: 255})
		}
	}
	return img
}

// Connections converts the current links to UV connections between cell
// centers. Distance is the UV length of each link.
func (f *Field) Connections() []fieldground.Connection {
	out := make([]fieldground.Connection, len(f.links))
	for i, l := range f.links {
		start, end := f.CellCenter(l.From), f.CellCenter(l.To)
		out[i] = fieldground.Connection{
			Start:    start,
			End:      end,
			Strength: l.Strength,
			Distance: start.Distance(end),
		}
	}
	return out
}

// Assemble builds a validated frame from f. params supplies the time,
// colors and animation settings; grid size and counts are overwritten.
// Links beyond MaxConnections are dropped with a warning.
func Assemble(f *Field, previews []fieldground.PreviewHighlight, params fieldground.FieldParameters, atlas fieldground.Texture) (*fieldground.Frame, error) {
	tileIndex, err := fieldground.NewImageTexture(f.TileIndexMap(fieldground.DefaultAtlasLayout()), fieldground.FilterNearest)
	if err != nil {
		return nil, fmt.Errorf("playfield: assemble: %w", err)
	}

	conns := f.Connections()
	if len(conns) > MaxConnections {
		fieldground.Logger().Warn("playfield: connections truncated",
			"links", len(conns),
			"max", MaxConnections)
		conns = conns[:MaxConnections]
	}

	params.GridColumns = float64(f.width)
	params.GridRows = float64(f.height)
	params.ConnectionCount = len(conns)
	params.PreviewCount = len(previews)

	frame := &fieldground.Frame{
		Params:      params,
		TileIndex:   tileIndex,
		Atlas:       atlas,
		Connections: conns,
		Previews:    previews,
	}
	if err := frame.Validate(); err != nil {
		return nil, fmt.Errorf("playfield: assemble: %w", err)
	}
	return frame, nil
}
