package fieldground

import "fmt"

// Compositor runs the per-pixel ground pipeline: grid cell, atlas color,
// connection lines, preview highlights. It holds no per-frame state and is
// safe for concurrent use.
type Compositor struct {
	layout    AtlasLayout
	unchecked bool
	material  Material
}

// NewCompositor creates a compositor.
func NewCompositor(opts ...Option) (*Compositor, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.layout.Validate(); err != nil {
		return nil, fmt.Errorf("fieldground: new compositor: %w", err)
	}
	return &Compositor{
		layout:    o.layout,
		unchecked: o.unchecked,
		material:  o.material,
	}, nil
}

// Layout returns the atlas layout.
func (c *Compositor) Layout() AtlasLayout {
	return c.layout
}

// Shade computes the fragment at uv. The frame is assumed valid; see
// Frame.Validate.
func (c *Compositor) Shade(f *Frame, uv Vec2) Fragment {
	frag, _ := c.shade(f, uv)
	return frag
}

// shade is Shade that also reports whether the tile index was in range.
// Unchecked compositors always report true.
func (c *Compositor) shade(f *Frame, uv Vec2) (Fragment, bool) {
	p := &f.Params
	grid := p.Grid()

	gridPos := uv.MulVec(grid)
	cell := gridPos.Floor()
	local := gridPos.Fract()

	color, inRange := c.groundColor(f, cell, grid, local)

	for _, conn := range f.Connections[:p.ConnectionCount] {
		color = BlendConnection(color, uv, conn, p)
	}

	var h Highlights
	for _, pv := range f.Previews[:p.PreviewCount] {
		h.Accumulate(gridPos, grid, pv, p.Time)
	}
	color = ApplyHighlights(color, &h, local, p.Time, p.Palette)

	return Fragment{Color: color, Material: c.material}, inRange
}

// groundColor samples the sprite for cell. The tile-index map is read at
// the cell center.
func (c *Compositor) groundColor(f *Frame, cell, grid, local Vec2) (RGBA, bool) {
	center := cell.Add(V2(0.5, 0.5))
	tileIndex := f.TileIndex.Sample(center.X/grid.X, center.Y/grid.Y).R

	var atlasUV Vec2
	inRange := true
	if c.unchecked {
		atlasUV = c.layout.AtlasUV(tileIndex, local)
	} else {
		var slot int
		slot, inRange = c.layout.ClampSlot(tileIndex)
		atlasUV = c.layout.SlotUV(slot, local)
	}
	return f.Atlas.Sample(atlasUV.X, atlasUV.Y), inRange
}
