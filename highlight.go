package fieldground

import "math"

// HighlightKind classifies a placement-preview point.
type HighlightKind int8

const (
	// HighlightNone is not a highlight; previews of this kind are ignored.
	HighlightNone HighlightKind = iota

	// HighlightCandidate marks the cell where the new emitter would go.
	HighlightCandidate

	// HighlightConnected marks a cell that the candidate would link to.
	HighlightConnected

	// HighlightDangling marks a connection point with nothing to link to.
	HighlightDangling

	// HighlightExistingTarget marks an empty cell that placed emitters reach.
	HighlightExistingTarget
)

// highlightKinds lists the drawable kinds in render order.
var highlightKinds = [...]HighlightKind{
	HighlightCandidate,
	HighlightConnected,
	HighlightDangling,
	HighlightExistingTarget,
}

// DecodeHighlightKind decodes the signed tag used by preview buffers:
// -1 candidate, -2 connected, -3 dangling, -4 existing target.
// Any other value reports false.
func DecodeHighlightKind(tag float64) (HighlightKind, bool) {
	switch tag {
	case -1:
		return HighlightCandidate, true
	case -2:
		return HighlightConnected, true
	case -3:
		return HighlightDangling, true
	case -4:
		return HighlightExistingTarget, true
	default:
		return HighlightNone, false
	}
}

// Tag returns the buffer tag of k, or 0 for HighlightNone.
func (k HighlightKind) Tag() float64 {
	if k < HighlightCandidate || k > HighlightExistingTarget {
		return 0
	}
	return -float64(k)
}

// String returns the kind name.
func (k HighlightKind) String() string {
	switch k {
	case HighlightCandidate:
		return "candidate"
	case HighlightConnected:
		return "connected"
	case HighlightDangling:
		return "dangling"
	case HighlightExistingTarget:
		return "existing-target"
	default:
		return "none"
	}
}

// PreviewHighlight is one preview point at a UV position.
type PreviewHighlight struct {
	Position Vec2
	Kind     HighlightKind
}

// PreviewFromTag decodes a raw buffer entry. Unknown tags yield
// HighlightNone.
func PreviewFromTag(pos Vec2, tag float64) PreviewHighlight {
	kind, _ := DecodeHighlightKind(tag)
	return PreviewHighlight{Position: pos, Kind: kind}
}

// pulseWave is base + amplitude*sin(time*frequency + phase).
type pulseWave struct {
	base, amplitude, frequency, phase float64
}

// highlightWaves holds the per-kind pulse, indexed by kind.
var highlightWaves = [...]pulseWave{
	HighlightCandidate:      {base: 0.6, amplitude: 0.2, frequency: 3},
	HighlightConnected:      {base: 0.4, amplitude: 0.1, frequency: 4, phase: 1.57},
	HighlightDangling:       {base: 0.5, amplitude: 0.15, frequency: 5},
	HighlightExistingTarget: {base: 0.5, amplitude: 0.1, frequency: 2},
}

// HighlightIntensity returns the pulsing intensity of kind at time.
// HighlightNone has intensity 0.
func HighlightIntensity(kind HighlightKind, time float64) float64 {
	if kind < HighlightCandidate || kind > HighlightExistingTarget {
		return 0
	}
	w := highlightWaves[kind]
	return w.base + w.amplitude*math.Sin(time*w.frequency+w.phase)
}

// Preview reach: a preview affects pixels whose grid-space distance,
// damped by previewDamping, is below previewRadius.
const (
	previewDamping = 0.7
	previewRadius  = 0.5
)

// Affects reports whether a preview at previewGrid touches the pixel
// at pixelGrid. Both points are in grid units.
func Affects(pixelGrid, previewGrid Vec2) bool {
	return pixelGrid.Distance(previewGrid)*previewDamping < previewRadius
}

// Highlights holds the strongest intensity of each kind affecting a pixel.
// The zero value means no highlight.
type Highlights struct {
	intensity [HighlightExistingTarget + 1]float64
}

// Intensity returns the accumulated intensity of kind.
func (h *Highlights) Intensity(kind HighlightKind) float64 {
	if kind < HighlightCandidate || kind > HighlightExistingTarget {
		return 0
	}
	return h.intensity[kind]
}

// Any reports whether any kind has a positive intensity.
func (h *Highlights) Any() bool {
	for _, k := range highlightKinds {
		if h.intensity[k] > 0 {
			return true
		}
	}
	return false
}

// Add records intensity for kind, keeping the maximum seen so far.
func (h *Highlights) Add(kind HighlightKind, intensity float64) {
	if kind < HighlightCandidate || kind > HighlightExistingTarget {
		return
	}
	h.intensity[kind] = max(h.intensity[kind], intensity)
}

// Accumulate folds one preview into h for the pixel at pixelGrid.
// grid converts the preview's UV position to grid units.
func (h *Highlights) Accumulate(pixelGrid, grid Vec2, pv PreviewHighlight, time float64) {
	if pv.Kind == HighlightNone {
		return
	}
	if !Affects(pixelGrid, pv.Position.MulVec(grid)) {
		return
	}
	h.Add(pv.Kind, HighlightIntensity(pv.Kind, time))
}

// HighlightPalette is the overlay color of each highlight kind.
type HighlightPalette struct {
	Candidate      RGBA
	Connected      RGBA
	Dangling       RGBA
	ExistingTarget RGBA
}

// DefaultHighlightPalette returns the preview colors: pale yellow for the
// candidate, green for links that would form, red for dangling connection
// points and blue for cells existing emitters reach.
func DefaultHighlightPalette() HighlightPalette {
	return HighlightPalette{
		Candidate:      RGB(1.0, 0.95, 0.6),
		Connected:      RGB(0.3, 1.0, 0.4),
		Dangling:       RGB(1.0, 0.35, 0.3),
		ExistingTarget: RGB(0.35, 0.6, 1.0),
	}
}

// Color returns the palette entry for kind.
func (p HighlightPalette) Color(kind HighlightKind) RGBA {
	switch kind {
	case HighlightCandidate:
		return p.Candidate
	case HighlightConnected:
		return p.Connected
	case HighlightDangling:
		return p.Dangling
	case HighlightExistingTarget:
		return p.ExistingTarget
	default:
		return Transparent
	}
}

// highlightStyle is the render policy of one kind.
type highlightStyle struct {
	fill      float64 // fill blend per unit of intensity; 0 disables the fill
	edge      float64 // edge band width in cell-fraction units
	edgeBlend float64 // edge blend factor
	edgeScale bool    // multiply edgeBlend by intensity
	dashed    bool    // gate the edge with the moving dash pattern
}

var highlightStyles = [...]highlightStyle{
	HighlightCandidate:      {fill: 0.5, edge: 0.05, edgeBlend: 0.8},
	HighlightConnected:      {fill: 0.4, edge: 0.03, edgeBlend: 0.6},
	HighlightDangling:       {fill: 0.4, edge: 0.04, edgeBlend: 0.7, dashed: true},
	HighlightExistingTarget: {edge: 0.02, edgeBlend: 0.6, edgeScale: true},
}

// dashThreshold is the dash pattern level above which dashed edges draw.
const dashThreshold = 0.3

// EdgeDistance returns the distance from an intra-cell coordinate to the
// nearest cell border, in cell-fraction units.
func EdgeDistance(cell Vec2) float64 {
	return min(cell.X, 1-cell.X, cell.Y, 1-cell.Y)
}

// DashPattern is a diagonal wave over the cell travelling with time,
// remapped to [0, 1].
func DashPattern(cell Vec2, time float64) float64 {
	return math.Sin((cell.X+cell.Y)*20+time*8)*0.5 + 0.5
}

// ApplyHighlights blends the accumulated highlights onto c for a pixel at
// intra-cell coordinate cell. Kinds apply in order candidate, connected,
// dangling, existing target, each onto the result of the previous one.
func ApplyHighlights(c RGBA, h *Highlights, cell Vec2, time float64, palette HighlightPalette) RGBA {
	edgeDist := EdgeDistance(cell)

	for _, kind := range highlightKinds {
		intensity := h.intensity[kind]
		if !(intensity > 0) {
			continue
		}

		style := highlightStyles[kind]
		overlay := palette.Color(kind)

		if style.fill > 0 {
			c = c.MixRGB(overlay, intensity*style.fill)
		}
		if edgeDist >= style.edge {
			continue
		}
		if style.dashed && DashPattern(cell, time) <= dashThreshold {
			continue
		}
		blend := style.edgeBlend
		if style.edgeScale {
			blend *= intensity
		}
		c = c.MixRGB(overlay, blend)
	}
	return c
}
