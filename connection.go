package fieldground

import "math"

// Connection is one animated mycelium line between two surface points.
// Start and End are in UV space. Distance is the producer's notion of the
// segment length and drives the flow timing; Distance <= 0 marks an unused
// entry that contributes nothing.
type Connection struct {
	Start    Vec2
	End      Vec2
	Strength float64
	Distance float64
}

// Valid reports whether the entry should be drawn.
func (c Connection) Valid() bool {
	return c.Distance > 0
}

// SegmentDistance returns the distance from p to the segment ab and the
// clamped projection parameter t in [0, 1] of the closest point.
// A degenerate segment (a == b) behaves as the point a.
func SegmentDistance(p, a, b Vec2) (dist, t float64) {
	pa := p.Sub(a)
	ba := b.Sub(a)
	lenSq := ba.Dot(ba)
	if lenSq > 0 {
		t = clamp01(pa.Dot(ba) / lenSq)
	}
	return pa.Sub(ba.Mul(t)).Length(), t
}

// LineMask converts a pixel-to-segment distance into a soft mask: 1 up to
// width/2, falling smoothly to exactly 0 at width and beyond.
// A non-positive width draws nothing.
func LineMask(dist, width float64) float64 {
	if !(width > 0) {
		return 0
	}
	return 1 - smoothstep(width*0.5, width, dist)
}

// ConnectionPulse returns the energy-flow value in [0, 1] at a normalized
// progress along a line. One period spans one unit of progress-minus-time,
// so pulses travel from start to end at speed lines per second.
func ConnectionPulse(progress, time, speed float64) float64 {
	return math.Sin((progress-time*speed)*2*math.Pi)*0.5 + 0.5
}

// LineSample is the contribution of one connection to one pixel.
type LineSample struct {
	// Mask is the line coverage in [0, 1].
	Mask float64

	// Pulse is the animated flow value in [0, 1].
	Pulse float64

	// Color is the gradient color with glow applied.
	Color RGBA

	// Alpha is the blend factor onto the running color: Mask * Strength.
	Alpha float64
}

// RenderConnection computes the line contribution of c at uv.
// Invalid connections return the zero sample.
//
// Strength acts twice: it positions the color between ColorLow and
// ColorHigh (weak links stay near the low color whatever the phase) and it
// scales the final opacity.
func RenderConnection(uv Vec2, c Connection, p *FieldParameters) LineSample {
	if !c.Valid() {
		return LineSample{}
	}

	dist, t := SegmentDistance(uv, c.Start, c.End)
	mask := LineMask(dist, p.LineWidth)

	fromStart := c.End.Sub(c.Start).Length() * t
	pulse := ConnectionPulse(fromStart/c.Distance, p.Time, p.PulseSpeed)

	glow := 1 + pulse*p.GlowIntensity
	color := p.ColorLow.Lerp(p.ColorHigh, pulse*c.Strength).ScaleRGB(glow)

	return LineSample{
		Mask:  mask,
		Pulse: pulse,
		Color: color,
		Alpha: mask * c.Strength,
	}
}

// BlendConnection draws c over base at uv. A zero Alpha, which every
// invalid connection and every pixel outside the line produces, returns base
// unchanged.
func BlendConnection(base RGBA, uv Vec2, c Connection, p *FieldParameters) RGBA {
	s := RenderConnection(uv, c, p)
	if s.Alpha == 0 {
		return base
	}
	return base.MixRGB(s.Color, s.Alpha)
}
