package fieldground

import (
	"math"
	"testing"
)

func TestSegmentDistance(t *testing.T) {
	a, b := V2(0, 0), V2(1, 0)
	tests := []struct {
		name     string
		p        Vec2
		wantDist float64
		wantT    float64
	}{
		{"on segment", V2(0.5, 0), 0, 0.5},
		{"above middle", V2(0.25, 0.5), 0.5, 0.25},
		{"before start", V2(-3, 4), 5, 0},
		{"past end", V2(4, 4), 5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, pt := SegmentDistance(tt.p, a, b)
			if !almostEqual(d, tt.wantDist, 1e-12) || !almostEqual(pt, tt.wantT, 1e-12) {
				t.Errorf("SegmentDistance(%v) = (%v, %v), want (%v, %v)", tt.p, d, pt, tt.wantDist, tt.wantT)
			}
		})
	}
}

func TestSegmentDistance_Degenerate(t *testing.T) {
	d, pt := SegmentDistance(V2(3, 4), V2(0, 0), V2(0, 0))
	if d != 5 || pt != 0 {
		t.Errorf("SegmentDistance(point segment) = (%v, %v), want (5, 0)", d, pt)
	}
}

func TestLineMask(t *testing.T) {
	const w = 0.05
	tests := []struct {
		name  string
		dist  float64
		width float64
		want  float64
	}{
		{"on line", 0, w, 1},
		{"inside core", w / 2, w, 1},
		{"soft edge", w * 0.75, w, 0.5},
		{"at width", w, w, 0},
		{"beyond", 1, w, 0},
		{"zero width", 0, 0, 0},
		{"negative width", 0, -w, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LineMask(tt.dist, tt.width); !almostEqual(got, tt.want, 1e-12) {
				t.Errorf("LineMask(%v, %v) = %v, want %v", tt.dist, tt.width, got, tt.want)
			}
		})
	}
}

func TestConnectionPulse(t *testing.T) {
	tests := []struct {
		progress, time, speed float64
		want                  float64
	}{
		{0, 0, 2, 0.5},
		{0.25, 0, 2, 1},
		{0.75, 0, 2, 0},
		// Half a second at speed 2 is one full period.
		{0.25, 0.5, 2, 1},
		// The pulse at progress p and time t equals the pulse at p-s*t.
		{0.5, 0.125, 2, 1},
	}

	for _, tt := range tests {
		got := ConnectionPulse(tt.progress, tt.time, tt.speed)
		if !almostEqual(got, tt.want, 1e-9) {
			t.Errorf("ConnectionPulse(%v, %v, %v) = %v, want %v",
				tt.progress, tt.time, tt.speed, got, tt.want)
		}
	}
}

func TestRenderConnection_Invalid(t *testing.T) {
	p := DefaultParameters(4, 4)
	base := RGBA{0.1, 0.2, 0.3, 1}

	for _, dist := range []float64{0, -1, math.Inf(-1)} {
		c := Connection{Start: V2(0, 0.5), End: V2(1, 0.5), Strength: 1, Distance: dist}
		if s := RenderConnection(V2(0.5, 0.5), c, &p); s != (LineSample{}) {
			t.Errorf("distance %v: RenderConnection() = %+v, want zero sample", dist, s)
		}
		if got := BlendConnection(base, V2(0.5, 0.5), c, &p); got != base {
			t.Errorf("distance %v: BlendConnection() = %v, want %v", dist, got, base)
		}
	}
}

func TestRenderConnection_Midpoint(t *testing.T) {
	p := DefaultParameters(4, 4)
	p.LineWidth = 0.05
	c := Connection{Start: V2(0.1, 0.1), End: V2(0.9, 0.9), Strength: 1, Distance: 1.13}

	s := RenderConnection(V2(0.5, 0.5), c, &p)
	if s.Mask != 1 {
		t.Errorf("Mask = %v, want 1", s.Mask)
	}
	if s.Alpha != 1 {
		t.Errorf("Alpha = %v, want 1", s.Alpha)
	}

	progress := V2(0.8, 0.8).Length() * 0.5 / 1.13
	pulse := math.Sin(progress*2*math.Pi)*0.5 + 0.5
	if !almostEqual(s.Pulse, pulse, 1e-9) {
		t.Errorf("Pulse = %v, want %v", s.Pulse, pulse)
	}

	want := p.ColorLow.Lerp(p.ColorHigh, pulse).ScaleRGB(1 + pulse*p.GlowIntensity)
	if !colorNear(s.Color, want, 1e-9) {
		t.Errorf("Color = %v, want %v", s.Color, want)
	}

	// Full mask at full strength replaces the base color channels.
	base := RGBA{0, 0, 0, 0.75}
	got := BlendConnection(base, V2(0.5, 0.5), c, &p)
	if !colorNear(got, RGBA{want.R, want.G, want.B, 0.75}, 1e-9) {
		t.Errorf("BlendConnection() = %v, want %v with alpha 0.75", got, want)
	}
}

// Weak links sit closer to the low color and are more transparent.
func TestRenderConnection_StrengthActsTwice(t *testing.T) {
	p := DefaultParameters(4, 4)
	p.LineWidth = 0.05
	p.GlowIntensity = 0
	p.Time = 0.125 // puts the pulse peak on the midpoint at speed 2
	c := Connection{Start: V2(0, 0.5), End: V2(1, 0.5), Strength: 0.5, Distance: 1}

	s := RenderConnection(V2(0.5, 0.5), c, &p)
	if !almostEqual(s.Pulse, 1, 1e-9) {
		t.Fatalf("Pulse = %v, want 1", s.Pulse)
	}
	if s.Alpha != 0.5 {
		t.Errorf("Alpha = %v, want 0.5", s.Alpha)
	}
	want := p.ColorLow.Lerp(p.ColorHigh, 0.5)
	if !colorNear(s.Color, want, 1e-9) {
		t.Errorf("Color = %v, want %v", s.Color, want)
	}
}

func TestRenderConnection_OutsideLine(t *testing.T) {
	p := DefaultParameters(4, 4)
	c := Connection{Start: V2(0, 0.5), End: V2(1, 0.5), Strength: 1, Distance: 1}
	base := RGBA{0.1, 0.2, 0.3, 1}

	if got := BlendConnection(base, V2(0.5, 0.6), c, &p); got != base {
		t.Errorf("BlendConnection() far from line = %v, want %v", got, base)
	}
}

func TestRenderConnection_ZeroLength(t *testing.T) {
	p := DefaultParameters(4, 4)
	p.LineWidth = 0.05
	c := Connection{Start: V2(0.5, 0.5), End: V2(0.5, 0.5), Strength: 1, Distance: 0.1}

	s := RenderConnection(V2(0.5, 0.5), c, &p)
	if s.Mask != 1 {
		t.Errorf("Mask at point = %v, want 1", s.Mask)
	}
	if math.IsNaN(s.Pulse) {
		t.Error("Pulse is NaN for a zero-length segment")
	}
}

// Overlapping lines blend in buffer order: the later one dominates.
func TestBlendConnection_Order(t *testing.T) {
	p := DefaultParameters(4, 4)
	p.LineWidth = 0.05
	p.ColorLow = RGB(1, 0, 0)
	p.ColorHigh = RGB(1, 0, 0)
	p.GlowIntensity = 0
	red := Connection{Start: V2(0, 0.5), End: V2(1, 0.5), Strength: 1, Distance: 1}

	q := p
	q.ColorLow = RGB(0, 0, 1)
	q.ColorHigh = RGB(0, 0, 1)
	blue := Connection{Start: V2(0.5, 0), End: V2(0.5, 1), Strength: 1, Distance: 1}

	uv := V2(0.5, 0.5)
	got := BlendConnection(BlendConnection(Black, uv, red, &p), uv, blue, &q)
	if !colorNear(got, RGB(0, 0, 1), 1e-12) {
		t.Errorf("red then blue = %v, want blue", got)
	}
}
