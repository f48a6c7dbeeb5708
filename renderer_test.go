package fieldground

import (
	"context"
	"errors"
	"image"
	"testing"
)

func newTestRenderer(tb testing.TB, opts ...RendererOption) *Renderer {
	tb.Helper()
	r, err := NewRenderer(opts...)
	if err != nil {
		tb.Fatalf("NewRenderer() = %v", err)
	}
	tb.Cleanup(r.Close)
	return r
}

// The parallel render matches shading every pixel center one by one.
func TestRenderer_MatchesShade(t *testing.T) {
	f := testFrame(t)
	f.Params.Time = 0.7
	f.Params.LineWidth = 0.05
	f.Connections = []Connection{{Start: V2(0.1, 0.2), End: V2(0.9, 0.7), Strength: 0.8, Distance: 1}}
	f.Previews = []PreviewHighlight{
		{Position: V2(0.25, 0.25), Kind: HighlightCandidate},
		{Position: V2(0.75, 0.75), Kind: HighlightDangling},
	}
	f.Params.ConnectionCount = 1
	f.Params.PreviewCount = 2

	r := newTestRenderer(t, WithWorkers(3))
	const w, h = 150, 90
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))

	stats, err := r.Render(context.Background(), f, dst)
	if err != nil {
		t.Fatalf("Render() = %v", err)
	}
	if stats.Pixels != w*h {
		t.Errorf("Stats.Pixels = %d, want %d", stats.Pixels, w*h)
	}
	if stats.Tiles != 6 {
		t.Errorf("Stats.Tiles = %d, want 6", stats.Tiles)
	}
	if stats.ClampedPixels != 0 {
		t.Errorf("Stats.ClampedPixels = %d, want 0", stats.ClampedPixels)
	}

	c := r.Compositor()
	for y := 0; y < h; y += 7 {
		for x := 0; x < w; x += 5 {
			uv := V2((float64(x)+0.5)/w, (float64(y)+0.5)/h)
			want := c.Shade(f, uv).Color.NRGBA()
			if got := dst.NRGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestRenderer_SubImage(t *testing.T) {
	f := testFrame(t)
	r := newTestRenderer(t)

	full := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	sub := full.SubImage(image.Rect(20, 20, 40, 40)).(*image.NRGBA)
	if _, err := r.Render(context.Background(), f, sub); err != nil {
		t.Fatalf("Render() = %v", err)
	}

	// The sub-image is its own surface: its top-left pixel is cell (0,0).
	if got, want := full.NRGBAAt(20, 20), slotColor(0); got != want {
		t.Errorf("sub-image origin = %v, want %v", got, want)
	}
	if got := full.NRGBAAt(0, 0); got.A != 0 {
		t.Errorf("pixel outside sub-image written: %v", got)
	}
}

func TestRenderer_CountsClampedPixels(t *testing.T) {
	f := testFrame(t)
	f.TileIndex = SolidTexture(RGB(1, 0, 0))
	r := newTestRenderer(t)

	dst := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	stats, err := r.Render(context.Background(), f, dst)
	if err != nil {
		t.Fatalf("Render() = %v", err)
	}
	if stats.ClampedPixels != 100 {
		t.Errorf("Stats.ClampedPixels = %d, want 100", stats.ClampedPixels)
	}

	unchecked := newTestRenderer(t, WithCompositorOptions(WithUncheckedAtlas()))
	stats, err = unchecked.Render(context.Background(), f, dst)
	if err != nil {
		t.Fatalf("unchecked Render() = %v", err)
	}
	if stats.ClampedPixels != 0 {
		t.Errorf("unchecked Stats.ClampedPixels = %d, want 0", stats.ClampedPixels)
	}
}

func TestRenderer_Errors(t *testing.T) {
	r := newTestRenderer(t)
	f := testFrame(t)

	if _, err := r.Render(context.Background(), f, nil); !errors.Is(err, ErrNilImage) {
		t.Errorf("Render(nil dst) = %v, want ErrNilImage", err)
	}

	bad := testFrame(t)
	bad.Params.ConnectionCount = 5
	dst := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	if _, err := r.Render(context.Background(), bad, dst); !errors.Is(err, ErrCountExceedsBuffer) {
		t.Errorf("Render(bad count) = %v, want ErrCountExceedsBuffer", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Render(ctx, f, dst); !errors.Is(err, context.Canceled) {
		t.Errorf("Render(cancelled) = %v, want context.Canceled", err)
	}
}

func TestRenderer_Workers(t *testing.T) {
	r := newTestRenderer(t, WithWorkers(2))
	if got := r.Workers(); got != 2 {
		t.Errorf("Workers() = %d, want 2", got)
	}
	d := newTestRenderer(t, WithWorkers(0))
	if d.Workers() < 1 {
		t.Errorf("default Workers() = %d, want >= 1", d.Workers())
	}
}

func BenchmarkRender(b *testing.B) {
	f := testFrame(b)
	f.Connections = make([]Connection, 64)
	for i := range f.Connections {
		y := (float64(i) + 0.5) / 64
		f.Connections[i] = Connection{Start: V2(0, y), End: V2(1, 1-y), Strength: 0.7, Distance: 1}
	}
	f.Params.ConnectionCount = len(f.Connections)
	f.Params.LineWidth = 0.01

	r := newTestRenderer(b)
	dst := image.NewNRGBA(image.Rect(0, 0, 256, 256))
	ctx := context.Background()

	b.ReportAllocs()
	for b.Loop() {
		if _, err := r.Render(ctx, f, dst); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkShade(b *testing.B) {
	f := testFrame(b)
	c := newTestCompositor(b)
	uv := V2(0.3, 0.6)

	b.ReportAllocs()
	for b.Loop() {
		_ = c.Shade(f, uv)
	}
}
