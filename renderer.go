package fieldground

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync/atomic"
	"time"

	"github.com/gogpu/fieldground/internal/parallel"
)

// ErrNilImage is returned when Render is given no destination.
var ErrNilImage = errors.New("fieldground: nil destination image")

// Stats describes one rendered frame.
type Stats struct {
	// Pixels is the number of pixels shaded.
	Pixels int64

	// ClampedPixels counts pixels whose tile index fell outside the atlas
	// and was clamped. Always 0 with WithUncheckedAtlas.
	ClampedPixels int64

	// Tiles is the number of parallel work tiles.
	Tiles int

	// Elapsed is the wall time of the render.
	Elapsed time.Duration
}

// Renderer shades whole frames on a pool of workers. Each output pixel is
// independent, so the image is split into tiles that are shaded
// concurrently.
type Renderer struct {
	comp *Compositor
	disp *parallel.Dispatcher
}

// NewRenderer creates a renderer. Call Close to stop its workers.
func NewRenderer(opts ...RendererOption) (*Renderer, error) {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}
	comp, err := NewCompositor(o.compositor...)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		comp: comp,
		disp: parallel.NewDispatcher(o.workers),
	}, nil
}

// Compositor returns the renderer's compositor.
func (r *Renderer) Compositor() *Compositor {
	return r.comp
}

// Workers returns the number of render workers.
func (r *Renderer) Workers() int {
	return r.disp.Workers()
}

// Render validates f and shades every pixel of dst. Pixel (x, y) samples
// the surface at its center, uv = ((x+0.5)/W, (y+0.5)/H).
//
// If ctx is cancelled the frame is abandoned, ctx.Err() is returned and the
// content of dst is unspecified.
func (r *Renderer) Render(ctx context.Context, f *Frame, dst *image.NRGBA) (Stats, error) {
	if dst == nil {
		return Stats{}, ErrNilImage
	}
	if err := f.Validate(); err != nil {
		return Stats{}, fmt.Errorf("fieldground: render: %w", err)
	}

	start := time.Now()
	bounds := dst.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	invW, invH := 1/float64(w), 1/float64(h)

	var clamped atomic.Int64
	err := r.disp.Run(ctx, w, h, func(t parallel.Tile) {
		x0, y0, tw, th := t.Bounds()
		var n int64
		for y := y0; y < y0+th; y++ {
			row := dst.Pix[dst.PixOffset(bounds.Min.X+x0, bounds.Min.Y+y):]
			v := (float64(y) + 0.5) * invH
			for x := range tw {
				u := (float64(x0+x) + 0.5) * invW
				frag, ok := r.comp.shade(f, Vec2{X: u, Y: v})
				if !ok {
					n++
				}
				c := frag.Color.NRGBA()
				row[x*4], row[x*4+1], row[x*4+2], row[x*4+3] = c.R, c.G, c.B, c.A
			}
		}
		if n > 0 {
			clamped.Add(n)
		}
	})
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		Pixels:        int64(w) * int64(h),
		ClampedPixels: clamped.Load(),
		Tiles:         r.disp.TileCount(),
		Elapsed:       time.Since(start),
	}

	log := Logger()
	if stats.ClampedPixels > 0 {
		log.Warn("fieldground: tile indices outside atlas clamped",
			"pixels", stats.ClampedPixels,
			"slots", r.comp.layout.Slots)
	}
	log.Debug("fieldground: frame rendered",
		"width", w, "height", h,
		"tiles", stats.Tiles,
		"workers", r.disp.Workers(),
		"connections", f.Params.ConnectionCount,
		"previews", f.Params.PreviewCount,
		"elapsed", stats.Elapsed)

	return stats, nil
}

// Close stops the render workers. The renderer must not be used afterwards.
func (r *Renderer) Close() {
	r.disp.Close()
}
