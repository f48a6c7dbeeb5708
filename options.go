package fieldground

import "runtime"

// Option configures a Compositor during creation.
//
// Example:
//
//	// Default 21-slot atlas, checked tile indices
//	c, err := fieldground.NewCompositor()
//
//	// Custom atlas strip
//	c, err := fieldground.NewCompositor(fieldground.WithAtlasLayout(layout))
type Option func(*options)

// options holds optional configuration for Compositor creation.
type options struct {
	layout    AtlasLayout
	unchecked bool
	material  Material
}

// defaultOptions returns the default compositor options.
func defaultOptions() options {
	return options{
		layout:   DefaultAtlasLayout(),
		material: DefaultMaterial(),
	}
}

// WithAtlasLayout sets the atlas strip geometry.
func WithAtlasLayout(l AtlasLayout) Option {
	return func(o *options) {
		o.layout = l
	}
}

// WithUncheckedAtlas selects the legacy atlas lookup: out-of-range tile
// indices are not clamped and sample whatever lies beyond the strip's ends.
func WithUncheckedAtlas() Option {
	return func(o *options) {
		o.unchecked = true
	}
}

// WithMaterial sets the material reported with every fragment.
func WithMaterial(m Material) Option {
	return func(o *options) {
		o.material = m
	}
}

// RendererOption configures a Renderer during creation.
type RendererOption func(*rendererOptions)

type rendererOptions struct {
	workers    int
	compositor []Option
}

func defaultRendererOptions() rendererOptions {
	return rendererOptions{workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers sets the number of render workers. Values below 1 select
// GOMAXPROCS.
func WithWorkers(n int) RendererOption {
	return func(o *rendererOptions) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithCompositorOptions passes options to the renderer's compositor.
func WithCompositorOptions(opts ...Option) RendererOption {
	return func(o *rendererOptions) {
		o.compositor = append(o.compositor, opts...)
	}
}
