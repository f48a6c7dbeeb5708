// Package fieldground composites the ground surface of a mycelium play field.
//
// # Overview
//
// For every pixel of the surface the compositor looks up which sprite covers
// the pixel's grid cell, samples that sprite from a vertical tile atlas, draws
// animated mycelium connection lines on top, and finally applies the
// placement-preview highlights. The result is a base color plus fixed
// material parameters that a lighting stage turns into the lit pixel.
//
// # Quick Start
//
//	frame := fieldground.Frame{
//	    Params:      fieldground.DefaultParameters(8, 6),
//	    TileIndex:   tileIndexTexture,
//	    Atlas:       atlasTexture,
//	    Connections: links,
//	    Previews:    previews,
//	}
//	frame.Params.ConnectionCount = len(links)
//	frame.Params.PreviewCount = len(previews)
//
//	r, err := fieldground.NewRenderer()
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	dst := image.NewNRGBA(image.Rect(0, 0, 512, 384))
//	stats, err := r.Render(ctx, &frame, dst)
//
// # Coordinate System
//
// UV coordinates follow texture conventions:
//   - Origin (0,0) at the top-left of the surface
//   - U increases right, V increases down
//   - Grid cell (x, y) covers [x/cols, (x+1)/cols) x [y/rows, (y+1)/rows)
//
// # Architecture
//
//   - Kernel: AtlasLayout (tile atlas sampler), RenderConnection (line
//     renderer), Highlights/ApplyHighlights (highlight overlays) and
//     Compositor (per-pixel pipeline)
//   - Renderer: a data-parallel map of the kernel over an output image
//   - Sub-packages: playfield (frame assembly from a tile grid) and
//     shader (WGSL port of the kernel for GPU hosts)
//
// The kernel is pure: it never allocates, logs or fails per pixel. Frame data
// is validated once, by Frame.Validate, before any pixel is shaded.
package fieldground
