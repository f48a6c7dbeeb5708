package fieldground

import (
	"errors"
	"fmt"
)

// Frame is everything the compositor reads for one frame. A Frame must not
// be modified while a render is in flight.
type Frame struct {
	Params FieldParameters

	// TileIndex is the tile-index map: one texel per grid cell whose red
	// channel holds the normalized sprite slot.
	TileIndex Texture

	// Atlas is the vertical sprite strip.
	Atlas Texture

	// Connections holds at least Params.ConnectionCount entries.
	Connections []Connection

	// Previews holds at least Params.PreviewCount entries.
	Previews []PreviewHighlight
}

// Validate checks the frame before it reaches the per-pixel kernel, which
// performs no checks of its own. All problems are reported together.
func (f *Frame) Validate() error {
	var errs []error
	if err := f.Params.validGrid(); err != nil {
		errs = append(errs, err)
	}
	if err := checkCount("connection", f.Params.ConnectionCount, len(f.Connections)); err != nil {
		errs = append(errs, err)
	}
	if err := checkCount("preview", f.Params.PreviewCount, len(f.Previews)); err != nil {
		errs = append(errs, err)
	}
	if f.TileIndex == nil {
		errs = append(errs, fmt.Errorf("%w: tile index map is nil", ErrMissingTexture))
	}
	if f.Atlas == nil {
		errs = append(errs, fmt.Errorf("%w: atlas is nil", ErrMissingTexture))
	}
	return errors.Join(errs...)
}

// ActiveConnections returns the active prefix of the connection buffer.
func (f *Frame) ActiveConnections() []Connection {
	return f.Connections[:f.Params.ConnectionCount]
}

// ActivePreviews returns the active prefix of the preview buffer.
func (f *Frame) ActivePreviews() []PreviewHighlight {
	return f.Previews[:f.Params.PreviewCount]
}
