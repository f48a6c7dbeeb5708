package parallel

import (
	"context"
	"sync"
)

// Dispatcher runs a tile function over every tile of a canvas on a
// WorkerPool.
//
// Thread safety: Run may be called from several goroutines; calls are
// serialized because the tile grid is shared between them.
type Dispatcher struct {
	mu   sync.Mutex
	grid *TileGrid
	pool *WorkerPool
}

// NewDispatcher creates a dispatcher backed by a pool of the given size.
// If workers <= 0, GOMAXPROCS is used.
func NewDispatcher(workers int) *Dispatcher {
	return &Dispatcher{
		grid: NewTileGrid(0, 0),
		pool: NewWorkerPool(workers),
	}
}

// Run calls fn once for every tile of a width x height canvas and waits for
// all calls to return. fn runs concurrently for different tiles and must only
// write inside the tile it was given.
//
// When ctx is cancelled, tiles that have not started are skipped and Run
// returns ctx.Err(); the canvas is then partially written.
func (d *Dispatcher) Run(ctx context.Context, width, height int, fn func(Tile)) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.grid.Resize(width, height)
	tiles := d.grid.Tiles()
	if len(tiles) == 0 || fn == nil {
		return ctx.Err()
	}

	work := make([]func(), len(tiles))
	for i, t := range tiles {
		work[i] = func() { fn(t) }
	}
	return d.pool.ExecuteAll(ctx, work)
}

// TileCount returns the number of tiles of the last canvas size run.
func (d *Dispatcher) TileCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.grid.TileCount()
}

// Workers returns the number of worker goroutines.
func (d *Dispatcher) Workers() int {
	return d.pool.Workers()
}

// Close releases the worker pool. The dispatcher must not be used afterwards.
func (d *Dispatcher) Close() {
	d.pool.Close()
}
