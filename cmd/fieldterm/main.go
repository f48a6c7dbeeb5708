// Command fieldterm previews and edits a field in the terminal. Every
// character cell shows two pixels with an upper half block.
//
// Keys: arrows move, r rotates, p / P cycle the pattern, space places,
// x removes, q quits. The mouse moves the hover and clicks place.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/fieldground"
	"github.com/gogpu/fieldground/playfield"
)

type cli struct {
	Scene   string `arg:"" optional:"" type:"existingfile" help:"Scene JSON file. An empty field is edited when omitted."`
	Width   int    `default:"12" help:"Columns of the empty field."`
	Height  int    `default:"8" help:"Rows of the empty field."`
	Pattern string `default:"cardinal" enum:"none,forward,cardinal,diagonal,all,knight" help:"Initial emitter pattern (${enum})."`
	Atlas   string `type:"existingfile" help:"Tile atlas PNG. The procedural atlas is used when empty."`
	FPS     int    `default:"20" help:"Redraws per second."`
	Workers int    `env:"FIELDGROUND_WORKERS" help:"Render workers. Defaults to GOMAXPROCS."`
	Log     string `type:"path" help:"Write debug logs to this file."`
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("fieldterm"),
		kong.Description("Terminal field ground preview."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(c.Run())
}

func (c *cli) Run() error {
	if c.FPS < 1 {
		return fmt.Errorf("--fps must be positive, got %d", c.FPS)
	}
	closeLog, err := c.setupLogging()
	if err != nil {
		return err
	}
	defer closeLog()

	v, err := c.newView()
	if err != nil {
		return err
	}
	defer v.renderer.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	return run(screen, v, time.Second/time.Duration(c.FPS))
}

// setupLogging routes logs to the --log file; the terminal belongs to the UI.
func (c *cli) setupLogging() (func(), error) {
	if c.Log == "" {
		return func() {}, nil
	}
	f, err := os.Create(filepath.Clean(c.Log))
	if err != nil {
		return nil, err
	}
	fieldground.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return func() {
		fieldground.SetLogger(nil)
		_ = f.Close()
	}, nil
}

func (c *cli) newView() (*view, error) {
	field, params, err := c.loadField()
	if err != nil {
		return nil, err
	}
	session, err := playfield.NewSession(field, c.Pattern)
	if err != nil {
		return nil, err
	}

	var atlas fieldground.Texture
	if c.Atlas != "" {
		atlas, err = fieldground.LoadTexture(c.Atlas, fieldground.FilterNearest)
	} else {
		atlas, err = generatedAtlas()
	}
	if err != nil {
		return nil, err
	}

	r, err := fieldground.NewRenderer(fieldground.WithWorkers(c.Workers))
	if err != nil {
		return nil, err
	}
	return newView(session, r, params, atlas), nil
}

func (c *cli) loadField() (*playfield.Field, fieldground.FieldParameters, error) {
	if c.Scene == "" {
		f, err := playfield.NewField(c.Width, c.Height)
		return f, fieldground.DefaultParameters(c.Width, c.Height), err
	}
	scene, err := playfield.LoadScene(c.Scene)
	if err != nil {
		return nil, fieldground.FieldParameters{}, err
	}
	f, err := scene.Field()
	if err != nil {
		return nil, fieldground.FieldParameters{}, err
	}
	params, err := scene.Parameters()
	return f, params, err
}

func generatedAtlas() (fieldground.Texture, error) {
	img, err := playfield.GenerateAtlas(fieldground.DefaultAtlasLayout())
	if err != nil {
		return nil, err
	}
	return fieldground.NewImageTexture(img, fieldground.FilterNearest)
}

func run(screen tcell.Screen, v *view, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ctx := context.Background()
	v.layout(screen.Size())
	for {
		select {
		case ev, ok := <-events:
			if !ok || v.handle(ev) {
				return nil
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				v.layout(screen.Size())
				screen.Sync()
			}

		case now := <-ticker.C:
			if err := v.draw(ctx, screen, now); err != nil {
				return err
			}
			screen.Show()
		}
	}
}
