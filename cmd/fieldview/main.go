// Command fieldview is an interactive field ground viewer.
//
// The mouse moves the placement preview, left click places the pending
// emitter and right click removes one. R rotates, P and Shift+P cycle the
// pattern, Escape quits.
package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/fieldground"
	"github.com/gogpu/fieldground/playfield"
)

type cli struct {
	Scene    string `arg:"" optional:"" type:"existingfile" help:"Scene JSON file. An empty field is edited when omitted."`
	Width    int    `default:"16" help:"Columns of the empty field."`
	Height   int    `default:"10" help:"Rows of the empty field."`
	Pattern  string `default:"cardinal" enum:"none,forward,cardinal,diagonal,all,knight" help:"Initial emitter pattern (${enum})."`
	Atlas    string `type:"existingfile" help:"Tile atlas PNG. The procedural atlas is used when empty."`
	Filter   string `enum:"nearest,linear" default:"nearest" help:"Atlas filter (${enum})."`
	CellSize int    `default:"48" help:"Rendered pixels per grid cell."`
	TPS      int    `default:"30" help:"Updates per second."`
	Workers  int    `env:"FIELDGROUND_WORKERS" help:"Render workers. Defaults to GOMAXPROCS."`
	Verbose  bool   `short:"v" help:"Log per-frame diagnostics."`
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("fieldview"),
		kong.Description("Interactive mycelium field ground viewer."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(c.Run())
}

func (c *cli) Run() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	fieldground.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	g, err := c.newGame()
	if err != nil {
		return err
	}
	defer g.renderer.Close()

	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Field Ground")
	ebiten.SetTPS(c.TPS)
	return ebiten.RunGame(g)
}

func (c *cli) newGame() (*game, error) {
	var (
		field  *playfield.Field
		params fieldground.FieldParameters
		err    error
	)
	if c.Scene == "" {
		field, err = playfield.NewField(c.Width, c.Height)
		params = fieldground.DefaultParameters(c.Width, c.Height)
	} else {
		field, params, err = loadScene(c.Scene)
	}
	if err != nil {
		return nil, err
	}

	session, err := playfield.NewSession(field, c.Pattern)
	if err != nil {
		return nil, err
	}

	filter := fieldground.FilterNearest
	if c.Filter == "linear" {
		filter = fieldground.FilterLinear
	}
	atlas, err := loadAtlas(c.Atlas, filter)
	if err != nil {
		return nil, err
	}

	r, err := fieldground.NewRenderer(fieldground.WithWorkers(c.Workers))
	if err != nil {
		return nil, err
	}
	return newGame(session, r, params, atlas, c.CellSize), nil
}

func loadScene(path string) (*playfield.Field, fieldground.FieldParameters, error) {
	scene, err := playfield.LoadScene(path)
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

func loadAtlas(path string, filter fieldground.Filter) (*fieldground.ImageTexture, error) {
	if path != "" {
		return fieldground.LoadTexture(path, filter)
	}
	img, err := playfield.GenerateAtlas(fieldground.DefaultAtlasLayout())
	if err != nil {
		return nil, err
	}
	return fieldground.NewImageTexture(img, filter)
}
