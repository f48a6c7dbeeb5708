package main

import (
	"context"
	"fmt"
	"image"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/draw"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/fieldground"
	intImage "github.com/gogpu/fieldground/internal/image"
	"github.com/gogpu/fieldground/playfield"
)

type renderCmd struct {
	Scene  string `arg:"" type:"existingfile" help:"Scene JSON file."`
	Output string `short:"o" type:"path" default:"field.png" help:"Output PNG. With --frames > 1 a frame number is inserted before the extension."`

	Atlas    string `type:"existingfile" help:"Tile atlas PNG. The procedural atlas is used when empty."`
	Filter   string `enum:"nearest,linear" default:"nearest" help:"Atlas filter (${enum})."`
	CellSize int    `default:"32" help:"Rendered pixels per grid cell."`
	Scale    int    `default:"1" help:"Nearest-neighbor upscale applied after rendering."`

	Time      *float64 `help:"Animation time in seconds. Overrides the scene."`
	Frames    int      `default:"1" help:"Number of frames to render."`
	FPS       float64  `default:"30" help:"Frame rate of an animation sequence."`
	NoPreview bool     `help:"Ignore the scene's hover preview."`

	Workers   int  `env:"FIELDGROUND_WORKERS" help:"Render workers. Defaults to GOMAXPROCS."`
	Unchecked bool `help:"Skip tile index range checks."`
}

func (c *renderCmd) Validate() error {
	if c.CellSize < 1 {
		return fmt.Errorf("--cell-size must be positive, got %d", c.CellSize)
	}
	if c.Scale < 1 {
		return fmt.Errorf("--scale must be positive, got %d", c.Scale)
	}
	if c.Frames < 1 {
		return fmt.Errorf("--frames must be positive, got %d", c.Frames)
	}
	if !(c.FPS > 0) {
		return fmt.Errorf("--fps must be positive, got %v", c.FPS)
	}
	return nil
}

func (c *renderCmd) Run(_ *Globals) error {
	frame, err := c.assemble()
	if err != nil {
		return err
	}

	var compOpts []fieldground.Option
	if c.Unchecked {
		compOpts = append(compOpts, fieldground.WithUncheckedAtlas())
	}
	r, err := fieldground.NewRenderer(
		fieldground.WithWorkers(c.Workers),
		fieldground.WithCompositorOptions(compOpts...),
	)
	if err != nil {
		return err
	}
	defer r.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cols, rows := int(frame.Params.GridColumns), int(frame.Params.GridRows)
	dst := image.NewNRGBA(image.Rect(0, 0, cols*c.CellSize, rows*c.CellSize))

	var total fieldground.Stats
	start := frame.Params.Time
	for i := range c.Frames {
		frame.Params.Time = start + float64(i)/c.FPS

		stats, err := r.Render(ctx, frame, dst)
		if err != nil {
			return fmt.Errorf("render frame %d: %w", i, err)
		}
		total.Pixels += stats.Pixels
		total.ClampedPixels += stats.ClampedPixels
		total.Tiles += stats.Tiles
		total.Elapsed += stats.Elapsed

		if err := savePNG(c.outputPath(i), upscale(dst, c.Scale)); err != nil {
			return err
		}
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(os.Stderr, "%d frame(s), %d pixels (%d clamped) in %v -> %s\n",
		c.Frames, total.Pixels, total.ClampedPixels, total.Elapsed.Round(time.Microsecond), c.Output)
	return nil
}

func (c *renderCmd) assemble() (*fieldground.Frame, error) {
	scene, err := playfield.LoadScene(c.Scene)
	if err != nil {
		return nil, err
	}
	field, err := scene.Field()
	if err != nil {
		return nil, err
	}
	params, err := scene.Parameters()
	if err != nil {
		return nil, err
	}
	if c.Time != nil {
		params.Time = *c.Time
	}

	var previews []fieldground.PreviewHighlight
	if scene.Hover != nil && !c.NoPreview {
		e, err := scene.Hover.Emitter()
		if err != nil {
			return nil, fmt.Errorf("hover: %w", err)
		}
		previews = field.Preview(scene.Hover.Pos(), e)
	}

	atlas, err := loadAtlas(c.Atlas, parseFilter(c.Filter))
	if err != nil {
		return nil, err
	}
	return playfield.Assemble(field, previews, params, atlas)
}

func (c *renderCmd) outputPath(i int) string {
	if c.Frames == 1 {
		return c.Output
	}
	ext := filepath.Ext(c.Output)
	return fmt.Sprintf("%s-%04d%s", strings.TrimSuffix(c.Output, ext), i, ext)
}

func parseFilter(s string) fieldground.Filter {
	if s == "linear" {
		return fieldground.FilterLinear
	}
	return fieldground.FilterNearest
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

// upscale returns src enlarged by an integer factor with hard texel edges.
func upscale(src *image.NRGBA, factor int) *image.NRGBA {
	if factor == 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Rect, src, b, draw.Src, nil)
	return dst
}

func savePNG(path string, img *image.NRGBA) error {
	buf, err := intImage.FromStdImage(img)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return buf.SavePNG(path)
}
