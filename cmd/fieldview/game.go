package main

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/draw"

	"github.com/gogpu/fieldground"
	"github.com/gogpu/fieldground/playfield"
)

// game renders the session on the CPU every tick and uploads the result
// as one texture.
type game struct {
	session  *playfield.Session
	renderer *fieldground.Renderer
	params   fieldground.FieldParameters
	atlas    fieldground.Texture
	cellSize int
	start    time.Time

	// pixels is the straight-alpha render target; premul is its
	// premultiplied copy in the layout WritePixels expects.
	pixels *image.NRGBA
	premul *image.RGBA
	canvas *ebiten.Image

	stats  fieldground.Stats
	status string
}

func newGame(s *playfield.Session, r *fieldground.Renderer, params fieldground.FieldParameters, atlas fieldground.Texture, cellSize int) *game {
	f := s.Field()
	rect := image.Rect(0, 0, f.Width()*cellSize, f.Height()*cellSize)
	return &game{
		session:  s,
		renderer: r,
		params:   params,
		atlas:    atlas,
		cellSize: cellSize,
		start:    time.Now(),
		pixels:   image.NewNRGBA(rect),
		premul:   image.NewRGBA(rect),
		canvas:   ebiten.NewImage(rect.Dx(), rect.Dy()),
	}
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleInput()

	frame, err := g.session.Frame(g.params, g.atlas, time.Since(g.start).Seconds())
	if err != nil {
		return err
	}
	stats, err := g.renderer.Render(context.Background(), frame, g.pixels)
	if err != nil {
		return err
	}
	g.stats = stats

	draw.Draw(g.premul, g.premul.Rect, g.pixels, image.Point{}, draw.Src)
	g.canvas.WritePixels(g.premul.Pix)
	return nil
}

func (g *game) handleInput() {
	s := g.session

	x, y := ebiten.CursorPosition()
	s.SetHover(playfield.Pos{X: x / g.cellSize, Y: y / g.cellSize})

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.Rotate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			s.CyclePattern(-1)
		} else {
			s.CyclePattern(1)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.status = ""
		if err := s.Place(); err != nil {
			g.status = err.Error()
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.status = ""
		if !s.Remove() {
			g.status = "nothing to remove"
		}
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas, nil)

	s := g.session
	msg := fmt.Sprintf("%s %s %v  links %d  %v/frame",
		s.Pattern(), s.Facing(), s.Hover(), len(s.Field().Links()), g.stats.Elapsed.Round(time.Microsecond))
	if g.status != "" {
		msg += "\n" + g.status
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.pixels.Rect.Dx(), g.pixels.Rect.Dy()
}
