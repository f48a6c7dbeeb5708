package main

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/fieldground"
	"github.com/gogpu/fieldground/playfield"
)

// halfBlock shows the top pixel as foreground and the bottom one as
// background.
const halfBlock = '▀'

// view draws a session into a tcell screen. The last row is a status line.
type view struct {
	session  *playfield.Session
	renderer *fieldground.Renderer
	params   fieldground.FieldParameters
	atlas    fieldground.Texture
	start    time.Time

	// cell is the pixel size of one grid cell; a terminal row holds two
	// pixel rows.
	cell   int
	pixels *image.NRGBA
	status string
}

func newView(s *playfield.Session, r *fieldground.Renderer, params fieldground.FieldParameters, atlas fieldground.Texture) *view {
	return &view{
		session:  s,
		renderer: r,
		params:   params,
		atlas:    atlas,
		start:    time.Now(),
		cell:     1,
	}
}

// layout sizes the pixel buffer to the largest square cells that fit a
// width x height terminal.
func (v *view) layout(width, height int) {
	f := v.session.Field()
	rows := max(height-1, 1)
	v.cell = max(min(width/f.Width(), 2*rows/f.Height()), 1)
	v.pixels = image.NewNRGBA(image.Rect(0, 0, f.Width()*v.cell, f.Height()*v.cell))
}

// handle applies an input event and reports whether to quit.
func (v *view) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventMouse:
		v.handleMouse(ev)
	}
	return false
}

func (v *view) handleKey(ev *tcell.EventKey) bool {
	s := v.session
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		s.Move(0, -1)
	case tcell.KeyDown:
		s.Move(0, 1)
	case tcell.KeyLeft:
		s.Move(-1, 0)
	case tcell.KeyRight:
		s.Move(1, 0)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'r':
			s.Rotate()
		case 'p':
			s.CyclePattern(1)
		case 'P':
			s.CyclePattern(-1)
		case ' ':
			v.place()
		case 'x':
			if !s.Remove() {
				v.status = "nothing to remove"
			}
		}
	}
	return false
}

func (v *view) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pos := playfield.Pos{X: x / v.cell, Y: 2 * y / v.cell}
	if !v.session.SetHover(pos) {
		return
	}
	if ev.Buttons()&tcell.Button1 != 0 {
		v.place()
	}
}

func (v *view) place() {
	v.status = ""
	if err := v.session.Place(); err != nil {
		v.status = err.Error()
	}
}

// draw renders the frame for now and copies it into the screen.
func (v *view) draw(ctx context.Context, screen tcell.Screen, now time.Time) error {
	if v.pixels == nil {
		v.layout(screen.Size())
	}
	frame, err := v.session.Frame(v.params, v.atlas, now.Sub(v.start).Seconds())
	if err != nil {
		return err
	}
	if _, err := v.renderer.Render(ctx, frame, v.pixels); err != nil {
		return err
	}

	screen.Clear()
	b := v.pixels.Bounds()
	for y := 0; y < b.Dy(); y += 2 {
		for x := range b.Dx() {
			style := tcell.StyleDefault.Foreground(termColor(v.pixels, x, y))
			if y+1 < b.Dy() {
				style = style.Background(termColor(v.pixels, x, y+1))
			}
			screen.SetContent(x, y/2, halfBlock, nil, style)
		}
	}

	_, height := screen.Size()
	drawText(screen, 0, height-1, v.statusLine())
	return nil
}

func (v *view) statusLine() string {
	s := v.session
	line := fmt.Sprintf("%s %s %v  arrows move  r rotate  p pattern  space place  x remove  q quit",
		s.Pattern(), s.Facing(), s.Hover())
	if v.status != "" {
		line = v.status + "  |  " + line
	}
	return line
}

func termColor(img *image.NRGBA, x, y int) tcell.Color {
	c := img.NRGBAAt(x, y)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func drawText(screen tcell.Screen, x, y int, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		x++
	}
}
