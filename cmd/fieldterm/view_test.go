package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/fieldground"
	"github.com/gogpu/fieldground/playfield"
)

func newTestView(t *testing.T, cols, rows int) *view {
	t.Helper()
	f, err := playfield.NewField(cols, rows)
	if err != nil {
		t.Fatal(err)
	}
	s, err := playfield.NewSession(f, "cardinal")
	if err != nil {
		t.Fatal(err)
	}
	r, err := fieldground.NewRenderer(fieldground.WithWorkers(2))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(r.Close)
	atlas := fieldground.SolidTexture{R: 0.5, G: 0.25, B: 0.125, A: 1}
	return newView(s, r, fieldground.DefaultParameters(cols, rows), atlas)
}

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func TestViewLayout(t *testing.T) {
	tests := []struct {
		w, h     int
		wantCell int
	}{
		{40, 11, 5},
		{12, 30, 3},
		{2, 2, 1},
	}
	for _, tt := range tests {
		v := newTestView(t, 4, 4)
		v.layout(tt.w, tt.h)
		if v.cell != tt.wantCell {
			t.Errorf("layout(%d, %d) cell = %d, want %d", tt.w, tt.h, v.cell, tt.wantCell)
		}
		if got := v.pixels.Bounds().Dx(); got != 4*tt.wantCell {
			t.Errorf("layout(%d, %d) pixel width = %d, want %d", tt.w, tt.h, got, 4*tt.wantCell)
		}
	}
}

func TestViewHandleKey(t *testing.T) {
	v := newTestView(t, 5, 5)
	start := v.session.Hover()

	key := func(k tcell.Key, r rune) bool {
		return v.handle(tcell.NewEventKey(k, r, tcell.ModNone))
	}

	key(tcell.KeyRight, 0)
	key(tcell.KeyDown, 0)
	if got, want := v.session.Hover(), (playfield.Pos{X: start.X + 1, Y: start.Y + 1}); got != want {
		t.Errorf("hover = %v, want %v", got, want)
	}

	key(tcell.KeyRune, 'r')
	if v.session.Facing() != playfield.Right {
		t.Errorf("facing = %v, want right", v.session.Facing())
	}

	key(tcell.KeyRune, ' ')
	if _, ok := v.session.Field().Emitter(v.session.Hover()); !ok {
		t.Error("space did not place an emitter")
	}
	key(tcell.KeyRune, ' ')
	if v.status == "" {
		t.Error("placing on an occupied cell left no status")
	}
	key(tcell.KeyRune, 'x')
	if v.session.Field().EmitterCount() != 0 {
		t.Error("x did not remove the emitter")
	}

	if !key(tcell.KeyRune, 'q') {
		t.Error("q did not quit")
	}
	if !key(tcell.KeyEscape, 0) {
		t.Error("escape did not quit")
	}
}

func TestViewHandleMouse(t *testing.T) {
	v := newTestView(t, 4, 4)
	v.layout(16, 9) // cell = 4: one grid cell is 4 columns by 2 rows

	v.handle(tcell.NewEventMouse(9, 3, tcell.ButtonNone, tcell.ModNone))
	if got, want := v.session.Hover(), (playfield.Pos{X: 2, Y: 1}); got != want {
		t.Errorf("hover = %v, want %v", got, want)
	}

	v.handle(tcell.NewEventMouse(1, 7, tcell.Button1, tcell.ModNone))
	if _, ok := v.session.Field().Emitter(playfield.Pos{X: 0, Y: 3}); !ok {
		t.Error("click did not place an emitter at (0,3)")
	}
}

func TestViewDraw(t *testing.T) {
	v := newTestView(t, 4, 2)
	screen := newTestScreen(t, 8, 3)
	v.layout(screen.Size())

	if err := v.draw(context.Background(), screen, v.start.Add(time.Second)); err != nil {
		t.Fatalf("draw() error = %v", err)
	}

	mainc, _, style, _ := screen.GetContent(0, 0)
	if mainc != halfBlock {
		t.Errorf("cell (0,0) = %q, want %q", mainc, halfBlock)
	}
	fg, bg, _ := style.Decompose()
	if fg == tcell.ColorDefault || bg == tcell.ColorDefault {
		t.Errorf("cell (0,0) colors = %v, %v; want both set", fg, bg)
	}

	var status strings.Builder
	for x := range 8 {
		r, _, _, _ := screen.GetContent(x, 2)
		status.WriteRune(r)
	}
	if !strings.HasPrefix(status.String(), "cardinal") {
		t.Errorf("status line = %q, want it to start with the pattern", status.String())
	}
}
