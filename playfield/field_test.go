package playfield

import (
	"errors"
	"slices"
	"testing"
)

func newTestField(t *testing.T, w, h int) *Field {
	t.Helper()
	f, err := NewField(w, h)
	if err != nil {
		t.Fatalf("NewField(%d, %d) = %v", w, h, err)
	}
	return f
}

func TestNewField_InvalidSize(t *testing.T) {
	for _, size := range [][2]int{{0, 3}, {3, 0}, {-1, -1}} {
		if _, err := NewField(size[0], size[1]); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewField(%d, %d) = %v, want ErrInvalidSize", size[0], size[1], err)
		}
	}
}

func TestField_Tiles(t *testing.T) {
	f := newTestField(t, 3, 2)

	if tile, ok := f.Tile(Pos{2, 1}); !ok || tile != Empty {
		t.Errorf("Tile(2,1) = %v, %v; want empty, true", tile, ok)
	}
	if _, ok := f.Tile(Pos{3, 0}); ok {
		t.Error("Tile(3,0) reported inside")
	}

	if err := f.SetTile(Pos{1, 1}, BlockedWater); err != nil {
		t.Fatalf("SetTile() = %v", err)
	}
	if tile, _ := f.Tile(Pos{1, 1}); tile != BlockedWater {
		t.Errorf("Tile(1,1) = %v, want water", tile)
	}
	if err := f.SetTile(Pos{-1, 0}, Fertile); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("SetTile(out of bounds) = %v, want ErrOutOfBounds", err)
	}
}

func TestField_Place(t *testing.T) {
	f := newTestField(t, 3, 3)
	_ = f.SetTile(Pos{2, 2}, BlockedRock)
	e := Emitter{Offsets: PatternCardinal}

	tests := []struct {
		name string
		pos  Pos
		want error
	}{
		{"valid", Pos{0, 0}, nil},
		{"occupied", Pos{0, 0}, ErrOccupied},
		{"outside", Pos{3, 0}, ErrOutOfBounds},
		{"rock", Pos{2, 2}, ErrBlocked},
	}
	for _, tt := range tests {
		err := f.Place(tt.pos, e)
		if tt.want == nil && err != nil {
			t.Errorf("%s: Place() = %v, want nil", tt.name, err)
		}
		if tt.want != nil && !errors.Is(err, tt.want) {
			t.Errorf("%s: Place() = %v, want %v", tt.name, err, tt.want)
		}
	}

	if got, ok := f.Emitter(Pos{0, 0}); !ok || !slices.Equal(got.Offsets, PatternCardinal) {
		t.Errorf("Emitter(0,0) = %v, %v", got, ok)
	}
	if !f.Remove(Pos{0, 0}) {
		t.Error("Remove(0,0) = false, want true")
	}
	if f.Remove(Pos{0, 0}) {
		t.Error("second Remove(0,0) = true, want false")
	}
	if f.EmitterCount() != 0 {
		t.Errorf("EmitterCount() = %d, want 0", f.EmitterCount())
	}
}

func TestField_EmitterPositionsRowMajor(t *testing.T) {
	f := newTestField(t, 4, 4)
	for _, p := range []Pos{{3, 2}, {0, 3}, {1, 0}, {0, 2}} {
		if err := f.Place(p, Emitter{}); err != nil {
			t.Fatal(err)
		}
	}
	want := []Pos{{1, 0}, {0, 2}, {3, 2}, {0, 3}}
	if got := f.EmitterPositions(); !slices.Equal(got, want) {
		t.Errorf("EmitterPositions() = %v, want %v", got, want)
	}
}

func TestField_Resize(t *testing.T) {
	f := newTestField(t, 3, 3)
	_ = f.SetTile(Pos{1, 1}, Fertile)
	_ = f.SetTile(Pos{2, 2}, BlockedMoss)
	_ = f.Place(Pos{0, 0}, Emitter{})
	_ = f.Place(Pos{2, 0}, Emitter{})

	if err := f.Resize(2, 4); err != nil {
		t.Fatalf("Resize() = %v", err)
	}
	if f.Width() != 2 || f.Height() != 4 {
		t.Fatalf("size = %dx%d, want 2x4", f.Width(), f.Height())
	}
	if tile, _ := f.Tile(Pos{1, 1}); tile != Fertile {
		t.Errorf("kept tile = %v, want fertile", tile)
	}
	if tile, _ := f.Tile(Pos{1, 3}); tile != Empty {
		t.Errorf("new tile = %v, want empty", tile)
	}
	if _, ok := f.Emitter(Pos{2, 0}); ok {
		t.Error("emitter outside new bounds survived")
	}
	if _, ok := f.Emitter(Pos{0, 0}); !ok {
		t.Error("emitter inside new bounds removed")
	}

	if err := f.Resize(0, 1); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Resize(0, 1) = %v, want ErrInvalidSize", err)
	}
}
