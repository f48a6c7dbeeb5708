package playfield

import (
	"errors"
	"testing"
)

func TestTileType_Rules(t *testing.T) {
	tests := []struct {
		tile     TileType
		emitter  bool
		mycelium bool
		strength float64
	}{
		{Empty, true, true, 1},
		{Fertile, true, true, 1},
		{BlockedRock, false, false, 0},
		{BlockedWater, false, false, 0},
		{BlockedMoss, false, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.tile.String(), func(t *testing.T) {
			if got := tt.tile.AllowsEmitter(); got != tt.emitter {
				t.Errorf("AllowsEmitter() = %v, want %v", got, tt.emitter)
			}
			if got := tt.tile.AllowsMycelium(); got != tt.mycelium {
				t.Errorf("AllowsMycelium() = %v, want %v", got, tt.mycelium)
			}
			if got := tt.tile.StrengthModifier(); got != tt.strength {
				t.Errorf("StrengthModifier() = %v, want %v", got, tt.strength)
			}
		})
	}
}

func TestTileType_Text(t *testing.T) {
	for tile := range tileTypeCount {
		b, err := tile.MarshalText()
		if err != nil {
			t.Fatalf("%v.MarshalText() = %v", tile, err)
		}
		var back TileType
		if err := back.UnmarshalText(b); err != nil {
			t.Fatalf("UnmarshalText(%q) = %v", b, err)
		}
		if back != tile {
			t.Errorf("UnmarshalText(%q) = %v, want %v", b, back, tile)
		}
	}

	if _, err := ParseTileType("lava"); !errors.Is(err, ErrInvalidScene) {
		t.Errorf("ParseTileType(lava) = %v, want ErrInvalidScene", err)
	}
	if got, err := ParseTileType(" Rock "); err != nil || got != BlockedRock {
		t.Errorf("ParseTileType(\" Rock \") = %v, %v", got, err)
	}
	if _, err := TileType(99).MarshalText(); err == nil {
		t.Error("TileType(99).MarshalText() = nil error")
	}
}

func TestSelectSprite(t *testing.T) {
	tests := []struct {
		tile TileType
		pos  Pos
		want Sprite
	}{
		{Empty, Pos{0, 0}, Soil1},
		{Empty, Pos{1, 0}, Soil3}, // 11 % 3 = 2
		{Empty, Pos{0, 1}, Soil3}, // 17 % 3 = 2
		{Empty, Pos{1, 1}, Soil2}, // 28 % 3 = 1
		{Fertile, Pos{0, 0}, RichSoil1},
		{Fertile, Pos{1, 0}, RichSoil2},
		{BlockedRock, Pos{1, 0}, BlockerRock2},
		{BlockedRock, Pos{1, 1}, BlockerRock1},
		{BlockedWater, Pos{2, 0}, BlockerWater1},
		{BlockedMoss, Pos{0, 1}, BlockerMoss2},
	}
	for _, tt := range tests {
		if got := SelectSprite(tt.tile, tt.pos); got != tt.want {
			t.Errorf("SelectSprite(%v, %v) = %d, want %d", tt.tile, tt.pos, got, tt.want)
		}
	}
}

func TestSelectSprite_NegativePositions(t *testing.T) {
	for _, tile := range []TileType{Empty, Fertile, BlockedRock, BlockedWater, BlockedMoss} {
		s := SelectSprite(tile, Pos{-3, -7})
		if s.Slot() < 0 || s.Slot() >= SpriteCount {
			t.Errorf("SelectSprite(%v, negative) = %d, outside atlas", tile, s)
		}
	}
}
