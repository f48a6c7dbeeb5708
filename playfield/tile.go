package playfield

import (
	"fmt"
	"strings"
)

// TileType is the terrain of one cell.
type TileType uint8

// Terrain kinds. The zero value is plain soil.
const (
	Empty TileType = iota
	Fertile
	BlockedRock
	BlockedWater
	BlockedMoss

	tileTypeCount
)

var tileNames = [...]string{
	Empty:        "empty",
	Fertile:      "fertile",
	BlockedRock:  "rock",
	BlockedWater: "water",
	BlockedMoss:  "moss",
}

// String returns the tile name used in scene files.
func (t TileType) String() string {
	if t < tileTypeCount {
		return tileNames[t]
	}
	return fmt.Sprintf("TileType(%d)", uint8(t))
}

// ParseTileType parses a tile name as written by String.
func ParseTileType(s string) (TileType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range tileNames {
		if s == name {
			return TileType(i), nil
		}
	}
	return Empty, fmt.Errorf("%w: tile type %q", ErrInvalidScene, s)
}

// MarshalText implements encoding.TextMarshaler.
func (t TileType) MarshalText() ([]byte, error) {
	if t >= tileTypeCount {
		return nil, fmt.Errorf("%w: tile type %d", ErrInvalidScene, uint8(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TileType) UnmarshalText(b []byte) error {
	v, err := ParseTileType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// AllowsEmitter reports whether an emitter may be placed on the tile.
func (t TileType) AllowsEmitter() bool {
	return t == Empty || t == Fertile
}

// AllowsMycelium reports whether a link may pass through the tile. Moss
// lets mycelium through but starves it; see StrengthModifier.
func (t TileType) AllowsMycelium() bool {
	return t == Empty || t == Fertile || t == BlockedMoss
}

// StrengthModifier is the factor a tile applies to the strength of a link
// crossing it.
func (t TileType) StrengthModifier() float64 {
	if t == Empty || t == Fertile {
		return 1
	}
	return 0
}
