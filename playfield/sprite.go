package playfield

// Sprite is a slot of the 21-tile ground atlas.
type Sprite uint8

// Atlas slots, top to bottom.
const (
	Rock1 Sprite = iota
	Rock2
	Rock3
	Soil1
	Soil2
	Soil3
	Border1
	Border2
	Border3
	OutsideCorner1
	OutsideCorner2
	InsideCorner1
	InsideCorner2
	RichSoil1
	RichSoil2
	BlockerWater1
	BlockerWater2
	BlockerRock1
	BlockerRock2
	BlockerMoss1
	BlockerMoss2

	// SpriteCount is the number of atlas slots.
	SpriteCount = int(BlockerMoss2) + 1
)

// Slot returns the atlas slot index.
func (s Sprite) Slot() int {
	return int(s)
}

// SelectSprite picks the sprite drawn for a tile at pos. Variants are
// chosen by a fixed hash of the position, so the same board always looks
// the same.
func SelectSprite(t TileType, pos Pos) Sprite {
	switch t {
	case Fertile:
		return RichSoil1 + Sprite(variant(pos, 13, 19, 2))
	case BlockedRock:
		return BlockerRock1 + Sprite(variant(pos, 23, 29, 2))
	case BlockedWater:
		return BlockerWater1 + Sprite(variant(pos, 31, 37, 2))
	case BlockedMoss:
		return BlockerMoss1 + Sprite(variant(pos, 17, 41, 2))
	default:
		return Soil1 + Sprite(variant(pos, 11, 17, 3))
	}
}

// variant returns (x*kx + y*ky) mod n, always in [0, n).
func variant(pos Pos, kx, ky, n int) int {
	v := (pos.X*kx + pos.Y*ky) % n
	if v < 0 {
		v += n
	}
	return v
}
