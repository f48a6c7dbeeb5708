package playfield

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/fieldground"
)

// spritePalette is the base and accent color of each sprite family.
type spritePalette struct {
	base, accent colorful.Color
}

func paletteFor(s Sprite) spritePalette {
	switch {
	case s <= Rock3:
		return spritePalette{colorful.Hsv(30, 0.08, 0.55), colorful.Hsv(30, 0.05, 0.75)}
	case s <= Soil3:
		return spritePalette{colorful.Hsv(28, 0.55, 0.42), colorful.Hsv(35, 0.45, 0.55)}
	case s <= InsideCorner2:
		return spritePalette{colorful.Hsv(25, 0.60, 0.30), colorful.Hsv(30, 0.50, 0.45)}
	case s <= RichSoil2:
		return spritePalette{colorful.Hsv(22, 0.65, 0.28), colorful.Hsv(95, 0.55, 0.45)}
	case s <= BlockerWater2:
		return spritePalette{colorful.Hsv(210, 0.70, 0.55), colorful.Hsv(195, 0.35, 0.85)}
	case s <= BlockerRock2:
		return spritePalette{colorful.Hsv(220, 0.10, 0.35), colorful.Hsv(220, 0.08, 0.60)}
	default:
		return spritePalette{colorful.Hsv(110, 0.55, 0.35), colorful.Hsv(85, 0.60, 0.60)}
	}
}

// GenerateAtlas draws a placeholder ground atlas for layout: every slot is
// filled with a speckled texture in its sprite family's colors and the
// padding rows are transparent. Slots past SpriteCount repeat the last
// family.
func GenerateAtlas(layout fieldground.AtlasLayout) (*image.NRGBA, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	img := image.NewNRGBA(image.Rect(0, 0, layout.Width(), layout.Height()))
	for slot := range layout.Slots {
		sprite := Sprite(min(slot, SpriteCount-1))
		pal := paletteFor(sprite)
		top := slot * layout.Stride()

		for y := range layout.TileSize {
			for x := range layout.TileSize {
				t := speckle(slot, x, y)
				c := pal.base.BlendLab(pal.accent, t).Clamped()
				r, g, b := c.RGB255()
				img.SetNRGBA(x, top+y, color.NRGBA{R: r, G: g, B: b, A: 255})
			}
		}
	}
	return img, nil
}

// speckle is a deterministic per-texel blend weight in [0, 0.6].
func speckle(slot, x, y int) float64 {
	h := uint32(slot)*0x9e3779b1 ^ uint32(x)*0x85ebca6b ^ uint32(y)*0xc2b2ae35
	h ^= h >> 15
	h *= 0x27d4eb2f
	h ^= h >> 13
	return float64(h%1000) / 1000 * 0.6
}
