package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteData draws a static image, or a flat-colored box when no image is
// available (scenery placeholders, obstacles without art).
type SpriteData struct {
	Image *ebiten.Image
	Color color.RGBA
	W, H  float64 // world units, used when Image is nil
}

var Sprite = donburi.NewComponentType[SpriteData]()
