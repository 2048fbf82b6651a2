package component

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite draws Image when it is loaded and a Fill rectangle otherwise.
// Path is the texture the animation system last resolved.
type Sprite struct {
	Image *ebiten.Image
	Path  string
	Fill  color.Color
}

var SpriteComponent = NewComponent[Sprite]()
