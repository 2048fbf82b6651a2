package render

import "github.com/hajimehoshi/ebiten/v2"

var (
	images  = map[string]*ebiten.Image{}
	missing = map[string]error{}
)

// RegisterImage stores an image by key.
func RegisterImage(key string, img *ebiten.Image) {
	if key == "" || img == nil {
		return
	}
	images[key] = img
	delete(missing, key)
}

// GetImage returns a cached image by key.
func GetImage(key string) *ebiten.Image {
	if key == "" {
		return nil
	}
	return images[key]
}

// ResetImages drops every cached image and remembered failure.
func ResetImages() {
	images = map[string]*ebiten.Image{}
	missing = map[string]error{}
}
