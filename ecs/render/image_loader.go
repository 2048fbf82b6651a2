package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/climber/assets"
)

var ErrImageNotFound = errors.New("render: image not found")

// LoadImage returns the cached image for a texture path, loading it from the
// embedded assets or, failing that, from disk. A path that failed once keeps
// failing from the cache, so a missing texture can be asked for every tick.
func LoadImage(key string) (*ebiten.Image, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: empty key", ErrImageNotFound)
	}
	if img := GetImage(key); img != nil {
		return img, nil
	}
	if err, ok := missing[key]; ok {
		return nil, err
	}

	img, err := assets.LoadImage(key)
	if err != nil {
		img, err = loadFromDisk(key)
	}
	if err != nil {
		missing[key] = err
		return nil, err
	}
	RegisterImage(key, img)
	return img, nil
}

// loadFromDisk tries key as given and relative to ./assets.
func loadFromDisk(key string) (*ebiten.Image, error) {
	for _, p := range []string{key, filepath.Join("assets", key)} {
		b, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		decoded, err := assets.Decode(b)
		if err != nil {
			return nil, fmt.Errorf("render: decode %s: %w", p, err)
		}
		return ebiten.NewImageFromImage(decoded), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrImageNotFound, key)
}
