package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed images
var assetsFS embed.FS

// LoadImage loads an embedded image by texture path.
func LoadImage(path string) (*ebiten.Image, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	img, err := Decode(b)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadFile reads an embedded file by texture path.
func LoadFile(path string) ([]byte, error) {
	return assetsFS.ReadFile(cleanAssetPath(path))
}

// Decode decodes any registered image format; PNG is always registered.
func Decode(b []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(b))
	return img, err
}

// cleanAssetPath maps texture paths ("./images/..."), "assets/"-prefixed
// paths and absolute paths inside an assets directory to embed paths.
func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if filepath.IsAbs(path) {
		if _, rel, ok := strings.Cut(s, "/assets/"); ok {
			return rel
		}
		return filepath.Base(path)
	}
	s = strings.TrimPrefix(s, "./")
	return strings.TrimPrefix(s, "assets/")
}
