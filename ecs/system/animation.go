package system

import (
	"log"

	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
	"github.com/milk9111/climber/ecs/render"
)

// AnimationSystem resolves the player's texture path into a sprite image.
// Paths that fail to load leave the sprite on its fill colour.
type AnimationSystem struct {
	debug  bool
	warned map[string]bool
}

func NewAnimationSystem(debug bool) *AnimationSystem {
	return &AnimationSystem{debug: debug, warned: map[string]bool{}}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	session := firstSession(w)
	if session == nil || session.State == nil {
		return
	}
	path := session.State.Player.Texture

	playerEntity, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	sprite, ok := ecs.Get(w, playerEntity, component.SpriteComponent.Kind())
	if !ok || sprite.Path == path {
		return
	}

	sprite.Path = path
	img, err := render.LoadImage(path)
	if err != nil {
		sprite.Image = nil
		if a.debug && !a.warned[path] {
			a.warned[path] = true
			log.Printf("animation: %v", err)
		}
		return
	}
	sprite.Image = img
}
