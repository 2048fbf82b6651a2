package entity

import (
	"fmt"

	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
	"github.com/milk9111/climber/prefabs"
)

func NewCamera(w *ecs.World, spec *prefabs.GameSpec) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}

	parallax := spec.Tuning.Parallax
	if parallax == 0 {
		parallax = 0.5
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{Parallax: parallax}); err != nil {
		return 0, fmt.Errorf("camera: add camera: %w", err)
	}
	return camera, nil
}
