package system

import (
	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
)

// CameraSystem copies the run's eased camera bound into the camera offset.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	session := firstSession(w)
	if session == nil || session.State == nil {
		return
	}
	bound := session.State.Camera.Bound
	ecs.ForEach(w, component.CameraComponent.Kind(), func(_ ecs.Entity, cam *component.Camera) {
		cam.OffsetY = bound
	})
}
