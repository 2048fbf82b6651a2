package system

import (
	"log"

	"github.com/milk9111/climber/climb"
	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
)

// SessionSystem turns the sampled input into pause, play and jump commands
// on the running climb.
type SessionSystem struct {
	debug bool
}

func NewSessionSystem(debug bool) *SessionSystem {
	return &SessionSystem{debug: debug}
}

func (s *SessionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	session := firstSession(w)
	if session == nil || session.State == nil {
		return
	}
	playerEntity, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	in, ok := ecs.Get(w, playerEntity, component.InputComponent.Kind())
	if !ok || !in.Any() {
		return
	}

	state := session.State
	if in.PausePressed && state.Pause() && s.debug {
		log.Printf("session: paused at level %d", state.CurrentLevel)
	}
	if in.PlayPressed {
		switch state.Play() {
		case climb.PlayResumed:
			if s.debug {
				log.Printf("session: resumed")
			}
		case climb.PlayReset:
			requestReset(w, state.Phase.String())
		}
	}
	if in.JumpPressed && state.Jump() && s.debug {
		log.Printf("session: jump %s force %.2f", state.Player.Direction, state.Player.PendingForce.Y)
	}
}

func firstSession(w *ecs.World) *component.Session {
	e, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		return nil
	}
	session, ok := ecs.Get(w, e, component.SessionComponent.Kind())
	if !ok {
		return nil
	}
	return session
}

func requestReset(w *ecs.World, reason string) {
	if _, pending := ecs.First(w, component.ResetRequestComponent.Kind()); pending {
		return
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ResetRequestComponent.Kind(), &component.ResetRequest{Reason: reason}); err != nil {
		log.Printf("session: request reset: %v", err)
	}
}
