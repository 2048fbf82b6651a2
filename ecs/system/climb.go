package system

import (
	"log"

	"github.com/milk9111/climber/climb"
	"github.com/milk9111/climber/ecs"
)

// ClimbSystem advances the level state machine once per tick, right after
// the physics step, with the floor contacts that step produced.
type ClimbSystem struct {
	physics climb.Physics
	debug   bool
}

func NewClimbSystem(physics climb.Physics, debug bool) *ClimbSystem {
	return &ClimbSystem{physics: physics, debug: debug}
}

func (c *ClimbSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var contacts []climb.Contact
	for _, evt := range w.Events.Take(ecs.EventFloorContact) {
		if contact, ok := evt.Data.(climb.Contact); ok {
			contacts = append(contacts, contact)
		}
	}

	session := firstSession(w)
	if session == nil || session.State == nil {
		return
	}
	state := session.State

	report := climb.Tick(state, c.physics, contacts)
	if report.Climbed {
		w.Events.Push(ecs.Event{Type: ecs.EventClimbed, Data: state.CurrentLevel})
		if c.debug {
			log.Printf("climb: reached level %d", state.CurrentLevel)
		}
	}
	if c.debug && len(report.Released) > 0 {
		log.Printf("climb: released floors %v", report.Released)
	}
	if report.Died {
		w.Events.Push(ecs.Event{Type: ecs.EventDied, Data: state.CurrentLevel})
		log.Printf("climb: died on level %d at x=%.1f", state.CurrentLevel, state.Player.Position.X)
	}
	if report.Cleared {
		w.Events.Push(ecs.Event{Type: ecs.EventCleared, Data: state.CurrentLevel})
		log.Printf("climb: cleared all %d levels", state.TopLevel())
	}
}
