package entity

import (
	"fmt"
	"math/rand"

	"github.com/milk9111/climber/climb"
	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
	"github.com/milk9111/climber/levels"
	"github.com/milk9111/climber/prefabs"
)

// PlayerBody is the handle the player body always gets.
const PlayerBody climb.BodyID = 1

// BodyIDs hands out body handles for one world build.
type BodyIDs struct {
	last climb.BodyID
}

func (b *BodyIDs) Next() climb.BodyID {
	b.last++
	return b.last
}

// Run is the freshly spawned content of one world build.
type Run struct {
	Levels []climb.Level
	Player climb.Player
	Entity ecs.Entity
}

// NewRun generates the level stack and spawns every body of it, the player
// and the camera into w.
func NewRun(w *ecs.World, spec *prefabs.GameSpec, rng *rand.Rand, layout levels.Layout) (Run, error) {
	lcfg := LevelsConfig(spec)
	lvls, err := levels.Generate(lcfg, rng, layout)
	if err != nil {
		return Run{}, fmt.Errorf("entity: generate levels: %w", err)
	}

	ids := &BodyIDs{last: PlayerBody}
	for i := range lvls {
		if err := NewLevel(w, spec, &lvls[i], ids); err != nil {
			return Run{}, fmt.Errorf("entity: %w", err)
		}
	}

	spawn := lcfg.Spawn(spec.Player.Height)
	playerEntity, player, err := NewPlayerAt(w, spec, spawn, PlayerBody)
	if err != nil {
		return Run{}, fmt.Errorf("entity: %w", err)
	}

	if _, err := NewCamera(w, spec); err != nil {
		return Run{}, fmt.Errorf("entity: %w", err)
	}

	return Run{Levels: lvls, Player: player, Entity: playerEntity}, nil
}

// NewSession attaches the running state to a fresh session entity.
func NewSession(w *ecs.World, session component.Session) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.SessionComponent.Kind(), &session); err != nil {
		return 0, fmt.Errorf("session: add session: %w", err)
	}
	return e, nil
}
