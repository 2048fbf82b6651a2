package system

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/milk9111/climber/climb"
	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
	"github.com/milk9111/climber/ecs/entity"
	"github.com/milk9111/climber/levels"
	"github.com/milk9111/climber/prefabs"
	"github.com/milk9111/climber/save"
)

// PersistenceSystem builds the world, rebuilds it when a reset is requested
// and records finished runs in the save store.
type PersistenceSystem struct {
	spec         *prefabs.GameSpec
	layout       levels.Layout
	fallback     *prefabs.GameSpec
	fallbackLay  levels.Layout
	seed         int64
	rng          *rand.Rand
	store        *save.Store
	physicsReset func()
	debug        bool

	initialized bool
	state       *climb.State
	runs        int
}

func NewPersistenceSystem(spec *prefabs.GameSpec, layout levels.Layout, seed int64, store *save.Store, physicsReset func(), debug bool) *PersistenceSystem {
	return &PersistenceSystem{
		spec:         spec,
		layout:       layout,
		seed:         seed,
		rng:          rand.New(rand.NewSource(seed)),
		store:        store,
		physicsReset: physicsReset,
		debug:        debug,
	}
}

// SetSpec swaps the game spec used by the next rebuild. The previous spec is
// kept as a fallback in case the new one cannot be built.
func (p *PersistenceSystem) SetSpec(spec *prefabs.GameSpec, layout levels.Layout) {
	if spec == nil {
		return
	}
	p.fallback, p.fallbackLay = p.spec, p.layout
	p.spec = spec
	p.layout = layout
}

// State returns the running climb, or nil before the first Update.
func (p *PersistenceSystem) State() *climb.State {
	return p.state
}

func (p *PersistenceSystem) Update(w *ecs.World) {
	if p == nil || w == nil {
		return
	}

	if !p.initialized {
		if err := p.reloadWorld(w); err != nil {
			panic("persistence system: initial load failed: " + err.Error())
		}
		p.initialized = true
		return
	}

	if e, ok := ecs.First(w, component.ResetRequestComponent.Kind()); ok {
		if req, ok := ecs.Get(w, e, component.ResetRequestComponent.Kind()); ok && p.debug {
			log.Printf("persistence: reset requested (%s)", req.Reason)
		}
		if err := p.reloadWorld(w); err != nil {
			if p.fallback == nil {
				panic("persistence system: reset failed: " + err.Error())
			}
			log.Printf("persistence: %v, rebuilding with the previous spec", err)
			p.spec, p.layout = p.fallback, p.fallbackLay
			p.fallback, p.fallbackLay = nil, nil
			if err := p.reloadWorld(w); err != nil {
				panic("persistence system: reset failed: " + err.Error())
			}
		}
		return
	}

	p.recordEvents(w)
}

func (p *PersistenceSystem) recordEvents(w *ecs.World) {
	session := firstSession(w)
	for _, evt := range w.Events.Drain() {
		level, _ := evt.Data.(int)
		switch evt.Type {
		case ecs.EventClimbed:
			if session != nil && level > session.Best {
				session.Best = level
			}
		case ecs.EventDied, ecs.EventCleared:
			improved, err := p.store.FinishRun(level, evt.Type == ecs.EventCleared)
			if err != nil {
				log.Printf("persistence: %v", err)
			}
			if improved {
				log.Printf("persistence: new best level %d", level)
			}
		}
	}
}

func (p *PersistenceSystem) reloadWorld(w *ecs.World) error {
	w.Clear()
	if p.physicsReset != nil {
		p.physicsReset()
	}

	run, err := entity.NewRun(w, p.spec, p.rng, p.layout)
	if err != nil {
		return fmt.Errorf("persistence: build world: %w", err)
	}

	cfg := entity.ClimbConfig(p.spec)
	if p.state != nil && p.state.Config() == cfg {
		err = p.state.Reset(run.Levels, run.Player)
	} else {
		p.state, err = climb.NewState(cfg, run.Levels, run.Player)
	}
	if err != nil {
		return fmt.Errorf("persistence: start run: %w", err)
	}

	p.runs++
	if _, err := entity.NewSession(w, component.Session{
		State: p.state,
		Seed:  p.seed,
		Best:  p.store.Record().BestLevel,
		Runs:  p.runs,
	}); err != nil {
		return fmt.Errorf("persistence: %w", err)
	}

	if p.debug {
		log.Printf("persistence: built run %d with %d levels", p.runs, len(run.Levels))
	}
	return nil
}
