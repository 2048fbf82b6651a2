package entity

import (
	"math/rand"
	"testing"

	"github.com/milk9111/climber/climb"
	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
	"github.com/milk9111/climber/prefabs"
)

func loadSpec(t *testing.T) *prefabs.GameSpec {
	t.Helper()
	spec, err := prefabs.LoadGameSpec("")
	if err != nil {
		t.Fatalf("load game spec: %v", err)
	}
	return spec
}

func TestNewRunSpawnsEveryBody(t *testing.T) {
	spec := loadSpec(t)
	w := ecs.NewWorld()

	run, err := NewRun(w, spec, rand.New(rand.NewSource(7)), nil)
	if err != nil {
		t.Fatalf("NewRun: %v", err)
	}
	if got, want := len(run.Levels), spec.TotalLevels+1; got != want {
		t.Fatalf("levels = %d, want %d", got, want)
	}

	wantBodies := 0
	for _, lvl := range run.Levels {
		wantBodies++
		if !lvl.Floor.Body.Valid() {
			t.Fatalf("level %d floor has no body", lvl.Index)
		}
		for _, wall := range []*climb.Wall{lvl.Left, lvl.Right} {
			if wall != nil {
				wantBodies++
				if !wall.Body.Valid() {
					t.Fatalf("level %d wall has no body", lvl.Index)
				}
			}
		}
	}

	seen := map[climb.BodyID]bool{}
	levelBodies := 0
	ecs.ForEach(w, component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, b *component.PhysicsBody) {
		if seen[b.ID] {
			t.Fatalf("body id %d assigned twice", b.ID)
		}
		seen[b.ID] = true
		if b.Kind != component.BodyPlayer {
			levelBodies++
			if !b.Static {
				t.Fatalf("level body %d should be static", b.ID)
			}
		}
	})
	if levelBodies != wantBodies {
		t.Fatalf("level bodies = %d, want %d", levelBodies, wantBodies)
	}
	if !seen[PlayerBody] {
		t.Fatalf("player body %d not spawned", PlayerBody)
	}
}

func TestNewRunPlayerStandsOnGround(t *testing.T) {
	spec := loadSpec(t)
	w := ecs.NewWorld()

	run, err := NewRun(w, spec, rand.New(rand.NewSource(1)), nil)
	if err != nil {
		t.Fatalf("NewRun: %v", err)
	}

	p := run.Player
	if p.Body != PlayerBody {
		t.Fatalf("player body = %d, want %d", p.Body, PlayerBody)
	}
	if p.Velocity.X != spec.Player.Velocity {
		t.Fatalf("player vx = %v, want %v", p.Velocity.X, spec.Player.Velocity)
	}
	ground := run.Levels[0].Floor
	feet := p.Spawn.Y + spec.Player.Height/2
	if top := ground.Y - ground.Height/2; feet != top {
		t.Fatalf("player feet at %v, ground top at %v", feet, top)
	}

	transform, ok := ecs.Get(w, run.Entity, component.TransformComponent.Kind())
	if !ok || transform.X != p.Spawn.X || transform.Y != p.Spawn.Y {
		t.Fatalf("player transform = %+v, want spawn %+v", transform, p.Spawn)
	}
	if _, ok := ecs.First(w, component.CameraComponent.Kind()); !ok {
		t.Fatalf("camera not spawned")
	}
}

func TestClimbConfigFromSpec(t *testing.T) {
	spec := loadSpec(t)
	cfg := ClimbConfig(spec)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("config from embedded spec invalid: %v", err)
	}
	if cfg.PlayerWidth != spec.Player.Width || cfg.JumpForce != spec.Player.JumpForce {
		t.Fatalf("player settings not carried over: %+v", cfg)
	}

	spec.Tuning = prefabs.TuningSpec{}
	spec.Player.Character = prefabs.CharacterSpec{}
	cfg = ClimbConfig(spec)
	def := climb.DefaultConfig()
	if cfg.DirectionThreshold != def.DirectionThreshold || cfg.Character != def.Character {
		t.Fatalf("zero tuning should fall back to defaults, got %+v", cfg)
	}
}
