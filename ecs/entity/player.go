package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/climber/climb"
	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
	"github.com/milk9111/climber/prefabs"
)

var defaultPlayerColor = color.NRGBA{R: 0xf2, G: 0xc1, B: 0x4e, A: 0xff}

// NewPlayerAt spawns the player body centred on spawn and returns the
// climb.Player that refers to it.
func NewPlayerAt(w *ecs.World, spec *prefabs.GameSpec, spawn climb.Vec, id climb.BodyID) (ecs.Entity, climb.Player, error) {
	ps := spec.Player
	velocity := climb.Vec{X: ps.Velocity}

	player := ecs.CreateEntity(w)
	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, climb.Player{}, fmt.Errorf("player: add player tag: %w", err)
	}
	if err := ecs.Add(w, player, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, climb.Player{}, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{
		X:      spawn.X,
		Y:      spawn.Y,
		Width:  ps.Width,
		Height: ps.Height,
	}); err != nil {
		return 0, climb.Player{}, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, player, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		ID:         id,
		Kind:       component.BodyPlayer,
		Group:      climb.GroupPassThrough,
		Width:      ps.Width,
		Height:     ps.Height,
		Mass:       1,
		Elasticity: ps.Elasticity,
		Friction:   ps.Friction,
		VelocityX:  velocity.X,
		VelocityY:  velocity.Y,
	}); err != nil {
		return 0, climb.Player{}, fmt.Errorf("player: add physics body: %w", err)
	}
	if err := ecs.Add(w, player, component.SpriteComponent.Kind(), &component.Sprite{
		Fill: ps.Color.Or(defaultPlayerColor),
	}); err != nil {
		return 0, climb.Player{}, fmt.Errorf("player: add sprite: %w", err)
	}
	if err := ecs.Add(w, player, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerPlayer}); err != nil {
		return 0, climb.Player{}, fmt.Errorf("player: add render layer: %w", err)
	}

	return player, climb.NewPlayer(id, spawn, velocity), nil
}
