package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/climber/climb"
	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
	"github.com/milk9111/climber/prefabs"
)

var (
	defaultFloorColor = color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
	defaultWallColor  = color.NRGBA{R: 0x44, G: 0x44, B: 0x55, A: 0xff}
)

// NewLevel spawns the floor and walls of lvl. Body handles are taken from
// ids and written back into lvl.
func NewLevel(w *ecs.World, spec *prefabs.GameSpec, lvl *climb.Level, ids *BodyIDs) error {
	kind := component.BodyFloor
	if lvl.Index == 0 {
		kind = component.BodyGround
	}

	f := &lvl.Floor
	f.Body = ids.Next()
	if _, err := newStaticBody(w, lvl.Index, staticBody{
		id:         f.Body,
		kind:       kind,
		group:      f.Group,
		x:          f.X,
		y:          f.Y,
		width:      f.Width,
		height:     f.Height,
		elasticity: spec.Floor.Elasticity,
		friction:   spec.Floor.Friction,
		fill:       spec.Floor.Color.Or(defaultFloorColor),
	}); err != nil {
		return fmt.Errorf("level %d: floor: %w", lvl.Index, err)
	}

	for _, wall := range []*climb.Wall{lvl.Left, lvl.Right} {
		if wall == nil {
			continue
		}
		wall.Body = ids.Next()
		if _, err := newStaticBody(w, lvl.Index, staticBody{
			id:         wall.Body,
			kind:       component.BodyWall,
			group:      climb.GroupNeutral,
			x:          wall.X,
			y:          wall.Y,
			width:      wall.Width,
			height:     wall.Height,
			elasticity: spec.Wall.Elasticity,
			friction:   spec.Wall.Friction,
			fill:       spec.Wall.Color.Or(defaultWallColor),
		}); err != nil {
			return fmt.Errorf("level %d: wall: %w", lvl.Index, err)
		}
	}
	return nil
}

type staticBody struct {
	id         climb.BodyID
	kind       component.BodyKind
	group      climb.Group
	x, y       float64
	width      float64
	height     float64
	elasticity float64
	friction   float64
	fill       color.Color
}

func newStaticBody(w *ecs.World, level int, b staticBody) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.LevelTagComponent.Kind(), &component.LevelTag{Index: level}); err != nil {
		return 0, fmt.Errorf("add level tag: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:      b.x,
		Y:      b.y,
		Width:  b.width,
		Height: b.height,
	}); err != nil {
		return 0, fmt.Errorf("add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		ID:         b.id,
		Kind:       b.kind,
		Level:      level,
		Group:      b.group,
		Width:      b.width,
		Height:     b.height,
		Elasticity: b.elasticity,
		Friction:   b.friction,
		Static:     true,
	}); err != nil {
		return 0, fmt.Errorf("add physics body: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Fill: b.fill}); err != nil {
		return 0, fmt.Errorf("add sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerLevel}); err != nil {
		return 0, fmt.Errorf("add render layer: %w", err)
	}
	return e, nil
}
