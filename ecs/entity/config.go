package entity

import (
	"github.com/milk9111/climber/climb"
	"github.com/milk9111/climber/levels"
	"github.com/milk9111/climber/prefabs"
)

// LevelsConfig maps the game spec onto the generator's geometry.
func LevelsConfig(spec *prefabs.GameSpec) levels.Config {
	return levels.Config{
		CanvasWidth:    spec.Canvas.Width,
		CanvasHeight:   spec.Canvas.Height,
		GroundBase:     spec.GroundBase,
		GroundHeight:   spec.Ground.Height,
		FloorMargin:    spec.Floor.Margin,
		FloorHeight:    spec.Floor.Height,
		WallWidth:      spec.Wall.Width,
		WallHeight:     spec.Wall.Height,
		TotalLevels:    spec.TotalLevels,
		WallOmitChance: spec.WallOmitChance,
	}
}

// ClimbConfig maps the game spec onto the state machine's tuning. Zero
// values in the game spec fall back to climb.DefaultConfig.
func ClimbConfig(spec *prefabs.GameSpec) climb.Config {
	cfg := climb.DefaultConfig()
	cfg.PlayerWidth = spec.Player.Width
	cfg.PlayerHeight = spec.Player.Height
	cfg.JumpForce = spec.Player.JumpForce

	js := spec.Player.JumpScale
	if js.Rising != 0 || js.Neutral != 0 || js.Falling != 0 {
		cfg.JumpScale = climb.JumpScale{Rising: js.Rising, Neutral: js.Neutral, Falling: js.Falling}
	}

	t := spec.Tuning
	if t.DirectionThreshold > 0 {
		cfg.DirectionThreshold = t.DirectionThreshold
	}
	if t.FrameResetDelta > 0 {
		cfg.FrameResetDelta = t.FrameResetDelta
	}
	if t.CameraSmoothing > 0 {
		cfg.CameraSmoothing = t.CameraSmoothing
	}

	c := spec.Player.Character
	if c.ID > 0 {
		cfg.Character.ID = c.ID
	}
	if c.TickReset > 0 {
		cfg.Character.TickReset = c.TickReset
	}
	if c.FrameTotal > 0 {
		cfg.Character.FrameTotal = c.FrameTotal
	}
	if c.FrameInitial > 0 {
		cfg.Character.FrameInitial = c.FrameInitial
	}
	return cfg
}
