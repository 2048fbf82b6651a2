// Package levels builds the tower of platforms the player climbs.
package levels

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/milk9111/climber/climb"
)

var ErrInvalidConfig = errors.New("levels: invalid config")

// Config describes the tower geometry. All values are in world pixels.
type Config struct {
	CanvasWidth  float64
	CanvasHeight float64

	// GroundBase lifts the whole tower off the bottom of the canvas.
	GroundBase   float64
	GroundHeight float64

	// FloorMargin is the gap between a floor and the canvas edge.
	FloorMargin float64
	FloorHeight float64
	WallWidth   float64
	WallHeight  float64

	TotalLevels int

	// WallOmitChance is the probability each wall of a level is left out.
	WallOmitChance float64
}

func (c Config) FloorWidth() float64 {
	return c.CanvasWidth - 2*c.FloorMargin
}

// Storey is the vertical distance between two floors.
func (c Config) Storey() float64 {
	return c.WallHeight + c.FloorHeight
}

func (c Config) Validate() error {
	switch {
	case c.CanvasWidth <= 0 || c.CanvasHeight <= 0:
		return fmt.Errorf("%w: canvas %vx%v", ErrInvalidConfig, c.CanvasWidth, c.CanvasHeight)
	case c.FloorWidth() <= 2*c.WallWidth:
		return fmt.Errorf("%w: floor width %v leaves no room between walls", ErrInvalidConfig, c.FloorWidth())
	case c.FloorHeight <= 0 || c.GroundHeight <= 0 || c.WallWidth <= 0 || c.WallHeight <= 0:
		return fmt.Errorf("%w: floor/wall dimensions must be positive", ErrInvalidConfig)
	case c.TotalLevels < 1:
		return fmt.Errorf("%w: total levels %d", ErrInvalidConfig, c.TotalLevels)
	case c.WallOmitChance < 0 || c.WallOmitChance > 1:
		return fmt.Errorf("%w: wall omit chance %v", ErrInvalidConfig, c.WallOmitChance)
	}
	return nil
}

// Spawn returns the centre of a player of the given height standing on the
// ground in the middle of the canvas.
func (c Config) Spawn(playerHeight float64) climb.Vec {
	return climb.Vec{
		X: c.CanvasWidth / 2,
		Y: c.CanvasHeight - playerHeight/2 - c.GroundBase,
	}
}

// Generate builds level 0 (the walled ground) and levels 1..TotalLevels.
// Body handles are left unset; the caller spawns the bodies.
func Generate(cfg Config, rng *rand.Rand, layout Layout) ([]climb.Level, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("levels: generate: nil rng")
	}
	if layout == nil {
		layout = FlatLayout{}
	}

	out := make([]climb.Level, 0, cfg.TotalLevels+1)
	out = append(out, ground(cfg))

	for level := 1; level <= cfg.TotalLevels; level++ {
		offset, err := layout.Offset(level)
		if err != nil {
			return nil, fmt.Errorf("levels: offset for level %d: %w", level, err)
		}
		base := cfg.CanvasHeight - float64(level)*cfg.Storey()
		midX := cfg.CanvasWidth/2 + offset

		lvl := climb.Level{
			Index: level,
			Floor: floor(cfg, level, midX, base+cfg.FloorHeight/2-cfg.GroundBase, cfg.FloorWidth()),
		}
		wallY := base - cfg.WallHeight/2 - cfg.GroundBase
		if rng.Float64() > cfg.WallOmitChance {
			lvl.Left = wall(cfg, lvl.Floor.MinX+cfg.WallWidth/2, wallY)
		}
		if rng.Float64() > cfg.WallOmitChance {
			lvl.Right = wall(cfg, lvl.Floor.MaxX-cfg.WallWidth/2, wallY)
		}
		out = append(out, lvl)
	}
	return out, nil
}

func ground(cfg Config) climb.Level {
	midX := cfg.CanvasWidth / 2
	lvl := climb.Level{
		Index: 0,
		Floor: floor(cfg, 0, midX, cfg.CanvasHeight+cfg.GroundHeight/2-cfg.GroundBase, cfg.CanvasWidth),
	}
	// The ground body spans the canvas but the playable span is a regular floor.
	lvl.Floor.MinX = midX - cfg.FloorWidth()/2
	lvl.Floor.MaxX = midX + cfg.FloorWidth()/2
	lvl.Floor.Height = cfg.GroundHeight
	lvl.Floor.Group = climb.GroupNeutral

	wallY := cfg.CanvasHeight - cfg.WallHeight/2 - cfg.GroundBase
	lvl.Left = wall(cfg, lvl.Floor.MinX+cfg.WallWidth/2, wallY)
	lvl.Right = wall(cfg, lvl.Floor.MaxX-cfg.WallWidth/2, wallY)
	return lvl
}

func floor(cfg Config, level int, x, y, width float64) climb.Floor {
	return climb.Floor{
		Level:  level,
		X:      x,
		Y:      y,
		Width:  width,
		Height: cfg.FloorHeight,
		MinX:   x - width/2,
		MaxX:   x + width/2,
		Group:  climb.GroupPassThrough,
	}
}

func wall(cfg Config, x, y float64) *climb.Wall {
	return &climb.Wall{
		X:      x,
		Y:      y,
		Width:  cfg.WallWidth,
		Height: cfg.WallHeight,
	}
}
