package climb

import (
	"errors"
	"fmt"
)

var (
	ErrNoLevels        = errors.New("climb: no levels")
	ErrLevelOutOfRange = errors.New("climb: level out of range")
	ErrInvalidConfig   = errors.New("climb: invalid config")
)

// JumpScale multiplies the jump force depending on the direction the player
// is heading when the jump is requested.
type JumpScale struct {
	Rising  float64
	Neutral float64
	Falling float64
}

func (js JumpScale) For(d Direction) float64 {
	switch d {
	case Rising:
		return js.Rising
	case Falling:
		return js.Falling
	default:
		return js.Neutral
	}
}

type CharacterConfig struct {
	ID           int
	TickReset    int
	FrameTotal   int
	FrameInitial int
}

type Config struct {
	PlayerWidth  float64
	PlayerHeight float64

	// JumpForce is the vertical force queued by a neutral jump. Negative is up.
	JumpForce float64
	JumpScale JumpScale

	DirectionThreshold float64
	FrameResetDelta    float64

	// CameraSmoothing is the share of the previous camera bound kept each tick.
	CameraSmoothing float64

	Character CharacterConfig
}

func DefaultConfig() Config {
	return Config{
		PlayerWidth:        20,
		PlayerHeight:       30,
		JumpForce:          -10,
		JumpScale:          JumpScale{Rising: 0.6, Neutral: 1, Falling: 1.4},
		DirectionThreshold: 0.6,
		FrameResetDelta:    1,
		CameraSmoothing:    0.9,
		Character: CharacterConfig{
			ID:           2,
			TickReset:    12,
			FrameTotal:   3,
			FrameInitial: 1,
		},
	}
}

func (c Config) Validate() error {
	switch {
	case c.PlayerWidth <= 0 || c.PlayerHeight <= 0:
		return fmt.Errorf("%w: player size %vx%v", ErrInvalidConfig, c.PlayerWidth, c.PlayerHeight)
	case c.JumpForce >= 0:
		return fmt.Errorf("%w: jump force %v must point up", ErrInvalidConfig, c.JumpForce)
	case c.DirectionThreshold < 0:
		return fmt.Errorf("%w: direction threshold %v", ErrInvalidConfig, c.DirectionThreshold)
	case c.CameraSmoothing < 0 || c.CameraSmoothing >= 1:
		return fmt.Errorf("%w: camera smoothing %v not in [0,1)", ErrInvalidConfig, c.CameraSmoothing)
	case c.Character.TickReset <= 0:
		return fmt.Errorf("%w: character tick reset %d", ErrInvalidConfig, c.Character.TickReset)
	case c.Character.FrameInitial <= 0 || c.Character.FrameTotal < c.Character.FrameInitial:
		return fmt.Errorf("%w: character frames %d..%d", ErrInvalidConfig, c.Character.FrameInitial, c.Character.FrameTotal)
	}
	return nil
}
