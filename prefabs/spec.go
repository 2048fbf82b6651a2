package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultGameSpec = "game.yaml"

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type GameSpec struct {
	Name           string     `yaml:"name"`
	Canvas         CanvasSpec `yaml:"canvas"`
	Gravity        float64    `yaml:"gravity"`
	GroundBase     float64    `yaml:"ground_base"`
	TotalLevels    int        `yaml:"total_levels"`
	WallOmitChance float64    `yaml:"wall_omit_chance"`
	LayoutScript   string     `yaml:"layout_script"`
	Background     *YAMLColor `yaml:"background"`
	Player         PlayerSpec `yaml:"player"`
	Ground         GroundSpec `yaml:"ground"`
	Floor          FloorSpec  `yaml:"floor"`
	Wall           WallSpec   `yaml:"wall"`
	Tuning         TuningSpec `yaml:"tuning"`
}

func LoadGameSpec(name string) (*GameSpec, error) {
	if name == "" {
		name = DefaultGameSpec
	}
	spec, err := LoadSpec[GameSpec](name)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return &spec, nil
}

func (s *GameSpec) Validate() error {
	switch {
	case s.Canvas.Width <= 0 || s.Canvas.Height <= 0:
		return fmt.Errorf("%w: canvas %vx%v", ErrInvalidSpec, s.Canvas.Width, s.Canvas.Height)
	case s.Gravity <= 0:
		return fmt.Errorf("%w: gravity %v must pull down", ErrInvalidSpec, s.Gravity)
	case s.TotalLevels < 1:
		return fmt.Errorf("%w: total_levels %d", ErrInvalidSpec, s.TotalLevels)
	case s.Player.Width <= 0 || s.Player.Height <= 0:
		return fmt.Errorf("%w: player size %vx%v", ErrInvalidSpec, s.Player.Width, s.Player.Height)
	case s.Player.JumpForce >= 0:
		return fmt.Errorf("%w: player jump_force %v must be negative", ErrInvalidSpec, s.Player.JumpForce)
	case s.Floor.Height <= 0 || s.Wall.Width <= 0 || s.Wall.Height <= 0:
		return fmt.Errorf("%w: floor and wall dimensions must be positive", ErrInvalidSpec)
	}
	return nil
}

type CanvasSpec struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	MaxNativeWidth int     `yaml:"max_native_width"`
}

type PlayerSpec struct {
	Width      float64       `yaml:"width"`
	Height     float64       `yaml:"height"`
	Velocity   float64       `yaml:"velocity"`
	JumpForce  float64       `yaml:"jump_force"`
	JumpScale  JumpScaleSpec `yaml:"jump_scale"`
	Elasticity float64       `yaml:"elasticity"`
	Friction   float64       `yaml:"friction"`
	Color      *YAMLColor    `yaml:"color"`
	Character  CharacterSpec `yaml:"character"`
}

type JumpScaleSpec struct {
	Rising  float64 `yaml:"rising"`
	Neutral float64 `yaml:"neutral"`
	Falling float64 `yaml:"falling"`
}

type CharacterSpec struct {
	ID           int `yaml:"id"`
	TickReset    int `yaml:"tick_reset"`
	FrameTotal   int `yaml:"frame_total"`
	FrameInitial int `yaml:"frame_initial"`
}

type GroundSpec struct {
	Height float64 `yaml:"height"`
}

type FloorSpec struct {
	Margin     float64    `yaml:"margin"`
	Height     float64    `yaml:"height"`
	Elasticity float64    `yaml:"elasticity"`
	Friction   float64    `yaml:"friction"`
	Color      *YAMLColor `yaml:"color"`
}

type WallSpec struct {
	Width      float64    `yaml:"width"`
	Height     float64    `yaml:"height"`
	Elasticity float64    `yaml:"elasticity"`
	Friction   float64    `yaml:"friction"`
	Color      *YAMLColor `yaml:"color"`
}

type TuningSpec struct {
	DirectionThreshold float64 `yaml:"direction_threshold"`
	FrameResetDelta    float64 `yaml:"frame_reset_delta"`
	CameraSmoothing    float64 `yaml:"camera_smoothing"`
	Parallax           float64 `yaml:"parallax"`
}

type YAMLColor struct {
	color.Color
}

// Or returns the colour, or fallback when unset.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
