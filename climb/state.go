package climb

import "fmt"

// Character is the animation sub-state of the player sprite.
type Character struct {
	ID           int
	Tick         int
	TickReset    int
	Frame        int
	FrameTotal   int
	FrameInitial int
}

// Player references its physics body by handle; position and velocity are
// mirrored from the engine at the start of every tick.
type Player struct {
	Body         BodyID
	Position     Vec
	Velocity     Vec
	PrevVelocity Vec
	Spawn        Vec
	Direction    Direction
	OnGround     bool
	Alive        bool
	PendingForce Vec
	Character    Character
	Texture      string
}

// NewPlayer returns a player standing at spawn and moving with velocity.
func NewPlayer(body BodyID, spawn, velocity Vec) Player {
	return Player{
		Body:     body,
		Position: spawn,
		Velocity: velocity,
		Spawn:    spawn,
	}
}

// Camera tracks the highest point reached. Offsets are relative to the
// player's spawn, so both values are zero or negative.
type Camera struct {
	Target float64
	Bound  float64
}

type Views struct {
	Title   bool
	Actions bool
}

type PlayResult int

const (
	PlayIgnored PlayResult = iota
	PlayResumed
	PlayReset
)

// State is everything the level state machine reads and writes during a run.
type State struct {
	cfg    Config
	levels []Level

	CurrentLevel int
	Player       Player
	Camera       Camera
	Phase        Phase
	Started      bool
	Paused       bool
	Views        Views

	releases []int
}

func NewState(cfg Config, levels []Level, player Player) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &State{cfg: cfg}
	if err := s.Reset(levels, player); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset discards the current run and starts over with freshly built levels
// and player body.
func (s *State) Reset(levels []Level, player Player) error {
	if len(levels) == 0 {
		return ErrNoLevels
	}
	for i, lvl := range levels {
		if lvl.Index != i {
			return fmt.Errorf("%w: level at position %d has index %d", ErrLevelOutOfRange, i, lvl.Index)
		}
	}

	s.levels = append([]Level(nil), levels...)
	s.CurrentLevel = 0
	s.Camera = Camera{}
	s.Phase = PhaseTitle
	s.Started = false
	s.Paused = false
	s.Views = Views{Title: true}
	s.releases = nil

	cc := s.cfg.Character
	player.Alive = true
	player.OnGround = false
	player.Direction = Neutral
	player.PendingForce = Vec{}
	player.PrevVelocity = player.Velocity
	player.Character = Character{
		ID:           cc.ID,
		TickReset:    cc.TickReset,
		Frame:        cc.FrameInitial,
		FrameTotal:   cc.FrameTotal,
		FrameInitial: cc.FrameInitial,
	}
	player.Texture = TexturePath(cc.ID, player.Velocity.X > 0, cc.FrameInitial)
	s.Player = player
	return nil
}

func (s *State) Config() Config {
	return s.cfg
}

// Levels returns the generated levels. Callers must not modify them.
func (s *State) Levels() []Level {
	return s.levels
}

func (s *State) TopLevel() int {
	return len(s.levels) - 1
}

func (s *State) Level(index int) (Level, error) {
	if index < 0 || index >= len(s.levels) {
		return Level{}, fmt.Errorf("%w: %d", ErrLevelOutOfRange, index)
	}
	return s.levels[index], nil
}

func (s *State) Floor(index int) (Floor, error) {
	lvl, err := s.Level(index)
	if err != nil {
		return Floor{}, err
	}
	return lvl.Floor, nil
}

// PendingReleases lists the levels whose floors are waiting for their gate
// to be released.
func (s *State) PendingReleases() []int {
	return append([]int(nil), s.releases...)
}

// PauseButtonVisible mirrors the pause button view rule.
func (s *State) PauseButtonVisible() bool {
	return s.Started && !s.Paused
}

// CheckAlive reports whether the player is still over the current floor,
// allowing half the player's width of overhang on either side.
func (s *State) CheckAlive() bool {
	floor, err := s.Floor(s.CurrentLevel)
	if err != nil {
		return false
	}
	half := s.cfg.PlayerWidth / 2
	x := s.Player.Position.X
	return x >= floor.MinX-half && x <= floor.MaxX+half
}

// Jump queues a jump force for the next tick. The force is scaled by the
// direction the player is currently heading.
func (s *State) Jump() bool {
	if !s.Player.Alive || s.Paused || s.Phase == PhaseDead || s.Phase == PhaseCleared {
		return false
	}
	scale := s.cfg.JumpScale.For(s.Player.Direction)
	s.Player.PendingForce.Y = s.cfg.JumpForce * scale
	s.Player.OnGround = false
	s.Started = true
	s.Phase = PhaseRunning
	s.Views.Title = false
	return true
}

func (s *State) Pause() bool {
	if s.Phase != PhaseRunning {
		return false
	}
	s.Paused = true
	s.Views.Actions = true
	s.Phase = PhasePaused
	return true
}

// Play resumes a paused run. For a finished run it reports PlayReset; the
// caller rebuilds the world and calls Reset.
func (s *State) Play() PlayResult {
	if s.Paused {
		s.Paused = false
		s.Views.Actions = false
		s.Phase = PhaseRunning
		return PlayResumed
	}
	if !s.Player.Alive || s.Phase == PhaseCleared {
		return PlayReset
	}
	return PlayIgnored
}

func (s *State) die() {
	s.Player.Alive = false
	s.Views.Actions = true
	s.Started = false
	s.Paused = false
	s.Phase = PhaseDead
}

func (s *State) clear() {
	s.Views.Actions = true
	s.Started = false
	s.Phase = PhaseCleared
}
