package climb

import (
	"fmt"
	"math"

	"github.com/milk9111/climber/common"
)

// Report summarises what changed during a tick.
type Report struct {
	Climbed  bool
	Released []int
	Died     bool
	Cleared  bool
}

// Tick advances the state machine by one physics step. contacts are the
// player/floor contacts that started during the step that just ran.
func Tick(s *State, phys Physics, contacts []Contact) Report {
	var r Report
	if s == nil || phys == nil || s.Paused {
		return r
	}

	p := &s.Player
	p.Position = phys.Position(p.Body)
	p.Velocity = phys.Velocity(p.Body)
	if !p.Alive || s.Phase == PhaseCleared {
		// The camera keeps settling on the highest point reached.
		s.updateCameraBound()
		return r
	}

	s.applyPendingForce(phys)
	s.classifyDirection()
	s.absorbContacts(contacts)
	s.clampOnGround(phys)
	s.advanceAnimation()
	s.updateCameraTarget()
	r.Climbed = s.checkClimbUp()
	r.Released = s.releaseGates(phys)
	s.updateCameraBound()

	if !s.CheckAlive() {
		s.die()
		r.Died = true
		return r
	}
	if r.Climbed && s.CurrentLevel == s.TopLevel() {
		s.clear()
		r.Cleared = true
	}
	return r
}

func (s *State) applyPendingForce(phys Physics) {
	p := &s.Player
	if p.PendingForce.IsZero() {
		return
	}
	phys.ApplyForce(p.Body, p.PendingForce)
	p.PendingForce = Vec{}
}

func (s *State) classifyDirection() {
	p := &s.Player
	if math.Abs(p.Velocity.Y) < s.cfg.DirectionThreshold {
		p.Direction = Neutral
		return
	}
	p.Direction = Direction(common.Sign(p.Velocity.Y))
}

func (s *State) absorbContacts(contacts []Contact) {
	for _, c := range contacts {
		if c.Floor.Valid() {
			s.Player.OnGround = true
			return
		}
	}
}

func (s *State) clampOnGround(phys Physics) {
	p := &s.Player
	if !p.OnGround {
		return
	}
	p.Velocity = Vec{X: p.Velocity.X}
	phys.SetVelocity(p.Body, p.Velocity)
}

func (s *State) advanceAnimation() {
	p := &s.Player
	c := &p.Character
	if math.Abs(p.PrevVelocity.X-p.Velocity.X) > s.cfg.FrameResetDelta {
		c.Tick = 0
		c.Frame = c.FrameInitial
	} else {
		c.Tick++
		if c.TickReset > 0 && c.Tick%c.TickReset == 0 {
			c.Frame++
			if c.Frame > c.FrameTotal {
				c.Frame = c.FrameInitial
			}
		}
	}
	p.Texture = TexturePath(c.ID, p.Velocity.X > 0, c.Frame)
	p.PrevVelocity = p.Velocity
}

func (s *State) updateCameraTarget() {
	offset := s.Player.Position.Y - s.Player.Spawn.Y
	if offset < s.Camera.Target {
		s.Camera.Target = offset
	}
}

// checkClimbUp advances at most one level per tick. The top level is a
// ceiling: there is no floor above it to cross.
func (s *State) checkClimbUp() bool {
	next := s.CurrentLevel + 1
	if next > s.TopLevel() {
		return false
	}
	if s.Player.Position.Y >= s.levels[next].Floor.Y {
		return false
	}
	s.releases = append(s.releases, s.CurrentLevel)
	s.CurrentLevel = next
	return true
}

func (s *State) releaseGates(phys Physics) []int {
	if s.Player.Direction != Rising || len(s.releases) == 0 {
		return nil
	}
	released := s.releases
	for _, lvl := range released {
		floor := &s.levels[lvl].Floor
		floor.Group = GroupNeutral
		phys.SetGroup(floor.Body, GroupNeutral)
	}
	s.releases = nil
	return released
}

func (s *State) updateCameraBound() {
	s.Camera.Bound = common.Lerp(s.Camera.Bound, s.Camera.Target, 1-s.cfg.CameraSmoothing)
}

// TexturePath builds the sprite path for a character frame.
func TexturePath(id int, facingRight bool, frame int) string {
	facing := "l"
	if facingRight {
		facing = "r"
	}
	return fmt.Sprintf("./images/character/%d%s%d.png", id, facing, frame)
}
