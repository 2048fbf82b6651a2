// Package climb holds the level-progression and aliveness rules of the game.
//
// Nothing here talks to the physics or rendering engines directly. The host
// loop steps the physics world, collects the floor contacts produced by that
// step and then calls Tick once with an explicit State and a Physics handle.
package climb

import "strconv"

type Vec struct {
	X float64
	Y float64
}

func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// BodyID is an opaque handle into the physics world.
type BodyID int

const NoBody BodyID = 0

func (id BodyID) Valid() bool {
	return id > NoBody
}

// Group is a collision gate tag. A floor sharing the player's non-neutral
// group lets the player pass through it.
type Group int

const (
	GroupNeutral     Group = 0
	GroupPassThrough Group = 1
)

// Direction is the player's vertical heading in screen space (Y grows down).
type Direction int

const (
	Rising  Direction = -1
	Neutral Direction = 0
	Falling Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Rising:
		return "rising"
	case Neutral:
		return "neutral"
	case Falling:
		return "falling"
	default:
		return "direction(" + strconv.Itoa(int(d)) + ")"
	}
}

type Phase int

const (
	PhaseTitle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseDead
	PhaseCleared
)

func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseDead:
		return "dead"
	case PhaseCleared:
		return "cleared"
	default:
		return "phase(" + strconv.Itoa(int(p)) + ")"
	}
}

// Floor is the platform a level stands on. X/Y are the centre of the body.
type Floor struct {
	Body   BodyID
	Level  int
	X      float64
	Y      float64
	Width  float64
	Height float64
	MinX   float64
	MaxX   float64
	Group  Group
}

type Wall struct {
	Body   BodyID
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Level is one storey of the tower. Level 0 is the ground.
type Level struct {
	Index int
	Floor Floor
	Left  *Wall
	Right *Wall
}

// Contact reports that the player started touching a floor during the last
// physics step.
type Contact struct {
	Floor BodyID
	Level int
}

// Physics is the subset of the rigid-body engine the state machine drives.
type Physics interface {
	Position(id BodyID) Vec
	Velocity(id BodyID) Vec
	SetVelocity(id BodyID, v Vec)
	ApplyForce(id BodyID, f Vec)
	SetGroup(id BodyID, g Group)
}
