package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/climber/climb"
)

type BodyKind int

const (
	BodyGround BodyKind = iota
	BodyFloor
	BodyWall
	BodyPlayer
)

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// ID is the handle the climb state machine knows the body by; Body and Shape
// are filled in by the physics system once the body is in the space.
type PhysicsBody struct {
	ID         climb.BodyID
	Kind       BodyKind
	Level      int
	Group      climb.Group
	Body       *cp.Body
	Shape      *cp.Shape
	Width      float64
	Height     float64
	Mass       float64
	Friction   float64
	Elasticity float64
	Static     bool

	// Velocity is the initial velocity of a dynamic body.
	VelocityX float64
	VelocityY float64
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
