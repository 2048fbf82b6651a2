package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/climber/climb"
	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeFloor
	collisionTypeSolid
)

// PhysicsSystem owns the chipmunk space. It is also the climb.Physics the
// state machine drives, addressing bodies by their climb.BodyID.
type PhysicsSystem struct {
	space         *cp.Space
	gravity       float64
	handlersReady bool
	debug         bool

	entities map[ecs.Entity]*bodyInfo
	bodies   map[climb.BodyID]*bodyInfo
	shapes   map[*cp.Shape]*bodyInfo

	contacts []climb.Contact
	// touching marks floors whose current contact was already reported.
	touching map[climb.BodyID]bool
}

type bodyInfo struct {
	id      climb.BodyID
	entity  ecs.Entity
	kind    component.BodyKind
	level   int
	group   climb.Group
	body    *cp.Body
	shape   *cp.Shape
	static  bool
	centreY float64
}

var _ climb.Physics = (*PhysicsSystem)(nil)

func NewPhysicsSystem(gravity float64, debug bool) *PhysicsSystem {
	ps := &PhysicsSystem{gravity: gravity, debug: debug}
	ps.Reset()
	return ps
}

// Reset throws the space away. Bodies are recreated from their components on
// the next Update.
func (ps *PhysicsSystem) Reset() {
	if ps == nil {
		return
	}
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: ps.gravity})
	ps.space = space
	ps.handlersReady = false
	ps.entities = make(map[ecs.Entity]*bodyInfo)
	ps.bodies = make(map[climb.BodyID]*bodyInfo)
	ps.shapes = make(map[*cp.Shape]*bodyInfo)
	ps.contacts = nil
	ps.touching = make(map[climb.BodyID]bool)
}

// SetGravity applies to the current space and every space after a Reset.
func (ps *PhysicsSystem) SetGravity(g float64) {
	ps.gravity = g
	if ps.space != nil {
		ps.space.SetGravity(cp.Vector{X: 0, Y: g})
	}
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.ensureHandlers()
	ps.syncEntities(w)

	if sessionPaused(w) {
		return
	}

	ps.contacts = ps.contacts[:0]
	// Step clears body forces, so a queued jump force acts for one tick.
	ps.space.Step(1.0)

	ps.syncTransforms(w)
	ps.flushContacts(w)
}

func sessionPaused(w *ecs.World) bool {
	e, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		return false
	}
	session, ok := ecs.Get(w, e, component.SessionComponent.Kind())
	return ok && session.State != nil && session.State.Paused
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	floorHandler := ps.space.NewCollisionHandler(collisionTypePlayer, collisionTypeFloor)
	floorHandler.UserData = ps
	// Runs every step the shapes overlap, so a floor the player rose into
	// starts colliding as soon as the gate opens.
	floorHandler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		player, floor := sys.floorPair(arb)
		if player == nil {
			return true
		}
		if !sys.gateOpen(player, floor) {
			delete(sys.touching, floor.id)
			return false
		}
		if !sys.touching[floor.id] && sys.landing(player, floor) {
			sys.touching[floor.id] = true
			sys.contacts = append(sys.contacts, climb.Contact{Floor: floor.id, Level: floor.level})
		}
		return true
	}
	floorHandler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return
		}
		if _, floor := sys.floorPair(arb); floor != nil {
			delete(sys.touching, floor.id)
		}
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) floorPair(arb *cp.Arbiter) (player, floor *bodyInfo) {
	shapeA, shapeB := arb.Shapes()
	player, floor = ps.shapes[shapeA], ps.shapes[shapeB]
	if player == nil || floor == nil {
		return nil, nil
	}
	if player.kind != component.BodyPlayer {
		player, floor = floor, player
	}
	return player, floor
}

// gateOpen reports whether the player collides with floor this step.
// Released floors and the ground always collide. A floor still in the
// player's pass-through group only catches a player landing on it.
func (ps *PhysicsSystem) gateOpen(player, floor *bodyInfo) bool {
	if floor.group == climb.GroupNeutral || floor.group != player.group {
		return true
	}
	return ps.landing(player, floor)
}

// landing reports whether the player is moving down and its centre was above
// the floor's centre at the end of the previous step. That is the position
// the level state machine compared against the floor when counting a climb.
func (ps *PhysicsSystem) landing(player, floor *bodyInfo) bool {
	vel := player.body.Velocity()
	if vel.Y < 0 {
		return false
	}
	return player.body.Position().Y-vel.Y < floor.centreY
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	if ps.space == nil {
		return
	}

	ps.cleanupEntities(w)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if info := ps.entities[e]; info != nil {
			bodyComp.Body = info.body
			bodyComp.Shape = info.shape
			return
		}
		if !bodyComp.ID.Valid() {
			log.Printf("physics: entity %s has no body id, skipping", e)
			return
		}
		if _, dup := ps.bodies[bodyComp.ID]; dup {
			log.Printf("physics: body id %d already in use, skipping entity %s", bodyComp.ID, e)
			return
		}

		info := ps.createBodyInfo(*transform, *bodyComp)
		info.entity = e
		ps.entities[e] = info
		ps.bodies[info.id] = info
		ps.shapes[info.shape] = info

		bodyComp.Body = info.body
		bodyComp.Shape = info.shape
		if ps.debug {
			log.Printf("physics: added body %d (kind %d, level %d)", info.id, info.kind, info.level)
		}
	})
}

func (ps *PhysicsSystem) createBodyInfo(transform component.Transform, bodyComp component.PhysicsBody) *bodyInfo {
	width := bodyComp.Width
	height := bodyComp.Height
	if width <= 0 || height <= 0 {
		width = 32
		height = 32
	}

	info := &bodyInfo{
		id:      bodyComp.ID,
		kind:    bodyComp.Kind,
		level:   bodyComp.Level,
		group:   bodyComp.Group,
		static:  bodyComp.Static,
		centreY: transform.Y,
	}

	collisionType := collisionTypeSolid
	switch bodyComp.Kind {
	case component.BodyGround, component.BodyFloor:
		collisionType = collisionTypeFloor
	case component.BodyPlayer:
		collisionType = collisionTypePlayer
	}

	if bodyComp.Static {
		left := transform.X - width/2
		top := transform.Y - height/2
		bb := cp.BB{L: left, B: top, R: left + width, T: top + height}
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFriction(bodyComp.Friction)
		shape.SetElasticity(bodyComp.Elasticity)
		shape.SetCollisionType(collisionType)
		ps.space.AddShape(shape)

		info.body = ps.space.StaticBody
		info.shape = shape
		return info
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}

	// The player never rotates.
	body := cp.NewBody(mass, cp.INFINITY)
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
	body.SetVelocity(bodyComp.VelocityX, bodyComp.VelocityY)

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetCollisionType(collisionType)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	info.body = body
	info.shape = shape
	return info
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if bodyComp.Static || bodyComp.Body == nil {
			return
		}
		pos := bodyComp.Body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
	})
}

func (ps *PhysicsSystem) flushContacts(w *ecs.World) {
	for _, c := range ps.contacts {
		w.Events.Push(ecs.Event{Type: ecs.EventFloorContact, Data: c})
	}
	ps.contacts = ps.contacts[:0]
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
			delete(ps.shapes, info.shape)
		}
		delete(ps.touching, info.id)
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.bodies, info.id)
		delete(ps.entities, e)
	}
}

func (ps *PhysicsSystem) Position(id climb.BodyID) climb.Vec {
	info := ps.bodies[id]
	if info == nil || info.body == nil {
		return climb.Vec{}
	}
	if info.static {
		bb := info.shape.BB()
		return climb.Vec{X: (bb.L + bb.R) / 2, Y: (bb.B + bb.T) / 2}
	}
	p := info.body.Position()
	return climb.Vec{X: p.X, Y: p.Y}
}

func (ps *PhysicsSystem) Velocity(id climb.BodyID) climb.Vec {
	info := ps.bodies[id]
	if info == nil || info.body == nil || info.static {
		return climb.Vec{}
	}
	v := info.body.Velocity()
	return climb.Vec{X: v.X, Y: v.Y}
}

func (ps *PhysicsSystem) SetVelocity(id climb.BodyID, v climb.Vec) {
	info := ps.bodies[id]
	if info == nil || info.body == nil || info.static {
		return
	}
	info.body.SetVelocity(v.X, v.Y)
}

// ApplyForce adds f at the body's centre for the next step. With unit mass
// and a step of one tick the force becomes a velocity change of f.
func (ps *PhysicsSystem) ApplyForce(id climb.BodyID, f climb.Vec) {
	info := ps.bodies[id]
	if info == nil || info.body == nil || info.static {
		return
	}
	info.body.ApplyForceAtWorldPoint(cp.Vector{X: f.X, Y: f.Y}, info.body.Position())
}

func (ps *PhysicsSystem) SetGroup(id climb.BodyID, g climb.Group) {
	info := ps.bodies[id]
	if info == nil {
		return
	}
	info.group = g
}
