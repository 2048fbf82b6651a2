package system

import (
	"math"
	"testing"

	"github.com/milk9111/climber/climb"
	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
)

const (
	testGravity = 0.5

	groundID climb.BodyID = 2
	floorID  climb.BodyID = 3
	playerID climb.BodyID = 1

	// floor spans y 395..405
	floorY = 400.0
	// ground spans y 547..557
	groundY = 552.0
)

func addBody(t *testing.T, w *ecs.World, x, y float64, body component.PhysicsBody) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, Width: body.Width, Height: body.Height}); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &body); err != nil {
		t.Fatalf("add body: %v", err)
	}
	return e
}

func newPhysicsWorld(t *testing.T, playerY, playerVY float64) (*ecs.World, *PhysicsSystem) {
	t.Helper()
	w := ecs.NewWorld()
	addBody(t, w, 187.5, groundY, component.PhysicsBody{
		ID: groundID, Kind: component.BodyGround, Group: climb.GroupNeutral,
		Width: 375, Height: 10, Static: true,
	})
	addBody(t, w, 187.5, floorY, component.PhysicsBody{
		ID: floorID, Kind: component.BodyFloor, Level: 1, Group: climb.GroupPassThrough,
		Width: 315, Height: 10, Static: true,
	})
	addBody(t, w, 187.5, playerY, component.PhysicsBody{
		ID: playerID, Kind: component.BodyPlayer, Group: climb.GroupPassThrough,
		Width: 20, Height: 30, Mass: 1, Elasticity: 1, VelocityY: playerVY,
	})
	return w, NewPhysicsSystem(testGravity, false)
}

func groupOf(ps *PhysicsSystem, id climb.BodyID) (climb.Group, bool) {
	info := ps.bodies[id]
	if info == nil {
		return 0, false
	}
	return info.group, true
}

func step(ps *PhysicsSystem, w *ecs.World, n int) {
	for i := 0; i < n; i++ {
		ps.Update(w)
	}
}

func floorContacts(w *ecs.World) []climb.Contact {
	var out []climb.Contact
	for _, evt := range w.Events.Take(ecs.EventFloorContact) {
		out = append(out, evt.Data.(climb.Contact))
	}
	return out
}

func hasContact(contacts []climb.Contact, id climb.BodyID) bool {
	for _, c := range contacts {
		if c.Floor == id {
			return true
		}
	}
	return false
}

func TestPhysicsPlayerLandsOnGround(t *testing.T) {
	w, ps := newPhysicsWorld(t, 520, 0)
	step(ps, w, 40)

	contacts := floorContacts(w)
	if !hasContact(contacts, groundID) {
		t.Fatalf("expected a ground contact, got %v", contacts)
	}
	feet := ps.Position(playerID).Y + 15
	if math.Abs(feet-547) > 1 {
		t.Fatalf("player feet at %v, want resting on 547", feet)
	}
}

func TestPhysicsRisingPlayerPassesThroughGatedFloor(t *testing.T) {
	w, ps := newPhysicsWorld(t, 450, -15)
	step(ps, w, 10)

	if y := ps.Position(playerID).Y; y+15 >= floorY-5 {
		t.Fatalf("player stopped under a pass-through floor at y=%v", y)
	}
	if hasContact(floorContacts(w), floorID) {
		t.Fatalf("passing up through a floor must not report a contact")
	}
}

func TestPhysicsReleasedFloorBlocksFromBelow(t *testing.T) {
	w, ps := newPhysicsWorld(t, 450, -15)
	ps.Update(w)
	ps.SetGroup(floorID, climb.GroupNeutral)
	if g, ok := groupOf(ps, floorID); !ok || g != climb.GroupNeutral {
		t.Fatalf("group = %v (ok=%v), want neutral", g, ok)
	}

	step(ps, w, 10)

	if y := ps.Position(playerID).Y; y-15 < floorY+5-1 {
		t.Fatalf("player went through a released floor, y=%v", y)
	}
	if hasContact(floorContacts(w), floorID) {
		t.Fatalf("hitting a floor from below must not count as landing")
	}
}

func TestPhysicsPlayerLandsOnGatedFloorFromAbove(t *testing.T) {
	w, ps := newPhysicsWorld(t, 370, 0)
	step(ps, w, 30)

	if !hasContact(floorContacts(w), floorID) {
		t.Fatalf("expected a contact with the floor below")
	}
	feet := ps.Position(playerID).Y + 15
	if math.Abs(feet-(floorY-5)) > 1 {
		t.Fatalf("player feet at %v, want resting on %v", feet, floorY-5)
	}
}

func TestPhysicsApplyForceActsForOneStep(t *testing.T) {
	w := ecs.NewWorld()
	addBody(t, w, 100, 100, component.PhysicsBody{
		ID: playerID, Kind: component.BodyPlayer, Width: 20, Height: 30, Mass: 1,
	})
	ps := NewPhysicsSystem(testGravity, false)
	ps.Update(w)
	ps.SetVelocity(playerID, climb.Vec{})

	ps.ApplyForce(playerID, climb.Vec{Y: -10})
	ps.Update(w)
	if vy := ps.Velocity(playerID).Y; vy != -9.5 {
		t.Fatalf("vy after force = %v, want -9.5", vy)
	}

	ps.Update(w)
	if vy := ps.Velocity(playerID).Y; vy != -9 {
		t.Fatalf("force should be cleared after one step, vy = %v", vy)
	}
}

func TestPhysicsSkipsStepWhilePaused(t *testing.T) {
	w, ps := newPhysicsWorld(t, 300, 0)
	ground := climb.Level{Index: 0, Floor: climb.Floor{Body: groundID, Y: groundY, Width: 375, Height: 10, MinX: 30, MaxX: 345}}
	state, err := climb.NewState(climb.DefaultConfig(), []climb.Level{ground}, climb.NewPlayer(playerID, climb.Vec{X: 187.5, Y: 300}, climb.Vec{}))
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	state.Jump()
	if !state.Pause() {
		t.Fatalf("pause rejected")
	}
	session := ecs.CreateEntity(w)
	_ = ecs.Add(w, session, component.SessionComponent.Kind(), &component.Session{State: state})

	step(ps, w, 5)
	if y := ps.Position(playerID).Y; y != 300 {
		t.Fatalf("player moved while paused: y=%v", y)
	}

	state.Play()
	step(ps, w, 5)
	if y := ps.Position(playerID).Y; y <= 300 {
		t.Fatalf("player should fall after resuming, y=%v", y)
	}
}

func TestPhysicsDestroyedEntityLeavesSpace(t *testing.T) {
	w, ps := newPhysicsWorld(t, 520, 0)
	ps.Update(w)

	for _, e := range w.Query(component.PhysicsBodyComponent.Kind()) {
		b, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if b.ID == floorID {
			w.DestroyEntity(e)
		}
	}
	ps.Update(w)

	if _, ok := groupOf(ps, floorID); ok {
		t.Fatalf("destroyed floor still registered")
	}
	if p := ps.Position(floorID); !p.IsZero() {
		t.Fatalf("destroyed floor still has a position %v", p)
	}
}

// The level state machine counts a climb once the player's centre is above
// the next floor's centre. A jump that peaks just past that point must come
// down on the floor it was counted as climbing, and one that falls short must
// drop back through it.
func TestPhysicsShallowClimbAgreesWithLevel(t *testing.T) {
	const (
		nextFloorY    = 492.0 // spans 487..497
		restingY      = 532.0 // feet on the ground top at 547
		thirdFloorID  = climb.BodyID(4)
		levelMinX     = 30.0
		levelMaxX     = 345.0
		feetTolerance = 1.0
	)

	cases := []struct {
		name      string
		vy        float64
		wantLevel int
		wantFeet  float64
	}{
		// peak centre 493, one pixel short of the floor centre
		{"falls_short", -6, 0, 547},
		// peak centre 486.5 with the feet still inside the floor
		{"peaks_inside_floor", -6.5, 1, 487},
		// peak centre 472, feet exactly on the floor top
		{"clears_floor", -7.5, 1, 487},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			addBody(t, w, 187.5, groundY, component.PhysicsBody{
				ID: groundID, Kind: component.BodyGround, Group: climb.GroupNeutral,
				Width: 375, Height: 10, Static: true,
			})
			addBody(t, w, 187.5, nextFloorY, component.PhysicsBody{
				ID: floorID, Kind: component.BodyFloor, Level: 1, Group: climb.GroupPassThrough,
				Width: 315, Height: 10, Static: true,
			})
			addBody(t, w, 187.5, restingY, component.PhysicsBody{
				ID: playerID, Kind: component.BodyPlayer, Group: climb.GroupPassThrough,
				Width: 20, Height: 30, Mass: 1, Elasticity: 1, VelocityY: c.vy,
			})

			level := func(i int, body climb.BodyID, y float64, g climb.Group) climb.Level {
				return climb.Level{Index: i, Floor: climb.Floor{
					Body: body, Level: i, X: 187.5, Y: y, Width: levelMaxX - levelMinX, Height: 10,
					MinX: levelMinX, MaxX: levelMaxX, Group: g,
				}}
			}
			levels := []climb.Level{
				level(0, groundID, groundY, climb.GroupNeutral),
				level(1, floorID, nextFloorY, climb.GroupPassThrough),
				level(2, thirdFloorID, nextFloorY-60, climb.GroupPassThrough),
			}
			state, err := climb.NewState(climb.DefaultConfig(), levels, climb.NewPlayer(playerID, climb.Vec{X: 187.5, Y: restingY}, climb.Vec{}))
			if err != nil {
				t.Fatalf("NewState: %v", err)
			}
			session := ecs.CreateEntity(w)
			_ = ecs.Add(w, session, component.SessionComponent.Kind(), &component.Session{State: state})

			ps := NewPhysicsSystem(testGravity, false)
			climber := NewClimbSystem(ps, false)
			for i := 0; i < 40; i++ {
				ps.Update(w)
				climber.Update(w)
			}

			if state.CurrentLevel != c.wantLevel {
				t.Fatalf("CurrentLevel = %d, want %d", state.CurrentLevel, c.wantLevel)
			}
			feet := ps.Position(playerID).Y + 15
			if math.Abs(feet-c.wantFeet) > feetTolerance {
				t.Fatalf("player feet at %v, want standing on %v", feet, c.wantFeet)
			}
			if !state.Player.Alive || !state.Player.OnGround {
				t.Fatalf("player alive=%v onGround=%v, want standing", state.Player.Alive, state.Player.OnGround)
			}
		})
	}
}

func TestPhysicsReportsEachLandingOnce(t *testing.T) {
	w, ps := newPhysicsWorld(t, 520, 0)

	var landings int
	for i := 0; i < 60; i++ {
		ps.Update(w)
		for _, c := range floorContacts(w) {
			if c.Floor == groundID {
				landings++
			}
		}
	}
	if landings != 1 {
		t.Fatalf("standing on the ground reported %d contacts, want 1", landings)
	}
}
