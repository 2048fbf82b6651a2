package ecs

import "github.com/hajimehoshi/ebiten/v2"

type System interface {
	Update(w *World)
}

// DrawSystem renders world state; it runs from Game.Draw, not the tick.
type DrawSystem interface {
	Draw(w *World, screen *ebiten.Image)
}

type Scheduler struct {
	systems []System
	drawers []DrawSystem
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

// Add appends system to the update order. Systems that also draw are
// registered as drawers.
func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
	if d, ok := system.(DrawSystem); ok {
		s.drawers = append(s.drawers, d)
	}
}

func (s *Scheduler) AddDrawer(d DrawSystem) {
	if d == nil {
		return
	}
	s.drawers = append(s.drawers, d)
}

func (s *Scheduler) Update(w *World) {
	for _, system := range s.systems {
		system.Update(w)
	}
}

func (s *Scheduler) Draw(w *World, screen *ebiten.Image) {
	for _, d := range s.drawers {
		d.Draw(w, screen)
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
