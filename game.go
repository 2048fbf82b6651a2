package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
	"github.com/milk9111/climber/ecs/system"
	"github.com/milk9111/climber/levels"
	"github.com/milk9111/climber/prefabs"
	"github.com/milk9111/climber/save"
)

var defaultBackground = color.NRGBA{R: 0x1b, G: 0x1f, B: 0x2a, A: 0xff}

type Options struct {
	Debug  bool
	Seed   int64
	Config string
}

type Game struct {
	opts Options

	world     *ecs.World
	scheduler *ecs.Scheduler

	input       *system.InputSystem
	physics     *system.PhysicsSystem
	persistence *system.PersistenceSystem
	render      *system.RenderSystem
	overlay     *Overlay
	watcher     *prefabs.Watcher

	width          int
	height         int
	maxNativeWidth int
}

func NewGame(opts Options) (*Game, error) {
	spec, err := prefabs.LoadGameSpec(opts.Config)
	if err != nil {
		return nil, err
	}
	layout, err := loadLayout(spec)
	if err != nil {
		return nil, err
	}

	g := &Game{
		opts:           opts,
		world:          ecs.NewWorld(),
		width:          int(spec.Canvas.Width),
		height:         int(spec.Canvas.Height),
		maxNativeWidth: spec.Canvas.MaxNativeWidth,
	}

	g.input = system.NewInputSystem()
	g.physics = system.NewPhysicsSystem(spec.Gravity, opts.Debug)
	g.persistence = system.NewPersistenceSystem(spec, layout, opts.Seed, save.Open(save.AppName), g.physics.Reset, opts.Debug)
	g.render = system.NewRenderSystem(spec.Background.Or(defaultBackground), opts.Debug)

	g.scheduler = ecs.NewScheduler(
		g.input,
		system.NewSessionSystem(opts.Debug),
		g.physics,
		system.NewClimbSystem(g.physics, opts.Debug),
		system.NewAnimationSystem(opts.Debug),
		system.NewCameraSystem(),
		g.persistence,
	)
	g.scheduler.AddDrawer(g.render)

	g.overlay = NewOverlay(g.width, g.height, g.input.RequestPause, g.input.RequestPlay)
	g.input.Blocked = g.overlay.Blocks

	if opts.Debug {
		if dirs := prefabs.WatchDirs(); len(dirs) > 0 {
			w, err := prefabs.NewWatcher(dirs...)
			if err != nil {
				log.Printf("game: watch prefabs: %v", err)
			} else {
				g.watcher = w
				log.Printf("game: watching %v for changes", dirs)
			}
		}
	}

	return g, nil
}

func loadLayout(spec *prefabs.GameSpec) (levels.Layout, error) {
	if spec.LayoutScript == "" {
		return levels.FlatLayout{}, nil
	}
	src, err := prefabs.LoadScript(spec.LayoutScript)
	if err != nil {
		return nil, fmt.Errorf("game: load layout script %s: %w", spec.LayoutScript, err)
	}
	layout, err := levels.NewScriptLayout(spec.LayoutScript, src)
	if err != nil {
		return nil, err
	}
	return layout, nil
}

func (g *Game) Update() error {
	g.reloadChangedPrefabs()

	g.overlay.Update()
	g.scheduler.Update(g.world)

	session := g.session()
	if session != nil {
		g.overlay.Sync(session.State, session.Best)
	}
	return nil
}

// reloadChangedPrefabs rebuilds the world when the game spec or a script
// changed on disk. A spec that fails to load keeps the current one.
func (g *Game) reloadChangedPrefabs() {
	changed := g.watcher.Drain()
	if err := g.watcher.Err(); err != nil {
		log.Printf("game: watch prefabs: %v", err)
	}
	if len(changed) == 0 {
		return
	}

	spec, err := prefabs.LoadGameSpec(g.opts.Config)
	if err != nil {
		log.Printf("game: reload %v: %v", changed, err)
		return
	}
	layout, err := loadLayout(spec)
	if err != nil {
		log.Printf("game: reload %v: %v", changed, err)
		return
	}

	for _, c := range changed {
		if mod, ok := prefabs.ModTime(c.Name()); ok {
			log.Printf("game: %s %s changed (%s)", c.Kind, c.Name(), mod.Format("15:04:05"))
		}
	}

	g.physics.SetGravity(spec.Gravity)
	g.render.Background = spec.Background.Or(defaultBackground)
	g.persistence.SetSpec(spec, layout)

	e := ecs.CreateEntity(g.world)
	if err := ecs.Add(g.world, e, component.ResetRequestComponent.Kind(), &component.ResetRequest{Reason: "prefabs changed"}); err != nil {
		log.Printf("game: request reset: %v", err)
	}
}

func (g *Game) session() *component.Session {
	e, ok := ecs.First(g.world, component.SessionComponent.Kind())
	if !ok {
		return nil
	}
	session, _ := ecs.Get(g.world, e, component.SessionComponent.Kind())
	return session
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scheduler.Draw(g.world, screen)
	g.overlay.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
