package system

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
	"golang.org/x/image/font/basicfont"
)

// backgroundStripe is the spacing of the scrolling background bands.
const backgroundStripe = 48.0

type RenderSystem struct {
	Background color.Color
	Debug      bool

	face      text.Face
	camEntity ecs.Entity
}

func NewRenderSystem(background color.Color, debug bool) *RenderSystem {
	return &RenderSystem{
		Background: background,
		Debug:      debug,
		face:       text.NewGoXFace(basicfont.Face7x13),
	}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil {
		return
	}

	if !r.camEntity.Valid() || !w.IsAlive(r.camEntity) {
		if camEntity, ok := w.First(component.CameraComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}
	offsetY, parallax := 0.0, 0.0
	if cam, ok := ecs.Get(w, r.camEntity, component.CameraComponent.Kind()); ok {
		offsetY = cam.OffsetY
		parallax = cam.Parallax
	}

	r.drawBackground(screen, offsetY*parallax)

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li := 0
		if layer, ok := ecs.Get(w, entities[i], component.RenderLayerComponent.Kind()); ok {
			li = layer.Index
		}
		lj := 0
		if layer, ok := ecs.Get(w, entities[j], component.RenderLayerComponent.Kind()); ok {
			lj = layer.Index
		}
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	screenH := float64(screen.Bounds().Dy())
	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())

		x := t.Left()
		y := t.Top() - offsetY
		if y > screenH || y+t.Height < 0 {
			continue
		}

		if s.Image != nil {
			b := s.Image.Bounds()
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(t.Width/float64(b.Dx()), t.Height/float64(b.Dy()))
			op.GeoM.Translate(x, y)
			screen.DrawImage(s.Image, op)
			continue
		}
		if s.Fill != nil {
			vector.DrawFilledRect(screen, float32(x), float32(y), float32(t.Width), float32(t.Height), s.Fill, false)
		}
	}

	r.drawHUD(w, screen)
}

func (r *RenderSystem) drawBackground(screen *ebiten.Image, scroll float64) {
	if r.Background == nil {
		return
	}
	screen.Fill(r.Background)

	band := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x08}
	bounds := screen.Bounds()
	start := -math.Mod(scroll, backgroundStripe*2)
	if start > 0 {
		start -= backgroundStripe * 2
	}
	for y := start; y < float64(bounds.Dy()); y += backgroundStripe * 2 {
		vector.DrawFilledRect(screen, 0, float32(y), float32(bounds.Dx()), float32(backgroundStripe), band, false)
	}
}

func (r *RenderSystem) drawHUD(w *ecs.World, screen *ebiten.Image) {
	session := firstSession(w)
	if session == nil || session.State == nil {
		return
	}
	state := session.State

	lines := fmt.Sprintf("Level %d/%d\nBest %d", state.CurrentLevel, state.TopLevel(), session.Best)
	if r.Debug {
		lines += fmt.Sprintf("\n%s %s\nseed %d\nFPS %.1f", state.Phase, state.Player.Direction, session.Seed, ebiten.ActualFPS())
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 8)
	op.LineSpacing = 16
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, lines, r.face, op)
}
