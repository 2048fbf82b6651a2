package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
)

// InputSystem samples keyboard, mouse and touch once per tick and writes the
// requested actions into every Input component. Overlay buttons queue their
// actions with RequestPause and RequestPlay.
type InputSystem struct {
	// Blocked reports whether a pointer press at x, y belongs to the overlay
	// and must not count as a jump.
	Blocked func(x, y int) bool

	pendingPause bool
	pendingPlay  bool
	touches      []ebiten.TouchID
}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) RequestPause() {
	i.pendingPause = true
}

func (i *InputSystem) RequestPlay() {
	i.pendingPlay = true
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	in := component.Input{
		JumpPressed: inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
			inpututil.IsKeyJustPressed(ebiten.KeyW),
		PausePressed: i.pendingPause ||
			inpututil.IsKeyJustPressed(ebiten.KeyP) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		PlayPressed: i.pendingPlay ||
			inpututil.IsKeyJustPressed(ebiten.KeyEnter),
	}
	i.pendingPause = false
	i.pendingPlay = false

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if x, y := ebiten.CursorPosition(); !i.blocked(x, y) {
			in.JumpPressed = true
		}
	}
	i.touches = inpututil.AppendJustPressedTouchIDs(i.touches[:0])
	for _, id := range i.touches {
		if x, y := ebiten.TouchPosition(id); !i.blocked(x, y) {
			in.JumpPressed = true
		}
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		*input = in
	})
}

func (i *InputSystem) blocked(x, y int) bool {
	return i.Blocked != nil && i.Blocked(x, y)
}
