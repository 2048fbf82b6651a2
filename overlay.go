package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/climber/climb"
	"golang.org/x/image/font/basicfont"
)

// Overlay holds the three views the run can show: the title card, the
// actions panel (paused, fallen or cleared) and the pause button. Each is a
// separate UI so hidden views neither draw nor take clicks.
type Overlay struct {
	title     *ebitenui.UI
	actions   *ebitenui.UI
	pauseBtn  *ebitenui.UI
	heading   *widget.Text
	detail    *widget.Text
	playBtn   *widget.Button
	pauseRect func() image.Rectangle
	panelRect func() image.Rectangle

	views       climb.Views
	pauseShown  bool
	actionsRect image.Rectangle
}

var (
	textColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	panelColor = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	btnColor   = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	btnHover   = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255}
)

// NewOverlay builds the views for a canvas of width x height. onPause and
// onPlay are called when the matching buttons are clicked.
func NewOverlay(width, height int, onPause, onPlay func()) *Overlay {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	btnImage := &widget.ButtonImage{
		Idle:    imageui.NewNineSliceColor(btnColor),
		Hover:   imageui.NewNineSliceColor(btnHover),
		Pressed: imageui.NewNineSliceColor(btnHover),
	}
	btnTextColor := &widget.ButtonTextColor{Idle: textColor}
	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	o := &Overlay{}

	// title card
	titlePanel := newPanel(width*3/4, height/5)
	titlePanel.AddChild(widget.NewText(widget.TextOpts.Text("CLIMBER", &face, textColor), widget.TextOpts.WidgetOpts(centered)))
	titlePanel.AddChild(widget.NewText(widget.TextOpts.Text("Space, click or tap to jump", &face, textColor), widget.TextOpts.WidgetOpts(centered)))
	o.title = newRoot(titlePanel)

	// actions panel
	o.heading = widget.NewText(widget.TextOpts.Text("Paused", &face, textColor), widget.TextOpts.WidgetOpts(centered))
	o.detail = widget.NewText(widget.TextOpts.Text("", &face, textColor), widget.TextOpts.WidgetOpts(centered))
	o.playBtn = widget.NewButton(
		widget.ButtonOpts.Image(btnImage),
		widget.ButtonOpts.Text("Play", &face, btnTextColor),
		widget.ButtonOpts.TextPadding(&widget.Insets{Top: 6, Bottom: 6, Left: 24, Right: 24}),
		widget.ButtonOpts.WidgetOpts(centered),
		widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
			if onPlay != nil {
				onPlay()
			}
		}),
	)
	actionsPanel := newPanel(width/2, height/4)
	actionsPanel.AddChild(o.heading)
	actionsPanel.AddChild(o.detail)
	actionsPanel.AddChild(o.playBtn)
	o.actions = newRoot(actionsPanel)
	o.panelRect = func() image.Rectangle { return actionsPanel.GetWidget().Rect }

	// pause button, top right
	pause := widget.NewButton(
		widget.ButtonOpts.Image(btnImage),
		widget.ButtonOpts.Text("II", &face, btnTextColor),
		widget.ButtonOpts.TextPadding(&widget.Insets{Top: 6, Bottom: 6, Left: 10, Right: 10}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionEnd,
			VerticalPosition:   widget.AnchorLayoutPositionStart,
		})),
		widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
			if onPause != nil {
				onPause()
			}
		}),
	)
	pauseRoot := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(8)))),
	)
	pauseRoot.AddChild(pause)
	o.pauseBtn = &ebitenui.UI{Container: pauseRoot}
	o.pauseRect = func() image.Rectangle { return pause.GetWidget().Rect }

	return o
}

func newPanel(minW, minH int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(minW, minH),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
}

func newRoot(panel *widget.Container) *ebitenui.UI {
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}

// Sync copies the view flags of state into the overlay and refreshes the
// actions panel text.
func (o *Overlay) Sync(state *climb.State, best int) {
	if state == nil {
		o.views = climb.Views{}
		o.pauseShown = false
		return
	}
	o.views = state.Views
	o.pauseShown = state.PauseButtonVisible()

	switch state.Phase {
	case climb.PhasePaused:
		o.heading.Label = "Paused"
		o.detail.Label = fmt.Sprintf("Level %d", state.CurrentLevel)
		o.playBtn.SetText("Resume")
	case climb.PhaseDead:
		o.heading.Label = "You fell"
		o.detail.Label = fmt.Sprintf("Level %d  Best %d", state.CurrentLevel, best)
		o.playBtn.SetText("Play again")
	case climb.PhaseCleared:
		o.heading.Label = "Top reached!"
		o.detail.Label = fmt.Sprintf("All %d levels", state.TopLevel())
		o.playBtn.SetText("Play again")
	}
}

func (o *Overlay) Update() {
	if o.views.Title {
		o.title.Update()
	}
	if o.views.Actions {
		o.actions.Update()
		o.actionsRect = o.panelRect()
	}
	if o.pauseShown {
		o.pauseBtn.Update()
	}
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.views.Title {
		o.title.Draw(screen)
	}
	if o.views.Actions {
		o.actions.Draw(screen)
	}
	if o.pauseShown {
		o.pauseBtn.Draw(screen)
	}
}

// Blocks reports whether a press at x, y lands on a visible overlay control.
func (o *Overlay) Blocks(x, y int) bool {
	p := image.Pt(x, y)
	if o.pauseShown && p.In(o.pauseRect()) {
		return true
	}
	return o.views.Actions && p.In(o.actionsRect)
}
