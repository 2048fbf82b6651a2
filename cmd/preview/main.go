// Command preview cycles through the climber's character frames the same
// way a run animates them, without building a tower.
package main

import (
	"flag"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/climber/climb"
	"github.com/milk9111/climber/ecs/render"
)

const (
	screenWidth  = 256
	screenHeight = 256
	scale        = 4
)

type previewGame struct {
	character climb.CharacterConfig
	frames    map[bool][]*ebiten.Image
	frame     int
	tick      int
	right     bool
}

func (g *previewGame) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.right = false
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.right = true
	}
	g.tick++
	if g.tick%g.character.TickReset == 0 {
		g.frame++
		if g.frame >= len(g.frames[g.right]) {
			g.frame = 0
		}
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x1b, 0x1f, 0x2a, 0xff})
	frames := g.frames[g.right]
	if len(frames) == 0 {
		ebitenutil.DebugPrint(screen, "no frames found")
		return
	}
	img := frames[g.frame]
	fw := img.Bounds().Dx() * scale
	fh := img.Bounds().Dy() * scale
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(screenWidth-fw)/2, float64(screenHeight-fh)/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(img, op)

	path := climb.TexturePath(g.character.ID, g.right, g.character.FrameInitial+g.frame)
	ebitenutil.DebugPrint(screen, path+"\n<- -> to turn")
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func loadFrames(c climb.CharacterConfig, right bool) []*ebiten.Image {
	var frames []*ebiten.Image
	for frame := c.FrameInitial; frame <= c.FrameTotal; frame++ {
		path := climb.TexturePath(c.ID, right, frame)
		img, err := render.LoadImage(path)
		if err != nil {
			log.Printf("preview: %v", err)
			continue
		}
		frames = append(frames, img)
	}
	return frames
}

func main() {
	character := climb.DefaultConfig().Character
	flag.IntVar(&character.ID, "id", character.ID, "character id")
	flag.IntVar(&character.TickReset, "tick", character.TickReset, "ticks per frame")
	flag.Parse()
	if character.TickReset <= 0 {
		log.Fatalf("preview: -tick must be positive, got %d", character.TickReset)
	}

	g := &previewGame{
		character: character,
		right:     true,
		frames: map[bool][]*ebiten.Image{
			false: loadFrames(character, false),
			true:  loadFrames(character, true),
		},
	}
	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetWindowTitle("Character Preview")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
