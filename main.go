package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/climber/common"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	seed := flag.Int64("seed", 0, "level generator seed (0 picks one from the clock)")
	config := flag.String("config", "", "game spec in prefabs/ (defaults to game.yaml)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	if *debug {
		log.Printf("main: seed %d", *seed)
	}

	game, err := NewGame(Options{Debug: *debug, Seed: *seed, Config: *config})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	w, h := windowSize(game.width, game.height, game.maxNativeWidth)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("climber")
	ebiten.SetTPS(common.TPS)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// windowSize keeps the canvas size on wide monitors and fills narrow ones.
func windowSize(canvasW, canvasH, maxNative int) (int, int) {
	if maxNative <= 0 {
		maxNative = common.MaxNativeWidth
	}
	mw, mh := ebiten.Monitor().Size()
	if mw > maxNative || mw <= 0 || mh <= 0 {
		return canvasW, canvasH
	}
	return mw, mh
}
