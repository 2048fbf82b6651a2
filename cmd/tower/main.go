// Command tower prints the tower a seed generates, as YAML, without opening
// a window.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/milk9111/climber/climb"
	"github.com/milk9111/climber/ecs/entity"
	"github.com/milk9111/climber/levels"
	"github.com/milk9111/climber/prefabs"
	"gopkg.in/yaml.v3"
)

type wallDump struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type levelDump struct {
	Index int       `yaml:"index"`
	Y     float64   `yaml:"y"`
	MinX  float64   `yaml:"min_x"`
	MaxX  float64   `yaml:"max_x"`
	Left  *wallDump `yaml:"left,omitempty"`
	Right *wallDump `yaml:"right,omitempty"`
}

func dumpWall(w *climb.Wall) *wallDump {
	if w == nil {
		return nil
	}
	return &wallDump{X: w.X, Y: w.Y}
}

func main() {
	seed := flag.Int64("seed", 1, "level generator seed")
	config := flag.String("config", "", "game spec in prefabs/ (defaults to game.yaml)")
	flat := flag.Bool("flat", false, "ignore the layout script")
	flag.Parse()

	spec, err := prefabs.LoadGameSpec(*config)
	if err != nil {
		log.Fatal(err)
	}

	var layout levels.Layout = levels.FlatLayout{}
	if !*flat && spec.LayoutScript != "" {
		src, err := prefabs.LoadScript(spec.LayoutScript)
		if err != nil {
			log.Fatalf("tower: load %s: %v", spec.LayoutScript, err)
		}
		if layout, err = levels.NewScriptLayout(spec.LayoutScript, src); err != nil {
			log.Fatal(err)
		}
	}

	lvls, err := levels.Generate(entity.LevelsConfig(spec), rand.New(rand.NewSource(*seed)), layout)
	if err != nil {
		log.Fatal(err)
	}

	out := make([]levelDump, 0, len(lvls))
	walls := 0
	for _, lvl := range lvls {
		d := levelDump{
			Index: lvl.Index,
			Y:     lvl.Floor.Y,
			MinX:  lvl.Floor.MinX,
			MaxX:  lvl.Floor.MaxX,
			Left:  dumpWall(lvl.Left),
			Right: dumpWall(lvl.Right),
		}
		if d.Left != nil {
			walls++
		}
		if d.Right != nil {
			walls++
		}
		out = append(out, d)
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(map[string]any{"seed": *seed, "levels": out}); err != nil {
		log.Fatal(err)
	}
	fmt.Fprintf(os.Stderr, "%d levels, %d walls\n", len(out), walls)
}
