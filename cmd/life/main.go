//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	"sparselife/internal/app"
	"sparselife/pkg/life"
	"sparselife/pkg/patterns"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	grid, err := startGrid(cfg)
	if err != nil {
		log.Fatal(err)
	}

	game := life.New(grid)
	view := viewport(grid, cfg.Width, cfg.Height)
	viewer := app.New(game, view, cfg.Scale)

	ebiten.SetWindowTitle("sparselife — " + cfg.Pattern)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(view.Width()*cfg.Scale, view.Height()*cfg.Scale)

	if err := ebiten.RunGame(viewer); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// startGrid resolves the configured pattern into an initial grid.
func startGrid(cfg *app.Config) (*life.Grid, error) {
	switch cfg.Pattern {
	case "soup":
		return life.FromDense(patterns.Soup(cfg.Seed, cfg.Height, cfg.Width, cfg.Density)), nil
	case "random":
		return life.FromDense(patterns.Random(cfg.Seed, cfg.Height, cfg.Width, cfg.Density)), nil
	default:
		rows, ok := patterns.Lookup(cfg.Pattern)
		if !ok {
			return nil, fmt.Errorf("unknown pattern %q (available: %s, soup, random)",
				cfg.Pattern, strings.Join(patterns.Names(), ", "))
		}
		return life.FromDense(rows), nil
	}
}

// viewport returns a w*h window centered on the grid's starting bounds, or
// on the origin when the grid is empty.
func viewport(g *life.Grid, w, h int) life.Bounds {
	var cr, cc int
	if b, ok := g.Bounds(); ok {
		cr = (b.MinRow + b.MaxRow) / 2
		cc = (b.MinCol + b.MaxCol) / 2
	}
	minRow := cr - h/2
	minCol := cc - w/2
	return life.Bounds{
		MinRow: minRow, MaxRow: minRow + h - 1,
		MinCol: minCol, MaxCol: minCol + w - 1,
	}
}
