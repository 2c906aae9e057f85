// Command life-run advances a Game of Life pattern headlessly and prints
// generations to stdout as ASCII over the tight bounding box.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"sparselife/pkg/life"
	"sparselife/pkg/patterns"
)

func main() {
	pattern := flag.String("pattern", "glider", "seed pattern name, or 'soup'/'random' for a generated start")
	steps := flag.Int("steps", 20, "generations to run")
	every := flag.Int("every", 0, "also print every k-th generation (0 prints only the final one)")
	delay := flag.Duration("delay", 0, "pause between printed generations, e.g. 100ms")
	seed := flag.Int64("seed", 42, "seed for generated patterns")
	size := flag.Int("size", 32, "side length for generated patterns")
	density := flag.Float64("density", 0.3, "live-cell density for generated patterns")
	flag.Parse()

	rows, err := resolve(*pattern, *seed, *size, *density)
	if err != nil {
		log.Fatal(err)
	}

	game := life.New(life.FromDense(rows))

	var ticker *time.Ticker
	if *delay > 0 {
		ticker = time.NewTicker(*delay)
		defer ticker.Stop()
	}

	if *every > 0 && *steps > 0 {
		printGeneration(0, game.Grid())
	}
	lastPrinted := -1
	for i := 1; i <= *steps; i++ {
		game.Step()
		if *every > 0 && i%*every == 0 {
			if ticker != nil {
				<-ticker.C
			}
			printGeneration(i, game.Grid())
			lastPrinted = i
		}
	}
	if lastPrinted != *steps {
		printGeneration(*steps, game.Grid())
	}
}

func resolve(name string, seed int64, size int, density float64) ([][]int, error) {
	switch name {
	case "soup":
		return patterns.Soup(seed, size, size, density), nil
	case "random":
		return patterns.Random(seed, size, size, density), nil
	default:
		rows, ok := patterns.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown pattern %q (available: %s, soup, random)",
				name, strings.Join(patterns.Names(), ", "))
		}
		return rows, nil
	}
}

func printGeneration(n int, g *life.Grid) {
	fmt.Printf("gen %d  pop %d\n", n, g.Population())
	b, ok := g.Bounds()
	if !ok {
		fmt.Println("(extinct)")
		return
	}
	var sb strings.Builder
	for _, row := range g.DenseBounds(b.Expand(1)) {
		for _, v := range row {
			if v != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())
}
