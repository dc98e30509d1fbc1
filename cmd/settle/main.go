package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"pixel-garden/internal/sand"

	"github.com/guptarohit/asciigraph"
)

func main() {
	width := flag.Int("w", 200, "grid width for the settle run")
	height := flag.Int("h", 150, "grid height for the settle run")
	steps := flag.Int("steps", 2000, "maximum ticks to simulate")
	seed := flag.Int64("seed", 42, "seed for the fall direction and terrain")
	material := flag.String("material", "sand", "material poured at the top centre")
	brush := flag.Int("brush", 15, "half-width of the poured square")
	terrain := flag.Bool("terrain", false, "settle a generated dune landscape instead of a pour")
	plotWidth := flag.Int("plot-width", 72, "plot width in columns")
	plotHeight := flag.Int("plot-height", 12, "plot height in rows")
	flag.Parse()

	m, ok := sand.ParseMaterial(*material)
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown material %q\n", *material)
		os.Exit(2)
	}
	if *steps <= 0 {
		fmt.Fprintln(os.Stderr, "error: -steps must be > 0")
		os.Exit(2)
	}

	cfg := sand.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.Seed = *seed
	cfg.Material = m
	cfg.BrushSize = *brush
	cfg.Terrain = *terrain

	result := run(cfg, *steps)
	fmt.Print(report(cfg, result, *plotWidth, *plotHeight))
}

func run(cfg sand.Config, steps int) sand.SettleResult {
	if cfg.Terrain {
		return sand.SettleWorld(sand.New(cfg).World(), steps)
	}
	return sand.PourResult(cfg, steps)
}

func report(cfg sand.Config, result sand.SettleResult, plotWidth, plotHeight int) string {
	var b strings.Builder
	source := fmt.Sprintf("pour of %s (brush %d)", cfg.Material, cfg.BrushSize)
	if cfg.Terrain {
		source = "terrain"
	}
	fmt.Fprintf(&b, "Settle run: %dx%d, seed %d, %s\n", cfg.Width, cfg.Height, cfg.Seed, source)
	fmt.Fprintf(&b, "Pixels %d, total moves %d, peak moves/tick %d\n", result.Pixels, result.TotalMoved, result.PeakMoved)
	if result.Settled() {
		fmt.Fprintf(&b, "Came to rest after %d ticks\n", result.SettledAt)
	} else {
		fmt.Fprintf(&b, "Still moving after %d ticks\n", result.StepsSimulated)
	}

	if len(result.Moved) < 2 {
		return b.String()
	}
	series := make([]float64, len(result.Moved))
	for i, v := range result.Moved {
		series[i] = float64(v)
	}
	b.WriteString("\n")
	b.WriteString(asciigraph.Plot(series,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption("cells moved per tick"),
	))
	b.WriteString("\n")
	return b.String()
}
