package sand

import (
	"math"

	"github.com/aquilax/go-perlin"
)

const (
	terrainAlpha   = 2.0
	terrainBeta    = 2.0
	terrainOctaves = 3

	terrainBase      = 0.25 // mean surface height as a fraction of H
	terrainAmplitude = 0.18
	terrainFrequency = 3.0  // noise periods across the width
	mudFraction      = 0.4  // lower part of each column laid down as mud
	waterLine        = 0.22 // basins below this height fill with water
)

// SeedTerrain lays a Perlin-noise dune field along the bottom of the world:
// sand over a mud bed, with water standing in the low basins. The same seed
// always produces the same field.
func SeedTerrain(w *World, seed int64) {
	size := w.Size()
	if size.W == 0 || size.H == 0 {
		return
	}
	noise := perlin.NewPerlin(terrainAlpha, terrainBeta, terrainOctaves, seed)
	waterTop := size.H - int(float64(size.H)*waterLine)

	for x := 0; x < size.W; x++ {
		n := noise.Noise1D(float64(x) / float64(size.W) * terrainFrequency)
		n = math.Max(-1, math.Min(1, n))
		column := int(float64(size.H) * (terrainBase + terrainAmplitude*n))
		column = max(0, min(column, size.H))
		surface := size.H - column
		mudTop := size.H - int(float64(column)*mudFraction)

		for y := surface; y < size.H; y++ {
			if y >= mudTop {
				w.Set(x, y, Mud)
				continue
			}
			w.Set(x, y, Sand)
		}
		for y := waterTop; y < surface; y++ {
			w.Set(x, y, Water)
		}
	}
}
