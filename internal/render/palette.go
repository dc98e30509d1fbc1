package render

import (
	"image/color"

	"pixel-garden/internal/sand"
)

// MaterialPalette holds the display colour of each material, indexed by its
// cell value.
var MaterialPalette = []color.RGBA{
	sand.Empty: {R: 0, G: 0, B: 0, A: 255},
	sand.Sand:  {R: 255, G: 0, B: 0, A: 255},
	sand.Mud:   {R: 0, G: 255, B: 0, A: 255},
	sand.Water: {R: 0, G: 0, B: 255, A: 255},
}
