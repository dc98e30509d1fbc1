//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

const (
	overlayMarginX = 5
	overlayMarginY = 5
	overlayLineGap = 6
)

// Overlay draws status text in the top-left corner of the screen.
type Overlay struct {
	face       font.Face
	ascent     int
	lineHeight int
	color      color.Color
	shadow     color.Color
}

// NewOverlay constructs an overlay drawing with face. A nil face falls back
// to the built-in bitmap font.
func NewOverlay(face font.Face) *Overlay {
	if face == nil {
		face = FallbackFace()
	}
	m := face.Metrics()
	return &Overlay{
		face:       face,
		ascent:     m.Ascent.Ceil(),
		lineHeight: m.Height.Ceil() + overlayLineGap,
		color:      color.White,
		shadow:     color.RGBA{A: 200},
	}
}

// Draw renders one line of text per entry.
func (o *Overlay) Draw(screen *ebiten.Image, lines []string) {
	for i, line := range lines {
		y := overlayMarginY + o.ascent + i*o.lineHeight
		text.Draw(screen, line, o.face, overlayMarginX+1, y+1, o.shadow)
		text.Draw(screen, line, o.face, overlayMarginX, y, o.color)
	}
}
