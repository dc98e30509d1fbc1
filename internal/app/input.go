//go:build ebiten

package app

import (
	"strings"

	"pixel-garden/internal/sand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyIdentifiers = map[ebiten.Key]sand.Key{
	ebiten.KeyDigit1:  sand.KeyEraser,
	ebiten.KeyDigit2:  sand.KeySand,
	ebiten.KeyDigit3:  sand.KeyMud,
	ebiten.KeyDigit4:  sand.KeyWater,
	ebiten.KeyNumpad1: sand.KeyEraser,
	ebiten.KeyNumpad2: sand.KeySand,
	ebiten.KeyNumpad3: sand.KeyMud,
	ebiten.KeyNumpad4: sand.KeyWater,
}

// ebitenInput polls ebiten once per frame and serves it as sand.Input.
type ebitenInput struct {
	scale int

	scroll  float64
	pressed []ebiten.Key
	keys    []sand.Key
	x, y    int
	held    bool
}

func (in *ebitenInput) poll() {
	_, in.scroll = ebiten.Wheel()

	in.pressed = inpututil.AppendJustPressedKeys(in.pressed[:0])
	in.keys = in.keys[:0]
	for _, k := range in.pressed {
		if id, ok := keyIdentifiers[k]; ok {
			in.keys = append(in.keys, id)
			continue
		}
		in.keys = append(in.keys, sand.Key(strings.TrimPrefix(k.String(), "Digit")))
	}

	mx, my := ebiten.CursorPosition()
	in.x, in.y = cellCoord(mx, in.scale), cellCoord(my, in.scale)
	in.held = ebiten.IsFocused() && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (in *ebitenInput) Scroll() float64    { return in.scroll }
func (in *ebitenInput) Keys() []sand.Key   { return in.keys }
func (in *ebitenInput) Cursor() (int, int) { return in.x, in.y }
func (in *ebitenInput) PaintHeld() bool    { return in.held }
