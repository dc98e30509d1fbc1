package sand

import (
	"fmt"
	"math"
	"strings"
)

// Key identifies a discrete key press delivered to the brush.
type Key string

const (
	KeyEraser Key = "1"
	KeySand   Key = "2"
	KeyMud    Key = "3"
	KeyWater  Key = "4"
)

// DefaultBindings maps the number keys to materials, 1 being the eraser.
func DefaultBindings() map[Key]Material {
	return map[Key]Material{
		KeyEraser: Empty,
		KeySand:   Sand,
		KeyMud:    Mud,
		KeyWater:  Water,
	}
}

// Brush is the user-controlled paint tool: a filled square of Material with
// half-width Size.
type Brush struct {
	Size     int
	Material Material

	bindings map[Key]Material
}

// NewBrush returns a brush using the default key bindings.
func NewBrush(size int, m Material) *Brush {
	if size < 0 {
		size = 0
	}
	return &Brush{Size: size, Material: m, bindings: DefaultBindings()}
}

// ParseBindings reads comma-separated key=material pairs such as
// "5=water,6=sand". Keys are matched exactly, material names are not.
func ParseBindings(s string) (map[Key]Material, error) {
	out := map[Key]Material{}
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, name, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("binding %q: expected key=material", pair)
		}
		m, ok := ParseMaterial(name)
		if !ok {
			return nil, fmt.Errorf("binding %q: unknown material %q", pair, strings.TrimSpace(name))
		}
		out[Key(key)] = m
	}
	return out, nil
}

// Bind maps key to m, replacing any existing binding.
func (b *Brush) Bind(key Key, m Material) {
	if b.bindings == nil {
		b.bindings = map[Key]Material{}
	}
	b.bindings[key] = m
}

// OnScroll grows or shrinks the brush by the rounded wheel delta. The size
// never drops below zero. NaN and infinite deltas are ignored, and the size
// saturates at math.MaxInt32.
func (b *Brush) OnScroll(delta float64) {
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return
	}
	size := float64(b.Size) + math.Round(delta)
	switch {
	case size < 0:
		b.Size = 0
	case size > math.MaxInt32:
		b.Size = math.MaxInt32
	default:
		b.Size = int(size)
	}
}

// OnKey selects the material bound to key. It reports whether key was bound.
func (b *Brush) OnKey(key Key) bool {
	m, ok := b.bindings[key]
	if !ok {
		return false
	}
	b.Material = m
	return true
}

// Paint fills [cx-Size, cx+Size) x [cy-Size, cy+Size) with the selected
// material. Cells outside the world are dropped, so the loops only visit the
// part of the square that overlaps it.
func (b *Brush) Paint(w *World, cx, cy int) {
	size := w.Size()
	x0, x1 := max(cx-b.Size, 0), min(cx+b.Size, size.W)
	y0, y1 := max(cy-b.Size, 0), min(cy+b.Size, size.H)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			w.Set(x, y, b.Material)
		}
	}
}
