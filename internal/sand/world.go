package sand

import "pixel-garden/internal/core"

// World is the falling-sand grid. Cells outside the grid read as Empty and
// ignore writes. The bottom row never moves, so it doubles as the floor.
type World struct {
	grid *core.ByteGrid
	dir  core.DirectionPicker
}

var _ core.Sim = (*World)(nil)

// NewWorld allocates an all-Empty world. When dir is nil the world draws
// directions from a core.RNG seeded with 1.
func NewWorld(w, h int, dir core.DirectionPicker) *World {
	if dir == nil {
		dir = core.NewRNG(1)
	}
	return &World{grid: core.NewByteGrid(w, h), dir: dir}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size returns the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.W, H: w.grid.H} }

// Cells exposes the row-major material codes. Callers must treat it as
// read-only.
func (w *World) Cells() []uint8 { return w.grid.Cells() }

// Get returns the material at (x, y), or Empty when out of bounds.
func (w *World) Get(x, y int) Material { return Material(w.grid.At(x, y)) }

// Set writes m at (x, y). Out-of-bounds writes are ignored.
func (w *World) Set(x, y int, m Material) { w.grid.Set(x, y, uint8(m)) }

// Count returns the number of non-Empty cells.
func (w *World) Count() int { return w.grid.CountNonZero() }

// Clear empties every cell.
func (w *World) Clear() { w.grid.Clear() }

// Reset empties the world and, when the direction source supports it,
// restarts its sequence from seed.
func (w *World) Reset(seed int64) {
	w.grid.Clear()
	if r, ok := w.dir.(interface{ Reseed(int64) }); ok {
		r.Reseed(seed)
	}
}

// Stable reports whether no future tick can move anything: every non-Empty
// cell above the bottom row rests on material and has no Empty side
// neighbour inside the grid. A tick that moves nothing is not enough, since
// a blocked cell may simply have picked its blocked side.
func (w *World) Stable() bool {
	g := w.grid
	for y := 0; y < g.H-1; y++ {
		for x := 0; x < g.W; x++ {
			if w.Get(x, y) == Empty {
				continue
			}
			if w.Get(x, y+1) == Empty {
				return false
			}
			if x > 0 && w.Get(x-1, y) == Empty {
				return false
			}
			if x < g.W-1 && w.Get(x+1, y) == Empty {
				return false
			}
		}
	}
	return true
}

// Step advances the world by one tick.
func (w *World) Step() { w.Tick() }

// Tick advances the world by one step and returns how many cells moved.
//
// Rows are scanned from H-2 up to 0 and each row left to right. A cell falls
// into an Empty cell directly below it; otherwise it tries one randomly
// chosen side. Because rows below the current one have already been visited,
// a cell that falls is not processed again in the same tick. The bottom row
// is only ever a destination. The result depends on this order, so the scan
// must stay sequential.
func (w *World) Tick() int {
	g := w.grid
	moved := 0
	for y := g.H - 2; y >= 0; y-- {
		for x := 0; x < g.W; x++ {
			m := w.Get(x, y)
			if m == Empty {
				continue
			}
			if w.Get(x, y+1) == Empty {
				w.Set(x, y+1, m)
				w.Set(x, y, Empty)
				moved++
				continue
			}
			nx := x + w.dir.PickDirection()
			if !g.InBounds(nx, y) || w.Get(nx, y) != Empty {
				continue
			}
			w.Set(nx, y, m)
			w.Set(x, y, Empty)
			moved++
		}
	}
	return moved
}
