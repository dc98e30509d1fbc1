package sand

import (
	"strconv"

	"pixel-garden/internal/core"
)

// Input is what the frame driver polls from the host each frame.
type Input interface {
	// Scroll returns the wheel delta accumulated since the last frame.
	Scroll() float64
	// Keys returns the keys pressed since the last frame.
	Keys() []Key
	// Cursor returns the pointer position in grid coordinates.
	Cursor() (x, y int)
	// PaintHeld reports whether the paint button is down and the host has
	// input focus.
	PaintHeld() bool
}

// FrameStats summarizes what a single frame did.
type FrameStats struct {
	Painted bool
	Ticked  bool
	Moved   int
}

// Sandbox drives one World and its Brush frame by frame.
type Sandbox struct {
	cfg   Config
	world *World
	brush *Brush

	paused   bool
	stepOnce bool
	ticks    int
}

// New builds a sandbox from cfg with a seeded RNG for the tie-breaks.
func New(cfg Config) *Sandbox {
	return NewWithPicker(cfg, core.NewRNG(cfg.Seed))
}

// NewWithPicker builds a sandbox whose world draws directions from dir.
// Bindings that do not parse are skipped as a whole.
func NewWithPicker(cfg Config, dir core.DirectionPicker) *Sandbox {
	s := &Sandbox{
		cfg:   cfg,
		world: NewWorld(cfg.Width, cfg.Height, dir),
		brush: NewBrush(cfg.BrushSize, cfg.Material),
	}
	if extra, err := ParseBindings(cfg.Bindings); err == nil {
		for k, m := range extra {
			s.brush.Bind(k, m)
		}
	}
	if cfg.Terrain {
		SeedTerrain(s.world, cfg.Seed)
	}
	return s
}

// World exposes the simulated grid.
func (s *Sandbox) World() *World { return s.world }

// Brush exposes the paint tool.
func (s *Sandbox) Brush() *Brush { return s.brush }

// Paused reports whether ticking is suspended.
func (s *Sandbox) Paused() bool { return s.paused }

// TogglePause flips the paused state.
func (s *Sandbox) TogglePause() { s.paused = !s.paused }

// StepOnce requests a single tick on the next frame even while paused.
func (s *Sandbox) StepOnce() { s.stepOnce = true }

// Ticks returns how many ticks have run since the last reset.
func (s *Sandbox) Ticks() int { return s.ticks }

// Reset clears the world, restarts the RNG from seed and reseeds terrain
// when the config asks for it. The brush is left as is.
func (s *Sandbox) Reset(seed int64) {
	s.world.Reset(seed)
	if s.cfg.Terrain {
		SeedTerrain(s.world, seed)
	}
	s.ticks = 0
	s.stepOnce = false
}

// Frame runs one frame: scroll, then key presses, then painting while the
// button is held, then exactly one tick unless paused.
func (s *Sandbox) Frame(in Input) FrameStats {
	var stats FrameStats

	if d := in.Scroll(); d != 0 {
		s.brush.OnScroll(d)
	}
	for _, k := range in.Keys() {
		s.brush.OnKey(k)
	}
	if in.PaintHeld() {
		x, y := in.Cursor()
		s.brush.Paint(s.world, x, y)
		stats.Painted = true
	}

	if !s.paused || s.stepOnce {
		stats.Moved = s.world.Tick()
		stats.Ticked = true
		s.stepOnce = false
		s.ticks++
	}
	return stats
}

// Parameters reports the values shown by the on-screen overlay.
func (s *Sandbox) Parameters() core.ParameterSnapshot {
	size := s.world.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Brush",
			Params: []core.Parameter{
				{Key: "brush", Label: "Brush size", Type: core.ParamTypeInt, Value: strconv.Itoa(s.brush.Size)},
				{Key: "material", Label: "Material", Type: core.ParamTypeString, Value: s.brush.Material.String()},
			},
		},
		{
			Name: "World",
			Params: []core.Parameter{
				{Key: "pixels", Label: "Pixel count", Type: core.ParamTypeInt, Value: strconv.Itoa(s.world.Count())},
				{Key: "w", Label: "Width", Type: core.ParamTypeInt, Value: strconv.Itoa(size.W)},
				{Key: "h", Label: "Height", Type: core.ParamTypeInt, Value: strconv.Itoa(size.H)},
				{Key: "ticks", Label: "Ticks", Type: core.ParamTypeInt, Value: strconv.Itoa(s.ticks)},
				{Key: "paused", Label: "Paused", Type: core.ParamTypeBool, Value: strconv.FormatBool(s.Paused())},
			},
		},
	}}
}
