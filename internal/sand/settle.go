package sand

// SettleResult captures how a world came to rest.
type SettleResult struct {
	StepsSimulated int
	SettledAt      int // ticks run before the world became Stable, -1 if it never did
	PeakMoved      int
	TotalMoved     int
	Pixels         int
	Moved          []int // cells moved by each tick
}

// Settled reports whether the world came to rest within the simulated steps.
func (r SettleResult) Settled() bool { return r.SettledAt >= 0 }

// SettleWorld ticks w until it is Stable or maxSteps ticks have run.
func SettleWorld(w *World, maxSteps int) SettleResult {
	result := SettleResult{SettledAt: -1}
	for step := 0; ; step++ {
		if w.Stable() {
			result.SettledAt = step
			break
		}
		if step >= maxSteps {
			break
		}
		moved := w.Tick()
		result.StepsSimulated++
		result.Moved = append(result.Moved, moved)
		result.TotalMoved += moved
		if moved > result.PeakMoved {
			result.PeakMoved = moved
		}
	}
	result.Pixels = w.Count()
	return result
}

// PourResult builds a world from cfg, pours one brush stroke of cfg.Material
// at the top centre and lets it settle.
func PourResult(cfg Config, maxSteps int) SettleResult {
	box := New(cfg)
	brush := box.Brush()
	brush.Paint(box.World(), cfg.Width/2, brush.Size)
	return SettleWorld(box.World(), maxSteps)
}
