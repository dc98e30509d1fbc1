package core

import "time"

// DefaultFPSWindow is how much frame time FPSMeter accumulates before it
// publishes a new reading.
const DefaultFPSWindow = 50 * time.Millisecond

// FPSMeter measures frames per second over short sampling windows.
type FPSMeter struct {
	window  time.Duration
	elapsed time.Duration
	frames  int
	fps     float64
	last    time.Time
}

// NewFPSMeter constructs a meter that averages over the given window.
func NewFPSMeter(window time.Duration) *FPSMeter {
	if window <= 0 {
		window = DefaultFPSWindow
	}
	return &FPSMeter{window: window}
}

// Frame records a frame at the current wall-clock time and returns the
// latest reading.
func (m *FPSMeter) Frame() float64 {
	now := time.Now()
	if m.last.IsZero() {
		m.last = now
	}
	delta := now.Sub(m.last)
	m.last = now
	return m.Observe(delta)
}

// Observe records a frame that took delta and returns the latest reading.
// The reading only changes once the accumulated time reaches the window.
func (m *FPSMeter) Observe(delta time.Duration) float64 {
	m.elapsed += delta
	if m.elapsed >= m.window {
		m.fps = float64(m.frames) / m.elapsed.Seconds()
		m.elapsed = 0
		m.frames = 0
	}
	m.frames++
	return m.fps
}

// FPS returns the most recent reading.
func (m *FPSMeter) FPS() float64 { return m.fps }
