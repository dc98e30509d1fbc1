package ui

import (
	"fmt"

	"pixel-garden/internal/core"
)

// StatusLines formats the overlay text: frame rate, pixel count, brush size
// and material, plus a pause marker.
func StatusLines(fps float64, snap core.ParameterSnapshot) []string {
	lines := []string{fmt.Sprintf("FPS: %d", int(fps))}
	for _, key := range []string{"pixels", "brush", "material"} {
		if p, ok := snap.Lookup(key); ok {
			lines = append(lines, p.Label+": "+p.Value)
		}
	}
	if p, ok := snap.Lookup("paused"); ok && p.Value == "true" {
		lines = append(lines, "Paused")
	}
	return lines
}
