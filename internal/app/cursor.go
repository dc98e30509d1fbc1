package app

// cellCoord maps a screen pixel to a grid cell at the given scale, rounding
// toward negative infinity so pixels left of or above the grid map to -1.
func cellCoord(px, scale int) int {
	if scale <= 1 {
		return px
	}
	q := px / scale
	if px%scale != 0 && px < 0 {
		q--
	}
	return q
}
