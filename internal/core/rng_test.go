package core

import (
	"slices"
	"testing"
)

func directions(r *RNG, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = r.PickDirection()
	}
	return out
}

func TestRNGDeterministic(t *testing.T) {
	a := directions(NewRNG(7), 256)
	b := directions(NewRNG(7), 256)
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different direction sequences")
	}

	r := NewRNG(7)
	directions(r, 10)
	r.Reseed(7)
	if !slices.Equal(a, directions(r, 256)) {
		t.Fatal("Reseed did not restart the sequence")
	}
}

func TestPickDirectionIsBalanced(t *testing.T) {
	r := NewRNG(123)
	left, right := 0, 0
	for _, d := range directions(r, 10000) {
		switch d {
		case -1:
			left++
		case 1:
			right++
		default:
			t.Fatalf("unexpected direction %d", d)
		}
	}
	if left < 4500 || right < 4500 {
		t.Fatalf("direction split too skewed: left=%d right=%d", left, right)
	}
}
