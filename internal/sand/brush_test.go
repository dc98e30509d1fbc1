package sand

import (
	"math"
	"testing"
)

func TestPaintFillsHalfOpenSquare(t *testing.T) {
	w := NewWorld(200, 200, always(1))
	b := NewBrush(2, Water)

	b.Paint(w, 100, 100)

	want := map[[2]int]Material{}
	for y := 98; y < 102; y++ {
		for x := 98; x < 102; x++ {
			want[[2]int{x, y}] = Water
		}
	}
	expectCells(t, w, want)
	if got := w.Count(); got != 16 {
		t.Fatalf("expected 16 painted cells, got %d", got)
	}
}

func TestPaintOverwritesAndErases(t *testing.T) {
	w := NewWorld(10, 10, always(1))
	NewBrush(3, Sand).Paint(w, 5, 5)
	NewBrush(1, Empty).Paint(w, 5, 5)

	if got := w.Count(); got != 36-4 {
		t.Fatalf("expected 32 cells after erasing the centre, got %d", got)
	}
	for _, c := range [][2]int{{4, 4}, {5, 4}, {4, 5}, {5, 5}} {
		if got := w.Get(c[0], c[1]); got != Empty {
			t.Fatalf("cell (%d,%d) = %s, expected erased", c[0], c[1], got)
		}
	}
}

func TestPaintClipsAtEdges(t *testing.T) {
	w := NewWorld(8, 6, always(1))
	b := NewBrush(3, Mud)

	b.Paint(w, 0, 0)
	if got := w.Count(); got != 9 {
		t.Fatalf("corner stroke painted %d cells, expected 9", got)
	}

	w.Clear()
	b.Paint(w, 100, 100)
	if got := w.Count(); got != 0 {
		t.Fatalf("off-world stroke painted %d cells", got)
	}

	w.Clear()
	b.Size = 1000
	b.Paint(w, 4, 3)
	if got := w.Count(); got != 48 {
		t.Fatalf("oversized stroke painted %d cells, expected the whole world", got)
	}
}

func TestPaintWithZeroSizeIsNoop(t *testing.T) {
	w := NewWorld(10, 10, always(1))
	NewBrush(0, Sand).Paint(w, 5, 5)
	if got := w.Count(); got != 0 {
		t.Fatalf("zero-size brush painted %d cells", got)
	}
}

func TestScrollClampsAtZero(t *testing.T) {
	b := NewBrush(0, Sand)
	b.OnScroll(-5)
	if b.Size != 0 {
		t.Fatalf("expected size 0, got %d", b.Size)
	}

	b.OnScroll(2.6)
	if b.Size != 3 {
		t.Fatalf("expected rounded growth to 3, got %d", b.Size)
	}
	b.OnScroll(-1.4)
	if b.Size != 2 {
		t.Fatalf("expected 2, got %d", b.Size)
	}
	b.OnScroll(0.3)
	if b.Size != 2 {
		t.Fatalf("small deltas should round to zero, got %d", b.Size)
	}
	b.OnScroll(5000)
	if b.Size != 5002 {
		t.Fatalf("expected no upper bound, got %d", b.Size)
	}
}

func TestScrollIgnoresNonFiniteDeltas(t *testing.T) {
	b := NewBrush(7, Sand)
	for _, d := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		b.OnScroll(d)
		if b.Size != 7 {
			t.Fatalf("delta %v changed size to %d", d, b.Size)
		}
	}

	b.OnScroll(1e300)
	if b.Size != math.MaxInt32 {
		t.Fatalf("huge delta should saturate, got %d", b.Size)
	}
	b.OnScroll(-1e300)
	if b.Size != 0 {
		t.Fatalf("huge negative delta should clamp to 0, got %d", b.Size)
	}
}

func TestParseBindings(t *testing.T) {
	got, err := ParseBindings(" 5=water, 6 = Sand ,,A=mud")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[Key]Material{"5": Water, "6": Sand, "A": Mud}
	if len(got) != len(want) {
		t.Fatalf("ParseBindings = %v, expected %v", got, want)
	}
	for k, m := range want {
		if got[k] != m {
			t.Fatalf("key %q bound to %s, expected %s", k, got[k], m)
		}
	}

	if got, err := ParseBindings(""); err != nil || len(got) != 0 {
		t.Fatalf("empty bindings gave %v, %v", got, err)
	}
	for _, bad := range []string{"5", "=water", "5=lava"} {
		if _, err := ParseBindings(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestOnKeySelectsMaterial(t *testing.T) {
	b := NewBrush(15, Sand)
	cases := []struct {
		key  Key
		want Material
	}{
		{KeyWater, Water},
		{KeyEraser, Empty},
		{KeyMud, Mud},
		{KeySand, Sand},
	}
	for _, tc := range cases {
		if !b.OnKey(tc.key) {
			t.Fatalf("key %q not bound", tc.key)
		}
		if b.Material != tc.want {
			t.Fatalf("key %q selected %s, expected %s", tc.key, b.Material, tc.want)
		}
	}

	if b.OnKey("F5") {
		t.Fatal("unmapped key reported as bound")
	}
	if b.Material != Sand {
		t.Fatalf("unmapped key changed material to %s", b.Material)
	}

	b.Bind("w", Water)
	b.OnKey("w")
	if b.Material != Water {
		t.Fatalf("custom binding selected %s", b.Material)
	}
}

func TestNewBrushClampsNegativeSize(t *testing.T) {
	if b := NewBrush(-4, Mud); b.Size != 0 {
		t.Fatalf("expected size 0, got %d", b.Size)
	}
}
