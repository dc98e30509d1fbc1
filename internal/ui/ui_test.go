package ui

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"pixel-garden/internal/core"
	"pixel-garden/internal/sand"
)

func TestStatusLines(t *testing.T) {
	box := sand.New(sand.Config{Width: 20, Height: 10, BrushSize: 7, Material: sand.Water})
	box.World().Set(1, 9, sand.Sand)
	box.World().Set(2, 9, sand.Mud)

	got := StatusLines(59.8, box.Parameters())
	want := []string{"FPS: 59", "Pixel count: 2", "Brush size: 7", "Material: water"}
	if !slices.Equal(got, want) {
		t.Fatalf("StatusLines = %q, expected %q", got, want)
	}

	box.TogglePause()
	got = StatusLines(0, box.Parameters())
	if got[len(got)-1] != "Paused" {
		t.Fatalf("expected pause marker, got %q", got)
	}
}

func TestStatusLinesWithoutParameters(t *testing.T) {
	got := StatusLines(12, core.ParameterSnapshot{})
	if !slices.Equal(got, []string{"FPS: 12"}) {
		t.Fatalf("unexpected lines %q", got)
	}
}

func TestLoadFaceErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFace(filepath.Join(dir, "missing.ttf"), 24); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}

	bogus := filepath.Join(dir, "bogus.ttf")
	if err := os.WriteFile(bogus, []byte("definitely not a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFace(bogus, 24); err == nil {
		t.Fatal("expected parse error for a non-font file")
	}
}

func TestFallbackFace(t *testing.T) {
	face := FallbackFace()
	if face == nil {
		t.Fatal("fallback face is nil")
	}
	if h := face.Metrics().Height.Ceil(); h <= 0 {
		t.Fatalf("fallback face has no height: %d", h)
	}
}
