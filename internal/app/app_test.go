package app

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"

	"pixel-garden/internal/sand"

	"github.com/charmbracelet/log"
)

func TestConfigBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("garden", flag.ContinueOnError)
	cfg.Bind(fs)

	err := fs.Parse([]string{"-w", "320", "-h", "240", "-scale", "2", "-material", "mud", "-brush", "4", "-terrain", "-shader", "", "-seed", "5", "-bind", "5=water"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Scale != 2 || cfg.Shader != "" {
		t.Fatalf("unexpected presentation config %+v", cfg)
	}

	sim := cfg.SimConfig()
	want := sand.Config{Width: 320, Height: 240, Seed: 5, BrushSize: 4, Material: sand.Mud, Terrain: true, Bindings: "5=water"}
	if sim != want {
		t.Fatalf("SimConfig = %+v, expected %+v", sim, want)
	}
}

func TestDefaultConfigMatchesSandbox(t *testing.T) {
	if got := NewConfig().SimConfig(); got != sand.DefaultConfig() {
		t.Fatalf("default flags give %+v, expected %+v", got, sand.DefaultConfig())
	}
}

func TestSimConfigRejectsUnknownMaterial(t *testing.T) {
	cfg := NewConfig()
	cfg.Material = "lava"
	if got := cfg.SimConfig().Material; got != sand.Sand {
		t.Fatalf("unknown material should keep the default, got %s", got)
	}
}

func TestSimConfigDropsBadBindings(t *testing.T) {
	cfg := NewConfig()
	cfg.Bindings = "5=lava"
	if got := cfg.SimConfig().Bindings; got != "" {
		t.Fatalf("invalid bindings should be dropped, got %q", got)
	}
}

func TestCellCoordFloors(t *testing.T) {
	cases := []struct {
		px, scale, want int
	}{
		{0, 3, 0},
		{5, 3, 1},
		{6, 3, 2},
		{-1, 3, -1},
		{-3, 3, -1},
		{-4, 3, -2},
		{-7, 1, -7},
		{9, 0, 9},
	}
	for _, tc := range cases {
		if got := cellCoord(tc.px, tc.scale); got != tc.want {
			t.Fatalf("cellCoord(%d, %d) = %d, expected %d", tc.px, tc.scale, got, tc.want)
		}
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "warn")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logger.GetLevel() != log.WarnLevel {
		t.Fatalf("expected warn level, got %s", logger.GetLevel())
	}
	logger.Info("hidden")
	logger.Warn("shown", "path", "x.kage")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("unexpected log output %q", out)
	}

	logger, err = NewLogger(&buf, "chatty")
	if err == nil {
		t.Fatal("expected error for unknown level")
	}
	if !errors.Is(err, log.ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel, got %v", err)
	}
	if logger.GetLevel() != log.InfoLevel {
		t.Fatalf("expected info fallback, got %s", logger.GetLevel())
	}
}

func TestStatusText(t *testing.T) {
	got := statusText([]string{"FPS: 60", "Pixel count: 3"})
	if got != "FPS: 60 | Pixel count: 3" {
		t.Fatalf("unexpected status text %q", got)
	}
}
