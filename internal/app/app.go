//go:build ebiten

package app

import (
	"time"

	"pixel-garden/internal/core"
	"pixel-garden/internal/render"
	"pixel-garden/internal/sand"
	"pixel-garden/internal/ui"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a sandbox to the ebiten.Game interface.
type Game struct {
	box     *sand.Sandbox
	sim     core.Sim
	input   *ebitenInput
	painter *render.GridPainter
	shader  *render.GridShader
	overlay *ui.Overlay
	fps     *core.FPSMeter
	logger  *log.Logger

	scale int
	seed  int64
	lines []string
}

// New constructs a Game for the provided sandbox. Missing shader or font
// files are logged and the game runs without them.
func New(box *sand.Sandbox, cfg *Config, logger *log.Logger) *Game {
	sim := core.Sim(box.World())
	size := sim.Size()
	g := &Game{
		box:     box,
		sim:     sim,
		input:   &ebitenInput{scale: cfg.Scale},
		painter: render.NewGridPainter(size, render.MaterialPalette),
		fps:     core.NewFPSMeter(core.DefaultFPSWindow),
		logger:  logger,
		scale:   cfg.Scale,
		seed:    cfg.Seed,
	}

	shader, err := render.LoadGridShader(cfg.Shader)
	if err != nil {
		logger.Warn("grid shader unavailable, drawing plain palette", "path", cfg.Shader, "err", err)
	}
	g.shader = shader

	face, err := ui.LoadFace(cfg.Font, cfg.FontSize)
	if err != nil {
		logger.Warn("overlay font unavailable, using built-in face", "path", cfg.Font, "err", err)
		face = ui.FallbackFace()
	}
	g.overlay = ui.NewOverlay(face)

	logger.Debug("game ready", "sim", sim.Name(), "w", size.W, "h", size.H, "scale", cfg.Scale, "shader", g.shader.Ready())
	return g
}

// Reset clears the sandbox with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.box.Reset(seed)
	g.logger.Info("reset", "seed", seed)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.reloadShader()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.box.TogglePause()
		g.logger.Info("pause toggled", "paused", g.box.Paused())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.box.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := copyStatus(g.lines); err != nil {
			g.logger.Warn("copy status failed", "err", err)
		} else {
			g.logger.Info("status copied", "status", statusText(g.lines))
		}
	}

	g.input.poll()
	stats := g.box.Frame(g.input)
	if stats.Painted {
		g.logger.Debug("painted", "brush", g.box.Brush().Size, "material", g.box.Brush().Material, "moved", stats.Moved)
	}
	return nil
}

func (g *Game) reloadShader() {
	if err := g.shader.Reload(); err != nil {
		g.logger.Warn("shader reload failed", "path", g.shader.Path(), "err", err)
		return
	}
	g.logger.Info("shader reloaded", "path", g.shader.Path())
}

// Draw renders the current sandbox state and the status overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim, g.scale, g.shader)
	g.lines = ui.StatusLines(g.fps.Frame(), g.box.Parameters())
	g.overlay.Draw(screen, g.lines)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
