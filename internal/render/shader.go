//go:build ebiten

package render

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridShader is a Kage post-process applied to the grid image. It exposes a
// Time uniform in milliseconds and a Resolution uniform in pixels.
type GridShader struct {
	path   string
	shader *ebiten.Shader
	start  time.Time
}

// LoadGridShader compiles the shader at path. The returned GridShader is
// usable even on error: it stays disabled until a Reload succeeds.
func LoadGridShader(path string) (*GridShader, error) {
	gs := &GridShader{path: path, start: time.Now()}
	return gs, gs.Reload()
}

// Reload recompiles the shader from disk. On failure the previously compiled
// shader, if any, is kept.
func (gs *GridShader) Reload() error {
	src, err := readShaderSource(gs.path)
	if err != nil {
		return err
	}
	shader, err := ebiten.NewShader(src)
	if err != nil {
		return fmt.Errorf("compile grid shader %s: %w", gs.path, err)
	}
	if gs.shader != nil {
		gs.shader.Dispose()
	}
	gs.shader = shader
	return nil
}

// Ready reports whether a compiled shader is available.
func (gs *GridShader) Ready() bool { return gs != nil && gs.shader != nil }

// Path returns the source file the shader is loaded from.
func (gs *GridShader) Path() string { return gs.path }

// Apply draws src into dst through the shader. Both images must be the same size.
func (gs *GridShader) Apply(dst, src *ebiten.Image) {
	b := src.Bounds()
	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = src
	op.Uniforms = map[string]any{
		"Time":       float32(time.Since(gs.start).Milliseconds()),
		"Resolution": []float32{float32(b.Dx()), float32(b.Dy())},
	}
	dst.DrawRectShader(b.Dx(), b.Dy(), gs.shader, op)
}
