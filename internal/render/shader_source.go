package render

import (
	"fmt"
	"os"
)

// DefaultShaderPath is where the grid shader source is looked up when no
// path is configured.
const DefaultShaderPath = "grid_shader.kage"

// readShaderSource loads Kage source from path.
func readShaderSource(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("read grid shader: no path configured")
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read grid shader %s: %w", path, err)
	}
	if len(src) == 0 {
		return nil, fmt.Errorf("read grid shader %s: file is empty", path)
	}
	return src, nil
}
