package sand

import "strconv"

// Config controls the sandbox dimensions and the initial brush.
type Config struct {
	Width  int
	Height int

	Seed int64

	BrushSize int
	Material  Material

	// Terrain seeds Perlin dunes on Reset instead of starting empty.
	Terrain bool

	// Bindings adds key=material pairs on top of DefaultBindings, in the
	// form accepted by ParseBindings.
	Bindings string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:     800,
		Height:    600,
		Seed:      42,
		BrushSize: 15,
		Material:  Sand,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["brush"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.BrushSize = parsed
		}
	}
	if v, ok := cfg["material"]; ok {
		if parsed, ok := ParseMaterial(v); ok {
			c.Material = parsed
		}
	}
	if v, ok := cfg["terrain"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Terrain = parsed
		}
	}
	if v, ok := cfg["bind"]; ok {
		if _, err := ParseBindings(v); err == nil {
			c.Bindings = v
		}
	}
	return c
}
