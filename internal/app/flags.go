package app

import (
	"flag"
	"strconv"

	"pixel-garden/internal/render"
	"pixel-garden/internal/sand"
	"pixel-garden/internal/ui"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int
	Height   int
	Scale    int
	TPS      int
	Seed     int64
	Brush    int
	Material string
	Terrain  bool
	Bindings string

	Shader   string
	Font     string
	FontSize float64
	LogLevel string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := sand.DefaultConfig()
	return &Config{
		Width:    def.Width,
		Height:   def.Height,
		Scale:    1,
		TPS:      60,
		Seed:     def.Seed,
		Brush:    def.BrushSize,
		Material: def.Material.String(),
		Shader:   render.DefaultShaderPath,
		Font:     ui.DefaultFontPath,
		FontSize: ui.DefaultFontSize,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the fall direction and terrain")
	fs.IntVar(&c.Brush, "brush", c.Brush, "initial brush size")
	fs.StringVar(&c.Material, "material", c.Material, "initial material (empty, sand, mud, water)")
	fs.BoolVar(&c.Terrain, "terrain", c.Terrain, "start with a generated dune landscape")
	fs.StringVar(&c.Bindings, "bind", c.Bindings, "extra key=material bindings, e.g. 5=water,A=mud (digits without the Digit prefix)")
	fs.StringVar(&c.Shader, "shader", c.Shader, "Kage shader applied to the grid (reloaded with F5)")
	fs.StringVar(&c.Font, "font", c.Font, "TrueType font for the overlay")
	fs.Float64Var(&c.FontSize, "font-size", c.FontSize, "overlay font size in points")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
}

// SimConfig converts the flags into the sandbox configuration.
func (c *Config) SimConfig() sand.Config {
	return sand.FromMap(map[string]string{
		"w":        strconv.Itoa(c.Width),
		"h":        strconv.Itoa(c.Height),
		"seed":     strconv.FormatInt(c.Seed, 10),
		"brush":    strconv.Itoa(c.Brush),
		"material": c.Material,
		"terrain":  strconv.FormatBool(c.Terrain),
		"bind":     c.Bindings,
	})
}
