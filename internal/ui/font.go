package ui

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

const (
	// DefaultFontPath is the TrueType font the overlay tries first.
	DefaultFontPath = "default.ttf"
	// DefaultFontSize is the overlay text size in points.
	DefaultFontSize = 24
)

// LoadFace parses the TrueType or OpenType font at path into a face of the
// given size.
func LoadFace(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load font %s: %w", path, err)
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	if size <= 0 {
		size = DefaultFontSize
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face for %s: %w", path, err)
	}
	return face, nil
}

// FallbackFace is the bitmap face used when no font file can be loaded.
func FallbackFace() font.Face { return basicfont.Face7x13 }
