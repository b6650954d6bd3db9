package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/fortune-wheel/internal/wheel"
)

type paletteFile struct {
	Colors []struct {
		Name string `yaml:"name"`
		Hex  string `yaml:"hex"`
	} `yaml:"colors"`
}

// LoadPalette reads a YAML palette:
//
//	colors:
//	  - name: Red
//	    hex: "#ff3232"
func LoadPalette(path string) (wheel.Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read palette: %w", err)
	}
	return ParsePalette(data)
}

// ParsePalette decodes a YAML palette document.
func ParsePalette(data []byte) (wheel.Palette, error) {
	var f paletteFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse palette: %w", err)
	}
	if len(f.Colors) == 0 {
		return nil, fmt.Errorf("palette has no colors")
	}
	p := make(wheel.Palette, 0, len(f.Colors))
	for i, c := range f.Colors {
		rgba, err := parseHex(c.Hex)
		if err != nil {
			return nil, fmt.Errorf("palette color %d (%s): %w", i+1, c.Name, err)
		}
		p = append(p, wheel.Swatch{Name: c.Name, Color: rgba})
	}
	return p, nil
}

// parseHex accepts RRGGBB with an optional leading '#'.
func parseHex(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("bad hex color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad hex color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
