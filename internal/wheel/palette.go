package wheel

import "image/color"

// PlaceholderColorName names segments whose index has no named swatch.
const PlaceholderColorName = "Color"

// Swatch is one named palette entry.
type Swatch struct {
	Name  string
	Color color.RGBA
}

// Palette is the fixed, ordered list of segment colors. Colors repeat
// cyclically when there are more segments than swatches.
type Palette []Swatch

// DefaultPalette returns the ten built-in colors.
func DefaultPalette() Palette {
	return Palette{
		{"Red", color.RGBA{R: 255, G: 50, B: 50, A: 255}},
		{"Green", color.RGBA{R: 50, G: 255, B: 50, A: 255}},
		{"Blue", color.RGBA{R: 50, G: 50, B: 255, A: 255}},
		{"Yellow", color.RGBA{R: 255, G: 255, B: 50, A: 255}},
		{"Orange", color.RGBA{R: 255, G: 165, B: 50, A: 255}},
		{"Rose", color.RGBA{R: 255, G: 192, B: 203, A: 255}},
		{"Purple", color.RGBA{R: 128, G: 50, B: 128, A: 255}},
		{"Cyan", color.RGBA{R: 50, G: 255, B: 255, A: 255}},
		{"Grey", color.RGBA{R: 128, G: 128, B: 128, A: 255}},
		{"Pink", color.RGBA{R: 255, G: 105, B: 180, A: 255}},
	}
}

// Color returns the swatch color for a segment index.
func (p Palette) Color(i int) color.RGBA {
	return p[i%len(p)].Color
}

// Name returns the swatch name for a segment index. Names do not wrap:
// indexes past the end of the palette get PlaceholderColorName.
func (p Palette) Name(i int) string {
	if i < len(p) && p[i].Name != "" {
		return p[i].Name
	}
	return PlaceholderColorName
}
