// Package snapshot renders the wheel to a PNG without a window.
package snapshot

import (
	"fmt"
	"io"
	"math"

	"github.com/gogpu/gg"

	"github.com/iburimskiy/fortune-wheel/internal/wheel"
)

var (
	background = gg.RGB(0.08, 0.09, 0.12)
	pointer    = gg.RGB(1, 0, 0)
	outline    = gg.RGB(1, 1, 1)
)

// Geometry places the wheel inside the image.
type Geometry struct {
	Size   int
	Radius float64
}

// DefaultGeometry fits the wheel with room for the pointer above it.
func DefaultGeometry(size int) Geometry {
	return Geometry{Size: size, Radius: float64(size) * 0.4}
}

// Center returns the wheel center in pixels.
func (g Geometry) Center() (x, y float64) {
	return float64(g.Size) / 2, float64(g.Size) / 2
}

// Render draws every segment of m rotated by angleDeg, plus the pointer.
// The caller closes the returned context; on error it is already closed.
func Render(m *wheel.Model, angleDeg float64, geo Geometry) (*gg.Context, error) {
	dc := gg.NewContext(geo.Size, geo.Size)
	dc.ClearWithColor(background)
	cx, cy := geo.Center()

	for i := 0; i < m.SegmentCount(); i++ {
		start, width := m.SpanOf(i, angleDeg)
		// Counterclockwise on the wheel is from -start back to -(start+width) on screen.
		a1, a2 := wheel.ScreenRad(start+width), wheel.ScreenRad(start)
		dc.MoveTo(cx, cy)
		dc.LineTo(cx+geo.Radius*math.Cos(a1), cy+geo.Radius*math.Sin(a1))
		dc.DrawArc(cx, cy, geo.Radius, a1, a2)
		dc.ClosePath()
		dc.SetColor(m.ColorOf(i))
		if err := dc.Fill(); err != nil {
			dc.Close()
			return nil, fmt.Errorf("fill segment %d: %w", i, err)
		}
	}

	if err := drawPointer(dc, geo); err != nil {
		dc.Close()
		return nil, err
	}
	return dc, nil
}

func drawPointer(dc *gg.Context, geo Geometry) error {
	cx, cy := geo.Center()
	half := geo.Radius * 0.09
	height := geo.Radius * 0.11
	top := cy - geo.Radius - height - 4

	dc.MoveTo(cx-half, top)
	dc.LineTo(cx+half, top)
	dc.LineTo(cx, top+height)
	dc.ClosePath()
	dc.SetColor(pointer.Color())
	if err := dc.FillPreserve(); err != nil {
		return fmt.Errorf("fill pointer: %w", err)
	}
	dc.SetColor(outline.Color())
	dc.SetLineWidth(2)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("stroke pointer: %w", err)
	}
	return nil
}

// Encode writes the wheel as PNG.
func Encode(w io.Writer, m *wheel.Model, angleDeg float64, geo Geometry) error {
	dc, err := Render(m, angleDeg, geo)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode wheel png: %w", err)
	}
	return nil
}

// Save writes the wheel as a PNG file.
func Save(path string, m *wheel.Model, angleDeg float64, geo Geometry) error {
	dc, err := Render(m, angleDeg, geo)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save wheel png %s: %w", path, err)
	}
	return nil
}
