package wheel

import (
	"fmt"
	"image/color"
)

const (
	// DefaultSegments is the size of the built-in wheel.
	DefaultSegments = 10
	// MaxSegments caps how many labels a loaded source may contribute.
	MaxSegments = 20
)

// Segment is one slice of the wheel.
type Segment struct {
	Label      string
	ColorName  string
	ColorIndex int
}

// Model owns the ordered segment list and its angular geometry.
// The list is only ever replaced wholesale.
type Model struct {
	palette  Palette
	segments []Segment
	widthDeg float64
	loaded   bool
}

// NewModel returns a model holding the default wheel for the given palette.
// A nil or empty palette falls back to DefaultPalette.
func NewModel(p Palette) *Model {
	if len(p) == 0 {
		p = DefaultPalette()
	}
	m := &Model{palette: p}
	m.LoadDefault()
	return m
}

// LoadDefault resets to the built-in wheel of DefaultSegments segments,
// each labelled with its color name. Colors cycle over short palettes.
func (m *Model) LoadDefault() {
	segs := make([]Segment, DefaultSegments)
	for i := range segs {
		name := m.palette.Name(i)
		segs[i] = Segment{Label: name, ColorName: name, ColorIndex: i % len(m.palette)}
	}
	m.replace(segs, false)
}

// LoadFromLines replaces the wheel with one segment per line, keeping at
// most MaxSegments lines.
func (m *Model) LoadFromLines(lines []string) error {
	if len(lines) == 0 {
		return fmt.Errorf("no labels: %w", ErrInvalidInput)
	}
	n := min(len(lines), MaxSegments)
	segs := make([]Segment, n)
	for i := range segs {
		segs[i] = Segment{
			Label:      lines[i],
			ColorName:  m.palette.Name(i),
			ColorIndex: i % len(m.palette),
		}
	}
	m.replace(segs, true)
	return nil
}

func (m *Model) replace(segs []Segment, loaded bool) {
	m.segments = segs
	m.widthDeg = FullCircleDeg / float64(len(segs))
	m.loaded = loaded
}

// SetPalette swaps the palette and reapplies color names to the current labels.
func (m *Model) SetPalette(p Palette) error {
	if len(p) == 0 {
		return fmt.Errorf("empty palette: %w", ErrInvalidInput)
	}
	m.palette = p
	if !m.loaded {
		m.LoadDefault()
		return nil
	}
	for i := range m.segments {
		m.segments[i].ColorName = p.Name(i)
		m.segments[i].ColorIndex = i % len(p)
	}
	return nil
}

// SegmentCount returns the number of segments.
func (m *Model) SegmentCount() int { return len(m.segments) }

// WidthDeg returns the angular width of every segment.
func (m *Model) WidthDeg() float64 { return m.widthDeg }

// Segments returns a copy of the ordered segment list.
func (m *Model) Segments() []Segment {
	out := make([]Segment, len(m.segments))
	copy(out, m.segments)
	return out
}

// Segment returns the segment at index i.
func (m *Model) Segment(i int) Segment { return m.segments[i] }

// ColorOf returns the palette color for segment i.
func (m *Model) ColorOf(i int) color.RGBA { return m.palette.Color(m.segments[i].ColorIndex) }

// SpanOf returns where segment i starts for a wheel rotated by angleDeg,
// and its width.
func (m *Model) SpanOf(i int, angleDeg float64) (startDeg, widthDeg float64) {
	return normalizeDeg(m.widthDeg*float64(i) + angleDeg), m.widthDeg
}

// PointerSegment returns the index of the segment the pointer selects when
// the wheel is rotated by angleDeg.
func (m *Model) PointerSegment(angleDeg float64) int {
	starts := make([]float64, len(m.segments))
	for i := range starts {
		starts[i], _ = m.SpanOf(i, angleDeg)
	}
	return nearestStart(starts)
}

// Legend returns one display line per segment.
func (m *Model) Legend() []string {
	out := make([]string, len(m.segments))
	for i, s := range m.segments {
		if m.loaded {
			out[i] = fmt.Sprintf("%s: %s", s.Label, s.ColorName)
		} else {
			out[i] = fmt.Sprintf("Segment %d: %s", i+1, s.ColorName)
		}
	}
	return out
}
