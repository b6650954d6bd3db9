package snapshot

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/iburimskiy/fortune-wheel/internal/wheel"
)

func near(a, b color.Color) bool {
	r1, g1, b1, _ := a.RGBA()
	r2, g2, b2, _ := b.RGBA()
	d := func(x, y uint32) bool {
		return math.Abs(float64(x>>8)-float64(y>>8)) <= 3
	}
	return d(r1, r2) && d(g1, g2) && d(b1, b2)
}

// pixelAt samples the wheel at a wheel-frame angle, a fraction of the radius out.
func pixelAt(img image.Image, geo Geometry, deg, frac float64) color.Color {
	cx, cy := geo.Center()
	a := wheel.ScreenRad(deg)
	x := cx + geo.Radius*frac*math.Cos(a)
	y := cy + geo.Radius*frac*math.Sin(a)
	return img.At(int(x), int(y))
}

func TestRenderPointerSegment(t *testing.T) {
	m := wheel.NewModel(nil)
	geo := DefaultGeometry(400)

	tests := []struct {
		angle float64
	}{
		{0},
		{10},
		{210},
	}
	for _, tt := range tests {
		dc, err := Render(m, tt.angle, geo)
		if err != nil {
			t.Fatalf("angle %v: %v", tt.angle, err)
		}
		img := dc.Image()

		want := m.ColorOf(m.PointerSegment(tt.angle))
		if got := pixelAt(img, geo, wheel.PointerAngleDeg, 0.9); !near(got, want) {
			t.Errorf("angle %v: pixel under pointer %v, want %v", tt.angle, got, want)
		}
		dc.Close()
	}
}

func TestRenderSegmentOrientation(t *testing.T) {
	m := wheel.NewModel(nil)
	geo := DefaultGeometry(400)
	dc, err := Render(m, 0, geo)
	if err != nil {
		t.Fatal(err)
	}
	defer dc.Close()
	img := dc.Image()

	// Segment 0 spans 0..36 degrees, segment 1 spans 36..72.
	if got := pixelAt(img, geo, 18, 0.6); !near(got, m.ColorOf(0)) {
		t.Errorf("18 degrees: %v, want %v", got, m.ColorOf(0))
	}
	if got := pixelAt(img, geo, 54, 0.6); !near(got, m.ColorOf(1)) {
		t.Errorf("54 degrees: %v, want %v", got, m.ColorOf(1))
	}
	if got := img.At(2, geo.Size-3); !near(got, background.Color()) {
		t.Errorf("corner: %v, want background", got)
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	m := wheel.NewModel(nil)
	if err := Encode(&buf, m, 90, DefaultGeometry(120)); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 120 {
		t.Errorf("bounds = %v", b)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEncodeWriteError(t *testing.T) {
	m := wheel.NewModel(nil)
	if err := Encode(failWriter{}, m, 0, DefaultGeometry(64)); err == nil {
		t.Error("expected the writer error to surface")
	}
}

func TestRenderLoadedLabels(t *testing.T) {
	m := wheel.NewModel(nil)
	if err := m.LoadFromLines([]string{"a", "b", "c"}); err != nil {
		t.Fatal(err)
	}
	dc, err := Render(m, 45, DefaultGeometry(80))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	dc.Close()
}

func TestSaveBadPath(t *testing.T) {
	m := wheel.NewModel(nil)
	path := filepath.Join(t.TempDir(), "missing", "wheel.png")
	if err := Save(path, m, 0, DefaultGeometry(64)); err == nil {
		t.Error("expected an error for a missing directory")
	}
}

func TestSaverWritesOnFinish(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wheel.png")
	m := wheel.NewModel(nil)
	saver := &Saver{Path: path, Model: m, Geometry: DefaultGeometry(96)}

	c := wheel.NewController(m, wheel.NewSource(1), wheel.WithObserver(saver))
	if err := c.TriggerSpinWith(wheel.SpinParams{TotalSpinDeg: 720}); err != nil {
		t.Fatal(err)
	}
	if _, err := c.RunToCompletion(); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("snapshot missing: %v", err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("snapshot is not a png: %v", err)
	}
}
