package game

import (
	"image/color"
	"testing"
	"time"
)

func TestHsvToRgb(t *testing.T) {
	tests := []struct {
		h, s, v float64
		r, g, b uint8
	}{
		{0, 1, 1, 255, 0, 0},
		{120, 1, 1, 0, 255, 0},
		{240, 1, 1, 0, 0, 255},
		{360, 1, 1, 255, 0, 0},
		{-120, 1, 1, 0, 0, 255},
		{60, 0, 1, 255, 255, 255},
	}
	for _, tt := range tests {
		r, g, b := hsvToRgb(tt.h, tt.s, tt.v)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("hsvToRgb(%v, %v, %v) = %d,%d,%d, want %d,%d,%d", tt.h, tt.s, tt.v, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestClamp01(t *testing.T) {
	for in, want := range map[float64]float64{-1: 0, 0.25: 0.25, 7: 1} {
		if got := clamp01(in); got != want {
			t.Errorf("clamp01(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestLerpColor(t *testing.T) {
	a := color.RGBA{R: 0, G: 100, B: 200, A: 255}
	b := color.RGBA{R: 200, G: 100, B: 0, A: 255}
	if got := lerpColor(a, b, 0.5); got != (color.RGBA{R: 100, G: 100, B: 100, A: 255}) {
		t.Errorf("halfway = %v", got)
	}
	if got := lerpColor(a, b, 3); got != b {
		t.Errorf("past the end = %v, want %v", got, b)
	}
}

func TestFormatDuration(t *testing.T) {
	if got := formatDuration(75 * time.Second); got != "01:15" {
		t.Errorf("formatDuration = %q", got)
	}
}

func TestHitTests(t *testing.T) {
	if !inRect(25, 30, 20, 20, 120, 40) || inRect(150, 30, 20, 20, 120, 40) {
		t.Error("inRect misjudged the file button")
	}
	if !inCircle(640, 400, 640, 360, 50) || inCircle(700, 400, 640, 360, 50) {
		t.Error("inCircle misjudged the hub")
	}
}
