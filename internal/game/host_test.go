package game

import (
	"reflect"
	"testing"
	"time"

	"github.com/iburimskiy/fortune-wheel/internal/config"
	"github.com/iburimskiy/fortune-wheel/internal/wheel"
)

type countingSound struct {
	clicks, chimes int
}

func (s *countingSound) Click()         { s.clicks++ }
func (s *countingSound) Chime()         { s.chimes++ }
func (s *countingSound) Level() float64 { return 0 }

func newTestGame(t *testing.T) (*Game, *countingSound) {
	t.Helper()
	cfg := &config.Config{Policy: wheel.RollbackLegacy}
	g := New(cfg, wheel.NewModel(nil), wheel.NewSource(7), nil)
	snd := &countingSound{}
	g.player = snd
	return g, snd
}

func TestRedrawClicksOnNewSegment(t *testing.T) {
	g, snd := newTestGame(t)
	angle := g.ctrl.CurrentAngle()
	start := g.pointerSeg

	g.Redraw(angle)
	if snd.clicks != 0 {
		t.Fatalf("clicked %d times without leaving segment %d", snd.clicks, start)
	}

	next := angle + g.model.WidthDeg()
	g.Redraw(next)
	if snd.clicks != 1 {
		t.Errorf("clicks = %d after crossing a boundary, want 1", snd.clicks)
	}
	if want := g.model.PointerSegment(next); g.pointerSeg != want {
		t.Errorf("pointerSeg = %d, want %d", g.pointerSeg, want)
	}
	if g.pointerSeg == start {
		t.Error("pointerSeg did not move")
	}
}

func TestSpinIgnoredWhileSpinning(t *testing.T) {
	g, _ := newTestGame(t)
	if err := g.ctrl.TriggerSpinWith(wheel.SpinParams{TotalSpinDeg: 1800}); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		g.ctrl.OnTick()
	}
	angle := g.ctrl.CurrentAngle()
	done, total := g.ctrl.Progress()

	g.spin()

	if got := g.ctrl.CurrentAngle(); got != angle {
		t.Errorf("angle = %v after second spin, want %v", got, angle)
	}
	if d, tot := g.ctrl.Progress(); d != done || tot != total {
		t.Errorf("progress = %d/%d, want %d/%d", d, tot, done, total)
	}
	if g.lastErr != nil {
		t.Errorf("lastErr = %v", g.lastErr)
	}
}

func TestSelectFileIgnoredWhileSpinning(t *testing.T) {
	g, _ := newTestGame(t)
	before := g.model.Segments()
	if err := g.ctrl.TriggerSpinWith(wheel.SpinParams{TotalSpinDeg: 720}); err != nil {
		t.Fatal(err)
	}
	g.ctrl.OnTick()

	g.selectFile()

	if !g.ctrl.Spinning() {
		t.Error("spin stopped by selectFile")
	}
	if g.lastErr != nil {
		t.Errorf("lastErr = %v, want the dialog to stay closed", g.lastErr)
	}
	if !reflect.DeepEqual(g.model.Segments(), before) {
		t.Error("segments changed mid-spin")
	}
}

func TestFinishedFeedback(t *testing.T) {
	g, snd := newTestGame(t)
	if err := g.ctrl.TriggerSpinWith(wheel.SpinParams{TotalSpinDeg: 1800}); err != nil {
		t.Fatal(err)
	}
	g.spinStart = time.Now().Add(-time.Second)

	res, err := g.ctrl.RunToCompletion()
	if err != nil {
		t.Fatal(err)
	}
	if snd.chimes != 1 {
		t.Errorf("chimes = %d, want 1", snd.chimes)
	}
	if snd.clicks == 0 {
		t.Error("no clicks during a five turn spin")
	}
	if g.flash != 1 {
		t.Errorf("flash = %v, want 1", g.flash)
	}
	if g.lastSpin < time.Second {
		t.Errorf("lastSpin = %v, want at least 1s", g.lastSpin)
	}
	if g.pointerSeg != res.Index {
		t.Errorf("pointerSeg = %d, winner = %d", g.pointerSeg, res.Index)
	}
}
