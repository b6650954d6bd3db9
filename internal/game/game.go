// Package game hosts the wheel in an ebiten window. Every Update is one
// controller tick, so the window's TPS sets the spin cadence.
package game

import (
	"errors"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	log "github.com/sirupsen/logrus"

	"github.com/iburimskiy/fortune-wheel/internal/config"
	"github.com/iburimskiy/fortune-wheel/internal/sound"
	"github.com/iburimskiy/fortune-wheel/internal/wheel"
)

const (
	centerX = float64(config.WindowWidth) / 2
	centerY = float64(config.WindowHeight) / 2

	flashDecay = 0.015
)

// feedback is the audio side of the game; *sound.Player is nil-safe.
type feedback interface {
	Click()
	Chime()
	Level() float64
}

// Game is the ebiten.Game driving one wheel.
type Game struct {
	ctrl   *wheel.Controller
	model  *wheel.Model
	player feedback

	// input edge detection
	prevKey map[ebiten.Key]bool

	// button state
	fileHovered bool
	filePressed bool
	spinHovered bool
	spinPressed bool

	// spin feedback
	pointerSeg int
	spinStart  time.Time
	lastSpin   time.Duration
	flash      float64
	hue        float64

	lastErr error
}

// New builds a game over model. Extra observers see every redraw and winner.
func New(cfg *config.Config, model *wheel.Model, rng wheel.Source, player *sound.Player, observers ...wheel.Observer) *Game {
	g := &Game{
		model:   model,
		player:  player,
		prevKey: map[ebiten.Key]bool{},
	}
	g.ctrl = wheel.NewController(model, rng,
		wheel.WithPolicy(cfg.Policy),
		wheel.WithLogger(log.StandardLogger()),
		wheel.WithObserver(append(wheel.Observers{g}, observers...)),
	)
	g.pointerSeg = model.PointerSegment(g.ctrl.CurrentAngle())
	return g
}

// Controller exposes the spin controller.
func (g *Game) Controller() *wheel.Controller { return g.ctrl }

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mouseX, mouseY := ebiten.CursorPosition()
	g.fileHovered = inRect(mouseX, mouseY, config.FileButtonX, config.FileButtonY, config.FileButtonWidth, config.FileButtonHeight)
	g.spinHovered = inCircle(mouseX, mouseY, centerX, centerY, config.SpinButtonSize/2)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.filePressed = g.fileHovered
		g.spinPressed = g.spinHovered
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.filePressed && g.fileHovered {
			g.selectFile()
		}
		if g.spinPressed && g.spinHovered {
			g.spin()
		}
		g.filePressed = false
		g.spinPressed = false
	}

	if justPressed(ebiten.KeySpace) {
		g.spin()
	}
	if justPressed(ebiten.KeyO) {
		g.selectFile()
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if g.ctrl.Spinning() {
		g.ctrl.OnTick()
	}
	g.flash = math.Max(0, g.flash-flashDecay)
	g.hue += 2
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// spin starts a spin unless one is running; the spin button is disabled
// for the duration.
func (g *Game) spin() {
	if g.ctrl.Spinning() {
		return
	}
	if err := g.ctrl.TriggerSpin(); err != nil {
		g.lastErr = err
		return
	}
	g.lastErr = nil
	g.spinStart = time.Now()
	g.pointerSeg = g.model.PointerSegment(g.ctrl.CurrentAngle())
}

func (g *Game) selectFile() {
	if g.ctrl.Spinning() {
		return
	}
	path, err := selectLabelsFile()
	if err != nil {
		g.lastErr = err
		log.WithError(err).Warn("file dialog failed")
		return
	}
	if path == "" {
		return
	}
	if err := g.ctrl.LoadFile(path); err != nil {
		g.lastErr = err
		log.WithError(err).WithField("path", path).Warn("labels rejected")
		if errors.Is(err, wheel.ErrInvalidInput) {
			showError(err.Error())
		}
		return
	}
	g.lastErr = nil
	g.lastSpin = 0
	g.pointerSeg = g.model.PointerSegment(g.ctrl.CurrentAngle())
}

// Redraw clicks whenever a new segment reaches the pointer.
func (g *Game) Redraw(angleDeg float64) {
	seg := g.model.PointerSegment(angleDeg)
	if seg != g.pointerSeg {
		g.pointerSeg = seg
		g.player.Click()
	}
}

func (g *Game) Finished(r wheel.Result) {
	g.lastSpin = time.Since(g.spinStart)
	g.flash = 1
	g.player.Chime()
}
