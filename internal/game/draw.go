package game

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/fortune-wheel/internal/config"
	"github.com/iburimskiy/fortune-wheel/internal/wheel"
)

var (
	backgroundColor = color.RGBA{R: 18, G: 20, B: 28, A: 255}
	pointerColor    = color.RGBA{R: 255, A: 255}
	white           = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	idleColor       = color.RGBA{G: 128, A: 255}
	busyColor       = color.RGBA{R: 200, A: 255}
)

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

// solidSource is the 1x1 white texture filled paths sample from.
func solidSource() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.drawWheel(screen)
	g.drawPointer(screen)
	g.drawSpinButton(screen)
	g.drawFileButton(screen)
	g.drawLegend(screen)
	g.drawResult(screen)

	status := "Space or the hub spins, O opens a label file, Esc/Q quits"
	if g.lastSpin > 0 {
		status += " | last spin " + formatDuration(g.lastSpin)
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, config.WindowHeight-20)
}

// fillPath fills p with a solid color.
func fillPath(screen *ebiten.Image, p *vector.Path, c color.RGBA) {
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
	screen.DrawTriangles(vs, is, solidSource(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (g *Game) drawWheel(screen *ebiten.Image) {
	const r = float32(config.WheelRadius)
	cx, cy := float32(centerX), float32(centerY)

	for i := 0; i < g.ctrl.SegmentCount(); i++ {
		start, width := g.ctrl.SpanOf(i)
		a1 := float32(wheel.ScreenRad(start + width))
		a2 := float32(wheel.ScreenRad(start))

		var p vector.Path
		p.MoveTo(cx, cy)
		p.LineTo(cx+r*float32(math.Cos(float64(a1))), cy+r*float32(math.Sin(float64(a1))))
		p.Arc(cx, cy, r, a1, a2, vector.Clockwise)
		p.Close()
		fillPath(screen, &p, g.model.ColorOf(i))
	}
	vector.StrokeCircle(screen, cx, cy, r, 2, white, true)
}

// drawPointer draws the fixed triangle above the wheel. It brightens with
// whatever the speaker is playing.
func (g *Game) drawPointer(screen *ebiten.Image) {
	x := float32(centerX)
	y := float32(centerY) - config.WheelRadius - config.PointerHeight/2 - config.PointerGap
	half := float32(config.PointerLength) / 2

	var p vector.Path
	p.MoveTo(x-half, y)
	p.LineTo(x+half, y)
	p.LineTo(x, y+config.PointerHeight)
	p.Close()
	fillPath(screen, &p, lerpColor(pointerColor, white, g.player.Level()*4))

	vector.StrokeLine(screen, x-half, y, x+half, y, 2, white, true)
	vector.StrokeLine(screen, x+half, y, x, y+config.PointerHeight, 2, white, true)
	vector.StrokeLine(screen, x, y+config.PointerHeight, x-half, y, 2, white, true)
}

func (g *Game) drawSpinButton(screen *ebiten.Image) {
	fill := idleColor
	if g.ctrl.Spinning() {
		fill = busyColor
	} else if g.spinPressed {
		fill = busyColor
	} else if g.spinHovered {
		fill = lerpColor(idleColor, white, 0.2)
	}

	const r = float32(config.SpinButtonSize) / 2
	vector.DrawFilledCircle(screen, float32(centerX), float32(centerY), r, fill, true)
	vector.StrokeCircle(screen, float32(centerX), float32(centerY), r, 2, white, true)
	ebitenutil.DebugPrintAt(screen, "Spin", int(centerX)-12, int(centerY)-8)
}

func (g *Game) drawFileButton(screen *ebiten.Image) {
	var bgColor color.Color
	if g.ctrl.Spinning() {
		bgColor = color.RGBA{R: 70, G: 70, B: 80, A: 255} // Disabled
	} else if g.filePressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if g.fileHovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}

	vector.DrawFilledRect(screen, config.FileButtonX, config.FileButtonY, config.FileButtonWidth, config.FileButtonHeight, bgColor, false)
	borderColor := color.RGBA{R: 150, G: 170, B: 200, A: 255}
	vector.StrokeRect(screen, config.FileButtonX, config.FileButtonY, config.FileButtonWidth, config.FileButtonHeight, 2, borderColor, false)

	text := "Select File"
	textWidth := len(text) * 6
	textX := config.FileButtonX + (config.FileButtonWidth-textWidth)/2
	textY := config.FileButtonY + (config.FileButtonHeight-16)/2
	ebitenutil.DebugPrintAt(screen, text, textX, textY)
}

func (g *Game) drawLegend(screen *ebiten.Image) {
	lines := g.model.Legend()
	x := config.WindowWidth - config.Size/4
	y := config.WindowHeight - config.LegendLineHeight*len(lines) - config.LegendLineHeight
	for i, line := range lines {
		ly := y + i*config.LegendLineHeight
		vector.DrawFilledRect(screen, float32(x-18), float32(ly+2), 12, 12, g.model.ColorOf(i), false)
		ebitenutil.DebugPrintAt(screen, line, x, ly)
	}
}

func (g *Game) drawResult(screen *ebiten.Image) {
	text := fmt.Sprintf("Winner: %s", g.ctrl.WinnerLabel())
	x := (config.WindowWidth - len(text)*6) / 2
	y := config.WindowHeight - config.Size/16

	if g.flash > 0 {
		r, gr, b := hsvToRgb(g.hue, 0.8, 1)
		glow := color.RGBA{R: r, G: gr, B: b, A: uint8(255 * clamp01(g.flash))}
		vector.DrawFilledRect(screen, float32(x-8), float32(y-4), float32(len(text)*6+16), 24, glow, false)
	}
	ebitenutil.DebugPrintAt(screen, text, x, y)
}
