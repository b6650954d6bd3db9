// Package headless spins the wheel without a window, delivering ticks
// from a wall-clock ticker.
package headless

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/iburimskiy/fortune-wheel/internal/wheel"
)

// Run starts a spin and ticks it every interval until a winner is known.
func Run(ctx context.Context, c *wheel.Controller, interval time.Duration) (wheel.Result, error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	return Drive(ctx, c, ticker.C)
}

// Drive starts a spin and advances it once per value received on ticks.
// Cancelling ctx stops delivering ticks; the spin itself cannot be aborted
// and stays where it was.
func Drive(ctx context.Context, c *wheel.Controller, ticks <-chan time.Time) (wheel.Result, error) {
	if err := c.TriggerSpin(); err != nil {
		return wheel.Result{}, err
	}
	_, total := c.Progress()
	log.WithField("total_deg", total).Info("spinning")

	for {
		select {
		case <-ctx.Done():
			return wheel.Result{}, fmt.Errorf("spin interrupted: %w", ctx.Err())
		case <-ticks:
			if c.OnTick() {
				continue
			}
			res, _ := c.Winner()
			return res, nil
		}
	}
}

// ProgressLogger reports spin progress at debug level every Every redraws.
type ProgressLogger struct {
	Every int
	n     int
}

func (p *ProgressLogger) Redraw(angleDeg float64) {
	p.n++
	if p.Every > 0 && p.n%p.Every == 0 {
		log.WithFields(log.Fields{"tick": p.n, "angle": fmt.Sprintf("%.1f", angleDeg)}).Debug("wheel turning")
	}
}

func (p *ProgressLogger) Finished(r wheel.Result) {
	p.n = 0
}
