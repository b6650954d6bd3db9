package snapshot

import (
	log "github.com/sirupsen/logrus"

	"github.com/iburimskiy/fortune-wheel/internal/wheel"
)

// Saver writes a PNG of the wheel each time a spin finishes.
type Saver struct {
	Path     string
	Model    *wheel.Model
	Geometry Geometry
}

func (s *Saver) Redraw(float64) {}

func (s *Saver) Finished(r wheel.Result) {
	if err := Save(s.Path, s.Model, r.AngleDeg, s.Geometry); err != nil {
		log.WithError(err).Warn("snapshot not written")
		return
	}
	log.WithFields(log.Fields{"path": s.Path, "winner": r.Label}).Info("snapshot written")
}
