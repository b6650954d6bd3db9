// Package sound plays the wheel's audio feedback: a click each time a new
// segment passes the pointer and a chime when the winner is announced.
package sound

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	log "github.com/sirupsen/logrus"
)

const (
	sampleRate = beep.SampleRate(44100)
	tapSize    = 2048
	levelSpan  = 512
)

// Options configures a Player.
type Options struct {
	Enabled bool
	// Volume in beep's log2 scale; 0 leaves samples untouched.
	Volume float64
	// ClickFile replaces the synthesized click when set.
	ClickFile string
}

// Player mixes short effects into one speaker stream. A nil or disabled
// Player is silent.
type Player struct {
	mixer *beep.Mixer
	tap   *levelTap
	click *beep.Buffer
}

// NewPlayer opens the speaker and starts the mixer.
func NewPlayer(opts Options) (*Player, error) {
	if !opts.Enabled {
		return nil, nil
	}

	p := &Player{mixer: &beep.Mixer{}}
	if opts.ClickFile != "" {
		buf, err := loadSample(opts.ClickFile, sampleRate)
		if err != nil {
			return nil, fmt.Errorf("click sound: %w", err)
		}
		p.click = buf
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	p.tap = newLevelTap(p.mixer, tapSize)
	speaker.Play(&effects.Volume{Streamer: p.tap, Base: 2, Volume: opts.Volume})

	log.WithFields(log.Fields{
		"sample_rate": int(sampleRate),
		"click_file":  opts.ClickFile,
	}).Debug("speaker ready")
	return p, nil
}

func (p *Player) add(s beep.Streamer) {
	if p == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Click plays the segment tick.
func (p *Player) Click() {
	if p == nil {
		return
	}
	if p.click != nil {
		p.add(p.click.Streamer(0, p.click.Len()))
		return
	}
	p.add(clickTone(sampleRate))
}

// Chime plays the winner fanfare.
func (p *Player) Chime() {
	if p == nil {
		return
	}
	p.add(chime(sampleRate))
}

// Level returns how loud the last few milliseconds were, in [0, 1].
func (p *Player) Level() float64 {
	if p == nil {
		return 0
	}
	return p.tap.level(levelSpan)
}

// Close stops playback.
func (p *Player) Close() {
	if p == nil {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
}
