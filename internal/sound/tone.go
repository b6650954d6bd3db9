package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// tone is a sine at freq with an exponential fade, d long.
func tone(sr beep.SampleRate, freq, gain float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	decay := 5.0 / float64(total)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			v := gain * math.Exp(-decay*float64(pos)) * math.Sin(2*math.Pi*freq*float64(pos)/float64(sr))
			samples[i][0], samples[i][1] = v, v
			pos++
			n++
		}
		return n, true
	})
}

func clickTone(sr beep.SampleRate) beep.Streamer {
	return tone(sr, 1800, 0.35, 25*time.Millisecond)
}

// chime is a rising triad played when a winner is published.
func chime(sr beep.SampleRate) beep.Streamer {
	return beep.Seq(
		tone(sr, 523.25, 0.4, 140*time.Millisecond),
		tone(sr, 659.25, 0.4, 140*time.Millisecond),
		tone(sr, 783.99, 0.5, 400*time.Millisecond),
	)
}
