package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// tone is a finite sine streamer with a linear decay envelope.
type tone struct {
	sr    beep.SampleRate
	freq  float64
	pos   int
	total int
}

func newTone(sr beep.SampleRate, freq float64, d time.Duration) *tone {
	return &tone{
		sr:    sr,
		freq:  freq,
		total: sr.N(d),
	}
}

// Stream implements beep.Streamer.
func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}

	n := 0
	for i := range samples {
		if t.pos >= t.total {
			break
		}
		envelope := 1 - float64(t.pos)/float64(t.total)
		v := 0.25 * envelope * math.Sin(2*math.Pi*t.freq*float64(t.pos)/float64(t.sr))
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
		n++
	}
	return n, true
}

// Err implements beep.Streamer.
func (t *tone) Err() error {
	return nil
}
