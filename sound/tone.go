package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// tone is a sine wave with a linear fade out.
type tone struct {
	freq     float64
	phase    float64
	position int
	total    int
	rate     beep.SampleRate
}

// Tone returns a decaying sine streamer of the given frequency and length.
func Tone(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:  freq,
		total: rate.N(duration),
		rate:  rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.position >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.position >= t.total {
			return i, true
		}
		fade := 1 - float64(t.position)/float64(t.total)
		v := math.Sin(2*math.Pi*t.phase) * fade
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// gain scales a streamer by a linear factor in (0, 1].
func gain(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}
