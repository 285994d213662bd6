// Package sound plays short synthesized cues for game events.
package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/blockfall/tetris"
)

// SampleRate is the output rate of every cue.
const SampleRate = beep.SampleRate(44100)

// Cue names a sound.
type Cue uint8

const (
	CueLock Cue = iota + 1
	CueLineClear
	CueFourLines
	CueGameOver
	CueNewBest
)

// note is one step of a cue.
type note struct {
	freq     float64
	duration time.Duration
}

var cues = map[Cue][]note{
	CueLock:      {{220, 40 * time.Millisecond}},
	CueLineClear: {{523.25, 70 * time.Millisecond}, {659.25, 90 * time.Millisecond}},
	CueFourLines: {{523.25, 60 * time.Millisecond}, {659.25, 60 * time.Millisecond}, {783.99, 60 * time.Millisecond}, {1046.5, 160 * time.Millisecond}},
	CueGameOver:  {{392, 150 * time.Millisecond}, {311.13, 150 * time.Millisecond}, {261.63, 300 * time.Millisecond}},
	CueNewBest:   {{783.99, 90 * time.Millisecond}, {1046.5, 90 * time.Millisecond}, {1318.5, 200 * time.Millisecond}},
}

// Streamer builds the streamer for a cue, or nil for an unknown cue.
func Streamer(c Cue, rate beep.SampleRate) beep.Streamer {
	notes, ok := cues[c]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, Tone(n.freq, n.duration, rate))
	}
	return gain(beep.Seq(parts...), 0.35)
}

// ForEvent picks the cue for an engine event. It returns false for events
// that are silent.
func ForEvent(ev tetris.Event) (Cue, bool) {
	switch ev.Type {
	case tetris.EventLocked:
		if ev.Lines == 0 {
			return CueLock, true
		}
	case tetris.EventLinesCleared:
		if ev.Lines >= 4 {
			return CueFourLines, true
		}
		return CueLineClear, true
	case tetris.EventGameOver:
		if ev.NewBest {
			return CueNewBest, true
		}
		return CueGameOver, true
	}
	return 0, false
}

// Player mixes cues into the speaker. The zero value is a disabled player
// that ignores every call.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	enabled bool
}

// NewPlayer returns a player that stays silent until Init succeeds.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.enabled {
		return nil
	}
	if p.mixer == nil {
		p.mixer = &beep.Mixer{}
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("sound: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.enabled = true
	return nil
}

// Enabled reports whether cues reach the speaker.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Play queues a cue.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}
	s := Streamer(c, SampleRate)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Listen is a tetris.Listener that plays the cue for each event.
func (p *Player) Listen(ev tetris.Event) {
	if c, ok := ForEvent(ev); ok {
		p.Play(c)
	}
}

// Close silences the mixer.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.enabled = false
}
