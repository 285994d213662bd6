package tetris

import "time"

// Status is the lifecycle state of a game.
type Status uint8

const (
	NotStarted Status = iota
	Running
	Over
)

func (s Status) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Running:
		return "running"
	case Over:
		return "over"
	}
	return "unknown"
}

// Session is the scoreboard of the current game.
type Session struct {
	Status       Status
	Score        int
	Lines        int
	DropInterval time.Duration
	// Best is the highest score seen at game over, carried across resets.
	Best int
}

// Started reports whether the game has left the not-started state.
func (s Session) Started() bool { return s.Status != NotStarted }

// Running reports whether gravity and input are live.
func (s Session) Running() bool { return s.Status == Running }

// Over reports whether the game has ended.
func (s Session) Over() bool { return s.Status == Over }
