package tetris

// EventType tags an Event.
type EventType uint8

const (
	EventReset EventType = iota + 1
	EventStarted
	EventSpawned
	EventLocked
	EventLinesCleared
	EventGameOver
)

func (t EventType) String() string {
	switch t {
	case EventReset:
		return "reset"
	case EventStarted:
		return "started"
	case EventSpawned:
		return "spawned"
	case EventLocked:
		return "locked"
	case EventLinesCleared:
		return "lines cleared"
	case EventGameOver:
		return "game over"
	}
	return "unknown"
}

// Event reports a state change of the engine. Fields that do not apply to the
// type are zero.
type Event struct {
	Type EventType
	// Kind is the piece that spawned or locked.
	Kind Kind
	// Lines and Points describe the line clear of a lock.
	Lines  int
	Points int
	// Dropped counts cells of a locked piece that were above the board.
	Dropped int
	Score   int
	Best    int
	// PrevBest and NewBest are set on game over.
	PrevBest int
	NewBest  bool
}

// Listener receives engine events synchronously. Listeners must not call back
// into the engine.
type Listener func(Event)
