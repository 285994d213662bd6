package loop

import (
	"time"

	"github.com/plus3/blockfall/tetris"
)

// Frame is passed to every system during Scheduler.Once.
type Frame struct {
	DeltaTime time.Duration
	Commands  *Commands
	// Engine is shared with every system. Player actions go through Commands
	// so they apply after all systems have run.
	Engine *tetris.Engine
}

func newFrame(dt time.Duration, engine *tetris.Engine, commands *Commands) *Frame {
	return &Frame{
		DeltaTime: dt,
		Commands:  commands,
		Engine:    engine,
	}
}

// Seconds returns the frame delta in seconds.
func (f *Frame) Seconds() float64 {
	return f.DeltaTime.Seconds()
}
