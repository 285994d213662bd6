package loop

import "github.com/plus3/blockfall/tetris"

// GravitySystem advances the engine's gravity clock by the frame delta.
type GravitySystem struct {
	// Paused stops the clock without touching the game state.
	Paused bool
}

func (s *GravitySystem) Execute(frame *Frame) {
	if s.Paused {
		return
	}
	frame.Engine.Tick(frame.DeltaTime)
}

// InputSystem drains actions from a channel into the frame's commands. Front
// ends that read input on their own goroutine send on the channel.
type InputSystem struct {
	Actions <-chan tetris.Action
}

func (s *InputSystem) Execute(frame *Frame) {
	for {
		select {
		case a, ok := <-s.Actions:
			if !ok {
				return
			}
			frame.Commands.Apply(a)
		default:
			return
		}
	}
}
