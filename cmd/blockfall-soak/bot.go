package main

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

var botActions = []tetris.Action{
	tetris.ActionMoveLeft,
	tetris.ActionMoveRight,
	tetris.ActionRotate,
	tetris.ActionSoftDrop,
	tetris.ActionHardDrop,
}

// BotSystem queues a random gameplay action on some frames.
type BotSystem struct {
	Rng  *rand.Rand
	Rate float64
}

func (s *BotSystem) Execute(frame *loop.Frame) {
	if s.Rng.Float64() >= s.Rate {
		return
	}
	frame.Commands.Apply(botActions[s.Rng.IntN(len(botActions))])
}

// RestartSystem starts a new game once the current one is over.
type RestartSystem struct{}

func (s *RestartSystem) Execute(frame *loop.Frame) {
	if frame.Engine.Session().Over() {
		frame.Commands.Apply(tetris.ActionRestart)
	}
}
