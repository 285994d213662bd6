package loop_test

import (
	"testing"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSystem struct {
	commands *loop.Commands
}

func (s *recordingSystem) Execute(frame *loop.Frame) {
	s.commands = frame.Commands
}

func TestCommandsApplyInOrder(t *testing.T) {
	var order []string
	engine := tetris.NewEngine(tetris.WithSeed(5), tetris.WithListener(func(ev tetris.Event) {
		order = append(order, ev.Type.String())
	}))
	scheduler := loop.NewScheduler(engine)
	scheduler.Register(&scriptedInputSystem{actions: []tetris.Action{
		tetris.ActionStart,
		tetris.ActionHardDrop,
	}})
	rec := &recordingSystem{}
	scheduler.Register(rec)

	order = nil
	scheduler.Once(0)

	require.NotEmpty(t, order)
	assert.Equal(t, "started", order[0])
	assert.Contains(t, order, "locked")

	results := rec.commands.Applied()
	require.Len(t, results, 2)
	assert.Equal(t, loop.Result{Action: tetris.ActionStart, Accepted: true}, results[0])
	assert.Equal(t, loop.Result{Action: tetris.ActionHardDrop, Accepted: true}, results[1])
	assert.Equal(t, 0, rec.commands.Pending())
}

func TestCommandsIgnoreNone(t *testing.T) {
	scheduler := loop.NewScheduler(tetris.NewEngine(tetris.WithSeed(5)))
	rec := &recordingSystem{}
	scheduler.Register(rec)
	scheduler.Once(0)

	rec.commands.Apply(tetris.ActionNone)
	assert.Equal(t, 0, rec.commands.Pending())
}

type deferSystem struct {
	calls *[]string
}

func (s *deferSystem) Execute(frame *loop.Frame) {
	frame.Commands.Defer(func() {
		*s.calls = append(*s.calls, frame.Engine.Session().Status.String())
	})
	frame.Commands.Apply(tetris.ActionStart)
}

func TestCommandsDeferRunsAfterActions(t *testing.T) {
	var calls []string
	scheduler := loop.NewScheduler(tetris.NewEngine(tetris.WithSeed(5)))
	scheduler.Register(&deferSystem{calls: &calls})

	scheduler.Once(0)
	scheduler.Once(0)

	assert.Equal(t, []string{"running", "running"}, calls)
}

func TestInputSystemDrainsChannel(t *testing.T) {
	actions := make(chan tetris.Action, 4)
	engine := tetris.NewEngine(tetris.WithSeed(9))
	scheduler := loop.NewScheduler(engine)
	scheduler.Register(&loop.InputSystem{Actions: actions})

	actions <- tetris.ActionMoveLeft
	actions <- tetris.ActionMoveLeft
	x := engine.Piece().X

	scheduler.Once(0)

	assert.True(t, engine.Session().Running())
	assert.Equal(t, x-2, engine.Piece().X)
	assert.Len(t, actions, 0)

	close(actions)
	scheduler.Once(0)
}

type deferredActionSystem struct {
	queued bool
}

func (s *deferredActionSystem) Execute(frame *loop.Frame) {
	if s.queued {
		return
	}
	s.queued = true
	frame.Commands.Defer(func() {
		frame.Commands.Apply(tetris.ActionStart)
	})
}

func TestCommandsActionsFromDefersRunNextFrame(t *testing.T) {
	engine := tetris.NewEngine(tetris.WithSeed(5))
	scheduler := loop.NewScheduler(engine)
	scheduler.Register(&deferredActionSystem{})

	scheduler.Once(0)
	assert.Equal(t, tetris.NotStarted, engine.Session().Status)

	scheduler.Once(0)
	assert.Equal(t, tetris.Running, engine.Session().Status)
}
