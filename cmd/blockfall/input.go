package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

type keyBinding struct {
	Key    ebiten.Key
	Action tetris.Action
}

var keyBindings = []keyBinding{
	{ebiten.KeyArrowLeft, tetris.ActionMoveLeft},
	{ebiten.KeyArrowRight, tetris.ActionMoveRight},
	{ebiten.KeyArrowDown, tetris.ActionSoftDrop},
	{ebiten.KeyArrowUp, tetris.ActionRotate},
	{ebiten.KeySpace, tetris.ActionHardDrop},
	{ebiten.KeyEnter, tetris.ActionNewGame},
}

// InputSystem turns keyboard, mouse and touch presses into queued actions.
type InputSystem struct {
	Layout *layout
	// Debug, when set, can swallow input aimed at the ImGui windows.
	Debug *debugui.System
	// OnShare runs after the frame when S is pressed on a finished game.
	OnShare func(tetris.Session)

	touches []ebiten.TouchID
}

func (s *InputSystem) Execute(frame *loop.Frame) {
	if s.Debug != nil && inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		s.Debug.Visible = !s.Debug.Visible
	}

	if s.Debug == nil || !s.Debug.Input.WantCaptureKeyboard {
		for _, b := range keyBindings {
			if inpututil.IsKeyJustPressed(b.Key) {
				frame.Commands.Apply(b.Action)
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyS) && s.OnShare != nil {
			session := frame.Engine.Session()
			if session.Over() {
				frame.Commands.Defer(func() { s.OnShare(session) })
			}
		}
	}

	s.touches = inpututil.AppendJustPressedTouchIDs(s.touches[:0])
	for _, id := range s.touches {
		x, y := ebiten.TouchPosition(id)
		s.tap(frame, x, y)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if s.Debug == nil || !s.Debug.Input.WantCaptureMouse {
			x, y := ebiten.CursorPosition()
			s.tap(frame, x, y)
		}
	}
}

func (s *InputSystem) tap(frame *loop.Frame, x, y int) {
	for _, a := range tapActions(frame.Engine.Session(), *s.Layout, x, y) {
		frame.Commands.Apply(a)
	}
}

// tapActions restarts a finished game. Otherwise it starts a game that has not
// started and then dispatches the touch zone under the position.
func tapActions(session tetris.Session, l layout, x, y int) []tetris.Action {
	if session.Over() {
		return []tetris.Action{tetris.ActionRestart}
	}
	var actions []tetris.Action
	if !session.Started() {
		actions = append(actions, tetris.ActionStart)
	}
	if relX, relY, ok := l.Relative(x, y); ok {
		actions = append(actions, tetris.TouchAction(relX, relY))
	}
	return actions
}
