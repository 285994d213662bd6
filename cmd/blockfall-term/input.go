package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// keyAction maps a key press to a game action.
func keyAction(ev *tcell.EventKey) (tetris.Action, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return tetris.ActionMoveLeft, true
	case tcell.KeyRight:
		return tetris.ActionMoveRight, true
	case tcell.KeyDown:
		return tetris.ActionSoftDrop, true
	case tcell.KeyUp:
		return tetris.ActionRotate, true
	case tcell.KeyEnter:
		return tetris.ActionNewGame, true
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return tetris.ActionHardDrop, true
		}
	}
	return tetris.ActionNone, false
}

func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
		(ev.Key() == tcell.KeyRune && ev.Rune() == 'q')
}

func isShare(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyRune && (ev.Rune() == 's' || ev.Rune() == 'S')
}

// pollEvents reads terminal events until the screen is finalized. Game
// actions go to actions, share requests to shares, and quit is called on a
// quit key.
func pollEvents(screen tcell.Screen, actions chan<- tetris.Action, shares chan<- struct{}, quit func()) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch {
			case isQuit(ev):
				quit()
				return
			case isShare(ev):
				select {
				case shares <- struct{}{}:
				default:
				}
			default:
				if a, ok := keyAction(ev); ok {
					actions <- a
				}
			}
		}
	}
}

// ShareSystem saves a share card for a finished game when requested.
type ShareSystem struct {
	Requests <-chan struct{}
	Save     func(tetris.Session)
}

func (s *ShareSystem) Execute(frame *loop.Frame) {
	select {
	case <-s.Requests:
	default:
		return
	}
	session := frame.Engine.Session()
	if session.Over() {
		frame.Commands.Defer(func() { s.Save(session) })
	}
}
