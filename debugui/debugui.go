// Package debugui draws Dear ImGui inspection windows for a running game.
// Panels render from deferred frame commands so they see the engine after the
// frame's actions have been applied.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
)

// Panel is one ImGui window.
type Panel interface {
	Render(frame *loop.Frame)
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Front ends check it before routing input to the game.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// System defers the rendering of every panel into the frame.
type System struct {
	Panels  []Panel
	Visible bool
	Input   InputState
}

// Execute updates input state and queues the panel render functions.
func (s *System) Execute(frame *loop.Frame) {
	if !s.Visible {
		s.Input = InputState{}
		return
	}

	io := imgui.CurrentIO()
	s.Input.WantCaptureMouse = io.WantCaptureMouse()
	s.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, panel := range s.Panels {
		frame.Commands.Defer(func() {
			panel.Render(frame)
		})
	}
}
