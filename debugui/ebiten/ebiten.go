// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
)

// Backend wraps the Ebiten-specific Dear ImGui backend implementation.
// Call BeginFrame and EndFrame around the frame update, then Draw on top of
// the game image.
type Backend struct {
	*ebitenbackend.EbitenBackend
}

// NewBackend creates the ImGui context and the Ebiten window. Dear ImGui's
// settings file is disabled.
func NewBackend(title string, width, height int) *Backend {
	b := ebitenbackend.NewEbitenBackend()
	b.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &Backend{EbitenBackend: b}
}
