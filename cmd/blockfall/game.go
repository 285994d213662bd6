package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/loop"
)

const frameDelta = time.Second / 60

// Game implements ebiten.Game.
type Game struct {
	scheduler *loop.Scheduler
	// backend is nil when the debug UI is off.
	backend *debugui_ebiten.Backend
	layout  layout
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.backend != nil {
		g.backend.BeginFrame()
	}

	g.scheduler.Once(frameDelta)

	if g.backend != nil {
		g.backend.EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawGame(screen, g.layout, g.scheduler.Engine().Snapshot())

	if g.backend != nil {
		g.backend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.backend != nil {
		g.backend.Layout(outsideWidth, outsideHeight)
	}
	g.layout = fitLayout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
