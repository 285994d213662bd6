package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/sharecard"
	"github.com/plus3/blockfall/tetris"
)

var (
	backgroundColor = color.RGBA{18, 18, 18, 255}
	boardColor      = color.RGBA{30, 30, 30, 255}
	frameColor      = color.RGBA{90, 90, 90, 255}
	ghostColor      = color.RGBA{255, 255, 255, 60}
	overlayColor    = color.RGBA{0, 0, 0, 170}
)

var kindColors = map[tetris.Kind]color.RGBA{
	tetris.I: {102, 191, 255, 255},
	tetris.J: {0, 121, 241, 255},
	tetris.L: {255, 161, 0, 255},
	tetris.O: {255, 203, 0, 255},
	tetris.S: {0, 228, 48, 255},
	tetris.T: {200, 122, 255, 255},
	tetris.Z: {230, 41, 55, 255},
}

func drawGame(screen *ebiten.Image, l layout, snap tetris.Snapshot) {
	screen.Fill(backgroundColor)

	bx, by := float32(l.BoardX), float32(l.BoardY)
	bw, bh := float32(l.boardWidth()), float32(l.boardHeight())
	vector.DrawFilledRect(screen, bx, by, bw, bh, boardColor, false)
	vector.StrokeRect(screen, bx-2, by-2, bw+4, bh+4, 2, frameColor, false)

	for y := range tetris.Rows {
		for x := range tetris.Cols {
			if k := snap.Board[y][x]; k != tetris.None {
				drawCell(screen, l, x, y, kindColors[k])
			}
		}
	}

	if p := snap.Piece; p != nil {
		for x, y := range p.Cells() {
			drawCell(screen, l, x, y-p.Y+snap.GhostY, ghostColor)
		}
		for x, y := range p.Cells() {
			drawCell(screen, l, x, y, kindColors[p.Kind])
		}
	}

	drawSidebar(screen, l, snap.Session)

	switch {
	case !snap.Session.Started():
		drawBanner(screen, l, "PRESS ANY KEY OR TAP", "TO START")
	case snap.Session.Over():
		drawBanner(screen, l, "GAME OVER",
			fmt.Sprintf("SCORE %s", sharecard.FormatScore(snap.Session.Score)),
			fmt.Sprintf("BEST  %s", sharecard.FormatScore(snap.Session.Best)),
			"",
			"ENTER: NEW GAME",
			"S: SAVE SHARE CARD")
	}
}

// drawCell skips rows above the visible board.
func drawCell(screen *ebiten.Image, l layout, x, y int, c color.Color) {
	if y < 0 {
		return
	}
	size := float32(l.Cell)
	px := float32(l.BoardX) + float32(x)*size
	py := float32(l.BoardY) + float32(y)*size
	vector.DrawFilledRect(screen, px+1, py+1, size-2, size-2, c, false)
}

func drawSidebar(screen *ebiten.Image, l layout, s tetris.Session) {
	x, y := l.SidebarX(), l.BoardY
	ebitenutil.DebugPrintAt(screen, "SCORE", x, y)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", s.Score), x, y+16)
	ebitenutil.DebugPrintAt(screen, "BEST", x, y+48)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", s.Best), x, y+64)
	ebitenutil.DebugPrintAt(screen, "LINES", x, y+96)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", s.Lines), x, y+112)
}

func drawBanner(screen *ebiten.Image, l layout, lines ...string) {
	const lineHeight = 16
	bx, by := float32(l.BoardX), float32(l.BoardY)
	bw, bh := float32(l.boardWidth()), float32(l.boardHeight())
	vector.DrawFilledRect(screen, bx, by, bw, bh, overlayColor, false)

	top := l.BoardY + l.boardHeight()/2 - len(lines)*lineHeight/2
	for i, line := range lines {
		// The debug font is 6 pixels wide.
		x := l.BoardX + (l.boardWidth()-len(line)*6)/2
		ebitenutil.DebugPrintAt(screen, line, x, top+i*lineHeight)
	}
}
