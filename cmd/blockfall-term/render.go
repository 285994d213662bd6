package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/sharecard"
	"github.com/plus3/blockfall/tetris"
)

const (
	originX = 2
	originY = 1
	// cellWidth is the number of terminal columns per board cell.
	cellWidth = 2
	sidebarX  = originX + tetris.Cols*cellWidth + 4
)

var kindColors = map[tetris.Kind]tcell.Color{
	tetris.I: tcell.ColorAqua,
	tetris.J: tcell.ColorBlue,
	tetris.L: tcell.ColorOrange,
	tetris.O: tcell.ColorYellow,
	tetris.S: tcell.ColorGreen,
	tetris.T: tcell.ColorPurple,
	tetris.Z: tcell.ColorRed,
}

var (
	frameStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	ghostStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// RenderSystem draws the engine after the frame's actions have applied.
type RenderSystem struct {
	Screen tcell.Screen
}

func (s *RenderSystem) Execute(frame *loop.Frame) {
	frame.Commands.Defer(func() {
		draw(s.Screen, frame.Engine.Snapshot())
		s.Screen.Show()
	})
}

func draw(screen tcell.Screen, snap tetris.Snapshot) {
	screen.Clear()
	drawFrame(screen)

	for y := range tetris.Rows {
		for x := range tetris.Cols {
			if k := snap.Board[y][x]; k != tetris.None {
				drawCell(screen, x, y, '█', tcell.StyleDefault.Foreground(kindColors[k]))
			}
		}
	}

	if p := snap.Piece; p != nil {
		for x, y := range p.Cells() {
			drawCell(screen, x, y-p.Y+snap.GhostY, '░', ghostStyle)
		}
		style := tcell.StyleDefault.Foreground(kindColors[p.Kind])
		for x, y := range p.Cells() {
			drawCell(screen, x, y, '█', style)
		}
	}

	s := snap.Session
	drawText(screen, sidebarX, originY+1, textStyle, "SCORE")
	drawText(screen, sidebarX, originY+2, textStyle, fmt.Sprintf("%d", s.Score))
	drawText(screen, sidebarX, originY+4, textStyle, "BEST")
	drawText(screen, sidebarX, originY+5, textStyle, fmt.Sprintf("%d", s.Best))
	drawText(screen, sidebarX, originY+7, textStyle, "LINES")
	drawText(screen, sidebarX, originY+8, textStyle, fmt.Sprintf("%d", s.Lines))

	switch {
	case !s.Started():
		drawBanner(screen, "PRESS A KEY", "TO START")
	case s.Over():
		drawBanner(screen, "GAME OVER",
			"SCORE "+sharecard.FormatScore(s.Score),
			"BEST  "+sharecard.FormatScore(s.Best),
			"",
			"ENTER: NEW",
			"S: SHARE")
	}
}

func drawFrame(screen tcell.Screen) {
	right := originX + tetris.Cols*cellWidth + 1
	bottom := originY + tetris.Rows + 1
	for y := originY + 1; y < bottom; y++ {
		screen.SetContent(originX, y, '│', nil, frameStyle)
		screen.SetContent(right, y, '│', nil, frameStyle)
	}
	for x := originX + 1; x < right; x++ {
		screen.SetContent(x, originY, '─', nil, frameStyle)
		screen.SetContent(x, bottom, '─', nil, frameStyle)
	}
	screen.SetContent(originX, originY, '┌', nil, frameStyle)
	screen.SetContent(right, originY, '┐', nil, frameStyle)
	screen.SetContent(originX, bottom, '└', nil, frameStyle)
	screen.SetContent(right, bottom, '┘', nil, frameStyle)
}

// drawCell skips rows above the visible board.
func drawCell(screen tcell.Screen, x, y int, r rune, style tcell.Style) {
	if y < 0 {
		return
	}
	sx, sy := cellPosition(x, y)
	for i := range cellWidth {
		screen.SetContent(sx+i, sy, r, nil, style)
	}
}

// cellPosition returns the terminal position of a board cell's first column.
func cellPosition(x, y int) (int, int) {
	return originX + 1 + x*cellWidth, originY + 1 + y
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, s string) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func drawBanner(screen tcell.Screen, lines ...string) {
	width := tetris.Cols * cellWidth
	top := originY + 1 + (tetris.Rows-len(lines))/2
	for i, line := range lines {
		x := originX + 1 + (width-len([]rune(line)))/2
		drawText(screen, x, top+i, textStyle.Bold(true), line)
	}
}
