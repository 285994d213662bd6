package main

import "github.com/plus3/blockfall/tetris"

const (
	baseCellSize = 32
	// sidebarCells is the width of the score panel, in cells.
	sidebarCells = 6
	marginCells  = 1
)

// layout places the playfield inside the window. It is recomputed whenever
// the window size changes.
type layout struct {
	Cell   int
	BoardX int
	BoardY int
}

func windowSize(scale float64) (int, int) {
	cell := int(baseCellSize * scale)
	return (tetris.Cols + sidebarCells + 2*marginCells) * cell, (tetris.Rows + 2*marginCells) * cell
}

func fitLayout(width, height int) layout {
	cell := min(width/(tetris.Cols+sidebarCells+2*marginCells), height/(tetris.Rows+2*marginCells))
	cell = max(cell, 1)
	return layout{
		Cell:   cell,
		BoardX: marginCells * cell,
		BoardY: marginCells * cell,
	}
}

func (l layout) boardWidth() int  { return tetris.Cols * l.Cell }
func (l layout) boardHeight() int { return tetris.Rows * l.Cell }

// SidebarX is the left edge of the score panel.
func (l layout) SidebarX() int {
	return l.BoardX + l.boardWidth() + l.Cell
}

// Relative converts a window position to playfield-relative coordinates in
// [0, 1]. It reports false for positions outside the playfield.
func (l layout) Relative(x, y int) (float64, float64, bool) {
	bx, by := x-l.BoardX, y-l.BoardY
	if bx < 0 || by < 0 || bx >= l.boardWidth() || by >= l.boardHeight() {
		return 0, 0, false
	}
	return float64(bx) / float64(l.boardWidth()), float64(by) / float64(l.boardHeight()), true
}
