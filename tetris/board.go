package tetris

// Board dimensions.
const (
	Cols = 10
	Rows = 20
)

// Grid is a full board of cells indexed [row][col].
type Grid [Rows][Cols]Kind

// Board holds the cells of locked pieces.
type Board struct {
	cells Grid
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// At returns the kind locked at (x, y), or None for an empty or out-of-range cell.
func (b *Board) At(x, y int) Kind {
	if x < 0 || x >= Cols || y < 0 || y >= Rows {
		return None
	}
	return b.cells[y][x]
}

// Set writes a cell. Out-of-range coordinates are ignored.
func (b *Board) Set(x, y int, k Kind) {
	if x < 0 || x >= Cols || y < 0 || y >= Rows {
		return
	}
	b.cells[y][x] = k
}

// Grid returns a copy of every cell.
func (b *Board) Grid() Grid {
	return b.cells
}

// Reset empties the board.
func (b *Board) Reset() {
	b.cells = Grid{}
}

// Collides reports whether the piece's current matrix, shifted by (dx, dy),
// leaves the board sideways, reaches below the floor, or overlaps a locked cell.
func (b *Board) Collides(p *Piece, dx, dy int) bool {
	return b.CollidesWith(p, dx, dy, p.Matrix)
}

// CollidesWith is Collides for a candidate matrix placed at the piece's anchor.
// Rows above the board are never checked against board contents.
func (b *Board) CollidesWith(p *Piece, dx, dy int, m Matrix) bool {
	for col, row := range m.Cells() {
		x := p.X + col + dx
		y := p.Y + row + dy
		if x < 0 || x >= Cols || y >= Rows {
			return true
		}
		if y >= 0 && b.cells[y][x] != None {
			return true
		}
	}
	return false
}

// Merge locks the piece into the board and returns the number of its cells that
// were above the top row and therefore dropped.
func (b *Board) Merge(p *Piece) int {
	dropped := 0
	for x, y := range p.Cells() {
		if y < 0 {
			dropped++
			continue
		}
		b.cells[y][x] = p.Kind
	}
	return dropped
}

// ClearLines removes every full row, shifting the rows above it down and
// inserting empty rows at the top. It returns the number of rows removed.
func (b *Board) ClearLines() int {
	cleared := 0
	for y := Rows - 1; y >= 0; y-- {
		if !b.full(y) {
			continue
		}
		copy(b.cells[1:y+1], b.cells[:y])
		b.cells[0] = [Cols]Kind{}
		cleared++
		// the row that moved into y has not been examined yet
		y++
	}
	return cleared
}

func (b *Board) full(y int) bool {
	for _, k := range b.cells[y] {
		if k == None {
			return false
		}
	}
	return true
}
