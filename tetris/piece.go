package tetris

import "iter"

// Piece is the falling piece: its kind, rotation state and the board position of
// the top-left corner of its matrix. Y is negative while part of the matrix sits
// above the board.
type Piece struct {
	Kind     Kind
	Rotation int
	Matrix   Matrix
	X, Y     int
}

// NewPiece places a kind in its first rotation at the spawn position: centred
// horizontally, with the I piece raised one row so its empty leading row sits
// above the board. It returns nil for None.
func NewPiece(k Kind) *Piece {
	rotations := Rotations(k)
	if len(rotations) == 0 {
		return nil
	}
	m := rotations[0]
	y := 0
	if k == I {
		y = -1
	}
	return &Piece{
		Kind:   k,
		Matrix: m,
		X:      Cols/2 - (m.Width()+1)/2,
		Y:      y,
	}
}

// next returns the rotation index and matrix that follow the current state.
func (p *Piece) next() (int, Matrix) {
	rotations := Rotations(p.Kind)
	idx := (p.Rotation + 1) % len(rotations)
	return idx, rotations[idx]
}

// Cells yields the board coordinates of every occupied cell of the piece.
func (p *Piece) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for col, row := range p.Matrix.Cells() {
			if !yield(p.X+col, p.Y+row) {
				return
			}
		}
	}
}
