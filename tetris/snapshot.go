package tetris

// MaxClearSize is the largest single-lock line clear tracked in a snapshot.
const MaxClearSize = 4

// Snapshot is a read-only copy of the engine state for renderers.
type Snapshot struct {
	Board Grid
	// Piece is nil when no piece is active. Its Matrix is shared with the
	// catalog and must not be modified.
	Piece   *Piece
	GhostY  int
	Session Session
	// Dealt is indexed by Kind.
	Dealt [len(AllKinds) + 1]int
	// Clears is indexed by lines cleared per lock, 0 through MaxClearSize.
	Clears [MaxClearSize + 1]int
}

// Snapshot copies the current state.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Board:   e.board.Grid(),
		Piece:   e.Piece(),
		GhostY:  e.GhostY(),
		Session: e.session,
	}
	for _, k := range AllKinds {
		snap.Dealt[k] = e.stats.Dealt(k)
	}
	for n := range snap.Clears {
		snap.Clears[n] = e.stats.Clears(n)
	}
	return snap
}

// Cell returns the kind shown at (x, y): a locked cell, a cell of the active
// piece, or None.
func (s Snapshot) Cell(x, y int) Kind {
	if x >= 0 && x < Cols && y >= 0 && y < Rows && s.Board[y][x] != None {
		return s.Board[y][x]
	}
	if s.Piece != nil {
		for px, py := range s.Piece.Cells() {
			if px == x && py == y {
				return s.Piece.Kind
			}
		}
	}
	return None
}
