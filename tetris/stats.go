package tetris

import "github.com/kamstrup/intmap"

// Stats counts the pieces dealt and the lines cleared by each lock.
type Stats struct {
	dealt  *intmap.Map[Kind, int]
	clears *intmap.Map[int, int]
	pieces int
	locks  int
}

func newStats() *Stats {
	return &Stats{
		dealt:  intmap.New[Kind, int](len(AllKinds)),
		clears: intmap.New[int, int](8),
	}
}

func (s *Stats) recordDeal(k Kind) {
	n, _ := s.dealt.Get(k)
	s.dealt.Put(k, n+1)
	s.pieces++
}

func (s *Stats) recordLock(lines int) {
	n, _ := s.clears.Get(lines)
	s.clears.Put(lines, n+1)
	s.locks++
}

func (s *Stats) reset() {
	s.dealt.Clear()
	s.clears.Clear()
	s.pieces = 0
	s.locks = 0
}

// Dealt returns how many pieces of kind k were drawn this game.
func (s *Stats) Dealt(k Kind) int {
	n, _ := s.dealt.Get(k)
	return n
}

// Clears returns how many locks cleared exactly lines rows.
func (s *Stats) Clears(lines int) int {
	n, _ := s.clears.Get(lines)
	return n
}

// Pieces returns the number of pieces drawn this game.
func (s *Stats) Pieces() int { return s.pieces }

// Locks returns the number of pieces merged into the board this game.
func (s *Stats) Locks() int { return s.locks }
