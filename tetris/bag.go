package tetris

import "math/rand/v2"

// Bag deals piece kinds in shuffled cycles of seven so that every kind appears
// exactly once per cycle.
type Bag struct {
	rng     *rand.Rand
	pending []Kind
}

// NewBag creates an empty bag drawing from rng. A nil rng uses a randomly
// seeded source.
func NewBag(rng *rand.Rand) *Bag {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Bag{
		rng:     rng,
		pending: make([]Kind, 0, len(AllKinds)),
	}
}

// Draw removes and returns the next kind, refilling the bag first when it is
// empty.
func (b *Bag) Draw() Kind {
	if len(b.pending) == 0 {
		b.refill()
	}
	last := len(b.pending) - 1
	k := b.pending[last]
	b.pending = b.pending[:last]
	return k
}

// Remaining returns how many kinds are left in the current cycle.
func (b *Bag) Remaining() int {
	return len(b.pending)
}

// Reset discards the current cycle.
func (b *Bag) Reset() {
	b.pending = b.pending[:0]
}

func (b *Bag) refill() {
	b.pending = append(b.pending[:0], AllKinds[:]...)
	for i := len(b.pending) - 1; i > 0; i-- {
		j := b.rng.IntN(i + 1)
		b.pending[i], b.pending[j] = b.pending[j], b.pending[i]
	}
}
