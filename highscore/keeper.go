package highscore

import "github.com/plus3/blockfall/tetris"

// Keeper writes the best score to a Store whenever a game ends with a new best.
type Keeper struct {
	store Store
	best  int
	// OnError is called when saving fails. The game continues either way.
	OnError func(error)
}

// NewKeeper loads the current best score from store. A failed load starts from
// zero and is reported through the returned error.
func NewKeeper(store Store) (*Keeper, error) {
	best, err := LoadOrZero(store)
	return &Keeper{store: store, best: best}, err
}

// Best returns the best score known to the keeper.
func (k *Keeper) Best() int {
	return k.best
}

// Listen is a tetris.Listener.
func (k *Keeper) Listen(ev tetris.Event) {
	if ev.Type != tetris.EventGameOver || ev.Best <= k.best {
		return
	}
	k.best = ev.Best
	if err := k.store.Save(ev.Best); err != nil && k.OnError != nil {
		k.OnError(err)
	}
}
