// Package tetris implements the falling-block simulation: the piece catalog,
// the seven-bag generator, the board with collision and line clearing, and the
// Engine state machine that drives spawning, movement, rotation, locking,
// scoring and gravity.
//
// An Engine is owned by a single goroutine. Every operation completes
// synchronously and none of them are safe for concurrent use.
package tetris

import (
	"math/rand/v2"
	"time"
)

// kickOffsets are the horizontal shifts tried, in order, when a rotation is
// blocked in place.
var kickOffsets = [...]int{0, -1, 1, -2, 2}

// Option configures an Engine.
type Option func(*Engine)

// WithRand draws pieces from rng.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.bag = NewBag(rng)
	}
}

// WithSeed draws pieces from a PCG source with the given seed.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// WithRules overrides the gravity timings.
func WithRules(rules Rules) Option {
	return func(e *Engine) {
		e.rules = rules
	}
}

// WithBestScore seeds the best score, usually from persistent storage.
func WithBestScore(best int) Option {
	return func(e *Engine) {
		e.session.Best = max(0, best)
	}
}

// WithListener registers a listener for engine events.
func WithListener(l Listener) Option {
	return func(e *Engine) {
		e.listeners = append(e.listeners, l)
	}
}

// Engine owns the board, the bag, the active piece and the session.
type Engine struct {
	rules       Rules
	board       *Board
	bag         *Bag
	piece       *Piece
	session     Session
	stats       *Stats
	accumulator time.Duration
	listeners   []Listener
}

// NewEngine creates an engine with a fresh game in the not-started state and
// its first piece already spawned.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		rules: DefaultRules(),
		board: NewBoard(),
		stats: newStats(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.bag == nil {
		e.bag = NewBag(nil)
	}
	e.reset()
	return e
}

// AddListener registers a listener after construction.
func (e *Engine) AddListener(l Listener) {
	e.listeners = append(e.listeners, l)
}

// Rules returns the gravity timings in use.
func (e *Engine) Rules() Rules { return e.rules }

// Session returns a copy of the scoreboard.
func (e *Engine) Session() Session { return e.session }

// Stats returns the counters of the current game.
func (e *Engine) Stats() *Stats { return e.stats }

// Piece returns a copy of the active piece, or nil when there is none.
func (e *Engine) Piece() *Piece {
	if e.piece == nil {
		return nil
	}
	p := *e.piece
	return &p
}

// Board returns a copy of the board cells.
func (e *Engine) Board() Grid { return e.board.Grid() }

// Reset discards the current game and prepares a new one in the not-started
// state. The best score is kept.
func (e *Engine) Reset() {
	e.reset()
}

func (e *Engine) reset() {
	e.board.Reset()
	e.bag.Reset()
	e.stats.reset()
	e.piece = nil
	e.accumulator = 0
	e.session = Session{
		Status:       NotStarted,
		DropInterval: e.rules.DropIntervalStart,
		Best:         e.session.Best,
	}
	e.emit(Event{Type: EventReset, Best: e.session.Best})
	e.SpawnPiece()
}

// Start moves a not-started game to running. It reports whether the state
// changed.
func (e *Engine) Start() bool {
	if e.session.Status != NotStarted {
		return false
	}
	e.session.Status = Running
	e.emit(Event{Type: EventStarted, Score: e.session.Score, Best: e.session.Best})
	return true
}

// Restart resets the game and starts it immediately.
func (e *Engine) Restart() {
	e.reset()
	e.Start()
}

// SpawnPiece draws the next kind from the bag and places it at the spawn
// position. If the spawn position is blocked the game is over and no piece is
// placed; SpawnPiece then returns false.
func (e *Engine) SpawnPiece() bool {
	k := e.bag.Draw()
	e.stats.recordDeal(k)
	p := NewPiece(k)
	if e.board.Collides(p, 0, 0) {
		e.piece = nil
		e.gameOver()
		return false
	}
	e.piece = p
	e.emit(Event{Type: EventSpawned, Kind: k, Score: e.session.Score, Best: e.session.Best})
	return true
}

func (e *Engine) gameOver() {
	prev := e.session.Best
	e.session.Status = Over
	beaten := e.session.Score > prev
	if beaten {
		e.session.Best = e.session.Score
	}
	e.emit(Event{
		Type:     EventGameOver,
		Score:    e.session.Score,
		Best:     e.session.Best,
		PrevBest: prev,
		NewBest:  beaten,
	})
}

// MovePiece shifts the active piece by (dx, dy) when the destination is free and
// reports whether it moved. A blocked downward move locks the piece: it is
// merged, full lines are cleared and scored, and the next piece spawns.
func (e *Engine) MovePiece(dx, dy int) bool {
	if e.piece == nil {
		return false
	}
	if !e.board.Collides(e.piece, dx, dy) {
		e.piece.X += dx
		e.piece.Y += dy
		return true
	}
	if dy > 0 {
		e.lock()
	}
	return false
}

func (e *Engine) lock() {
	p := e.piece
	dropped := e.board.Merge(p)
	cleared := e.board.ClearLines()
	e.stats.recordLock(cleared)

	points := LineClearPoints(cleared)
	if cleared > 0 {
		e.session.Score += points
		e.session.Lines += cleared
		e.session.DropInterval = e.rules.NextInterval(e.session.DropInterval, cleared)
	}

	e.emit(Event{
		Type:    EventLocked,
		Kind:    p.Kind,
		Lines:   cleared,
		Points:  points,
		Dropped: dropped,
		Score:   e.session.Score,
		Best:    e.session.Best,
	})
	if cleared > 0 {
		e.emit(Event{
			Type:   EventLinesCleared,
			Kind:   p.Kind,
			Lines:  cleared,
			Points: points,
			Score:  e.session.Score,
			Best:   e.session.Best,
		})
	}

	e.SpawnPiece()
}

// RotatePiece turns the active piece to its next rotation state, trying the
// kick offsets in order. It reports whether the rotation was applied.
func (e *Engine) RotatePiece() bool {
	if e.piece == nil {
		return false
	}
	idx, m := e.piece.next()
	for _, kick := range kickOffsets {
		if e.board.CollidesWith(e.piece, kick, 0, m) {
			continue
		}
		e.piece.Rotation = idx
		e.piece.Matrix = m
		e.piece.X += kick
		return true
	}
	return false
}

// HardDrop drops the active piece straight down, awards the drop points and
// locks it. It returns the number of rows fallen.
func (e *Engine) HardDrop() int {
	if e.piece == nil {
		return 0
	}
	distance := 0
	for !e.board.Collides(e.piece, 0, 1) {
		e.piece.Y++
		distance++
	}
	e.session.Score += HardDropPoints(distance)
	e.MovePiece(0, 1)
	return distance
}

// Tick advances the gravity clock by dt. Once the accumulated time reaches the
// drop interval the piece steps down one row and the clock restarts from zero.
// Tick does nothing unless the game is running.
func (e *Engine) Tick(dt time.Duration) {
	if e.session.Status != Running {
		return
	}
	e.accumulator += dt
	if e.accumulator >= e.session.DropInterval {
		e.MovePiece(0, 1)
		e.accumulator = 0
	}
}

// GhostY returns the row the active piece would land on if dropped, or its
// current row when there is no room to fall. Without a piece it returns 0.
func (e *Engine) GhostY() int {
	if e.piece == nil {
		return 0
	}
	dy := 0
	for !e.board.Collides(e.piece, 0, dy+1) {
		dy++
	}
	return e.piece.Y + dy
}

func (e *Engine) emit(ev Event) {
	for _, l := range e.listeners {
		l(ev)
	}
}
