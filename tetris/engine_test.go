package tetris

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type eventRecorder struct {
	events []Event
}

func (r *eventRecorder) listen(ev Event) {
	r.events = append(r.events, ev)
}

func (r *eventRecorder) count(t EventType) int {
	n := 0
	for _, ev := range r.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func (r *eventRecorder) last(t EventType) (Event, bool) {
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Type == t {
			return r.events[i], true
		}
	}
	return Event{}, false
}

func newTestEngine(opts ...Option) (*Engine, *eventRecorder) {
	rec := &eventRecorder{}
	opts = append([]Option{WithSeed(1), WithListener(rec.listen)}, opts...)
	return NewEngine(opts...), rec
}

// verticalI places a vertical I so that its cells occupy column x on rows
// top..top+3.
func verticalI(x, top int) *Piece {
	return &Piece{
		Kind:     I,
		Rotation: 1,
		Matrix:   Rotations(I)[1],
		X:        x - 2,
		Y:        top,
	}
}

func TestNewEngineInitialState(t *testing.T) {
	e, rec := newTestEngine()

	s := e.Session()
	assert.Equal(t, NotStarted, s.Status)
	assert.False(t, s.Started())
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 0, s.Lines)
	assert.Equal(t, 900*time.Millisecond, s.DropInterval)
	assert.Equal(t, Grid{}, e.Board())
	require.NotNil(t, e.Piece())
	assert.Equal(t, 1, rec.count(EventSpawned))
	assert.Equal(t, 1, e.Stats().Pieces())
}

func TestStartTransitions(t *testing.T) {
	e, rec := newTestEngine()

	assert.True(t, e.Start())
	assert.True(t, e.Session().Running())
	assert.False(t, e.Start(), "already running")
	assert.Equal(t, 1, rec.count(EventStarted))
}

func TestMovePiece(t *testing.T) {
	e, _ := newTestEngine()
	e.piece = NewPiece(O)

	assert.True(t, e.MovePiece(-1, 0))
	assert.Equal(t, 3, e.piece.X)
	assert.True(t, e.MovePiece(1, 0))
	assert.True(t, e.MovePiece(0, 1))
	assert.Equal(t, 1, e.piece.Y)

	for e.MovePiece(1, 0) {
	}
	assert.Equal(t, Cols-2, e.piece.X)
	assert.False(t, e.MovePiece(1, 0), "sideways block does not lock")
	assert.Equal(t, Grid{}, e.Board())
}

func TestMoveDownLocksExactlyOnce(t *testing.T) {
	e, rec := newTestEngine()
	first := e.piece
	spawned := rec.count(EventSpawned)

	steps := 0
	for e.MovePiece(0, 1) {
		steps++
		require.Less(t, steps, Rows+2)
	}

	assert.Equal(t, 1, rec.count(EventLocked))
	assert.Equal(t, spawned+1, rec.count(EventSpawned))
	assert.NotSame(t, first, e.piece)
	require.NotNil(t, e.piece)

	cells := 0
	grid := e.Board()
	for y := range grid {
		for x := range grid[y] {
			if grid[y][x] != None {
				assert.Equal(t, first.Kind, grid[y][x])
				cells++
			}
		}
	}
	assert.Equal(t, 4, cells)
}

func TestLineClearScoring(t *testing.T) {
	for lines := 0; lines <= 4; lines++ {
		t.Run(fmt.Sprintf("%d lines", lines), func(t *testing.T) {
			e, rec := newTestEngine()
			for y := Rows - lines; y < Rows; y++ {
				for x := 1; x < Cols; x++ {
					e.board.Set(x, y, L)
				}
			}
			e.piece = verticalI(0, Rows-4)

			assert.False(t, e.MovePiece(0, 1))

			s := e.Session()
			assert.Equal(t, LineClearPoints(lines), s.Score)
			assert.Equal(t, lines, s.Lines)
			assert.Equal(t, 900*time.Millisecond-time.Duration(lines)*35*time.Millisecond, s.DropInterval)

			locked, ok := rec.last(EventLocked)
			require.True(t, ok)
			assert.Equal(t, lines, locked.Lines)
			assert.Equal(t, 1, e.Stats().Clears(lines))
			assert.Equal(t, min(lines, 1), rec.count(EventLinesCleared))
			assert.True(t, e.Session().Status != Over)
		})
	}
}

func TestScoreTable(t *testing.T) {
	assert.Equal(t, 0, LineClearPoints(0))
	assert.Equal(t, 100, LineClearPoints(1))
	assert.Equal(t, 250, LineClearPoints(2))
	assert.Equal(t, 500, LineClearPoints(3))
	assert.Equal(t, 800, LineClearPoints(4))
	assert.Equal(t, 1250, LineClearPoints(5))
	assert.Equal(t, 2, HardDropPoints(0))
	assert.Equal(t, 2, HardDropPoints(1))
	assert.Equal(t, 36, HardDropPoints(18))
}

func TestDropIntervalFloor(t *testing.T) {
	r := DefaultRules()
	assert.Equal(t, 760*time.Millisecond, r.NextInterval(900*time.Millisecond, 4))
	assert.Equal(t, 120*time.Millisecond, r.NextInterval(130*time.Millisecond, 1))
	assert.Equal(t, 120*time.Millisecond, r.NextInterval(120*time.Millisecond, 4))
}

func TestRotateKickOrder(t *testing.T) {
	e, _ := newTestEngine()
	e.piece = &Piece{Kind: T, Matrix: Rotations(T)[0], X: 3, Y: 5}

	// blocks the next rotation in place but neither kick to the side
	e.board.Set(4, 7, Z)

	require.True(t, e.RotatePiece())
	assert.Equal(t, 1, e.piece.Rotation)
	assert.Equal(t, 2, e.piece.X, "offset -1 is tried before +1")
	assert.Equal(t, Rotations(T)[1], e.piece.Matrix)
}

func TestRotateKicksOffWall(t *testing.T) {
	e, _ := newTestEngine()
	// vertical I hugging the right wall
	e.piece = verticalI(Cols-1, 5)

	require.True(t, e.RotatePiece())
	assert.Equal(t, 0, e.piece.Rotation)
	assert.Equal(t, Cols-4, e.piece.X)
}

func TestRotateBlockedIsNoop(t *testing.T) {
	e, _ := newTestEngine()
	p := verticalI(4, 10)
	e.piece = p
	for x := 0; x < Cols; x++ {
		if x != 4 {
			e.board.Set(x, 11, S)
		}
	}

	assert.False(t, e.RotatePiece())
	assert.Equal(t, 1, p.Rotation)
	assert.Equal(t, 2, p.X)
}

func TestRotateCycles(t *testing.T) {
	e, _ := newTestEngine()
	e.piece = &Piece{Kind: J, Matrix: Rotations(J)[0], X: 3, Y: 5}

	for i := 1; i <= 4; i++ {
		require.True(t, e.RotatePiece())
		assert.Equal(t, i%4, e.piece.Rotation)
	}
	assert.Equal(t, 3, e.piece.X)

	e.piece = &Piece{Kind: O, Matrix: Rotations(O)[0], X: 4, Y: 5}
	assert.True(t, e.RotatePiece())
	assert.Equal(t, 0, e.piece.Rotation)
}

func TestHardDrop(t *testing.T) {
	e, rec := newTestEngine()
	e.piece = NewPiece(T)

	assert.Equal(t, Rows-2, e.HardDrop())
	assert.Equal(t, HardDropPoints(Rows-2), e.Session().Score)
	assert.Equal(t, 1, rec.count(EventLocked))
	assert.Equal(t, T, e.board.At(4, Rows-2))
	assert.Equal(t, T, e.board.At(3, Rows-1))
}

func TestHardDropNoDistance(t *testing.T) {
	e, _ := newTestEngine()
	e.piece = &Piece{Kind: O, Matrix: Rotations(O)[0], X: 0, Y: Rows - 2}

	assert.Equal(t, 0, e.HardDrop())
	assert.Equal(t, 2, e.Session().Score)
}

func TestNilPieceIsNoop(t *testing.T) {
	e, _ := newTestEngine()
	e.piece = nil

	assert.False(t, e.MovePiece(0, 1))
	assert.False(t, e.RotatePiece())
	assert.Equal(t, 0, e.HardDrop())
	assert.Equal(t, 0, e.Session().Score)
	assert.Equal(t, 0, e.GhostY())
}

// blockSpawnArea fills the top two rows across the spawn columns without
// completing a line.
func blockSpawnArea(e *Engine) {
	for y := 0; y < 2; y++ {
		for x := 3; x <= 6; x++ {
			e.board.Set(x, y, Z)
		}
	}
}

func TestSpawnCollisionEndsGame(t *testing.T) {
	e, rec := newTestEngine(WithBestScore(100))
	e.Start()
	e.session.Score = 300
	blockSpawnArea(e)

	assert.False(t, e.SpawnPiece())
	s := e.Session()
	assert.True(t, s.Over())
	assert.Nil(t, e.Piece())
	assert.Equal(t, 300, s.Best)

	ev, ok := rec.last(EventGameOver)
	require.True(t, ok)
	assert.True(t, ev.NewBest)
	assert.Equal(t, 100, ev.PrevBest)
	assert.Equal(t, 300, ev.Best)
	assert.Equal(t, 300, ev.Score)
}

func TestGameOverKeepsHigherBest(t *testing.T) {
	e, rec := newTestEngine(WithBestScore(500))
	e.Start()
	e.session.Score = 200
	blockSpawnArea(e)

	e.SpawnPiece()
	assert.True(t, e.Session().Over())
	assert.Equal(t, 500, e.Session().Best)

	ev, ok := rec.last(EventGameOver)
	require.True(t, ok)
	assert.False(t, ev.NewBest)
}

func TestGameOverThroughLock(t *testing.T) {
	e, rec := newTestEngine()
	e.Start()
	blockSpawnArea(e)
	e.piece = &Piece{Kind: O, Matrix: Rotations(O)[0], X: 0, Y: Rows - 2}

	assert.False(t, e.MovePiece(0, 1))
	assert.True(t, e.Session().Over())
	assert.Equal(t, 1, rec.count(EventGameOver))

	// input and gravity are inert once over
	assert.False(t, e.MovePiece(-1, 0))
	e.Tick(time.Hour)
	assert.True(t, e.Session().Over())
}

func TestHardDropPointsCountTowardBest(t *testing.T) {
	e, rec := newTestEngine()
	e.Start()
	blockSpawnArea(e)
	e.piece = &Piece{Kind: O, Matrix: Rotations(O)[0], X: 0, Y: Rows - 4}

	assert.Equal(t, 2, e.HardDrop())
	s := e.Session()
	require.True(t, s.Over())
	assert.Equal(t, HardDropPoints(2), s.Score)
	assert.Equal(t, s.Score, s.Best)

	ev, ok := rec.last(EventGameOver)
	require.True(t, ok)
	assert.Equal(t, HardDropPoints(2), ev.Score)
	assert.True(t, ev.NewBest)
}

func TestResetIsIdempotent(t *testing.T) {
	e, _ := newTestEngine(WithBestScore(40))
	e.Start()
	e.HardDrop()
	e.HardDrop()

	e.Reset()
	first := e.Snapshot()
	e.Reset()
	second := e.Snapshot()

	for _, snap := range []Snapshot{first, second} {
		assert.Equal(t, Grid{}, snap.Board)
		assert.Equal(t, Session{
			Status:       NotStarted,
			DropInterval: DefaultRules().DropIntervalStart,
			Best:         40,
		}, snap.Session)
		require.NotNil(t, snap.Piece)
		assert.Equal(t, 0, snap.Piece.Rotation)
		assert.Equal(t, NewPiece(snap.Piece.Kind).X, snap.Piece.X)
		assert.Equal(t, NewPiece(snap.Piece.Kind).Y, snap.Piece.Y)
		assert.Equal(t, [MaxClearSize + 1]int{}, snap.Clears)
	}
	assert.Equal(t, first.Board, second.Board)
	assert.Equal(t, first.Session, second.Session)
	assert.Equal(t, 6, e.bag.Remaining())
}

func TestRestartStartsImmediately(t *testing.T) {
	e, _ := newTestEngine()
	e.Start()
	blockSpawnArea(e)
	e.SpawnPiece()
	require.True(t, e.Session().Over())

	e.Restart()
	assert.True(t, e.Session().Running())
	assert.NotNil(t, e.Piece())
	assert.Equal(t, Grid{}, e.Board())
}

func TestGravityTick(t *testing.T) {
	e, _ := newTestEngine()
	e.piece = NewPiece(T)

	e.Tick(time.Second)
	assert.Equal(t, 0, e.piece.Y, "gravity waits for start")

	e.Start()
	e.Tick(899 * time.Millisecond)
	assert.Equal(t, 0, e.piece.Y)
	e.Tick(time.Millisecond)
	assert.Equal(t, 1, e.piece.Y)

	// an oversized delta still moves a single row and restarts the clock
	e.Tick(3 * time.Second)
	assert.Equal(t, 2, e.piece.Y)
	assert.Equal(t, time.Duration(0), e.accumulator)
}

func TestGhostY(t *testing.T) {
	e, _ := newTestEngine()
	e.piece = NewPiece(O)
	assert.Equal(t, Rows-2, e.GhostY())

	e.board.Set(4, 10, L)
	assert.Equal(t, 8, e.GhostY())
	assert.Equal(t, 0, e.piece.Y, "projection does not move the piece")
}

func TestStatsCountDeals(t *testing.T) {
	e, _ := newTestEngine()
	e.Start()
	for i := 0; i < 5; i++ {
		e.HardDrop()
	}

	total := 0
	for _, k := range AllKinds {
		total += e.Stats().Dealt(k)
	}
	assert.Equal(t, e.Stats().Pieces(), total)
	assert.Equal(t, 6, total)
	assert.Equal(t, 5, e.Stats().Locks())
}
