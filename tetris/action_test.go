package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyStartsGame(t *testing.T) {
	e, rec := newTestEngine()
	e.piece = NewPiece(T)

	assert.True(t, e.Apply(ActionMoveLeft))
	assert.True(t, e.Session().Running())
	assert.Equal(t, 2, e.piece.X)
	assert.Equal(t, 1, rec.count(EventStarted))
}

func TestApplyStartOnlyStartsOnce(t *testing.T) {
	e, _ := newTestEngine()

	assert.True(t, e.Apply(ActionStart))
	assert.False(t, e.Apply(ActionStart))
	assert.False(t, e.Apply(ActionNone))
}

func TestApplySoftDropAwardsAcceptedSteps(t *testing.T) {
	e, _ := newTestEngine()
	e.piece = &Piece{Kind: O, Matrix: Rotations(O)[0], X: 0, Y: Rows - 3}

	assert.True(t, e.Apply(ActionSoftDrop))
	assert.Equal(t, SoftDropPoints, e.Session().Score)

	// the next step is blocked and locks the piece without a bonus
	assert.False(t, e.Apply(ActionSoftDrop))
	assert.Equal(t, SoftDropPoints, e.Session().Score)
	assert.Equal(t, O, e.board.At(0, Rows-1))
}

func TestApplyHardDrop(t *testing.T) {
	e, rec := newTestEngine()

	assert.True(t, e.Apply(ActionHardDrop))
	assert.True(t, e.Session().Running())
	assert.Equal(t, 1, rec.count(EventLocked))
	assert.GreaterOrEqual(t, e.Session().Score, 2)
}

func TestApplyIgnoredWhenOver(t *testing.T) {
	e, _ := newTestEngine()
	e.Start()
	blockSpawnArea(e)
	e.SpawnPiece()
	require.True(t, e.Session().Over())

	for _, a := range []Action{ActionMoveLeft, ActionMoveRight, ActionSoftDrop, ActionRotate, ActionHardDrop, ActionStart} {
		assert.False(t, e.Apply(a), a.String())
	}
	assert.Equal(t, 0, e.Session().Score)

	assert.True(t, e.Apply(ActionReset))
	assert.Equal(t, NotStarted, e.Session().Status)
	assert.Equal(t, Grid{}, e.Board())
}

func TestApplyRestart(t *testing.T) {
	e, _ := newTestEngine()
	e.Apply(ActionHardDrop)

	assert.True(t, e.Apply(ActionRestart))
	assert.True(t, e.Session().Running())
	assert.Equal(t, 0, e.Session().Score)
}

func TestApplyNewGameOnlyAfterGameOver(t *testing.T) {
	e, rec := newTestEngine()
	e.Start()
	e.Apply(ActionHardDrop)
	e.Apply(ActionHardDrop)

	session, board, piece := e.Session(), e.Board(), e.Piece()
	require.True(t, session.Running())
	require.Positive(t, session.Score)

	assert.False(t, e.Apply(ActionNewGame))
	assert.Equal(t, session, e.Session())
	assert.Equal(t, board, e.Board())
	assert.Equal(t, piece, e.Piece())
	assert.Equal(t, 1, rec.count(EventReset))

	blockSpawnArea(e)
	e.SpawnPiece()
	require.True(t, e.Session().Over())

	assert.True(t, e.Apply(ActionNewGame))
	assert.Equal(t, NotStarted, e.Session().Status)
	assert.Equal(t, 0, e.Session().Score)
	assert.Equal(t, session.Score, e.Session().Best)
}

func TestTouchAction(t *testing.T) {
	tests := []struct {
		name       string
		relX, relY float64
		want       Action
	}{
		{"top rotates", 0.5, 0.1, ActionRotate},
		{"top edge rotates", 0.0, 0.25, ActionRotate},
		{"bottom soft drops", 0.1, 0.9, ActionSoftDrop},
		{"bottom edge soft drops", 0.9, 0.75, ActionSoftDrop},
		{"left moves left", 0.2, 0.5, ActionMoveLeft},
		{"right moves right", 0.8, 0.5, ActionMoveRight},
		{"centre hard drops", 0.5, 0.5, ActionHardDrop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TouchAction(tt.relX, tt.relY))
		})
	}
}

func TestActionGameplay(t *testing.T) {
	assert.True(t, ActionRotate.Gameplay())
	assert.False(t, ActionReset.Gameplay())
	assert.False(t, ActionNewGame.Gameplay())
	assert.False(t, ActionNone.Gameplay())
}
