package tetris

// Action is a discrete player request.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionRotate
	ActionHardDrop
	ActionStart
	ActionReset
	ActionRestart
	// ActionNewGame resets a finished game and does nothing otherwise.
	ActionNewGame
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionMoveLeft:
		return "move left"
	case ActionMoveRight:
		return "move right"
	case ActionSoftDrop:
		return "soft drop"
	case ActionRotate:
		return "rotate"
	case ActionHardDrop:
		return "hard drop"
	case ActionStart:
		return "start"
	case ActionReset:
		return "reset"
	case ActionRestart:
		return "restart"
	case ActionNewGame:
		return "new game"
	}
	return "unknown"
}

// Gameplay reports whether the action manipulates the active piece.
func (a Action) Gameplay() bool {
	switch a {
	case ActionMoveLeft, ActionMoveRight, ActionSoftDrop, ActionRotate, ActionHardDrop:
		return true
	}
	return false
}

// Apply performs a player action the way the input handlers do. Gameplay
// actions start a game that has not started yet and are ignored once the game
// is over. An accepted soft drop step earns SoftDropPoints. Apply reports
// whether the action was accepted.
func (e *Engine) Apply(a Action) bool {
	switch a {
	case ActionStart:
		return e.Start()
	case ActionReset:
		e.Reset()
		return true
	case ActionRestart:
		e.Restart()
		return true
	case ActionNewGame:
		if e.session.Status != Over {
			return false
		}
		e.Reset()
		return true
	}
	if !a.Gameplay() {
		return false
	}

	started := e.Start()
	if e.session.Status == Over {
		return started
	}

	switch a {
	case ActionMoveLeft:
		return e.MovePiece(-1, 0) || started
	case ActionMoveRight:
		return e.MovePiece(1, 0) || started
	case ActionRotate:
		return e.RotatePiece() || started
	case ActionSoftDrop:
		if e.MovePiece(0, 1) {
			e.session.Score += SoftDropPoints
			return true
		}
		return started
	case ActionHardDrop:
		e.HardDrop()
		return true
	}
	return started
}

// TouchAction maps a tap at a position relative to the playfield, both axes in
// [0, 1], to an action: the top quarter rotates, the bottom quarter soft-drops,
// the left and right thirds move, and the centre hard-drops.
func TouchAction(relX, relY float64) Action {
	switch {
	case relY <= 0.25:
		return ActionRotate
	case relY >= 0.75:
		return ActionSoftDrop
	case relX <= 0.33:
		return ActionMoveLeft
	case relX >= 0.67:
		return ActionMoveRight
	}
	return ActionHardDrop
}
