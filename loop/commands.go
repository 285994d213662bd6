package loop

import "github.com/plus3/blockfall/tetris"

// Commands buffers player actions and deferred functions until the end of a
// frame, when they are applied in the order they were queued.
type Commands struct {
	actions []tetris.Action
	defers  []func()
	applied []Result
}

// Result records the outcome of an applied action.
type Result struct {
	Action   tetris.Action
	Accepted bool
}

func newCommands() *Commands {
	return &Commands{}
}

// Apply queues a player action.
func (c *Commands) Apply(action tetris.Action) {
	if action == tetris.ActionNone {
		return
	}
	c.actions = append(c.actions, action)
}

// Defer queues a function to run after the frame's actions.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Pending returns the number of queued actions.
func (c *Commands) Pending() int {
	return len(c.actions)
}

// Applied returns the results of the last flush.
func (c *Commands) Applied() []Result {
	return c.applied
}

// Flush applies all queued actions to the engine and then runs the deferred
// functions. Actions queued by a deferred function stay pending for the next
// flush.
func (c *Commands) Flush(engine *tetris.Engine) {
	actions := c.actions
	c.actions = nil
	c.applied = c.applied[:0]
	for _, action := range actions {
		c.applied = append(c.applied, Result{
			Action:   action,
			Accepted: engine.Apply(action),
		})
	}

	defers := c.defers
	c.defers = nil
	for _, fn := range defers {
		fn()
	}
}
