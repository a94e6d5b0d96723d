package mazechase

import "github.com/vovakirdan/gamehub/internal/core"

// Command is an input the engine accepts. The set is closed: only the types
// in this file satisfy it.
type Command interface {
	mazechaseCommand()
}

// SetDirection buffers the player's next requested direction.
type SetDirection struct {
	Dir core.Direction
}

// TogglePause switches between running and paused.
type TogglePause struct{}

// ResetRequest starts a fresh session from any state.
type ResetRequest struct{}

func (SetDirection) mazechaseCommand() {}
func (TogglePause) mazechaseCommand()  {}
func (ResetRequest) mazechaseCommand() {}
