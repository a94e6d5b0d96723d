package blockstack

// Command is an input the engine accepts. The set is closed: only the types
// in this file satisfy it.
type Command interface {
	blockstackCommand()
}

// MoveLeft shifts the active piece one column left.
type MoveLeft struct{}

// MoveRight shifts the active piece one column right.
type MoveRight struct{}

// SoftDrop moves the active piece down one row, locking it if it cannot move.
type SoftDrop struct{}

// Rotate turns the active piece clockwise in place.
type Rotate struct{}

// TogglePause switches between running and paused.
type TogglePause struct{}

// ResetRequest starts a fresh session from any state.
type ResetRequest struct{}

func (MoveLeft) blockstackCommand()     {}
func (MoveRight) blockstackCommand()    {}
func (SoftDrop) blockstackCommand()     {}
func (Rotate) blockstackCommand()       {}
func (TogglePause) blockstackCommand()  {}
func (ResetRequest) blockstackCommand() {}
