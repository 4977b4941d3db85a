// Package game provides the maze game state, the session controller and the terminal loop.
package game

// Phase represents where a session is in its lifecycle.
type Phase int

const (
	// PhaseIdle is the state before the first maze is generated.
	PhaseIdle Phase = iota
	// PhasePlaying accepts moves on the current maze.
	PhasePlaying
	// PhaseWon is entered when the player reaches the goal and lasts until the next start.
	PhaseWon
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// MoveResult reports whether a move was applied.
type MoveResult int

const (
	// MoveRejected means the target was a wall or off the grid; the player did not move.
	MoveRejected MoveResult = iota
	// MoveAccepted means the player now stands on the target cell.
	MoveAccepted
)

// String returns a human-readable result name.
func (r MoveResult) String() string {
	switch r {
	case MoveRejected:
		return "rejected"
	case MoveAccepted:
		return "accepted"
	default:
		return "unknown"
	}
}
