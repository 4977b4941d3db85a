// Package entity provides the player token that moves through the maze.
package entity

import "github.com/samdwyer/mazerun/internal/maze"

// Player is the token controlled by the user.
type Player struct {
	Pos maze.Position // Current cell
}

// NewPlayer creates a player at the given position.
func NewPlayer(pos maze.Position) *Player {
	return &Player{Pos: pos}
}

// MoveTo places the player on pos.
func (p *Player) MoveTo(pos maze.Position) {
	p.Pos = pos
}
