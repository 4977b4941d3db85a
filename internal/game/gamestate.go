package game

import (
	"context"
	"fmt"

	"github.com/samdwyer/mazerun/internal/entity"
	"github.com/samdwyer/mazerun/internal/maze"
)

// GameState owns one maze, the player on it and the goal cell.
// It is not safe for concurrent use.
type GameState struct {
	grid   *maze.Grid
	player *entity.Player
	goal   maze.Position
}

// NewGameState returns an empty state; call Reset before moving.
func NewGameState() *GameState {
	return &GameState{}
}

// Reset replaces the maze with a freshly generated one, puts the player on
// (1,1) and the goal on (width-2,height-2). On error the previous maze is kept.
func (s *GameState) Reset(ctx context.Context, width, height int, src maze.BoolSource) error {
	grid, err := maze.Generate(ctx, width, height, src)
	if err != nil {
		return err
	}

	s.grid = grid
	s.player = entity.NewPlayer(maze.Position{Col: 1, Row: 1})
	s.goal = maze.Position{Col: width - 2, Row: height - 2}
	return nil
}

// TryMove steps the player one cell in dir if the target is an open cell
// inside the grid. The grid itself is never modified.
// It panics if dir is not one of the four declared directions.
func (s *GameState) TryMove(dir maze.Direction) MoveResult {
	if !dir.Valid() {
		panic(fmt.Sprintf("game: invalid direction %d", int(dir)))
	}
	target := s.currentPosition().Add(dir)

	if s.grid == nil || !s.grid.IsOpen(target) {
		return MoveRejected
	}

	s.player.MoveTo(target)
	return MoveAccepted
}

// AtGoal returns true if the player stands on the goal cell.
func (s *GameState) AtGoal() bool {
	return s.player != nil && s.player.Pos == s.goal
}

// Grid returns the current maze, or nil before the first Reset.
func (s *GameState) Grid() *maze.Grid {
	return s.grid
}

// Player returns the player token, or nil before the first Reset.
func (s *GameState) Player() *entity.Player {
	return s.player
}

// Goal returns the goal cell.
func (s *GameState) Goal() maze.Position {
	return s.goal
}

func (s *GameState) currentPosition() maze.Position {
	if s.player == nil {
		return maze.Position{}
	}
	return s.player.Pos
}
