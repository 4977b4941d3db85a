package game

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazerun/internal/maze"
	"github.com/samdwyer/mazerun/internal/telemetry"
)

// Outcome is what a single directional input produced.
type Outcome struct {
	Result MoveResult
	// Won is true only for the accepted move that landed on the goal.
	Won bool
}

// Session drives one GameState through Idle, Playing and Won.
//
// Reaching the goal moves the session to PhaseWon and reports Won exactly
// once. Input is ignored until Start is called again, which is how the
// caller acknowledges the win and gets a fresh maze.
type Session struct {
	ID     string
	config Config
	src    maze.BoolSource
	state  *GameState
	phase  Phase
	log    logrus.FieldLogger

	round int
	moves int
	wins  int
}

// NewSession creates an idle session that generates mazes from src.
func NewSession(cfg Config, src maze.BoolSource, log logrus.FieldLogger) *Session {
	id := uuid.NewString()
	return &Session{
		ID:     id,
		config: cfg,
		src:    src,
		state:  NewGameState(),
		phase:  PhaseIdle,
		log:    log.WithField("session", id),
	}
}

// Start generates a new maze and begins a round. It is valid in every phase.
func (s *Session) Start(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.start")
	defer span.End()

	if err := s.state.Reset(ctx, s.config.Size, s.config.Size, s.src); err != nil {
		span.RecordError(err)
		return err
	}

	s.round++
	s.moves = 0
	s.phase = PhasePlaying

	span.SetAttributes(
		attribute.String("session.id", s.ID),
		attribute.Int("session.round", s.round),
		attribute.Int("maze.size", s.config.Size),
	)
	s.log.WithFields(logrus.Fields{
		"round": s.round,
		"size":  s.config.Size,
	}).Info("maze generated")
	s.log.Debugf("maze layout:\n%s", s.state.Grid())

	return nil
}

// HandleInput applies one directional input.
func (s *Session) HandleInput(ctx context.Context, dir maze.Direction) Outcome {
	if s.phase != PhasePlaying {
		return Outcome{Result: MoveRejected}
	}

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "session.move")
	defer span.End()

	result := s.state.TryMove(dir)
	out := Outcome{Result: result}
	if result == MoveAccepted {
		s.moves++
		if s.state.AtGoal() {
			s.phase = PhaseWon
			s.wins++
			out.Won = true
			s.log.WithFields(logrus.Fields{
				"round": s.round,
				"moves": s.moves,
				"wins":  s.wins,
			}).Info("goal reached")
		}
	}

	player := s.state.Player().Pos
	span.SetAttributes(
		attribute.String("move.direction", dir.String()),
		attribute.String("move.result", result.String()),
		attribute.Int("player.col", player.Col),
		attribute.Int("player.row", player.Row),
		attribute.Bool("move.won", out.Won),
	)
	return out
}

// State returns the game state for rendering.
func (s *Session) State() *GameState { return s.state }

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Round returns how many mazes have been started.
func (s *Session) Round() int { return s.round }

// Moves returns the accepted moves in the current round.
func (s *Session) Moves() int { return s.moves }

// Wins returns how many times the goal has been reached.
func (s *Session) Wins() int { return s.wins }
