package maze

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazerun/internal/telemetry"
)

const (
	// DefaultSize is the side length of a default square maze.
	DefaultSize = 20
	// MinSize is the smallest width or height that leaves room for a path.
	MinSize = 3
)

// ErrTooSmall is returned when a requested maze has a side shorter than MinSize.
var ErrTooSmall = errors.New("maze: dimensions too small")

// BoolSource yields the coin flips that steer generation.
type BoolSource interface {
	Bool() bool
}

// RandSource adapts a *rand.Rand to BoolSource.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource wraps rng as a BoolSource.
func NewRandSource(rng *rand.Rand) *RandSource {
	return &RandSource{rng: rng}
}

// SeededSource returns a BoolSource seeded with seed.
// A seed of 0 means a time-based seed is used.
func SeededSource(seed int64) *RandSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewRandSource(rand.New(rand.NewSource(seed)))
}

// Bool returns the next pseudo-random boolean.
func (s *RandSource) Bool() bool {
	return s.rng.Intn(2) == 1
}

// Generate carves a single staircase path from (1,1) to (width-2,height-2).
//
// Starting at (1,1) the cursor repeatedly flips a coin: heads moves it one
// column right while columns remain, otherwise it moves one row down while
// rows remain. Every visited cell is opened; everything else stays wall.
// Exactly one value is drawn from src per step, including steps where the
// cursor cannot move.
func Generate(ctx context.Context, width, height int, src BoolSource) (*Grid, error) {
	if width < MinSize || height < MinSize {
		return nil, fmt.Errorf("%w: %dx%d (minimum %dx%d)", ErrTooSmall, width, height, MinSize, MinSize)
	}

	tracer := telemetry.Tracer("maze")
	_, span := tracer.Start(ctx, "maze.generate")
	defer span.End()

	startTime := time.Now()

	g := newGrid(width, height)
	cursor := Position{Col: 1, Row: 1}
	g.open(cursor)

	lastCol, lastRow := width-2, height-2
	steps := 0
	for cursor.Col < lastCol || cursor.Row < lastRow {
		if src.Bool() && cursor.Col < lastCol {
			cursor.Col++
		} else if cursor.Row < lastRow {
			cursor.Row++
		}
		g.open(cursor)
		steps++
	}

	g.open(Position{Col: 1, Row: 1})
	g.open(Position{Col: lastCol, Row: lastRow})

	span.SetAttributes(
		attribute.Int("maze.width", width),
		attribute.Int("maze.height", height),
		attribute.Int("maze.steps", steps),
		attribute.Int("maze.open_cells", len(g.OpenCells())),
		attribute.Int64("maze.generation_us", time.Since(startTime).Microseconds()),
	)

	return g, nil
}
