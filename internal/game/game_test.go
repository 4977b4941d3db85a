package game

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/mazerun/internal/logging"
	"github.com/samdwyer/mazerun/internal/maze"
	"github.com/samdwyer/mazerun/internal/ui"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()

	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := ui.NewScreenFrom(sim)
	require.NoError(t, err)
	t.Cleanup(screen.Close)
	sim.SetSize(80, 24)

	g, err := newGame(screen, Config{Size: 5}, heads{}, logging.Discard())
	require.NoError(t, err)
	require.NoError(t, g.session.Start(context.Background()))
	return g
}

func applyAll(t *testing.T, g *Game, actions ...action) {
	t.Helper()
	for _, a := range actions {
		require.NoError(t, g.apply(context.Background(), a))
	}
}

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want action
	}{
		{tcell.KeyUp, 0, actionUp},
		{tcell.KeyDown, 0, actionDown},
		{tcell.KeyLeft, 0, actionLeft},
		{tcell.KeyRight, 0, actionRight},
		{tcell.KeyEscape, 0, actionQuit},
		{tcell.KeyCtrlC, 0, actionQuit},
		{tcell.KeyRune, 'k', actionUp},
		{tcell.KeyRune, 'j', actionDown},
		{tcell.KeyRune, 'h', actionLeft},
		{tcell.KeyRune, 'l', actionRight},
		{tcell.KeyRune, 's', actionStart},
		{tcell.KeyRune, 'i', actionInfo},
		{tcell.KeyRune, 'Q', actionQuit},
		{tcell.KeyRune, 'z', actionNone},
		{tcell.KeyTab, 0, actionNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, decodeKey(tt.key, tt.r), "key %v rune %q", tt.key, tt.r)
	}
}

func TestGameMoveByDelta(t *testing.T) {
	ctx := context.Background()
	g := newTestGame(t)

	require.NoError(t, g.move(ctx, 1, 0))
	assert.Equal(t, pos(2, 1), g.session.State().Player().Pos)

	// Wall below (2,1) on the all-heads staircase.
	require.NoError(t, g.move(ctx, 0, 1))
	assert.Equal(t, pos(2, 1), g.session.State().Player().Pos)
}

func TestGameMoveRejectsInvalidDelta(t *testing.T) {
	ctx := context.Background()
	g := newTestGame(t)

	for _, d := range [][2]int{{0, 0}, {1, 1}, {2, 0}, {0, -2}} {
		err := g.move(ctx, d[0], d[1])
		assert.ErrorIs(t, err, maze.ErrInvalidDelta, "delta %v", d)
	}
	assert.Equal(t, pos(1, 1), g.session.State().Player().Pos)
	assert.Equal(t, 0, g.session.Moves())
}

func TestGameWinShowsDialogThenRestarts(t *testing.T) {
	g := newTestGame(t)

	applyAll(t, g, actionRight, actionRight, actionDown, actionDown)

	require.Equal(t, g.theme.Messages.Win, g.dialog)
	require.Equal(t, 1, g.session.Round(), "session restarted before the dialog was dismissed")
	g.render()

	// The key that dismisses the dialog is swallowed.
	applyAll(t, g, actionLeft)

	assert.Empty(t, g.dialog)
	assert.Equal(t, 2, g.session.Round())
	assert.Equal(t, PhasePlaying, g.session.Phase())
	assert.Equal(t, pos(1, 1), g.session.State().Player().Pos)

	// A second key press must not restart again.
	applyAll(t, g, actionLeft)
	assert.Equal(t, 2, g.session.Round())
}

func TestGameInfoDialogDoesNotRestart(t *testing.T) {
	g := newTestGame(t)
	applyAll(t, g, actionRight, actionInfo)
	require.Equal(t, g.theme.Messages.Info, g.dialog)

	applyAll(t, g, actionDown)

	assert.Empty(t, g.dialog)
	assert.Equal(t, 1, g.session.Round())
	assert.Equal(t, pos(2, 1), g.session.State().Player().Pos)
}

func TestGameStartRegenerates(t *testing.T) {
	g := newTestGame(t)

	applyAll(t, g, actionRight, actionStart)

	assert.Equal(t, 2, g.session.Round())
	assert.Equal(t, pos(1, 1), g.session.State().Player().Pos)
}

func TestGameQuit(t *testing.T) {
	g := newTestGame(t)

	applyAll(t, g, actionQuit)

	assert.False(t, g.running)
}
