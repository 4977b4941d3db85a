package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/mazerun/internal/entity"
	"github.com/samdwyer/mazerun/internal/gamedata"
	"github.com/samdwyer/mazerun/internal/maze"
)

func newTestRenderer(t *testing.T, w, h int) (*Renderer, tcell.SimulationScreen) {
	t.Helper()

	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := NewScreenFrom(sim)
	require.NoError(t, err)
	t.Cleanup(screen.Close)
	sim.SetSize(w, h)

	theme, err := gamedata.LoadTheme()
	require.NoError(t, err)
	return NewRenderer(screen, theme), sim
}

func runeAt(sim tcell.SimulationScreen, x, y int) rune {
	mainc, _, _, _ := sim.GetContent(x, y)
	return mainc
}

func rowText(sim tcell.SimulationScreen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		b.WriteRune(runeAt(sim, x, y))
	}
	return b.String()
}

func TestRenderDrawsMazePlayerAndGoal(t *testing.T) {
	r, sim := newTestRenderer(t, 60, 10)
	grid := maze.ParseGrid(
		"#####",
		"#...#",
		"###.#",
		"###.#",
		"#####",
	)

	r.Render(Scene{
		Grid:   grid,
		Player: entity.NewPlayer(maze.Position{Col: 2, Row: 1}),
		Goal:   maze.Position{Col: 3, Row: 3},
		Round:  2,
		Moves:  1,
	})

	assert.Equal(t, "#####", rowText(sim, 0, 5))
	assert.Equal(t, "#.@.#", rowText(sim, 1, 5))
	assert.Equal(t, "###X#", rowText(sim, 3, 5))
	assert.True(t, strings.HasPrefix(rowText(sim, 5, 60), "Round 2  Moves 1  Wins 0"))
}

func TestRenderGoalCoversPlayer(t *testing.T) {
	r, sim := newTestRenderer(t, 60, 10)
	grid := maze.ParseGrid("###", "#.#", "###")

	r.Render(Scene{
		Grid:   grid,
		Player: entity.NewPlayer(maze.Position{Col: 1, Row: 1}),
		Goal:   maze.Position{Col: 1, Row: 1},
	})

	assert.Equal(t, 'X', runeAt(sim, 1, 1))
}

func TestRenderDialog(t *testing.T) {
	r, sim := newTestRenderer(t, 80, 24)
	msg := "Congratulations! You've reached the goal!"

	r.Render(Scene{Dialog: msg})

	found := false
	for y := 0; y < 24; y++ {
		if strings.Contains(rowText(sim, y, 80), msg) {
			found = true
			break
		}
	}
	assert.True(t, found, "dialog text not drawn")
}

func TestDrawTextClipsAtScreenEdge(t *testing.T) {
	r, sim := newTestRenderer(t, 4, 2)

	r.screen.DrawText(2, 0, "abcdef", tcell.StyleDefault)

	assert.Equal(t, 'a', runeAt(sim, 2, 0))
	assert.Equal(t, 'b', runeAt(sim, 3, 0))
}
