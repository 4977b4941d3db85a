package ui

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazerun/internal/entity"
	"github.com/samdwyer/mazerun/internal/gamedata"
	"github.com/samdwyer/mazerun/internal/maze"
)

// Scene is everything the renderer needs for one frame.
type Scene struct {
	Grid   *maze.Grid
	Player *entity.Player
	Goal   maze.Position

	Round, Moves, Wins int

	// Dialog, when non-empty, is drawn as a modal box over the maze.
	Dialog string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	theme  *gamedata.Theme
}

// NewRenderer creates a new renderer for the given screen and theme.
func NewRenderer(screen *Screen, theme *gamedata.Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// Render draws the maze, the player, the goal, the status lines and any dialog.
func (r *Renderer) Render(scene Scene) {
	r.screen.Clear()

	if scene.Grid != nil {
		r.drawGrid(scene.Grid)

		if scene.Player != nil {
			r.screen.SetContent(scene.Player.Pos.Col, scene.Player.Pos.Row, r.theme.PlayerRune, r.theme.PlayerStyle)
		}
		// Goal is drawn over the player, matching the original paint order.
		r.screen.SetContent(scene.Goal.Col, scene.Goal.Row, r.theme.GoalRune, r.theme.GoalStyle)

		msgs := r.theme.Messages
		status := fmt.Sprintf(msgs.Status, scene.Round, scene.Moves, scene.Wins)
		r.screen.DrawText(0, scene.Grid.Height(), status, r.theme.TextStyle)
		r.screen.DrawText(0, scene.Grid.Height()+1, msgs.Help, r.theme.TextStyle)
	}

	if scene.Dialog != "" {
		r.drawDialog(scene.Dialog)
	}

	r.screen.Show()
}

func (r *Renderer) drawGrid(g *maze.Grid) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			ch, style := r.cellLook(g.At(maze.Position{Col: x, Row: y}))
			r.screen.SetContent(x, y, ch, style)
		}
	}
}

// cellLook returns the glyph and style for a cell.
func (r *Renderer) cellLook(c maze.Cell) (rune, tcell.Style) {
	if c.IsOpen() {
		return r.theme.OpenRune, r.theme.OpenStyle
	}
	return r.theme.WallRune, r.theme.WallStyle
}

// drawDialog centres a bordered box holding msg and the dismiss hint.
func (r *Renderer) drawDialog(msg string) {
	hint := r.theme.Messages.Dismiss
	inner := max(utf8.RuneCountInString(msg), utf8.RuneCountInString(hint))

	sw, sh := r.screen.Size()
	boxW, boxH := inner+4, 5
	x0 := max((sw-boxW)/2, 0)
	y0 := max((sh-boxH)/2, 0)
	style := r.theme.DialogStyle

	for y := y0; y < y0+boxH; y++ {
		for x := x0; x < x0+boxW; x++ {
			ch := ' '
			switch {
			case (y == y0 || y == y0+boxH-1) && (x == x0 || x == x0+boxW-1):
				ch = '+'
			case y == y0 || y == y0+boxH-1:
				ch = '-'
			case x == x0 || x == x0+boxW-1:
				ch = '|'
			}
			r.screen.SetContent(x, y, ch, style)
		}
	}

	r.screen.DrawText(x0+2, y0+1, msg, style.Bold(true))
	r.screen.DrawText(x0+2, y0+3, hint, style)
}
