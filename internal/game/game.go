package game

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/mazerun/internal/gamedata"
	"github.com/samdwyer/mazerun/internal/maze"
	"github.com/samdwyer/mazerun/internal/ui"
)

// action is a user command decoded from a key press.
type action int

const (
	actionNone action = iota
	actionUp
	actionDown
	actionLeft
	actionRight
	actionStart
	actionInfo
	actionQuit
)

// Game wires a Session to the terminal.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	theme    *gamedata.Theme
	session  *Session
	log      logrus.FieldLogger
	running  bool

	// dialog is the modal message currently shown; any key dismisses it.
	dialog string
	// restartOnDismiss is set by a win so that dismissing the dialog starts the next maze.
	restartOnDismiss bool
}

// New creates a game on the real terminal.
func New(cfg Config, log logrus.FieldLogger) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	g, err := newGame(screen, cfg, maze.SeededSource(cfg.Seed), log)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

func newGame(screen *ui.Screen, cfg Config, src maze.BoolSource, log logrus.FieldLogger) (*Game, error) {
	theme, err := gamedata.LoadTheme()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, theme),
		theme:    theme,
		session:  NewSession(cfg, src, log),
		log:      log,
		running:  true,
	}, nil
}

// Run executes the main game loop until the user quits.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	if err := g.session.Start(ctx); err != nil {
		return err
	}

	for g.running {
		g.render()
		if err := g.handleInput(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) render() {
	state := g.session.State()
	g.renderer.Render(ui.Scene{
		Grid:   state.Grid(),
		Player: state.Player(),
		Goal:   state.Goal(),
		Round:  g.session.Round(),
		Moves:  g.session.Moves(),
		Wins:   g.session.Wins(),
		Dialog: g.dialog,
	})
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) error {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.apply(ctx, decodeKey(ev.Key(), ev.Rune()))
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// Screen finalized.
		g.running = false
	}
	return nil
}

// decodeKey maps a key press to an action.
func decodeKey(key tcell.Key, r rune) action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyUp:
		return actionUp
	case tcell.KeyDown:
		return actionDown
	case tcell.KeyLeft:
		return actionLeft
	case tcell.KeyRight:
		return actionRight
	case tcell.KeyRune:
		switch r {
		case 'k':
			return actionUp
		case 'j':
			return actionDown
		case 'h':
			return actionLeft
		case 'l':
			return actionRight
		case 's', 'S':
			return actionStart
		case 'i', 'I':
			return actionInfo
		case 'q', 'Q':
			return actionQuit
		}
	}
	return actionNone
}

// apply runs one decoded action against the session.
func (g *Game) apply(ctx context.Context, a action) error {
	if g.dialog != "" {
		// Any key closes the dialog; only quit keeps its meaning.
		if a == actionQuit {
			g.log.Debug("quit from dialog")
			g.running = false
			return nil
		}
		return g.dismissDialog(ctx)
	}

	switch a {
	case actionQuit:
		g.running = false
	case actionStart:
		g.log.Debug("restart requested from menu")
		return g.session.Start(ctx)
	case actionInfo:
		g.dialog = g.theme.Messages.Info
	case actionUp:
		return g.move(ctx, 0, -1)
	case actionDown:
		return g.move(ctx, 0, 1)
	case actionLeft:
		return g.move(ctx, -1, 0)
	case actionRight:
		return g.move(ctx, 1, 0)
	}
	return nil
}

// move steps the player by (dx, dy), which must be a single orthogonal step.
func (g *Game) move(ctx context.Context, dx, dy int) error {
	dir, err := maze.DirectionFromDelta(dx, dy)
	if err != nil {
		return err
	}

	out := g.session.HandleInput(ctx, dir)
	if out.Won {
		g.dialog = g.theme.Messages.Win
		g.restartOnDismiss = true
	}
	return nil
}

func (g *Game) dismissDialog(ctx context.Context) error {
	g.dialog = ""
	if !g.restartOnDismiss {
		return nil
	}
	g.restartOnDismiss = false
	return g.session.Start(ctx)
}
