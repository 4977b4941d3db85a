package gamedata

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Glyphs are the display characters for each kind of cell.
type Glyphs struct {
	Wall   string `json:"wall"`
	Open   string `json:"open"`
	Player string `json:"player"`
	Goal   string `json:"goal"`
}

// Colors are hex colour codes (e.g., "#FF0000").
type Colors struct {
	Wall   string `json:"wall"`
	Open   string `json:"open"`
	Player string `json:"player"`
	Goal   string `json:"goal"`
	Text   string `json:"text"`
	Dialog string `json:"dialog"`
}

// Messages are the texts shown by the terminal UI.
type Messages struct {
	Info    string `json:"info"`
	Win     string `json:"win"`
	Dismiss string `json:"dismiss"`
	Help    string `json:"help"`
	Status  string `json:"status"` // Printf format taking round, moves, wins
}

// ThemeFile represents the structure of theme.json.
type ThemeFile struct {
	Glyphs   Glyphs   `json:"glyphs"`
	Colors   Colors   `json:"colors"`
	Messages Messages `json:"messages"`
}

// Theme is a parsed, ready-to-draw ThemeFile.
type Theme struct {
	WallRune, OpenRune, PlayerRune, GoalRune rune

	WallStyle, OpenStyle, PlayerStyle, GoalStyle tcell.Style
	TextStyle, DialogStyle                       tcell.Style

	Messages Messages
}

// LoadTheme loads and parses the embedded theme.json.
func LoadTheme() (*Theme, error) {
	file, err := Load[ThemeFile]("theme.json")
	if err != nil {
		return nil, err
	}
	return NewTheme(file)
}

// NewTheme validates a ThemeFile and resolves its glyphs and colours.
func NewTheme(file ThemeFile) (*Theme, error) {
	var errs []error

	glyph := func(name, s string) rune {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError || size != len(s) {
			errs = append(errs, fmt.Errorf("glyph %s must be a single character, got %q", name, s))
			return '?'
		}
		return r
	}
	style := func(name, hex string) tcell.Style {
		c, err := ParseHexColor(hex)
		if err != nil {
			errs = append(errs, fmt.Errorf("color %s: %w", name, err))
		}
		return tcell.StyleDefault.Foreground(c)
	}

	t := &Theme{
		WallRune:    glyph("wall", file.Glyphs.Wall),
		OpenRune:    glyph("open", file.Glyphs.Open),
		PlayerRune:  glyph("player", file.Glyphs.Player),
		GoalRune:    glyph("goal", file.Glyphs.Goal),
		WallStyle:   style("wall", file.Colors.Wall),
		OpenStyle:   style("open", file.Colors.Open),
		PlayerStyle: style("player", file.Colors.Player).Bold(true),
		GoalStyle:   style("goal", file.Colors.Goal).Bold(true),
		TextStyle:   style("text", file.Colors.Text),
		DialogStyle: style("dialog", file.Colors.Dialog),
		Messages:    file.Messages,
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}
	return t, nil
}
