// Package gamedata provides the embedded theme: glyphs, colours and dialog texts.
package gamedata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
