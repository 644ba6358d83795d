package ui

import (
	"fmt"

	"te/buffer"
	"te/config"

	"github.com/gdamore/tcell/v2"
)

// GutterWidth matches the "NNN| " prefix the buffer reserves.
const GutterWidth = buffer.PrefixWidth

type Gutter struct {
	Theme *config.ColorScheme
}

// Label is the prefix for the line number n. Callers pass 1-based numbers,
// as does the Found: message. Numbers past 999 keep their last three digits.
func (g *Gutter) Label(n int) string {
	return fmt.Sprintf("%03d| ", n%1000)
}

func (g *Gutter) RenderLine(screen tcell.Screen, x, y, n int) {
	DrawText(screen, x, y, GutterWidth, g.Label(n), g.theme().Gutter())
}

// RenderEmpty marks a row past the end of the buffer.
func (g *Gutter) RenderEmpty(screen tcell.Screen, x, y int) {
	screen.SetContent(x, y, '~', nil, g.theme().Tilde())
}

func (g *Gutter) theme() *config.ColorScheme {
	if g.Theme == nil {
		return config.Themes["dark"]
	}
	return g.Theme
}
