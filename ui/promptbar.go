package ui

import (
	"te/config"

	"github.com/gdamore/tcell/v2"
)

// PromptBar paints "<Label> <Visible>" over the last row. Cursor counts
// runes into Visible.
type PromptBar struct {
	Label   string
	Visible string
	Cursor  int
	Theme   *config.ColorScheme
}

func (p *PromptBar) Render(screen tcell.Screen, x, y, width, height int) {
	theme := p.Theme
	if theme == nil {
		theme = config.Themes["dark"]
	}
	style := theme.Prompt()
	Fill(screen, x, y, width, style)

	col := DrawText(screen, x, y, width, p.Label+" ", style.Bold(true))
	DrawText(screen, col, y, x+width-col, p.Visible, style)
}

// CursorX is the screen column of the cursor when rendered at x.
func (p *PromptBar) CursorX(x int) int {
	col := x + TextCells(p.Label) + 1
	i := 0
	for _, r := range p.Visible {
		if i == p.Cursor {
			break
		}
		col += RuneCells(r)
		i++
	}
	return col
}
