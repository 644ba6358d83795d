package ui

import (
	"te/config"

	"github.com/gdamore/tcell/v2"
)

type MessageBar struct {
	Text    string
	IsError bool
	Theme   *config.ColorScheme
}

func (m *MessageBar) Render(screen tcell.Screen, x, y, width, height int) {
	theme := m.Theme
	if theme == nil {
		theme = config.Themes["dark"]
	}
	Fill(screen, x, y, width, theme.Text())
	if m.Text == "" {
		return
	}
	DrawText(screen, x, y, width, m.Text, theme.Message(m.IsError).Bold(true))
}
