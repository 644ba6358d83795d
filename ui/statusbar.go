package ui

import (
	"time"

	"te/config"

	"github.com/gdamore/tcell/v2"
)

// StatusBar is the top row: the edited file on the left, the clock on the
// right.
type StatusBar struct {
	File   string
	Edited bool
	Now    time.Time
	Theme  *config.ColorScheme
}

func (s *StatusBar) Left() string {
	if s.File == "" {
		return "No file selected"
	}
	mark := " "
	if s.Edited {
		mark = "*"
	}
	return "file: " + s.File + mark
}

func (s *StatusBar) Right() string {
	return "time: " + s.Now.Format("15:04:05")
}

func (s *StatusBar) Render(screen tcell.Screen, x, y, width, height int) {
	theme := s.Theme
	if theme == nil {
		theme = config.Themes["dark"]
	}
	style := theme.Status().Bold(true)
	Fill(screen, x, y, width, style)

	left := s.Left()
	DrawText(screen, x, y, width, left, style)

	// The clock only shows when it fits beside the file name.
	right := s.Right()
	rw := TextCells(right)
	if TextCells(left)+rw < width {
		DrawText(screen, x+width-rw, y, rw, right, style)
	}
}
