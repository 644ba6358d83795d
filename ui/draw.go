package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// RuneCells is the number of terminal cells r occupies. Zero-width runes are
// given a cell of their own so every rune stays addressable.
func RuneCells(r rune) int {
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}

// TextCells is the number of cells s occupies.
func TextCells(s string) int {
	n := 0
	for _, r := range s {
		n += RuneCells(r)
	}
	return n
}

// DrawText paints s starting at x and stops before a rune would cross
// x+width. It returns the column after the last painted cell.
func DrawText(screen tcell.Screen, x, y, width int, s string, style tcell.Style) int {
	col := x
	for _, r := range s {
		w := RuneCells(r)
		if col+w > x+width {
			break
		}
		screen.SetContent(col, y, r, nil, style)
		col += w
	}
	return col
}

func Fill(screen tcell.Screen, x, y, width int, style tcell.Style) {
	for cx := x; cx < x+width; cx++ {
		screen.SetContent(cx, y, ' ', nil, style)
	}
}
