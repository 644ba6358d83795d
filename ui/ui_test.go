package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

// row reads back cells [0, w) of row y, skipping the trailing halves of wide
// runes.
func row(screen tcell.Screen, y, w int) string {
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, width := screen.GetContent(x, y)
		sb.WriteRune(r)
		if width > 1 {
			x += width - 1
		}
	}
	return sb.String()
}

func TestStatusBarText(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 3, 7, 0, time.Local)
	s := &StatusBar{Now: now}
	assert.Equal(t, "No file selected", s.Left())
	assert.Equal(t, "time: 09:03:07", s.Right())

	s.File = "notes.txt"
	assert.Equal(t, "file: notes.txt ", s.Left())
	s.Edited = true
	assert.Equal(t, "file: notes.txt*", s.Left())
}

func TestStatusBarRender(t *testing.T) {
	screen := newScreen(t, 40, 3)
	s := &StatusBar{File: "a.txt", Edited: true, Now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local)}
	s.Render(screen, 0, 0, 40, 1)

	assert.Equal(t, "file: a.txt*"+strings.Repeat(" ", 14)+"time: 12:00:00", row(screen, 0, 40))
}

func TestStatusBarDropsClockWhenNarrow(t *testing.T) {
	screen := newScreen(t, 20, 1)
	s := &StatusBar{File: "a-rather-long-name.txt", Now: time.Now()}
	s.Render(screen, 0, 0, 20, 1)

	assert.Equal(t, "file: a-rather-long-", row(screen, 0, 20))
}

func TestPromptBarCursor(t *testing.T) {
	screen := newScreen(t, 30, 2)
	p := &PromptBar{Label: "Search:", Visible: "日本x", Cursor: 2}
	p.Render(screen, 0, 1, 30, 1)

	assert.Equal(t, "Search: 日本x", strings.TrimRight(row(screen, 1, 30), " "))
	assert.Equal(t, 8+4, p.CursorX(0))
}

func TestGutter(t *testing.T) {
	g := &Gutter{}
	assert.Equal(t, "001| ", g.Label(1))
	assert.Equal(t, "042| ", g.Label(42))
	assert.Equal(t, "234| ", g.Label(1234))
	assert.Len(t, g.Label(7), GutterWidth)

	screen := newScreen(t, 10, 2)
	g.RenderLine(screen, 0, 0, 12)
	g.RenderEmpty(screen, 0, 1)
	assert.Equal(t, "012| ", row(screen, 0, 5))
	r, _, _, _ := screen.GetContent(0, 1)
	assert.Equal(t, '~', r)
}

func TestDrawTextClipsWideRunes(t *testing.T) {
	screen := newScreen(t, 10, 1)
	end := DrawText(screen, 0, 0, 5, "ab日本", tcell.StyleDefault)
	assert.Equal(t, 4, end, "the second wide rune would cross the edge")
	assert.Equal(t, 6, TextCells("ab日本"))
}

func TestMessageBar(t *testing.T) {
	screen := newScreen(t, 20, 1)
	m := &MessageBar{Text: "Saved: a.txt"}
	m.Render(screen, 0, 0, 20, 1)
	assert.Equal(t, "Saved: a.txt", strings.TrimRight(row(screen, 0, 20), " "))
}
