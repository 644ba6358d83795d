package editor

import (
	"context"
	"time"

	"te/buffer"
	"te/ui"
)

// renderLoop repaints on every tick where the buffer asked for it, and once
// a second for the clock and expiring messages. It never edits text.
func (e *Editor) renderLoop(ctx context.Context) error {
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		done := false
		e.state.Update(func(b *buffer.Buffer) {
			if b.Terminated {
				done = true
				return
			}
			now := e.now()
			if !b.Redraw && now.Truncate(time.Second).Equal(e.lastPaint) {
				return
			}
			e.paint(b, now)
			e.lastPaint = now.Truncate(time.Second)
			b.Redraw = false
		})
		if done {
			return nil
		}
	}
}

func (e *Editor) paint(b *buffer.Buffer, now time.Time) {
	s := e.screen
	rows, cols := b.Size.Row, b.Size.Col
	s.Fill(' ', e.theme.Text())

	e.statusBar.File = e.cfg.File()
	e.statusBar.Edited = b.Status == buffer.Edited
	e.statusBar.Now = now
	e.draw(e.statusBar, 0, 0, cols, buffer.StatusRows)

	textCols := cols - buffer.PrefixWidth
	for i := 0; i < rows-buffer.StatusRows-buffer.MessageRows; i++ {
		y := buffer.StatusRows + i
		row := b.TopVisible + i
		if row >= b.LineCount() {
			e.gutter.RenderEmpty(s, 0, y)
			continue
		}
		e.gutter.RenderLine(s, 0, y, row+1)
		if textCols > 0 {
			line := b.Line(row)
			start := line.CharToByteOffset(b.LeftVisible)
			ui.DrawText(s, buffer.PrefixWidth, y, textCols, string(line.Bytes()[start:]), e.theme.Text())
		}
	}

	last := rows - 1
	if p := b.Prompt; p != nil {
		e.promptBar.Label = p.Label.String()
		e.promptBar.Visible = p.VisibleInput()
		e.promptBar.Cursor = p.Cursor - p.LeftVisible
		e.draw(e.promptBar, 0, last, cols, 1)
		s.ShowCursor(e.promptBar.CursorX(0), last)
	} else {
		text, ok := b.Message.Visible(now)
		if !ok {
			text = ""
		}
		e.messageBar.Text = text
		e.messageBar.IsError = b.Message.IsError
		e.draw(e.messageBar, 0, last, cols, 1)

		s.ShowCursor(cursorX(b), b.CursorLocation.Row-b.TopVisible+buffer.StatusRows)
	}
	s.Show()
}

func (e *Editor) draw(c Component, x, y, width, height int) {
	if width <= 0 || y < 0 {
		return
	}
	c.Render(e.screen, x, y, width, height)
}

// cursorX is the screen column of the text cursor. The viewport scrolls by
// runes, so wide runes can push it past the edge; it stays on the last column.
func cursorX(b *buffer.Buffer) int {
	x := buffer.PrefixWidth + cellsBetween(b.Line(b.CursorLocation.Row), b.LeftVisible, b.CursorLocation.Col)
	return min(x, b.Size.Col-1)
}

// cellsBetween is the screen width of the runes of l in [from, to).
func cellsBetween(l *buffer.Line, from, to int) int {
	n, i := 0, 0
	for _, r := range l.String() {
		if i >= to {
			break
		}
		if i >= from {
			n += ui.RuneCells(r)
		}
		i++
	}
	return n
}
