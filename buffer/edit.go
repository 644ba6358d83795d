package buffer

import (
	"fmt"
	"strings"
)

// Key identifies an editing key independent of the terminal library.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyBackspace
	KeyEnter
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyTab
	KeyBackTab
	KeyDelete
	KeyEsc
)

type KeyEvent struct {
	Key  Key
	Rune rune
}

// HandleKey applies one key to the buffer, then checks the cursor invariant
// and scrolls the cursor into view.
func (b *Buffer) HandleKey(ev KeyEvent, tabSize int) {
	switch ev.Key {
	case KeyBackspace:
		b.Backspace()
	case KeyEnter:
		b.Enter()
	case KeyLeft:
		b.MoveLeft()
	case KeyRight:
		b.MoveRight()
	case KeyUp:
		b.MoveUp()
	case KeyDown:
		b.MoveDown()
	case KeyPageUp:
		b.PageUp()
	case KeyPageDown:
		b.PageDown()
	case KeyHome:
		b.Home()
	case KeyEnd:
		b.End()
	case KeyTab:
		b.InsertTab(tabSize)
	case KeyBackTab:
		b.BackTab(tabSize)
	case KeyDelete:
		b.Delete()
	case KeyRune:
		b.InsertRune(ev.Rune)
	}
	b.checkCursor()
	b.Scroll()
}

func (b *Buffer) checkCursor() {
	if b.Location.Row != b.CursorLocation.Row {
		panic(fmt.Sprintf("buffer: byte cursor row %d and char cursor row %d diverged", b.Location.Row, b.CursorLocation.Row))
	}
}

func (b *Buffer) setRow(row int) {
	b.Location.Row = row
	b.CursorLocation.Row = row
}

// Backspace removes the rune before the cursor, or joins the current line
// onto the previous one when the cursor is at column 0.
func (b *Buffer) Backspace() {
	pos := b.Location
	switch {
	case pos.Col == 0 && pos.Row > 0:
		prev := &b.lines[pos.Row-1]
		b.Location.Col = prev.Len()
		b.CursorLocation.Col = prev.CharLen()
		prev.PushStr(b.lines[pos.Row].String())
		b.lines = append(b.lines[:pos.Row], b.lines[pos.Row+1:]...)
		b.setRow(pos.Row - 1)
		b.Status = Edited
	case pos.Col > 0:
		line := b.current()
		prevBound, _ := line.NeighborBoundaries(pos.Col)
		line.Remove(prevBound)
		b.Location.Col = prevBound
		b.CursorLocation.Col--
		b.Status = Edited
	}
}

// Enter splits the current line at the cursor.
func (b *Buffer) Enter() {
	pos := b.Location
	rest := b.lines[pos.Row].SplitAt(pos.Col)
	b.lines = append(b.lines, Line{})
	copy(b.lines[pos.Row+2:], b.lines[pos.Row+1:])
	b.lines[pos.Row+1] = rest
	b.setRow(pos.Row + 1)
	b.Location.Col = 0
	b.CursorLocation.Col = 0
	b.Status = Edited
}

func (b *Buffer) MoveLeft() {
	pos := b.Location
	switch {
	case pos.Col > 0:
		b.Location.Col, _ = b.current().NeighborBoundaries(pos.Col)
		b.CursorLocation.Col--
	case pos.Row > 0:
		b.setRow(pos.Row - 1)
		b.Location.Col = b.current().Len()
		b.CursorLocation.Col = b.current().CharLen()
	}
}

func (b *Buffer) MoveRight() {
	pos := b.Location
	switch {
	case pos.Col < b.current().Len():
		_, b.Location.Col = b.current().NeighborBoundaries(pos.Col)
		b.CursorLocation.Col++
	case pos.Row < len(b.lines)-1:
		b.setRow(pos.Row + 1)
		b.Location.Col = 0
		b.CursorLocation.Col = 0
	}
}

// moveToRow changes row keeping the rune column, clamped to the target line.
func (b *Buffer) moveToRow(row int) {
	row = min(max(row, 0), len(b.lines)-1)
	b.setRow(row)
	line := b.current()
	b.Location.Col = line.CharToByteOffset(b.CursorLocation.Col)
	b.CursorLocation.Col = min(b.CursorLocation.Col, line.CharLen())
}

func (b *Buffer) MoveUp() {
	if b.Location.Row > 0 {
		b.moveToRow(b.Location.Row - 1)
	}
}

func (b *Buffer) MoveDown() {
	if b.Location.Row < len(b.lines)-1 {
		b.moveToRow(b.Location.Row + 1)
	}
}

func (b *Buffer) PageUp()   { b.moveToRow(b.Location.Row - b.TextRows()) }
func (b *Buffer) PageDown() { b.moveToRow(b.Location.Row + b.TextRows()) }

func (b *Buffer) Home() {
	b.Location.Col = 0
	b.CursorLocation.Col = 0
}

func (b *Buffer) End() {
	b.Location.Col = b.current().Len()
	b.CursorLocation.Col = b.current().CharLen()
}

// InsertTab inserts width spaces at the cursor.
func (b *Buffer) InsertTab(width int) {
	if width <= 0 {
		return
	}
	b.current().InsertStr(b.Location.Col, strings.Repeat(" ", width))
	b.Location.Col += width
	b.CursorLocation.Col += width
	b.Status = Edited
}

// BackTab removes up to width leading spaces from the current line.
func (b *Buffer) BackTab(width int) {
	n := b.current().BackTab(width)
	if n == 0 {
		return
	}
	b.Location.Col = max(b.Location.Col-n, 0)
	b.CursorLocation.Col = max(b.CursorLocation.Col-n, 0)
	b.Status = Edited
}

// Delete removes the rune under the cursor, or joins the next line onto the
// current one at the end of a line.
func (b *Buffer) Delete() {
	pos := b.Location
	line := b.current()
	switch {
	case pos.Col == line.Len() && pos.Row < len(b.lines)-1:
		line.PushStr(b.lines[pos.Row+1].String())
		b.lines = append(b.lines[:pos.Row+1], b.lines[pos.Row+2:]...)
		b.Status = Edited
	case pos.Col < line.Len():
		line.Remove(pos.Col)
		b.Status = Edited
	}
}

func (b *Buffer) InsertRune(r rune) {
	b.Location.Col += b.current().Insert(b.Location.Col, r)
	b.CursorLocation.Col++
	b.Status = Edited
}
