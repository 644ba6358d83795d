package buffer

// Scroll moves TopVisible and LeftVisible just enough to keep the cursor on
// screen. Calling it again without moving the cursor changes nothing.
func (b *Buffer) Scroll() {
	rows := b.TextRows()
	if b.Location.Row < b.TopVisible {
		b.TopVisible = b.Location.Row
	} else if b.Location.Row >= b.TopVisible+rows {
		b.TopVisible = b.Location.Row + 1 - rows
	}

	cols := b.TextCols()
	if b.CursorLocation.Col < b.LeftVisible {
		b.LeftVisible = b.CursorLocation.Col
	} else if b.CursorLocation.Col >= b.LeftVisible+cols {
		b.LeftVisible = b.CursorLocation.Col + 1 - cols
	}
}
