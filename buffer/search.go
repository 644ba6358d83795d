package buffer

import "bytes"

// Find looks for term starting at the byte cursor: first the rest of the
// current row, then the rows below it, then from the top of the buffer down
// to the current row. It returns the byte position of the first hit.
func (b *Buffer) Find(term string) (TextPos, bool) {
	needle := []byte(term)
	pos := b.Location

	if i := bytes.Index(b.lines[pos.Row].data[pos.Col:], needle); i >= 0 {
		return TextPos{Row: pos.Row, Col: pos.Col + i}, true
	}
	for row := pos.Row + 1; row < len(b.lines); row++ {
		if i := bytes.Index(b.lines[row].data, needle); i >= 0 {
			return TextPos{Row: row, Col: i}, true
		}
	}
	for row := 0; row <= pos.Row; row++ {
		if i := bytes.Index(b.lines[row].data, needle); i >= 0 {
			return TextPos{Row: row, Col: i}, true
		}
	}
	return TextPos{}, false
}

// MoveTo places both cursors at the byte position pos and scrolls to it.
func (b *Buffer) MoveTo(pos TextPos) {
	b.setRow(pos.Row)
	b.Location.Col = pos.Col
	b.CursorLocation.Col = b.lines[pos.Row].ByteToCharOffset(pos.Col)
	b.checkCursor()
	b.Scroll()
}
