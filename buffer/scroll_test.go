package buffer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrollDownAndUp(t *testing.T) {
	b := NewFromText(strings.Repeat("x\n", 50), 4)
	b.Size = TextPos{Row: 10, Col: 20} // 8 text rows

	b.MoveTo(TextPos{Row: 7})
	assert.Equal(t, 0, b.TopVisible)

	b.MoveTo(TextPos{Row: 8})
	assert.Equal(t, 1, b.TopVisible, "cursor becomes the last visible row")

	b.MoveTo(TextPos{Row: 30})
	assert.Equal(t, 23, b.TopVisible)

	b.MoveTo(TextPos{Row: 5})
	assert.Equal(t, 5, b.TopVisible, "cursor becomes the first visible row")
}

func TestScrollHorizontalUsesRuneColumn(t *testing.T) {
	b := NewFromText(strings.Repeat("日", 40), 4)
	b.Size = TextPos{Row: 10, Col: 15} // 10 text columns

	for i := 0; i < 12; i++ {
		b.HandleKey(KeyEvent{Key: KeyRight}, 4)
	}
	assert.Equal(t, 12, b.CursorLocation.Col)
	assert.Equal(t, 3, b.LeftVisible)

	b.HandleKey(KeyEvent{Key: KeyHome}, 4)
	assert.Equal(t, 0, b.LeftVisible)
}

func TestScrollIsIdempotent(t *testing.T) {
	b := NewFromText(strings.Repeat("some text here\n", 40), 4)
	b.Size = TextPos{Row: 7, Col: 12}

	positions := []TextPos{{Row: 39, Col: 14}, {Row: 0, Col: 0}, {Row: 20, Col: 9}, {Row: 3, Col: 14}}
	for _, pos := range positions {
		b.MoveTo(pos)
		top, left := b.TopVisible, b.LeftVisible
		b.Scroll()
		b.Scroll()
		assert.Equal(t, top, b.TopVisible)
		assert.Equal(t, left, b.LeftVisible)
	}
}

func TestScrollWithTinyTerminal(t *testing.T) {
	b := NewFromText("abc\ndef\nghi", 4)
	b.Size = TextPos{Row: 1, Col: 3}

	b.MoveTo(TextPos{Row: 2, Col: 3})
	assert.Equal(t, 2, b.TopVisible)
	assert.Equal(t, 3, b.LeftVisible)
}

func TestResizeRescrolls(t *testing.T) {
	b := NewFromText(strings.Repeat("x\n", 50), 4)
	b.Size = TextPos{Row: 40, Col: 80}
	b.MoveTo(TextPos{Row: 30})
	assert.Equal(t, 0, b.TopVisible)

	b.Redraw = false
	b.Resize(12, 80)
	assert.Equal(t, 21, b.TopVisible)
	assert.True(t, b.Redraw)
}
