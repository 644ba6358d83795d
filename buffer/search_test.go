package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindWrapsAround(t *testing.T) {
	b := newTestBuffer("foo\nbar\nfoo")
	b.MoveTo(TextPos{Row: 2, Col: 3})

	pos, ok := b.Find("foo")
	require.True(t, ok)
	assert.Equal(t, TextPos{Row: 0, Col: 0}, pos)
}

func TestFindOrder(t *testing.T) {
	b := newTestBuffer("needle one\nhay\nneedle two\nneedle three")

	b.MoveTo(TextPos{Row: 0, Col: 0})
	pos, ok := b.Find("needle")
	require.True(t, ok)
	assert.Equal(t, TextPos{Row: 0, Col: 0}, pos, "a hit at the cursor wins")

	b.MoveTo(TextPos{Row: 0, Col: 1})
	pos, ok = b.Find("needle")
	require.True(t, ok)
	assert.Equal(t, TextPos{Row: 2, Col: 0}, pos)

	b.MoveTo(TextPos{Row: 3, Col: 2})
	pos, ok = b.Find("needle")
	require.True(t, ok)
	assert.Equal(t, TextPos{Row: 0, Col: 0}, pos)
}

func TestFindRestOfCurrentRow(t *testing.T) {
	b := newTestBuffer("ab ab ab")
	b.MoveTo(TextPos{Row: 0, Col: 1})

	pos, ok := b.Find("ab")
	require.True(t, ok)
	assert.Equal(t, TextPos{Row: 0, Col: 3}, pos)
}

func TestFindIsCaseSensitive(t *testing.T) {
	b := newTestBuffer("Foo\nfoo")
	pos, ok := b.Find("foo")
	require.True(t, ok)
	assert.Equal(t, 1, pos.Row)

	_, ok = b.Find("FOO")
	assert.False(t, ok)
}

func TestMoveToSetsRuneColumn(t *testing.T) {
	b := newTestBuffer("x\nünïcode wörd")
	pos, ok := b.Find("wörd")
	require.True(t, ok)

	b.MoveTo(pos)
	assert.Equal(t, TextPos{Row: 1, Col: 10}, b.Location)
	assert.Equal(t, TextPos{Row: 1, Col: 8}, b.CursorLocation)
}
