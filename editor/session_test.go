package editor

import (
	"strings"
	"testing"

	"te/buffer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tenLines() string {
	rows := make([]string, 10)
	for i := range rows {
		rows[i] = strings.Repeat("x", 20)
	}
	return strings.Join(rows, "\n")
}

func TestRestoredPositionFitsWithoutScrolling(t *testing.T) {
	b := buffer.NewFromText(tenLines(), 4)
	restorePosition(b, filePosition{Row: 3, Col: 15})
	b.Resize(24, 80)

	assert.Equal(t, buffer.TextPos{Row: 3, Col: 15}, b.CursorLocation)
	assert.Equal(t, 0, b.TopVisible)
	assert.Equal(t, 0, b.LeftVisible)
}

func TestRestoredPositionScrollsOnSmallScreen(t *testing.T) {
	b := buffer.NewFromText(tenLines(), 4)
	restorePosition(b, filePosition{Row: 9, Col: 20})
	b.Resize(5, 10)

	// 3 text rows and 5 text columns.
	assert.Equal(t, 7, b.TopVisible)
	assert.Equal(t, 16, b.LeftVisible)
}

func TestRestorePositionClamps(t *testing.T) {
	b := buffer.NewFromText("ab\ncd", 4)
	restorePosition(b, filePosition{Row: 40, Col: 99})
	assert.Equal(t, buffer.TextPos{Row: 1, Col: 2}, b.CursorLocation)
}

func TestPositionStoreRoundTrip(t *testing.T) {
	ps := positionStore{dir: t.TempDir()}
	path := writeFile(t, "f.txt", "hello")

	require.NoError(t, ps.Save(path, 4, 2))
	pos, ok := ps.Load(path)
	require.True(t, ok)
	assert.Equal(t, 4, pos.Row)
	assert.Equal(t, 2, pos.Col)

	_, ok = positionStore{}.Load(path)
	assert.False(t, ok)
}
