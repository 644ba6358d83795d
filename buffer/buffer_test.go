package buffer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSplitsLinesAndExpandsTabs(t *testing.T) {
	path := writeFile(t, "a\tb\r\n\tc\nlast")
	b, err := Load(path, 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"a  b", "  c", "last"}, b.Strings())
	assert.Equal(t, path, b.Path)
	assert.Equal(t, Clean, b.Status)
}

func TestLoadEmptyFileHasOneLine(t *testing.T) {
	b, err := Load(writeFile(t, ""), 4)
	require.NoError(t, err)
	assert.Equal(t, []string{""}, b.Strings())

	b, err = Load(writeFile(t, "\n"), 4)
	require.NoError(t, err)
	assert.Equal(t, []string{""}, b.Strings())
}

func TestLoadMissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")
	b, err := Load(path, 4)
	require.NoError(t, err)
	assert.Equal(t, []string{""}, b.Strings())
	assert.Equal(t, path, b.Path)
}

func TestLoadUnreadablePathFails(t *testing.T) {
	_, err := Load(t.TempDir(), 4)
	require.Error(t, err)
}

func TestLoadReplacesInvalidUTF8AndDropsBOM(t *testing.T) {
	b, err := Load(writeFile(t, "\xef\xbb\xbfok\nbad\xffbyte"), 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"ok", "bad�byte"}, b.Strings())
	assert.Equal(t, 8, b.Line(1).CharLen())
}

func TestLoadWithBOMKeepsInvalidBytesEditable(t *testing.T) {
	b, err := Load(writeFile(t, "\xef\xbb\xbfa\xe6\x97b\n"), 4)
	require.NoError(t, err)
	b.Size = TextPos{Row: 24, Col: 80}
	assert.Equal(t, []string{"a\ufffdb"}, b.Strings())
	assert.Equal(t, 3, b.Line(0).CharLen())

	press(b, KeyRight, KeyRight)
	assert.Equal(t, 2, b.CursorLocation.Col)
	typeText(b, "x")
	assert.Equal(t, "a\ufffdxb", b.Line(0).String())
}

func TestSaveWritesCRLF(t *testing.T) {
	b := NewFromText("one\ntwo", 4)
	b.Path = filepath.Join(t.TempDir(), "out.txt")
	b.Status = Edited

	require.NoError(t, b.Save())
	data, err := os.ReadFile(b.Path)
	require.NoError(t, err)
	assert.Equal(t, "one\r\ntwo\r\n", string(data))
	assert.Equal(t, Clean, b.Status)
	assert.False(t, b.LastSaveTime.IsZero())
}

func TestSaveTruncates(t *testing.T) {
	path := writeFile(t, "a much longer previous content\n")
	b := NewFromText("x", 4)
	b.Path = path

	require.NoError(t, b.Save())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x\r\n", string(data))
}

func TestSaveWithoutPath(t *testing.T) {
	err := New().Save()
	assert.True(t, errors.Is(err, ErrNoPath))
}

func TestSaveIntoMissingDirectoryFails(t *testing.T) {
	b := New()
	b.Path = filepath.Join(t.TempDir(), "missing", "f.txt")
	b.Status = Edited
	require.Error(t, b.Save())
	assert.Equal(t, Edited, b.Status)
}

func TestLoadSaveLoadIsStable(t *testing.T) {
	inputs := []string{
		"plain\nlines\n",
		"tabs\there\n\tand there",
		"crlf\r\nalready\r\n",
		"trailing\n\n\n",
		"ünïcode 日本\n😀",
		"",
	}
	for _, in := range inputs {
		path := writeFile(t, in)
		first, err := Load(path, 4)
		require.NoError(t, err)
		require.NoError(t, first.Save())
		saved, err := os.ReadFile(path)
		require.NoError(t, err)

		second, err := Load(path, 4)
		require.NoError(t, err)
		assert.Equal(t, first.Strings(), second.Strings(), "input %q", in)

		require.NoError(t, second.Save())
		again, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, string(saved), string(again), "input %q", in)
	}
}
