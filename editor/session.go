package editor

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"te/buffer"
)

// filePosition is where the cursor was when a file was last closed. Col
// counts runes so it survives tab size changes better than a byte offset.
type filePosition struct {
	Path     string    `json:"path"`
	Row      int       `json:"row"`
	Col      int       `json:"col"`
	ClosedAt time.Time `json:"closed_at"`
}

type positionStore struct {
	dir string
}

func defaultPositionDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share", "te", "positions")
}

func (ps positionStore) file(path string) (string, string, bool) {
	if ps.dir == "" {
		return "", "", false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", "", false
	}
	hash := sha256.Sum256([]byte(abs))
	return filepath.Join(ps.dir, fmt.Sprintf("%x.json", hash[:8])), abs, true
}

func (ps positionStore) Save(path string, row, col int) error {
	name, abs, ok := ps.file(path)
	if !ok {
		return nil
	}
	data, err := json.MarshalIndent(filePosition{Path: abs, Row: row, Col: col, ClosedAt: time.Now()}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(ps.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(name, data, 0o644)
}

func (ps positionStore) Load(path string) (filePosition, bool) {
	name, abs, ok := ps.file(path)
	if !ok {
		return filePosition{}, false
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return filePosition{}, false
	}
	var pos filePosition
	if err := json.Unmarshal(data, &pos); err != nil || pos.Path != abs {
		return filePosition{}, false
	}
	return pos, true
}

// restorePosition moves the cursor to pos, clamped to the buffer. The
// viewport stays at the origin; the first Resize scrolls only if the cursor
// does not fit.
func restorePosition(b *buffer.Buffer, pos filePosition) {
	row := min(max(pos.Row, 0), b.LineCount()-1)
	line := b.Line(row)
	b.MoveTo(buffer.TextPos{Row: row, Col: line.CharToByteOffset(max(pos.Col, 0))})
	b.TopVisible, b.LeftVisible = 0, 0
}

func (e *Editor) rememberPosition() {
	var path string
	var at buffer.TextPos
	e.state.View(func(b *buffer.Buffer) {
		path, at = b.Path, b.CursorLocation
	})
	if path == "" || !fileExists(path) {
		return
	}
	if err := e.positions.Save(path, at.Row, at.Col); err != nil {
		e.log.Warn("remember position failed", "path", path, "err", err)
	}
}
