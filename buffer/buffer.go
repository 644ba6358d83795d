package buffer

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Rows and columns reserved around the text area.
const (
	StatusRows  = 1
	MessageRows = 1
	PrefixWidth = 5 // "000| "
)

type EditStatus int

const (
	Clean EditStatus = iota
	Edited
)

var ErrNoPath = errors.New("buffer has no file path")

// Buffer is the single edited file: its lines, the byte and rune cursors,
// the viewport and the transient UI state painted around it.
type Buffer struct {
	lines []Line

	Path           string
	Location       TextPos // Col is a byte offset
	CursorLocation TextPos // Col is a rune offset
	Size           TextPos // terminal rows and columns
	TopVisible     int
	LeftVisible    int
	Message        Message
	Status         EditStatus
	Prompt         *Prompt
	Redraw         bool
	Terminated     bool

	LastSaveTime time.Time
}

func New() *Buffer {
	return &Buffer{lines: []Line{NewLine("")}, Redraw: true}
}

// NewFromText splits text into lines the same way Load does.
func NewFromText(text string, tabSize int) *Buffer {
	b := New()
	b.lines = splitLines(text, tabSize)
	return b
}

// Load reads path into a new buffer. A missing file yields an empty buffer
// that will be created on the first save.
func Load(path string, tabSize int) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			b := New()
			b.Path = path
			return b, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	// Invalid sequences decode to U+FFFD; a leading BOM is dropped.
	decoded, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	b := NewFromText(string(decoded), tabSize)
	b.Path = path
	return b, nil
}

func splitLines(text string, tabSize int) []Line {
	if tabSize > 0 {
		text = strings.ReplaceAll(text, "\t", strings.Repeat(" ", tabSize))
	}
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []Line{NewLine("")}
	}
	parts := strings.Split(text, "\n")
	lines := make([]Line, len(parts))
	for i, p := range parts {
		lines[i] = NewLine(strings.TrimSuffix(p, "\r"))
	}
	return lines
}

// Save writes every line followed by CRLF to Path, truncating the file.
func (b *Buffer) Save() error {
	if b.Path == "" {
		return ErrNoPath
	}
	f, err := os.Create(b.Path)
	if err != nil {
		return fmt.Errorf("save %s: %w", b.Path, err)
	}
	w := bufio.NewWriter(f)
	for i := range b.lines {
		w.Write(b.lines[i].data)
		w.WriteString("\r\n")
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("save %s: %w", b.Path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save %s: %w", b.Path, err)
	}
	b.Status = Clean
	b.LastSaveTime = time.Now()
	return nil
}

func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns row i. The pointer is only valid until the next edit.
func (b *Buffer) Line(i int) *Line { return &b.lines[i] }

func (b *Buffer) current() *Line { return &b.lines[b.Location.Row] }

// Strings returns the contents as one string per line.
func (b *Buffer) Strings() []string {
	out := make([]string, len(b.lines))
	for i := range b.lines {
		out[i] = b.lines[i].String()
	}
	return out
}

// SetMessage posts a timed message and requests a repaint.
func (b *Buffer) SetMessage(text string) {
	b.Message = NewMessage(text)
	b.Redraw = true
}

func (b *Buffer) SetError(text string) {
	b.Message = NewErrorMessage(text)
	b.Redraw = true
}

// Resize records a new terminal size and keeps the cursor in view.
func (b *Buffer) Resize(rows, cols int) {
	b.Size = TextPos{Row: rows, Col: cols}
	b.Scroll()
	if b.Prompt != nil {
		b.Prompt.Scroll(cols)
	}
	b.Redraw = true
}

// TextRows is the number of buffer rows that fit between the bars.
func (b *Buffer) TextRows() int {
	return max(b.Size.Row-StatusRows-MessageRows, 1)
}

// TextCols is the number of text cells right of the line-number gutter.
func (b *Buffer) TextCols() int {
	return max(b.Size.Col-PrefixWidth, 1)
}
