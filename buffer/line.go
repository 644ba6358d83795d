package buffer

import (
	"fmt"
	"unicode/utf8"
)

// Line is one row of text. data always holds valid UTF-8 and charLen caches
// the number of runes in it.
type Line struct {
	data    []byte
	charLen int
}

func NewLine(s string) Line {
	return Line{data: []byte(s), charLen: utf8.RuneCountInString(s)}
}

func (l *Line) Len() int       { return len(l.data) }
func (l *Line) CharLen() int   { return l.charLen }
func (l *Line) String() string { return string(l.data) }

// Bytes returns the line contents. The slice must not be modified.
func (l *Line) Bytes() []byte { return l.data }

func (l *Line) isBoundary(off int) bool {
	if off < 0 || off > len(l.data) {
		return false
	}
	return off == len(l.data) || utf8.RuneStart(l.data[off])
}

func (l *Line) mustBoundary(op string, off int) {
	if !l.isBoundary(off) {
		panic(fmt.Sprintf("buffer: %s at byte offset %d is not a rune boundary (line length %d)", op, off, len(l.data)))
	}
}

// Insert inserts r at byte offset off and returns its encoded length.
func (l *Line) Insert(off int, r rune) int {
	l.mustBoundary("insert", off)
	var enc [utf8.UTFMax]byte
	n := utf8.EncodeRune(enc[:], r)
	l.data = append(l.data[:off], append(enc[:n:n], l.data[off:]...)...)
	l.charLen++
	return n
}

// Remove deletes the rune starting at byte offset off. Removing at the end
// of the line is a no-op.
func (l *Line) Remove(off int) {
	l.mustBoundary("remove", off)
	if off == len(l.data) {
		return
	}
	_, size := utf8.DecodeRune(l.data[off:])
	l.data = append(l.data[:off], l.data[off+size:]...)
	l.charLen--
}

// SplitAt truncates the line to [0, off) and returns [off, end) as a new Line.
func (l *Line) SplitAt(off int) Line {
	l.mustBoundary("split", off)
	rest := make([]byte, len(l.data)-off)
	copy(rest, l.data[off:])
	l.data = l.data[:off]
	l.charLen = utf8.RuneCount(l.data)
	return Line{data: rest, charLen: utf8.RuneCount(rest)}
}

func (l *Line) PushStr(s string) {
	l.data = append(l.data, s...)
	l.charLen += utf8.RuneCountInString(s)
}

func (l *Line) InsertStr(off int, s string) {
	l.mustBoundary("insert", off)
	l.data = append(l.data[:off], append([]byte(s), l.data[off:]...)...)
	l.charLen += utf8.RuneCountInString(s)
}

// BackTab removes up to limit leading spaces and reports how many were removed.
func (l *Line) BackTab(limit int) int {
	n := 0
	for n < limit && n < len(l.data) && l.data[n] == ' ' {
		n++
	}
	if n > 0 {
		l.data = append(l.data[:0], l.data[n:]...)
		l.charLen -= n
	}
	return n
}

// CharToByteOffset maps a rune index to its byte offset. Indices past the
// end clamp to the line length.
func (l *Line) CharToByteOffset(idx int) int {
	if idx <= 0 {
		return 0
	}
	off := 0
	for i := 0; i < idx && off < len(l.data); i++ {
		_, size := utf8.DecodeRune(l.data[off:])
		off += size
	}
	return off
}

// ByteToCharOffset counts the runes before byte offset off.
func (l *Line) ByteToCharOffset(off int) int {
	if off > len(l.data) {
		off = len(l.data)
	}
	if off <= 0 {
		return 0
	}
	return utf8.RuneCount(l.data[:off])
}

// NeighborBoundaries returns the rune boundary strictly before off and the
// one strictly after it, saturating at the start and end of the line.
func (l *Line) NeighborBoundaries(off int) (prev, next int) {
	prev, next = off, off
	if off > 0 {
		_, size := utf8.DecodeLastRune(l.data[:off])
		prev = off - size
	}
	if off < len(l.data) {
		_, size := utf8.DecodeRune(l.data[off:])
		next = off + size
	}
	return prev, next
}
