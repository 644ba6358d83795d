package buffer

// TextPos is a row/column pair. Whether Col counts bytes or runes depends on
// which cursor holds it.
type TextPos struct {
	Row, Col int
}
