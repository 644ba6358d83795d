package buffer

type PromptKind int

const (
	PromptSavePath PromptKind = iota
	PromptSearch
)

type PromptStatus int

const (
	PromptPending PromptStatus = iota
	PromptCancelled
	PromptAccepted
)

// Prompt is a one-line input shown in place of the message bar. Location is
// a byte offset into Input, Cursor the matching rune offset.
type Prompt struct {
	Label       Line
	Input       Line
	Kind        PromptKind
	Location    int
	Cursor      int
	LeftVisible int
	Status      PromptStatus
}

func NewPrompt(label string, kind PromptKind) *Prompt {
	return &Prompt{Label: NewLine(label), Kind: kind}
}

func NewSavePrompt() *Prompt   { return NewPrompt("Path:", PromptSavePath) }
func NewSearchPrompt() *Prompt { return NewPrompt("Search:", PromptSearch) }

// Text returns the entered input.
func (p *Prompt) Text() string { return p.Input.String() }

// InputOffset is the screen column where the input starts: the label plus
// one separating space.
func (p *Prompt) InputOffset() int { return p.Label.CharLen() + 1 }

func (p *Prompt) InsertRune(r rune) {
	p.Location += p.Input.Insert(p.Location, r)
	p.Cursor++
}

func (p *Prompt) Backspace() {
	if p.Location == 0 {
		return
	}
	prev, _ := p.Input.NeighborBoundaries(p.Location)
	p.Input.Remove(prev)
	p.Location = prev
	p.Cursor--
}

func (p *Prompt) Delete() {
	if p.Location < p.Input.Len() {
		p.Input.Remove(p.Location)
	}
}

func (p *Prompt) MoveLeft() {
	if p.Location > 0 {
		p.Location, _ = p.Input.NeighborBoundaries(p.Location)
		p.Cursor--
	}
}

func (p *Prompt) MoveRight() {
	if p.Location < p.Input.Len() {
		_, p.Location = p.Input.NeighborBoundaries(p.Location)
		p.Cursor++
	}
}

func (p *Prompt) Home() {
	p.Location = 0
	p.Cursor = 0
}

func (p *Prompt) End() {
	p.Location = p.Input.Len()
	p.Cursor = p.Input.CharLen()
}

func (p *Prompt) Accept() { p.Status = PromptAccepted }
func (p *Prompt) Cancel() { p.Status = PromptCancelled }

// Scroll keeps the input cursor inside a bar of the given width.
func (p *Prompt) Scroll(width int) {
	visible := width - p.InputOffset()
	if visible < 1 {
		visible = 1
	}
	if p.Cursor < p.LeftVisible {
		p.LeftVisible = p.Cursor
	} else if p.Cursor >= p.LeftVisible+visible {
		p.LeftVisible = p.Cursor + 1 - visible
	}
}

// VisibleInput returns the part of the input starting at LeftVisible.
func (p *Prompt) VisibleInput() string {
	return string(p.Input.Bytes()[p.Input.CharToByteOffset(p.LeftVisible):])
}

// HandleKey edits the input or resolves the prompt. width is the terminal
// width used for horizontal scrolling.
func (p *Prompt) HandleKey(ev KeyEvent, width int) {
	switch ev.Key {
	case KeyBackspace:
		p.Backspace()
	case KeyDelete:
		p.Delete()
	case KeyLeft:
		p.MoveLeft()
	case KeyRight:
		p.MoveRight()
	case KeyHome:
		p.Home()
	case KeyEnd:
		p.End()
	case KeyEnter:
		p.Accept()
	case KeyEsc:
		p.Cancel()
	case KeyRune:
		p.InsertRune(ev.Rune)
	}
	p.Scroll(width)
}
