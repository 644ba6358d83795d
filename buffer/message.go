package buffer

import "time"

// MessageTimeout is how long a posted message stays on screen.
const MessageTimeout = 5 * time.Second

// Message is a timed note shown in the message bar.
type Message struct {
	Text      string
	CreatedAt time.Time
	Timeout   time.Duration
	IsError   bool
}

func NewMessage(text string) Message {
	return Message{Text: text, CreatedAt: time.Now(), Timeout: MessageTimeout}
}

func NewErrorMessage(text string) Message {
	m := NewMessage(text)
	m.IsError = true
	return m
}

// Visible returns the text while the message has not expired at now.
func (m Message) Visible(now time.Time) (string, bool) {
	if m.Text == "" || now.Sub(m.CreatedAt) >= m.Timeout {
		return "", false
	}
	return m.Text, true
}
