package editor

import (
	"fmt"
	"time"
	"unicode"

	"te/buffer"

	"github.com/gdamore/tcell/v2"
)

// inputLoop is the only place that blocks on the terminal. It returns when
// the user quits or the state was terminated elsewhere.
func (e *Editor) inputLoop() error {
	for {
		ev := e.screen.PollEvent()
		if ev == nil {
			return nil
		}
		quit := e.handleEvent(ev)
		e.handled.Add(1)
		if quit {
			e.log.Info("quit requested")
			return nil
		}
	}
}

// handleEvent applies ev and reports whether the editor should stop.
func (e *Editor) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventInterrupt:
		return e.state.Terminated()
	case *tcell.EventResize:
		e.resize(ev)
	case *fileChangedEvent:
		e.handleFileChanged(ev)
	case *tcell.EventKey:
		return e.handleKey(ev)
	}
	return e.state.Terminated()
}

func (e *Editor) resize(ev *tcell.EventResize) {
	w, h := ev.Size()
	e.screen.Sync()
	e.state.Update(func(b *buffer.Buffer) { b.Resize(h, w) })
	e.log.Debug("resized", "cols", w, "rows", h)
}

func (e *Editor) handleKey(ev *tcell.EventKey) (quit bool) {
	confirm := false
	e.state.Update(func(b *buffer.Buffer) {
		b.Redraw = true

		switch commandKey(ev) {
		case tcell.KeyCtrlQ:
			if b.Status == buffer.Edited {
				b.SetMessage("Press Ctrl + Q again to quit")
				confirm = true
				return
			}
			quit = true
			return
		case tcell.KeyCtrlS:
			if b.Prompt == nil {
				e.save(b)
			}
			return
		case tcell.KeyCtrlF:
			if b.Prompt == nil {
				b.Prompt = buffer.NewSearchPrompt()
			}
			return
		}

		k, ok := translateKey(ev)
		if !ok {
			return
		}
		if b.Prompt != nil {
			e.promptKey(b, k)
			return
		}
		b.HandleKey(k, e.cfg.TabSize())
	})

	if confirm {
		e.handled.Add(1)
		return e.confirmQuit()
	}
	return quit
}

// confirmQuit waits, without the lock, for the key that follows a Ctrl+Q on
// an edited buffer. Only a second Ctrl+Q quits; any other key is dropped.
// Resizes and file notifications that arrive meanwhile are applied and keep
// the window open.
func (e *Editor) confirmQuit() bool {
	time.Sleep(quitConfirmDelay)
	for {
		ev := e.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return true
		case *tcell.EventKey:
			if commandKey(ev) == tcell.KeyCtrlQ {
				return true
			}
			e.log.Debug("quit not confirmed", "key", ev.Name())
			e.state.Update(func(b *buffer.Buffer) { b.Redraw = true })
			return false
		case *tcell.EventInterrupt:
			if e.state.Terminated() {
				return true
			}
		case *tcell.EventResize:
			e.resize(ev)
		case *fileChangedEvent:
			e.handleFileChanged(ev)
		}
		e.handled.Add(1)
	}
}

func (e *Editor) promptKey(b *buffer.Buffer, k buffer.KeyEvent) {
	p := b.Prompt
	p.HandleKey(k, b.Size.Col)

	switch p.Status {
	case buffer.PromptCancelled:
		b.Prompt = nil
	case buffer.PromptAccepted:
		b.Prompt = nil
		switch p.Kind {
		case buffer.PromptSavePath:
			e.saveAs(b, p.Text())
		case buffer.PromptSearch:
			e.search(b, p.Text())
		}
	}
}

// save writes to the configured file, asking for a path when there is none.
func (e *Editor) save(b *buffer.Buffer) {
	path := e.cfg.File()
	if path == "" {
		b.Prompt = buffer.NewSavePrompt()
		return
	}
	b.Path = path
	e.write(b)
}

func (e *Editor) saveAs(b *buffer.Buffer, path string) {
	if path == "" {
		b.SetMessage("Save cancelled: no path given")
		return
	}
	e.cfg.SetFile(path)
	b.Path = path
	if e.watcher != nil {
		if err := e.watcher.Watch(path); err != nil {
			e.log.Warn("watch failed", "path", path, "err", err)
		}
	}
	e.write(b)
}

func (e *Editor) write(b *buffer.Buffer) {
	if err := b.Save(); err != nil {
		e.log.Error("save failed", "path", b.Path, "err", err)
		b.SetError(err.Error())
		return
	}
	e.log.Info("saved", "path", b.Path, "lines", b.LineCount())
	b.SetMessage("Saved: " + b.Path)
}

func (e *Editor) search(b *buffer.Buffer, term string) {
	if term == "" {
		return
	}
	pos, ok := b.Find(term)
	if !ok {
		e.log.Debug("search miss", "term", term)
		b.SetMessage(fmt.Sprintf("Phrase: \"%s\" not found", term))
		return
	}
	b.MoveTo(pos)
	e.log.Debug("search hit", "term", term, "row", pos.Row, "col", pos.Col)
	// 1-based, matching the gutter.
	b.SetMessage(fmt.Sprintf("Found: \"%s\" at Ln:%d, Col:%d",
		term, b.CursorLocation.Row+1, b.CursorLocation.Col+1))
}

var keyMap = map[tcell.Key]buffer.Key{
	tcell.KeyBackspace:  buffer.KeyBackspace,
	tcell.KeyBackspace2: buffer.KeyBackspace,
	tcell.KeyEnter:      buffer.KeyEnter,
	tcell.KeyLeft:       buffer.KeyLeft,
	tcell.KeyRight:      buffer.KeyRight,
	tcell.KeyUp:         buffer.KeyUp,
	tcell.KeyDown:       buffer.KeyDown,
	tcell.KeyPgUp:       buffer.KeyPageUp,
	tcell.KeyPgDn:       buffer.KeyPageDown,
	tcell.KeyHome:       buffer.KeyHome,
	tcell.KeyEnd:        buffer.KeyEnd,
	tcell.KeyTab:        buffer.KeyTab,
	tcell.KeyBacktab:    buffer.KeyBackTab,
	tcell.KeyDelete:     buffer.KeyDelete,
	tcell.KeyEscape:     buffer.KeyEsc,
}

// commandKey folds Ctrl+letter reported as a modified rune into the
// matching control key.
func commandKey(ev *tcell.EventKey) tcell.Key {
	if ev.Key() == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 {
		switch unicode.ToLower(ev.Rune()) {
		case 'q':
			return tcell.KeyCtrlQ
		case 's':
			return tcell.KeyCtrlS
		case 'f':
			return tcell.KeyCtrlF
		}
	}
	return ev.Key()
}

// translateKey maps a terminal key to the editing keys the buffer knows.
// Alt and Ctrl chords and unmapped control keys are ignored.
func translateKey(ev *tcell.EventKey) (buffer.KeyEvent, bool) {
	if ev.Key() == tcell.KeyRune {
		if ev.Modifiers()&(tcell.ModAlt|tcell.ModCtrl) != 0 {
			return buffer.KeyEvent{}, false
		}
		return buffer.KeyEvent{Key: buffer.KeyRune, Rune: ev.Rune()}, true
	}
	if k, ok := keyMap[ev.Key()]; ok {
		return buffer.KeyEvent{Key: k}, true
	}
	return buffer.KeyEvent{}, false
}
