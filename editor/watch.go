package editor

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"te/buffer"

	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
)

const (
	watchDebounce = 100 * time.Millisecond
	// Changes this close to our own save are ours.
	saveGracePeriod = time.Second
)

// fileChangedEvent carries a change to the edited file into the input loop.
type fileChangedEvent struct {
	tcell.EventTime
	Path string
	Op   fsnotify.Op
}

// fileWatcher watches the directory of the edited file so that editors
// replacing the file through a rename are still noticed.
type fileWatcher struct {
	w *fsnotify.Watcher

	mu     sync.Mutex
	dir    string
	target string
}

func newFileWatcher() (*fileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &fileWatcher{w: w}, nil
}

// Watch switches the watcher to path.
func (fw *fileWatcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)

	fw.mu.Lock()
	defer fw.mu.Unlock()
	if dir != fw.dir {
		if fw.dir != "" {
			_ = fw.w.Remove(fw.dir)
			fw.dir = ""
		}
		if err := fw.w.Add(dir); err != nil {
			return err
		}
		fw.dir = dir
	}
	fw.target = abs
	return nil
}

func (fw *fileWatcher) matches(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	fw.mu.Lock()
	defer fw.mu.Unlock()
	return abs == fw.target
}

// run forwards debounced events for the target file to post until the
// watcher is closed.
func (fw *fileWatcher) run(post func(tcell.Event) error, onError func(error)) {
	debounce := time.NewTimer(watchDebounce)
	debounce.Stop()
	var pending *fsnotify.Event

	for {
		select {
		case event, ok := <-fw.w.Events:
			if !ok {
				return
			}
			if !fw.matches(event.Name) {
				continue
			}
			if pending != nil {
				event.Op |= pending.Op
			}
			pending = &event
			debounce.Reset(watchDebounce)

		case <-debounce.C:
			if pending == nil {
				continue
			}
			ev := &fileChangedEvent{Path: pending.Name, Op: pending.Op}
			ev.SetEventNow()
			_ = post(ev)
			pending = nil

		case err, ok := <-fw.w.Errors:
			if !ok {
				return
			}
			onError(err)
		}
	}
}

func (fw *fileWatcher) Close() error {
	return fw.w.Close()
}

func (e *Editor) startWatcher(path string) {
	fw, err := newFileWatcher()
	if err != nil {
		e.log.Warn("file watching disabled", "err", err)
		return
	}
	e.watcher = fw
	if path != "" {
		if err := fw.Watch(path); err != nil {
			e.log.Warn("watch failed", "path", path, "err", err)
		}
	}
	go fw.run(e.screen.PostEvent, func(err error) {
		e.log.Warn("watch error", "err", err)
	})
}

func (e *Editor) handleFileChanged(ev *fileChangedEvent) {
	name := filepath.Base(ev.Path)
	e.log.Debug("file changed on disk", "path", ev.Path, "op", ev.Op.String())

	e.state.Update(func(b *buffer.Buffer) {
		if ev.Op.Has(fsnotify.Remove) || ev.Op.Has(fsnotify.Rename) {
			if !fileExists(ev.Path) {
				b.SetError(name + " was removed from disk")
				return
			}
		}
		info, err := os.Stat(ev.Path)
		if err != nil {
			return
		}
		if !b.LastSaveTime.IsZero() && info.ModTime().Sub(b.LastSaveTime) <= saveGracePeriod {
			return
		}
		b.SetMessage(name + " changed on disk")
	})
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
