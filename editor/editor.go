package editor

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"time"

	"te/applog"
	"te/buffer"
	"te/config"
	"te/ui"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

const (
	refreshInterval  = 10 * time.Millisecond
	quitConfirmDelay = 11 * time.Millisecond
)

type Component interface {
	Render(screen tcell.Screen, x, y, width, height int)
}

type Editor struct {
	screen tcell.Screen
	state  *State
	cfg    *config.Shared
	theme  *config.ColorScheme
	log    *slog.Logger

	statusBar  *ui.StatusBar
	messageBar *ui.MessageBar
	promptBar  *ui.PromptBar
	gutter     *ui.Gutter

	watcher   *fileWatcher
	positions positionStore

	now       func() time.Time
	lastPaint time.Time

	// handled counts input events fully applied.
	handled atomic.Uint64
}

type Option func(*Editor)

// WithScreen replaces the terminal screen, mostly for tests.
func WithScreen(s tcell.Screen) Option {
	return func(e *Editor) { e.screen = s }
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) { e.log = l }
}

// WithPositionDir sets where cursor positions are remembered between runs.
// An empty dir disables it.
func WithPositionDir(dir string) Option {
	return func(e *Editor) { e.positions = positionStore{dir: dir} }
}

// New loads cfg.File (if any) and prepares an editor. The terminal is not
// touched until Run.
func New(cfg config.Config, opts ...Option) *Editor {
	theme := cfg.ColorScheme()
	e := &Editor{
		cfg:        config.NewShared(cfg),
		theme:      theme,
		log:        applog.Discard(),
		statusBar:  &ui.StatusBar{Theme: theme},
		messageBar: &ui.MessageBar{Theme: theme},
		promptBar:  &ui.PromptBar{Theme: theme},
		gutter:     &ui.Gutter{Theme: theme},
		positions:  positionStore{dir: defaultPositionDir()},
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.state = NewState(e.open(cfg))
	return e
}

func (e *Editor) State() *State { return e.state }

func (e *Editor) Config() config.Config { return e.cfg.Get() }

func (e *Editor) open(cfg config.Config) *buffer.Buffer {
	if cfg.File == "" {
		e.log.Info("starting without a file")
		return buffer.New()
	}

	existed := fileExists(cfg.File)
	b, err := buffer.Load(cfg.File, cfg.TabSize)
	if err != nil {
		e.log.Error("load failed", "path", cfg.File, "err", err)
		b = buffer.New()
		b.Path = cfg.File
		b.SetError(err.Error())
		return b
	}
	e.log.Info("loaded", "path", cfg.File, "lines", b.LineCount())

	if !existed {
		b.SetMessage("New file: " + filepath.Base(cfg.File))
		return b
	}
	if pos, ok := e.positions.Load(cfg.File); ok {
		restorePosition(b, pos)
	}
	return b
}

// Run takes over the terminal until the user quits or either goroutine
// fails. The terminal is restored before Run returns.
func (e *Editor) Run(ctx context.Context) error {
	if e.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("create screen: %w", err)
		}
		e.screen = s
	}
	if err := e.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	e.screen.SetStyle(e.theme.Text())
	e.screen.Clear()

	w, h := e.screen.Size()
	e.state.Update(func(b *buffer.Buffer) { b.Resize(h, w) })
	e.log.Debug("screen ready", "cols", w, "rows", h)

	cfg := e.cfg.Get()
	if cfg.Watch {
		e.startWatcher(cfg.File)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(e.activity("input", e.inputLoop))
	g.Go(e.activity("render", func() error { return e.renderLoop(gctx) }))
	err := g.Wait()

	if e.watcher != nil {
		e.watcher.Close()
	}
	e.rememberPosition()
	e.screen.Fini()

	if err != nil {
		e.log.Error("editor stopped", "err", err)
		return err
	}
	e.log.Info("editor stopped")
	return nil
}

// activity wraps one of the two goroutines. Whatever way fn ends, the state
// is marked terminated and the input goroutine is woken from PollEvent.
func (e *Editor) activity(name string, fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%s: panic: %v", name, r)
			}
			e.state.Terminate()
			e.screen.PostEvent(tcell.NewEventInterrupt(nil))
		}()
		return fn()
	}
}
