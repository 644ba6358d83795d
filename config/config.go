package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

const fileName = "te.toml"

// Config is the resolved editor configuration. File and ConfigPath come from
// the command line; the rest may come from the TOML file.
type Config struct {
	File       string `toml:"-"`
	ConfigPath string `toml:"-"`
	TabSize    int    `toml:"tab_size"`
	Theme      string `toml:"theme"`
	Watch      bool   `toml:"watch"`
}

func Default() Config {
	return Config{
		TabSize: 4,
		Theme:   "dark",
		Watch:   true,
	}
}

// DefaultPath returns <user config dir>/te.toml, or just te.toml when the
// config dir cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return fileName
	}
	return filepath.Join(dir, fileName)
}

// Load reads the TOML file at path on top of the defaults. A missing file is
// not an error. A malformed file returns the defaults together with the error
// so the caller can report it and carry on.
func Load(path string) (Config, error) {
	cfg := Default()
	cfg.ConfigPath = path

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		def := Default()
		def.ConfigPath = path
		return def, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.TabSize < 1 {
		cfg.TabSize = Default().TabSize
	}
	return cfg, nil
}

// Generate writes the default configuration to path, creating parent
// directories and overwriting any existing file.
func Generate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(Default()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// Shared guards a Config that the input and render goroutines both use.
type Shared struct {
	mu  sync.RWMutex
	cfg Config
}

func NewShared(cfg Config) *Shared {
	return &Shared{cfg: cfg}
}

func (s *Shared) Get() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

func (s *Shared) File() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.File
}

func (s *Shared) TabSize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.TabSize
}

func (s *Shared) SetFile(path string) {
	s.mu.Lock()
	s.cfg.File = path
	s.mu.Unlock()
}
