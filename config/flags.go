package config

import (
	"flag"
	"fmt"
	"io"
	"os"
)

// Options is what the command line asked for.
type Options struct {
	File           string
	ConfigPath     string
	GenerateConfig bool
	TabSize        int
	LogPath        string
}

// ParseFlags parses args (without the program name).
func ParseFlags(args []string, out io.Writer) (Options, error) {
	var opts Options

	fs := flag.NewFlagSet("te", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintf(out, "usage: te [flags] [file]\n")
		fs.PrintDefaults()
	}
	fs.StringVar(&opts.ConfigPath, "config", DefaultPath(), "Path to the TOML config file")
	fs.BoolVar(&opts.GenerateConfig, "generate-config", false, "Write the default config file and exit")
	fs.IntVar(&opts.TabSize, "tab-size", 0, "Spaces per tab, overrides the config file")
	fs.StringVar(&opts.LogPath, "log", os.Getenv("TE_LOG_FILE"), "Append debug logs to this file")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	switch fs.NArg() {
	case 0:
	case 1:
		opts.File = fs.Arg(0)
	default:
		return opts, fmt.Errorf("expected at most one file, got %d", fs.NArg())
	}
	if opts.TabSize < 0 {
		return opts, fmt.Errorf("invalid -tab-size %d", opts.TabSize)
	}
	return opts, nil
}

// Resolve loads the config file named by opts and layers the command line
// on top. Tab size precedence is -tab-size, then .editorconfig next to the
// file, then the config file. A config file error is returned alongside a
// usable Config.
func Resolve(opts Options) (Config, error) {
	cfg, err := Load(opts.ConfigPath)
	cfg.File = opts.File

	switch {
	case opts.TabSize > 0:
		cfg.TabSize = opts.TabSize
	case opts.File != "":
		if n, ok := EditorConfigTabSize(opts.File); ok {
			cfg.TabSize = n
		}
	}
	return cfg, err
}
