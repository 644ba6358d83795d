package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"te/applog"
	"te/config"
	"te/editor"

	"golang.org/x/term"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, err := config.ParseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	if opts.GenerateConfig {
		if err := config.Generate(opts.ConfigPath); err != nil {
			fmt.Fprintf(os.Stderr, "error: cannot write config: %v\n", err)
			return 1
		}
		fmt.Printf("wrote %s\n", opts.ConfigPath)
		return 0
	}

	log, closeLog, err := applog.Open(opts.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
	}
	defer closeLog()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "error: stdin is not a terminal")
		return 1
	}

	cfg, err := config.Resolve(opts)
	if err != nil {
		log.Warn("using default config", "err", err)
	}
	log.Info("starting", "file", cfg.File, "tab_size", cfg.TabSize, "theme", cfg.Theme)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	if err := editor.New(cfg, editor.WithLogger(log)).Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
