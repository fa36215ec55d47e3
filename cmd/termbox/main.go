// Command termbox runs the UI demo inside a terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hubastard/microgrove/cmd/internal/showcase"
	"github.com/hubastard/microgrove/engine/core"
	"github.com/hubastard/microgrove/engine/term"
	"github.com/hubastard/microgrove/engine/ui"
)

func main() {
	cfgPath := flag.String("config", "", "optional YAML config file; only style colours are used")
	logPath := flag.String("log", "", "write logs to this file")
	flag.Parse()

	if err := run(*cfgPath, *logPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfgPath, logPath string) error {
	cfg, err := core.LoadConfig(cfgPath)
	if err != nil {
		return err
	}
	if logPath != "" {
		f, err := os.Create(logPath)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logger := core.NewLoggerTo(f, cfg.LogLevel)
		core.SetLogger(logger)
		ui.SetLogger(logger)
	}

	// Pixel metrics from the config do not apply to cells.
	style := term.Style()
	core.StyleConfig{Colors: cfg.Style.Colors}.Apply(&style)

	ctx := ui.New(term.Host{}, ui.WithStyle(&style))
	demo := showcase.New(showcase.Cells)
	core.Logger().Info("terminal demo start")
	return term.Run(ctx, demo.Frame)
}
