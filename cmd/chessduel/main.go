// chessduel plays chess against a computer opponent in the terminal, either
// as a line-oriented prompt or as a full-screen board driven by the mouse.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/lgbarn/chessduel/internal/config"
	"github.com/lgbarn/chessduel/internal/logging"
	"github.com/lgbarn/chessduel/internal/session"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}
	if *version {
		fmt.Printf("chessduel version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := loadConfig()
	fatalIf(err, "config")

	logger, err := newLogger(cfg)
	fatalIf(err, "logging")
	defer func() { _ = logger.Sync() }()

	s, err := session.New(cfg, logger)
	fatalIf(err, "session")
	logger.Info("starting",
		zap.String("session", s.ID().String()),
		zap.String("ui", string(cfg.UI.Mode)),
		zap.Int("depth", cfg.Search.Depth),
		zap.Duration("time_budget", cfg.Search.TimeBudget),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch cfg.UI.Mode {
	case config.ModeTUI:
		err = runTUI(ctx, s, cfg.UI)
	default:
		err = newREPL(s, cfg.UI, os.Stdin, os.Stdout).Run(ctx)
	}
	if err != nil && ctx.Err() == nil {
		logger.Error("front end failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "chessduel: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the logger. The full-screen board owns the terminal, so
// without a log file it gets a logger that discards everything.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.UI.Mode == config.ModeTUI && cfg.Logging.File == "" {
		return logging.Nop(), nil
	}
	return logging.New(cfg.Logging)
}

func fatalIf(err error, label string) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "chessduel: %s: %v\n", label, err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessduel [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play chess against the computer.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nEnvironment: CHESSDUEL_CONFIG, CHESSDUEL_COLOUR, CHESSDUEL_PROMOTION,\n")
	fmt.Fprintf(os.Stderr, "CHESSDUEL_TWO_PLAYER, CHESSDUEL_UI, CHESSDUEL_UNICODE, CHESSDUEL_LOG_LEVEL, CHESSDUEL_LOG_FILE\n")
}
