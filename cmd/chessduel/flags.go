// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"os"
	"strings"

	"github.com/lgbarn/chessduel/internal/config"
)

var (
	// Configuration file
	configFile = flag.String("config", getenv("CHESSDUEL_CONFIG", ""), "YAML configuration file")

	// Search options
	depth      = flag.Int("depth", 0, "Search depth in plies (0 = configured value)")
	timeBudget = flag.Duration("time", 0, "Search time per computer move, e.g. 1500ms (0 = configured value)")

	// Game options
	colour    = flag.String("colour", getenv("CHESSDUEL_COLOUR", ""), "Colour the human plays: white, black or random")
	promotion = flag.String("promotion", getenv("CHESSDUEL_PROMOTION", ""), "Human promotion: auto (always queen) or choose")
	twoPlayer = flag.Bool("two-player", getenb("CHESSDUEL_TWO_PLAYER", false), "Move both colours by hand")

	// Presentation
	uiMode  = flag.String("ui", getenv("CHESSDUEL_UI", ""), "Front end: repl or tui")
	svgPath = flag.String("svg", "", "Default file written by the svg command")
	unicode = flag.Bool("unicode", getenb("CHESSDUEL_UNICODE", false), "Draw pieces as chess glyphs")

	// Logging
	logLevel = flag.String("log-level", getenv("CHESSDUEL_LOG_LEVEL", ""), "Log level: debug, info, warn or error")
	logFile  = flag.String("log-file", getenv("CHESSDUEL_LOG_FILE", ""), "Write the log to this file instead of standard error")
	devLog   = flag.Bool("dev-log", false, "Human-readable log output")

	// Help and version
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// loadConfig reads the configuration file, if any, and applies the flags over it.
func loadConfig() (*config.Config, error) {
	cfg := config.NewConfig()
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	b := config.FromConfig(cfg)
	applyFlags(b)
	return b.Build()
}

// applyFlags copies every flag that was given a value onto the builder.
func applyFlags(b *config.ConfigBuilder) {
	applySearchFlags(b)
	applyGameFlags(b)
	applyUIFlags(b)
	applyLoggingFlags(b)
}

func applySearchFlags(b *config.ConfigBuilder) {
	if *depth != 0 {
		b.WithDepth(*depth)
	}
	if *timeBudget != 0 {
		b.WithTimeBudget(*timeBudget)
	}
}

func applyGameFlags(b *config.ConfigBuilder) {
	if *colour != "" {
		b.WithHumanColour(config.ColourChoice(strings.ToLower(*colour)))
	}
	if *promotion != "" {
		b.WithPromotion(config.PromotionPolicy(strings.ToLower(*promotion)))
	}
	if *twoPlayer {
		b.WithComputerOpponent(false)
	}
}

func applyUIFlags(b *config.ConfigBuilder) {
	if *uiMode != "" {
		b.WithUIMode(config.UIMode(strings.ToLower(*uiMode)))
	}
	if *svgPath != "" {
		b.WithSVGPath(*svgPath)
	}
	if *unicode {
		b.WithUnicode(true)
	}
}

func applyLoggingFlags(b *config.ConfigBuilder) {
	if *logLevel != "" {
		b.WithLogLevel(*logLevel)
	}
	if *logFile != "" {
		b.WithLogFile(*logFile)
	}
	if *devLog {
		b.WithDevelopmentLogging(true)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenb(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return def
}
