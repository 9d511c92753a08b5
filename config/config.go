package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	"chimp/repl"
)

type Config struct {
	Logger LoggerConfig `yaml:"logger"`
	REPL   REPLConfig   `yaml:"repl"`
}

type LoggerConfig struct {
	Level string `yaml:"level"`
	Type  string `yaml:"type"`
}

type REPLConfig struct {
	Prompt string `yaml:"prompt"`
	Mode   string `yaml:"mode"`
}

func Default() Config {
	return Config{
		Logger: LoggerConfig{
			Level: "info",
			Type:  "text",
		},
		REPL: REPLConfig{
			Prompt: ">> ",
			Mode:   "tokens",
		},
	}
}

// Parse validates the raw config and returns the wired REPL settings and
// logger.
func (cfg Config) Parse() (*repl.Config, *slog.Logger, error) {
	logger, err := parseLoggerConfig(cfg.Logger)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot create logger: %w", err)
	}

	replCfg, err := parseREPLConfig(cfg.REPL)
	if err != nil {
		return nil, logger, fmt.Errorf("cannot create repl: %w", err)
	}

	return replCfg, logger, nil
}

func parseLoggerConfig(cfg LoggerConfig) (*slog.Logger, error) {
	var handler slog.Handler

	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid log level: %s", cfg.Level)
	}

	w := os.Stderr
	switch cfg.Type {
	case "json":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	case "text":
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	case "colored-text":
		handler = tint.NewHandler(w, &tint.Options{Level: level})
	default:
		return nil, fmt.Errorf("invalid log type: %s", cfg.Type)
	}

	return slog.New(handler), nil
}

func parseREPLConfig(cfg REPLConfig) (*repl.Config, error) {
	prompt := cfg.Prompt
	if prompt == "" {
		prompt = ">> "
	}

	var mode repl.Mode
	switch cfg.Mode {
	case "", "tokens":
		mode = repl.ModeTokens
	case "parse":
		mode = repl.ModeParse
	default:
		return nil, fmt.Errorf("invalid repl mode: %s", cfg.Mode)
	}

	return &repl.Config{Prompt: prompt, Mode: mode}, nil
}
