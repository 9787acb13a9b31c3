package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/finsage-cli/finsage/cmd"
	"github.com/finsage-cli/finsage/internal/config"
)

func main() {
	// Best-effort .env load for local development
	_ = godotenv.Load()

	setupLogger()

	cmd.Execute()
}

// setupLogger sends slog output to a file in the config dir so debug logging
// never bleeds into the TUI. Level comes from FINSAGE_LOG_LEVEL.
func setupLogger() {
	var level slog.Level
	switch strings.ToLower(os.Getenv("FINSAGE_LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logPath := filepath.Join(config.ConfigDir(), "finsage.log")
	if err := os.MkdirAll(config.ConfigDir(), 0o755); err == nil {
		if f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600); err == nil {
			slog.SetDefault(slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level})))
			return
		}
	}

	// Fall back to discarding logs rather than corrupting terminal output
	slog.SetDefault(slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError})))
}
