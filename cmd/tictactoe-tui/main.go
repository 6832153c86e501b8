package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-history/internal/config"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-history/transport/tui"
)

// main runs a local game in the terminal.
func main() {
	baseDir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to get current directory: %v\n", err)
		os.Exit(1)
	}

	conf, err := config.Load(filepath.Join(baseDir, "./config.yml"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := initLogger(conf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	images := tictactoe.PopupImages{
		Draw:      conf.Popup.DrawImage,
		FirstWin:  conf.Popup.FirstWinImage,
		SecondWin: conf.Popup.SecondWinImage,
	}

	if _, err = tea.NewProgram(tui.New(logger, images)).Run(); err != nil {
		logger.Error("tui failed", "error", err)
		fmt.Fprintf(os.Stderr, "tui failed: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

// initLogger writes to TUI_LOG_FILE when set; the terminal belongs to the UI.
func initLogger(conf *config.Config) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if conf.LogLevel == "debug" {
		level = slog.LevelDebug
	}

	path := os.Getenv("TUI_LOG_FILE")
	if path == "" {
		return slog.New(slog.NewJSONHandler(io.Discard, nil)), func() {}, nil
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	return slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})), func() { _ = file.Close() }, nil
}
