package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/ferrost/rt/engine"
	"github.com/ferrost/rt/engine/window"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevelFromEnv(),
	})))

	win := window.NewWindow(
		window.WithTitle("rt"),
		window.WithSize(1280, 720),
	)

	e, err := engine.NewEngine(engine.WithWindow(win))
	if err != nil {
		slog.Error("initialize engine", slog.Any("err", err))
		_ = win.Close()
		os.Exit(1)
	}
	defer e.Release()

	slog.Info("renderer initialized",
		slog.Int("width", win.Width()),
		slog.Int("height", win.Height()),
	)

	e.Run()
}

// logLevelFromEnv maps RT_LOG onto a slog level, defaulting to info.
func logLevelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("RT_LOG")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
