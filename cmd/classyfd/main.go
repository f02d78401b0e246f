package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
)

//nolint:gochecknoglobals
var Version string

func main() {
	os.Exit(run())
}

func run() int {
	config := loadConfig()
	setupLogging(config)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	rootCmd := newRootCmd(config)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("Failed:", "err", err)

		return 1
	}

	return 0
}

func setupLogging(config *Config) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      config.LogLevel,
			TimeFormat: time.Kitchen,
		}),
	))
}
