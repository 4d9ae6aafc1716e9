package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"example.com/fittrack/cmd/fittrack/commands"
	"example.com/fittrack/internal/config"
	"example.com/fittrack/internal/logging"
)

// Version information (set via ldflags during build)
var Version = "dev"

func main() {
	cfg := config.Load()
	logger := logging.NewStderr(cfg.LogLevel, "console")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.Execute(ctx, Version, commands.BackendOpener(cfg, logger)); err != nil {
		logger.Error().Err(err).Msg("command failed")
		stop()
		os.Exit(1)
	}
}
