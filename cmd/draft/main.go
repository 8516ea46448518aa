package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/fantasy-draft/internal/app"
	"github.com/riskibarqy/fantasy-draft/internal/config"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	// stdout belongs to the board; logs go to stderr.
	logger := logging.NewConsole(cfg.LogLevel, os.Stderr).Named("draft")
	logging.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := app.NewDraftClient(ctx, cfg, logger, os.Stdin, os.Stdout)
	if err != nil {
		logger.Error("build draft client", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, "Draft session %s against %s. Type help for commands.\n", client.SessionID, cfg.DraftAPIURL)

	runErr := client.Run(ctx)
	if err := client.Close(); err != nil {
		logger.Warn("close draft client failed", "error", err)
	}
	if runErr != nil && ctx.Err() == nil {
		logger.Error("draft session failed", "error", runErr)
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}
