package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"drugcheck/internal/adapters/cli"
	"drugcheck/internal/app"
	"drugcheck/internal/config"
	"drugcheck/internal/infrastructure/logging"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(logging.Options{Level: cfg.LogLevel, HumanReadable: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ LOG_LEVEL: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Error(err, "initialisation du pipeline")
		os.Exit(1)
	}

	if err := cli.New(a.Interactions, version).ExecuteContext(ctx); err != nil {
		if !errors.Is(err, cli.ErrLookupFailed) {
			fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		}
		os.Exit(1)
	}
}
