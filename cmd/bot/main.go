package main

import (
	"context"
	"fmt"
	"os"

	"drugcheck/internal/adapters/discord"
	"drugcheck/internal/app"
	"drugcheck/internal/config"
	"drugcheck/internal/infrastructure/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
	if err := cfg.ValidateDiscord(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(logging.Options{Level: cfg.LogLevel})
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ LOG_LEVEL: %v\n", err)
		os.Exit(1)
	}

	a, err := app.New(context.Background(), cfg, log)
	if err != nil {
		log.Error(err, "initialisation du pipeline")
		os.Exit(1)
	}

	bot, err := discord.NewBot(cfg, a.Interactions, a.Messages, log)
	if err != nil {
		log.Error(err, "création du bot")
		os.Exit(1)
	}
	if err := bot.Start(); err != nil {
		log.Error(err, "démarrage du bot")
		os.Exit(1)
	}
}
