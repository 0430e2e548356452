package app

import (
	"context"
	"fmt"

	"drugcheck/internal/application"
	"drugcheck/internal/config"
	"drugcheck/internal/infrastructure/i18n"
	"drugcheck/internal/infrastructure/logging"
	"drugcheck/internal/infrastructure/rxnav"
	"drugcheck/internal/infrastructure/translate/gemini"
	"drugcheck/internal/infrastructure/translate/passthrough"
	"drugcheck/internal/ports/output"
)

// App groups the wired use case with what the shells need to render it.
type App struct {
	Interactions *application.InteractionService
	Messages     *i18n.Translator
	Log          *logging.Logger
}

// New wires output adapters -> application for cfg.
func New(ctx context.Context, cfg *config.Config, log *logging.Logger) (*App, error) {
	registry, err := rxnav.NewClient(cfg.RxNavBaseURL, cfg.HTTPTimeout)
	if err != nil {
		return nil, err
	}

	translator, err := newTranslator(ctx, cfg)
	if err != nil {
		return nil, err
	}

	policy, err := application.ParseAmbiguityPolicy(cfg.AmbiguityPolicy)
	if err != nil {
		return nil, err
	}

	messages := i18n.NewTranslator(cfg.Locale, log)
	svc := application.NewInteractionService(registry, registry, translator, messages, log, application.Options{
		Locale:    cfg.Locale,
		Ambiguity: policy,
	})

	log.WithFields(map[string]any{
		"rxnav":      cfg.RxNavBaseURL,
		"translator": cfg.Translator,
		"ambiguity":  string(policy),
		"timeout":    cfg.HTTPTimeout.String(),
	}).Debug("pipeline prêt")

	return &App{Interactions: svc, Messages: messages, Log: log}, nil
}

func newTranslator(ctx context.Context, cfg *config.Config) (output.TextTranslator, error) {
	switch cfg.Translator {
	case config.TranslatorGemini:
		t, err := gemini.New(ctx, gemini.Config{APIKey: cfg.GeminiAPIKey, Model: cfg.GeminiModel})
		if err != nil {
			return nil, fmt.Errorf("traducteur gemini: %w", err)
		}
		return t, nil
	case config.TranslatorPassthrough:
		return passthrough.Translator{}, nil
	default:
		return nil, fmt.Errorf("traducteur inconnu %q", cfg.Translator)
	}
}
