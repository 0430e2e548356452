package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"google.golang.org/genai"

	"drugcheck/internal/domain"
	"drugcheck/internal/ports/output"
)

const DefaultModel = "gemini-2.0-flash"

type Config struct {
	APIKey string
	Model  string

	// BaseURL overrides the Gemini API base URL. Useful for proxies/testing.
	BaseURL string
}

var _ output.TextTranslator = (*Translator)(nil)

// Translator asks a Gemini model for a plain translation of one text.
type Translator struct {
	client *genai.Client
	model  string
}

func New(ctx context.Context, cfg Config) (*Translator, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}

	cc := &genai.ClientConfig{
		APIKey:  strings.TrimSpace(cfg.APIKey),
		Backend: genai.BackendGeminiAPI,
	}
	if strings.TrimSpace(cfg.BaseURL) != "" {
		cc.HTTPOptions.BaseURL = strings.TrimSpace(cfg.BaseURL)
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, err
	}
	return &Translator{client: client, model: model}, nil
}

func (t *Translator) Translate(ctx context.Context, text string, source, dest language.Tag) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", domain.NewError(domain.KindTranslation, "", errors.New("empty text"))
	}

	resp, err := t.client.Models.GenerateContent(
		ctx,
		t.model,
		genai.Text(buildPrompt(text, source, dest)),
		&genai.GenerateContentConfig{CandidateCount: 1},
	)
	if err != nil {
		return "", domain.NewError(domain.KindTranslation, "", describeErr(err))
	}

	out := strings.TrimSpace(resp.Text())
	if out == "" {
		return "", domain.NewError(domain.KindTranslation, "", errors.New("gemini: empty translation"))
	}
	return out, nil
}

func buildPrompt(text string, source, dest language.Tag) string {
	return fmt.Sprintf(
		"Translate the following medical text from %s to %s.\n"+
			"Return ONLY the translated text, without quotes or commentary. "+
			"Keep drug names unchanged.\n\n%s",
		languageName(source), languageName(dest), text,
	)
}

func languageName(tag language.Tag) string {
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return tag.String()
}

func describeErr(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == 429:
			return fmt.Errorf("gemini: quota exceeded: %w", err)
		case apiErr.Code == 401 || apiErr.Code == 403:
			return fmt.Errorf("gemini: unauthorized: %w", err)
		}
	}
	return fmt.Errorf("gemini: %w", err)
}
