package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultRxNavBaseURL = "https://rxnav.nlm.nih.gov/REST"
	defaultHTTPTimeout  = 10 * time.Second
	defaultLocale       = "fr"
	defaultGeminiModel  = "gemini-2.0-flash"
)

// Translator backends.
const (
	TranslatorGemini      = "gemini"
	TranslatorPassthrough = "passthrough"
)

type Config struct {
	RxNavBaseURL    string
	HTTPTimeout     time.Duration
	Locale          string
	Translator      string
	GeminiAPIKey    string
	GeminiModel     string
	AmbiguityPolicy string
	LogLevel        string

	// Discord shell only.
	Token   string
	GuildID string
}

// Load charge la configuration depuis les variables d'environnement et la valide.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup construit la configuration à partir d'une fonction de lecture
// d'environnement.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	cfg := &Config{
		RxNavBaseURL:    get("RXNAV_BASE_URL"),
		Locale:          get("LOCALE"),
		Translator:      strings.ToLower(get("TRANSLATOR")),
		GeminiAPIKey:    get("GEMINI_API_KEY"),
		GeminiModel:     get("GEMINI_MODEL"),
		AmbiguityPolicy: strings.ToLower(get("AMBIGUITY_POLICY")),
		LogLevel:        get("LOG_LEVEL"),
		Token:           get("TOKEN"),
		GuildID:         get("GUILD_ID"),
		HTTPTimeout:     defaultHTTPTimeout,
	}

	if raw := get("HTTP_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("config: HTTP_TIMEOUT invalide (%q): %w", raw, err)
		}
		cfg.HTTPTimeout = d
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate applique toutes les règles métier sur la configuration chargée.
func (c *Config) validate() error {
	if c.RxNavBaseURL == "" {
		c.RxNavBaseURL = defaultRxNavBaseURL
	}
	parsed, err := url.Parse(c.RxNavBaseURL)
	if err != nil {
		return fmt.Errorf("config: RXNAV_BASE_URL invalide (%q): %w", c.RxNavBaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: RXNAV_BASE_URL invalide (%q): scheme ou host manquant", c.RxNavBaseURL)
	}

	if c.HTTPTimeout < 0 {
		return fmt.Errorf("config: HTTP_TIMEOUT ne peut pas être négatif")
	}

	if c.Locale == "" {
		c.Locale = defaultLocale
	}

	if c.Translator == "" {
		c.Translator = TranslatorPassthrough
		if c.GeminiAPIKey != "" {
			c.Translator = TranslatorGemini
		}
	}
	switch c.Translator {
	case TranslatorGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("config: GEMINI_API_KEY est requis quand TRANSLATOR=gemini")
		}
		if c.GeminiModel == "" {
			c.GeminiModel = defaultGeminiModel
		}
	case TranslatorPassthrough:
	default:
		return fmt.Errorf("config: TRANSLATOR inconnu (%q), attendu gemini ou passthrough", c.Translator)
	}

	switch c.AmbiguityPolicy {
	case "", "first", "reject":
	default:
		return fmt.Errorf("config: AMBIGUITY_POLICY inconnue (%q), attendu first ou reject", c.AmbiguityPolicy)
	}

	return nil
}

// ValidateDiscord vérifie les variables requises par le bot Discord.
func (c *Config) ValidateDiscord() error {
	if c.Token == "" {
		return fmt.Errorf("config: TOKEN est requis et ne peut pas être vide")
	}
	for _, r := range c.GuildID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: GUILD_ID doit être un ID de serveur Discord (chiffres uniquement)")
		}
	}
	return nil
}
