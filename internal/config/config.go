package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"countrynames/internal/domain"
)

type Config struct {
	Locales       []language.Tag
	Overrides     bool
	DefaultLocale string
}

// Load charge la configuration depuis les variables d'environnement et la valide.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	}
	return FromEnv(os.Getenv)
}

// FromEnv construit la configuration à partir de getenv.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Overrides:     true,
		DefaultLocale: strings.TrimSpace(getenv("COUNTRYNAMES_DEFAULT_LOCALE")),
	}

	for _, raw := range strings.Split(getenv("COUNTRYNAMES_LOCALES"), ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		tag, err := language.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("config: COUNTRYNAMES_LOCALES invalide (%q): %w: %w", raw, domain.ErrInvalidLocale, err)
		}
		cfg.Locales = append(cfg.Locales, tag)
	}

	if raw := strings.TrimSpace(getenv("COUNTRYNAMES_OVERRIDES")); raw != "" {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("config: COUNTRYNAMES_OVERRIDES doit être un booléen (%q): %w", raw, err)
		}
		cfg.Overrides = enabled
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applique les règles sur la configuration chargée.
func (c *Config) validate() error {
	if c.DefaultLocale == "" {
		// Valeur par défaut : les catalogues sont complets en anglais.
		c.DefaultLocale = "en"
	}
	if _, err := language.Parse(c.DefaultLocale); err != nil {
		return fmt.Errorf("config: COUNTRYNAMES_DEFAULT_LOCALE invalide (%q): %w: %w", c.DefaultLocale, domain.ErrInvalidLocale, err)
	}
	return nil
}
