package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"countrynames/internal/domain"
)

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(env(nil))
	require.NoError(t, err)
	assert.Empty(t, cfg.Locales)
	assert.True(t, cfg.Overrides)
	assert.Equal(t, "en", cfg.DefaultLocale)
}

func TestFromEnv(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		"COUNTRYNAMES_LOCALES":        " en, fr-CA ,,zh-Hant",
		"COUNTRYNAMES_OVERRIDES":      "false",
		"COUNTRYNAMES_DEFAULT_LOCALE": "fr",
	}))
	require.NoError(t, err)
	var locales []string
	for _, tag := range cfg.Locales {
		locales = append(locales, tag.String())
	}
	assert.Equal(t, []string{"en", "fr-CA", "zh-Hant"}, locales)
	assert.False(t, cfg.Overrides)
	assert.Equal(t, "fr", cfg.DefaultLocale)
}

func TestFromEnvInvalidLocale(t *testing.T) {
	_, err := FromEnv(env(map[string]string{"COUNTRYNAMES_LOCALES": "en,not_a-valid-tag!"}))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidLocale)
}

func TestFromEnvInvalidOverrides(t *testing.T) {
	_, err := FromEnv(env(map[string]string{"COUNTRYNAMES_OVERRIDES": "peut-être"}))
	require.Error(t, err)
}

func TestFromEnvInvalidDefaultLocale(t *testing.T) {
	_, err := FromEnv(env(map[string]string{"COUNTRYNAMES_DEFAULT_LOCALE": "!!"}))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidLocale)
}
