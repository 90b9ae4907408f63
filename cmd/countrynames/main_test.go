package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"countrynames/internal/config"
	"countrynames/internal/domain"
)

func TestRun(t *testing.T) {
	cfg := &config.Config{
		Locales:       []language.Tag{language.English, language.French},
		Overrides:     true,
		DefaultLocale: "en",
	}

	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, &buf))

	var out map[string]map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 2)

	assert.Equal(t, "Germany", out["en"]["de"])
	assert.Equal(t, "Global", out["en"]["zz"])
	assert.Equal(t, "Allemagne", out["fr"]["de"])
	assert.Equal(t, "Mondial", out["fr"]["zz"])
}

func TestRunWithoutOverrides(t *testing.T) {
	cfg := &config.Config{
		Locales:       []language.Tag{language.German},
		DefaultLocale: "en",
	}

	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, &buf))

	var out map[string]map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "Deutschland", out["de"]["de"])
	assert.NotContains(t, out["de"], "zz")
}

func TestRunInvalidLocale(t *testing.T) {
	cfg := &config.Config{
		Locales:       []language.Tag{language.Make("qaa")},
		DefaultLocale: "en",
	}

	var buf bytes.Buffer
	err := run(context.Background(), cfg, &buf)
	require.Error(t, err)
	assert.Equal(t, "invalid_locale", domain.Code(err))
	assert.Zero(t, buf.Len())
}

func TestRunDefaultConfig(t *testing.T) {
	cfg, err := config.FromEnv(func(string) string { return "" })
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, &buf))

	var out map[string]map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Greater(t, len(out), 10)
	assert.NotContains(t, out, "prg")
	assert.Equal(t, "Germany", out["en"]["de"])
	assert.Equal(t, "Global", out["en"]["zz"])
	assert.Equal(t, "Mondial", out["fr"]["zz"])
	// Untranslated in French, resolved from the default language.
	assert.Equal(t, "Donetsk People's Republic", out["fr"]["ua-dpr"])
	assert.Equal(t, "Global", out["it"]["zz"])
}
