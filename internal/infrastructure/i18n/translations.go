package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"sort"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"countrynames/internal/domain"
	"countrynames/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// Ensure Catalog implements the output.TerritoryCatalog port.
var _ output.TerritoryCatalog = (*Catalog)(nil)

// Catalog is a thin wrapper around go-i18n's Bundle/Localizer holding the
// territory names of the embedded active.*.toml files.
type Catalog struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	ids             []string
}

// NewCatalog builds a Catalog from the embedded message files using the given
// default locale (e.g. "en").
func NewCatalog(defaultLocale string) (*Catalog, error) {
	return newCatalog(localeFS, defaultLocale)
}

func newCatalog(fsys fs.FS, defaultLocale string) (*Catalog, error) {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(fsys, "active.*.toml")
	if err != nil {
		return nil, fmt.Errorf("i18n: %w: %w", domain.ErrSourceUnavailable, err)
	}

	seen := map[string]bool{}
	var ids []string
	for _, file := range files {
		mf, err := bundle.LoadMessageFileFS(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("i18n: load %s: %w: %w", file, domain.ErrSourceUnavailable, err)
		}
		for _, msg := range mf.Messages {
			if !seen[msg.ID] {
				seen[msg.ID] = true
				ids = append(ids, msg.ID)
			}
		}
	}
	sort.Strings(ids)

	return &Catalog{
		bundle:          bundle,
		defaultLanguage: tag,
		ids:             ids,
	}, nil
}

// Names resolves every territory for locale. If a territory is not translated
// for the locale, it falls back to the default locale; territories missing
// there as well are left out.
func (c *Catalog) Names(locale string) map[string]string {
	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, c.defaultLanguage.String())

	localizer := i18n.NewLocalizer(c.bundle, languages...)
	names := make(map[string]string, len(c.ids))
	for _, id := range c.ids {
		msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
		// A default-language fallback comes back with a MessageNotFoundErr.
		var notFound *i18n.MessageNotFoundErr
		if err != nil && !(errors.As(err, &notFound) && msg != "") {
			log.Printf("i18n: localize failed (id=%s, locales=%v): %v", id, languages, err)
			continue
		}
		names[id] = msg
	}
	return names
}
