// Package cldr provides localized country names from the CLDR tables
// compiled into golang.org/x/text.
//
// Locales are identified by their BCP 47 form ("fr-CA", "zh-Hant"), not the
// underscore form ("fr_CA") used by babel-based exports.
package cldr

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"countrynames/internal/domain"
	"countrynames/internal/domain/entities"
	"countrynames/internal/ports/output"
)

var _ output.CountryNameSource = (*Source)(nil)

// Source lists, for each locale, the display name of every country known to
// CLDR, keyed by lower-case ISO 3166 alpha-2 code.
type Source struct {
	locales []language.Tag
	regions []language.Region
}

// NewSource builds a Source for the given locales, or for every locale with
// display data when locales is empty. An explicit locale without region
// names is an error; supported tags without them are skipped.
func NewSource(locales []language.Tag) (*Source, error) {
	if len(locales) == 0 {
		locales = supportedLocales()
	}
	for _, tag := range locales {
		if display.Regions(tag) == nil {
			return nil, fmt.Errorf("cldr: %q: %w", tag, domain.ErrInvalidLocale)
		}
	}
	return &Source{
		locales: locales,
		regions: Countries(),
	}, nil
}

// supportedLocales returns the x/text display tags that can name regions.
// A few (e.g. "prg") only carry language names.
func supportedLocales() []language.Tag {
	var tags []language.Tag
	for _, tag := range display.Supported.Tags() {
		if display.Regions(tag) != nil {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Countries returns every canonical, non private-use country region, in code
// order.
func Countries() []language.Region {
	var regions []language.Region
	for a := 'A'; a <= 'Z'; a++ {
		for b := 'A'; b <= 'Z'; b++ {
			r, err := language.ParseRegion(string([]rune{a, b}))
			if err != nil {
				continue
			}
			if r.Canonicalize() != r || !r.IsCountry() || r.IsPrivateUse() {
				continue
			}
			regions = append(regions, r)
		}
	}
	return regions
}

func (s *Source) ListLocales(ctx context.Context) ([]entities.LocaleNames, error) {
	pairs := make([]entities.LocaleNames, 0, len(s.locales))
	for _, tag := range s.locales {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		names := s.names(tag)
		if len(names) == 0 {
			continue
		}
		pairs = append(pairs, entities.LocaleNames{Locale: tag, Names: names})
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("cldr: no country names for %d locales: %w", len(s.locales), domain.ErrSourceUnavailable)
	}
	return pairs, nil
}

// names returns the country names of a single locale.
func (s *Source) names(tag language.Tag) map[string]string {
	namer := display.Regions(tag)
	if namer == nil {
		return nil
	}
	names := make(map[string]string, len(s.regions))
	for _, r := range s.regions {
		if name := namer.Name(r); name != "" {
			names[strings.ToLower(r.String())] = name
		}
	}
	return names
}
