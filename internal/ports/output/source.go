package output

import (
	"context"

	"countrynames/internal/domain/entities"
)

// CountryNameSource yields the locale -> country-name data to export.
// Implementations return the pairs in a stable order; duplicates are allowed
// and resolved by the caller.
type CountryNameSource interface {
	ListLocales(ctx context.Context) ([]entities.LocaleNames, error)
}
