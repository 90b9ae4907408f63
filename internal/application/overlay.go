package application

import (
	"context"
	"maps"

	"countrynames/internal/domain/entities"
	"countrynames/internal/ports/output"
)

var _ output.CountryNameSource = (*OverlaySource)(nil)

// OverlaySource adds catalog territories to the names of an inner source.
// Catalog entries win over the inner names. Only map[string]string values
// are extended; any other shape is passed through.
type OverlaySource struct {
	inner   output.CountryNameSource
	catalog output.TerritoryCatalog
}

func NewOverlaySource(inner output.CountryNameSource, catalog output.TerritoryCatalog) *OverlaySource {
	return &OverlaySource{
		inner:   inner,
		catalog: catalog,
	}
}

func (s *OverlaySource) ListLocales(ctx context.Context) ([]entities.LocaleNames, error) {
	pairs, err := s.inner.ListLocales(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.LocaleNames, len(pairs))
	for i, p := range pairs {
		out[i] = p
		names, ok := p.Names.(map[string]string)
		if !ok || p.Locale == nil {
			continue
		}
		merged := maps.Clone(names)
		if merged == nil {
			merged = map[string]string{}
		}
		maps.Copy(merged, s.catalog.Names(p.Locale.String()))
		out[i].Names = merged
	}
	return out, nil
}
