package application

import (
	"context"
	"fmt"
	"io"

	"countrynames/internal/domain"
	"countrynames/internal/ports/input"
	"countrynames/internal/ports/output"
)

var _ input.ExportUseCase = (*ExportService)(nil)

type ExportService struct {
	source     output.CountryNameSource
	serializer output.Serializer
}

func NewExportService(source output.CountryNameSource, serializer output.Serializer) *ExportService {
	return &ExportService{
		source:     source,
		serializer: serializer,
	}
}

// Collect builds the locale string -> names mapping in a single pass over the
// source. When two locales share a string form, the later one wins.
func (s *ExportService) Collect(ctx context.Context) (map[string]any, error) {
	pairs, err := s.source.ListLocales(ctx)
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}
	data := make(map[string]any, len(pairs))
	for _, p := range pairs {
		if p.Locale == nil {
			return nil, fmt.Errorf("list locales: nil locale: %w", domain.ErrSourceUnavailable)
		}
		data[p.Locale.String()] = p.Names
	}
	return data, nil
}

// Export writes the serialized mapping to w. The payload is fully encoded
// before the first byte is written.
func (s *ExportService) Export(ctx context.Context, w io.Writer) error {
	data, err := s.Collect(ctx)
	if err != nil {
		return err
	}
	buf, err := s.serializer.Marshal(data)
	if err != nil {
		return fmt.Errorf("serialize %d locales: %w", len(data), err)
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrWriteOutput, err)
	}
	return nil
}
