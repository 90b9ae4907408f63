// Package jsonenc is the compact JSON serializer of the export.
package jsonenc

import (
	"fmt"

	"github.com/goccy/go-json"

	"countrynames/internal/domain"
	"countrynames/internal/ports/output"
)

var _ output.Serializer = Encoder{}

// Encoder produces compact JSON: no indentation, no trailing newline, sorted
// map keys, and HTML characters left unescaped.
type Encoder struct{}

func (Encoder) Marshal(v any) ([]byte, error) {
	buf, err := json.MarshalWithOption(v, json.DisableHTMLEscape())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnsupportedValue, err)
	}
	return buf, nil
}
