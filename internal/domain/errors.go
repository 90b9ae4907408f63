package domain

import "errors"

// Domain errors.
var (
	ErrSourceUnavailable = errors.New("données de pays indisponibles")
	ErrUnsupportedValue  = errors.New("valeur non sérialisable en JSON")
	ErrWriteOutput       = errors.New("écriture de la sortie impossible")
	ErrInvalidLocale     = errors.New("locale invalide ou non supportée")
)

// codes is checked in order; the first sentinel wrapped by an error wins.
var codes = []struct {
	err  error
	code string
}{
	{ErrInvalidLocale, "invalid_locale"},
	{ErrSourceUnavailable, "source_unavailable"},
	{ErrUnsupportedValue, "unsupported_value"},
	{ErrWriteOutput, "write_output"},
}

// Code returns the stable code of the domain error wrapped by err, or "" when
// err does not wrap one.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}
