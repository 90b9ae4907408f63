package output

// TerritoryCatalog exposes localized names for territories the country-name
// source lacks or labels differently.
type TerritoryCatalog interface {
	// Names returns territory code -> name for locale, falling back to the
	// catalog's default language for entries the locale does not translate.
	Names(locale string) map[string]string
}
