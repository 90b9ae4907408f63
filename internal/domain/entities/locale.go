package entities

// Locale identifies a language/region combination. Only its canonical
// string form is used as an output key; language.Tag satisfies it.
type Locale interface {
	String() string
}

// LocaleNames is one pair yielded by a country-name source.
type LocaleNames struct {
	Locale Locale
	Names  any // opaque, passed through as-is
}
