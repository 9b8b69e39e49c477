// Package entities defines the domain model for the Heralds of Chaos
// encyclopedia: the five entity kinds, localized text, and the derived
// read-time views that join entities together.
package entities

// Locale identifies a supported UI language.
type Locale string

const (
	// LocaleEN is English, the canonical and fallback locale.
	LocaleEN Locale = "en"
	// LocaleES is Spanish.
	LocaleES Locale = "es"
	// LocaleDE is German (partially translated content).
	LocaleDE Locale = "de"
)

// ParseLocale maps a raw language code to a supported Locale.
// Unknown or empty values fall back to English.
func ParseLocale(s string) Locale {
	switch Locale(s) {
	case LocaleES:
		return LocaleES
	case LocaleDE:
		return LocaleDE
	default:
		return LocaleEN
	}
}

// LocalizedText holds the same semantic string in every supported locale.
// German is optional in the seed data.
type LocalizedText struct {
	EN string `bson:"en" json:"en"`
	ES string `bson:"es" json:"es"`
	DE string `bson:"de,omitempty" json:"de,omitempty"`
}

// Get returns the value for the given locale, falling back to English
// when the locale's value is empty.
func (t LocalizedText) Get(locale Locale) string {
	var v string
	switch locale {
	case LocaleES:
		v = t.ES
	case LocaleDE:
		v = t.DE
	default:
		v = t.EN
	}
	if v == "" {
		return t.EN
	}
	return v
}

// Values returns the non-empty locale values, English first.
func (t LocalizedText) Values() []string {
	vals := make([]string, 0, 3)
	for _, v := range []string{t.EN, t.ES, t.DE} {
		if v != "" {
			vals = append(vals, v)
		}
	}
	return vals
}

// IsZero reports whether no locale carries a value.
func (t LocalizedText) IsZero() bool {
	return t.EN == "" && t.ES == "" && t.DE == ""
}
