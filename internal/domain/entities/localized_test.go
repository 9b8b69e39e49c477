package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalizedTextGet(t *testing.T) {
	text := LocalizedText{EN: "God", ES: "Dios"}

	assert.Equal(t, "God", text.Get(LocaleEN))
	assert.Equal(t, "Dios", text.Get(LocaleES))
	// German is missing, falls back to English.
	assert.Equal(t, "God", text.Get(LocaleDE))
}

func TestLocalizedTextValues(t *testing.T) {
	text := LocalizedText{EN: "Giant", ES: "Gigante"}
	assert.Equal(t, []string{"Giant", "Gigante"}, text.Values())

	assert.Empty(t, LocalizedText{}.Values())
}

func TestParseLocale(t *testing.T) {
	assert.Equal(t, LocaleES, ParseLocale("es"))
	assert.Equal(t, LocaleDE, ParseLocale("de"))
	assert.Equal(t, LocaleEN, ParseLocale("en"))
	assert.Equal(t, LocaleEN, ParseLocale(""))
	assert.Equal(t, LocaleEN, ParseLocale("fr"))
}

func TestUnknownWorld(t *testing.T) {
	w := UnknownWorld()
	assert.Equal(t, "unknown", w.Identifier)
	assert.Equal(t, "#888888", w.MainColor)
	assert.Equal(t, "Desconocido", w.Name.ES)
}
