package filter

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/entities"
)

// deriveOptions collects one option per distinct value of the field
// across the dataset. The dedup key is the lower-cased English value
// (locale-invariant, so selections survive locale switches); labels
// keep every locale with English filling a missing German. Records
// with no value at the path contribute nothing.
func deriveOptions[T Record](data []T, fieldID string, locale entities.Locale) []Option {
	seen := make(map[string]entities.LocalizedText)

	for _, rec := range data {
		switch v := rec.FilterField(fieldID).(type) {
		case string:
			if v == "" {
				continue
			}
			key := strings.ToLower(v)
			if _, ok := seen[key]; !ok {
				seen[key] = entities.LocalizedText{EN: v, ES: v, DE: v}
			}
		case entities.LocalizedText:
			if v.EN == "" {
				continue
			}
			key := strings.ToLower(v.EN)
			if _, ok := seen[key]; !ok {
				label := v
				if label.DE == "" {
					label.DE = label.EN
				}
				seen[key] = label
			}
		}
	}

	options := make([]Option, 0, len(seen))
	for key, label := range seen {
		options = append(options, Option{Value: key, Label: label})
	}
	sortOptions(options, locale)
	return options
}

// sortOptions orders options alphabetically by their label in the
// active locale, using that locale's collation rules.
func sortOptions(options []Option, locale entities.Locale) {
	col := collate.New(collationTag(locale))
	sort.SliceStable(options, func(i, j int) bool {
		return col.CompareString(options[i].Label.Get(locale), options[j].Label.Get(locale)) < 0
	})
}

func collationTag(locale entities.Locale) language.Tag {
	switch locale {
	case entities.LocaleES:
		return language.Spanish
	case entities.LocaleDE:
		return language.German
	default:
		return language.English
	}
}
