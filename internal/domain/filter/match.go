package filter

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/entities"
)

// foldChain decomposes to NFD, strips combining marks and recomposes,
// so "odín" and "odin" compare equal.
var foldChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// fold lowercases s and strips diacritics.
func fold(s string) string {
	folded, _, err := transform.String(foldChain, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return folded
}

// matchText reports whether the record's name contains the term in any
// locale, case- and accent-insensitively. Records without a name fall
// back to a substring match on their identifier. An empty term matches
// everything.
func matchText(rec Record, term string) bool {
	term = fold(term)
	if term == "" {
		return true
	}

	if name, ok := rec.FilterField("name").(entities.LocalizedText); ok && !name.IsZero() {
		for _, v := range name.Values() {
			if strings.Contains(fold(v), term) {
				return true
			}
		}
		return false
	}

	if identifier, ok := rec.FilterField("identifier").(string); ok && identifier != "" {
		return strings.Contains(fold(identifier), term)
	}

	return false
}

// matchSelect reports whether the chosen value exact-matches the field
// value, compared against every locale of a localized text.
func matchSelect(fieldValue any, chosen string) bool {
	return equalsFolded(fieldValue, fold(chosen))
}

// matchMulti reports whether any chosen value exact-matches the field
// value, or any element of a list-valued field.
func matchMulti(fieldValue any, chosen []string) bool {
	if len(chosen) == 0 {
		return true
	}
	folded := make([]string, len(chosen))
	for i, c := range chosen {
		folded[i] = fold(c)
	}

	switch vals := fieldValue.(type) {
	case []string:
		for _, el := range vals {
			if containsFolded(folded, el) {
				return true
			}
		}
	case []entities.LocalizedText:
		for _, el := range vals {
			for _, want := range folded {
				if equalsFolded(el, want) {
					return true
				}
			}
		}
	default:
		for _, want := range folded {
			if equalsFolded(fieldValue, want) {
				return true
			}
		}
	}
	return false
}

// equalsFolded compares a plain string or localized text against an
// already-folded value.
func equalsFolded(fieldValue any, want string) bool {
	switch v := fieldValue.(type) {
	case string:
		return fold(v) == want
	case entities.LocalizedText:
		for _, s := range v.Values() {
			if fold(s) == want {
				return true
			}
		}
	}
	return false
}

func containsFolded(wants []string, value string) bool {
	folded := fold(value)
	for _, w := range wants {
		if w == folded {
			return true
		}
	}
	return false
}
