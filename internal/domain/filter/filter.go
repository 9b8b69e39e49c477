// Package filter implements a generic, declarative filter engine over
// in-memory entity datasets: free-text search, select and multi-select
// facets with dynamically derived options, and locale-aware labeling.
// The engine is pure and synchronous; results are recomputed in full
// from the unfiltered dataset on every call.
package filter

import (
	"encoding/json"
	"fmt"

	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/entities"
)

// Kind identifies the behavior of a filter. The set is closed; matching
// dispatches over it exhaustively.
type Kind int

const (
	// Text matches a search term against a record's name (any locale),
	// falling back to its identifier.
	Text Kind = iota
	// Select exact-matches a single chosen value against a field.
	Select
	// MultiSelect matches when any chosen value exact-matches the field.
	MultiSelect
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Select:
		return "select"
	case MultiSelect:
		return "multiSelect"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalJSON encodes the kind as its wire name.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Option is one selectable choice of a select or multi-select filter.
// Value is the locale-invariant key; Label is what the UI renders.
type Option struct {
	Value string                 `json:"value"`
	Label entities.LocalizedText `json:"label"`
}

// Config declares one filter. ID names the record field it constrains
// and doubles as the query parameter name; dot paths address nested
// fields (e.g. "world.name"). Dynamic select filters derive their
// options from the dataset instead of listing them statically.
type Config struct {
	ID          string                 `json:"id"`
	Kind        Kind                   `json:"type"`
	Label       entities.LocalizedText `json:"label"`
	Placeholder entities.LocalizedText `json:"placeholder,omitzero"`
	Dynamic     bool                   `json:"-"`
	Options     []Option               `json:"options,omitempty"`
}

// Record is implemented by datasets the engine can filter. FilterField
// returns the value stored at a field path: a string, an
// entities.LocalizedText, a slice of either, or nil when absent.
type Record interface {
	FilterField(path string) any
}

// Value holds the chosen value of one filter: a single string for text
// and select filters, a string list for multi-select filters.
type Value struct {
	single string
	multi  []string
	isList bool
}

// String builds a single-valued filter value.
func String(s string) Value {
	return Value{single: s}
}

// List builds a multi-valued filter value.
func List(values ...string) Value {
	return Value{multi: values, isList: true}
}

// Single returns the single chosen value.
func (v Value) Single() string { return v.single }

// Multi returns the chosen value list.
func (v Value) Multi() []string { return v.multi }

// IsActive reports whether the value constrains results. Empty values
// and the synthetic "all" choice match everything.
func (v Value) IsActive() bool {
	if v.isList {
		return len(v.multi) > 0
	}
	return v.single != "" && v.single != "all"
}

// MarshalJSON encodes the value as a string or a string array.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.isList {
		return json.Marshal(v.multi)
	}
	return json.Marshal(v.single)
}

// Values maps filter ids to their chosen values. Ids without an entry
// contribute no constraint.
type Values map[string]Value
