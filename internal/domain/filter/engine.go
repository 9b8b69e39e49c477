package filter

import "github.com/GY-CODING/heralds-of-chaos-web/internal/domain/entities"

// Engine narrows a dataset against a list of filter configurations and
// the currently chosen values. The dataset is treated as immutable for
// the lifetime of the engine; identical state always yields identical
// results.
type Engine[T Record] struct {
	data    []T
	configs []Config
	values  Values
	locale  entities.Locale
}

// NewEngine builds an engine over data with the given configuration.
// The locale affects option labels and ordering only, never matching.
func NewEngine[T Record](data []T, configs []Config, locale entities.Locale) *Engine[T] {
	return &Engine[T]{
		data:    data,
		configs: configs,
		values:  Values{},
		locale:  locale,
	}
}

// SetLocale switches the labeling locale. Dedup keys and chosen filter
// values are locale-invariant and are left untouched.
func (e *Engine[T]) SetLocale(locale entities.Locale) {
	e.locale = locale
}

// Set records the chosen value for a filter id.
func (e *Engine[T]) Set(id string, value Value) {
	e.values[id] = value
}

// SetValues replaces the whole filter state.
func (e *Engine[T]) SetValues(values Values) {
	if values == nil {
		values = Values{}
	}
	e.values = values
}

// Values returns the current filter state.
func (e *Engine[T]) Values() Values {
	return e.values
}

// Clear resets every filter.
func (e *Engine[T]) Clear() {
	e.values = Values{}
}

// HasActive reports whether at least one filter holds a constraining value.
func (e *Engine[T]) HasActive() bool {
	for _, v := range e.values {
		if v.IsActive() {
			return true
		}
	}
	return false
}

// Configs returns the filter configurations, with dynamic select
// filters enriched: options derived from the dataset, sorted by the
// active locale, and a synthetic "all" option prepended carrying the
// filter's placeholder (or label) text.
func (e *Engine[T]) Configs() []Config {
	out := make([]Config, len(e.configs))
	for i, cfg := range e.configs {
		if cfg.Dynamic && (cfg.Kind == Select || cfg.Kind == MultiSelect) {
			all := Option{Value: "all", Label: cfg.Label}
			if !cfg.Placeholder.IsZero() {
				all.Label = cfg.Placeholder
			}
			cfg.Options = append([]Option{all}, deriveOptions(e.data, cfg.ID, e.locale)...)
		}
		out[i] = cfg
	}
	return out
}

// Results returns the records satisfying every active filter. Inactive
// filters contribute no constraint; an engine with no active filters
// returns the dataset unchanged.
func (e *Engine[T]) Results() []T {
	out := make([]T, 0, len(e.data))
	for _, rec := range e.data {
		if e.matches(rec) {
			out = append(out, rec)
		}
	}
	return out
}

func (e *Engine[T]) matches(rec T) bool {
	for _, cfg := range e.configs {
		value, ok := e.values[cfg.ID]
		if !ok || !value.IsActive() {
			continue
		}
		switch cfg.Kind {
		case Text:
			if !matchText(rec, value.Single()) {
				return false
			}
		case Select:
			if !matchSelect(rec.FilterField(cfg.ID), value.Single()) {
				return false
			}
		case MultiSelect:
			if !matchMulti(rec.FilterField(cfg.ID), value.Multi()) {
				return false
			}
		}
	}
	return true
}
