package handlers

import (
	"net/http"
	"net/url"

	"github.com/GY-CODING/heralds-of-chaos-web/internal/application/catalog"
	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/entities"
	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/filter"
)

// GetCatalog returns the assembled catalog page for a kind: filtered
// results plus the filter configurations labeled for the lang query
// parameter. Every other query parameter is treated as a filter value,
// keyed by filter id; repeated parameters become a multi-value.
func (s *Server) GetCatalog(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	locale := entities.ParseLocale(q.Get("lang"))
	values := valuesFromQuery(q)
	ctx := r.Context()

	switch r.PathValue("kind") {
	case "characters":
		page, err := s.catalog.Characters(ctx, locale, values)
		respondPage(w, page, err)
	case "creatures":
		page, err := s.catalog.Creatures(ctx, locale, values)
		respondPage(w, page, err)
	case "items":
		page, err := s.catalog.Items(ctx, locale, values)
		respondPage(w, page, err)
	case "places":
		page, err := s.catalog.Places(ctx, locale, values)
		respondPage(w, page, err)
	case "worlds":
		page, err := s.catalog.Worlds(ctx, locale, values)
		respondPage(w, page, err)
	default:
		respondError(w, http.StatusNotFound, "unknown catalog kind")
	}
}

func respondPage[T filter.Record](w http.ResponseWriter, page *catalog.Page[T], err error) {
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, page)
}

func valuesFromQuery(q url.Values) filter.Values {
	values := filter.Values{}
	for key, vals := range q {
		if key == "lang" || len(vals) == 0 {
			continue
		}
		if len(vals) > 1 {
			values[key] = filter.List(vals...)
		} else {
			values[key] = filter.String(vals[0])
		}
	}
	return values
}
