package handlers

import (
	"net/http"

	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/entities"
)

// ListItems returns every item, narrowed by the search and type query
// parameters when present.
func (s *Server) ListItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := entities.ItemFilters{
		Type:   q.Get("type"),
		Search: q.Get("search"),
	}

	var (
		items []entities.Item
		err   error
	)
	if filters.IsZero() {
		items, err = s.items.GetAll(r.Context())
	} else {
		items, err = s.items.Search(r.Context(), filters)
	}
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if items == nil {
		items = []entities.Item{}
	}
	respondJSON(w, http.StatusOK, items)
}

// GetItem returns one item by its slug.
func (s *Server) GetItem(w http.ResponseWriter, r *http.Request) {
	item, err := s.items.GetByIdentifier(r.Context(), r.PathValue("identifier"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if item == nil {
		respondNotFound(w, "item")
		return
	}
	respondJSON(w, http.StatusOK, item)
}
