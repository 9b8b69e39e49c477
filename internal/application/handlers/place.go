package handlers

import (
	"net/http"

	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/entities"
)

// ListPlaces returns every place, narrowed by the search and worldId
// query parameters when present.
func (s *Server) ListPlaces(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := entities.PlaceFilters{
		WorldID: q.Get("worldId"),
		Search:  q.Get("search"),
	}

	var (
		places []entities.Place
		err    error
	)
	if filters.IsZero() {
		places, err = s.places.GetAll(r.Context())
	} else {
		places, err = s.places.Search(r.Context(), filters)
	}
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if places == nil {
		places = []entities.Place{}
	}
	respondJSON(w, http.StatusOK, places)
}

// GetPlace returns one place by its slug, with its world summary when
// the place belongs to a resolvable world.
func (s *Server) GetPlace(w http.ResponseWriter, r *http.Request) {
	place, err := s.places.GetByIdentifier(r.Context(), r.PathValue("identifier"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if place == nil {
		respondNotFound(w, "place")
		return
	}
	respondJSON(w, http.StatusOK, place)
}
