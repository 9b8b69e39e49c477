package handlers

import (
	"net/http"

	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/entities"
)

// ListCreatures returns every creature, narrowed by the search and race
// query parameters when present.
func (s *Server) ListCreatures(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := entities.CreatureFilters{
		Race:   q.Get("race"),
		Search: q.Get("search"),
	}

	var (
		creatures []entities.Creature
		err       error
	)
	if filters.IsZero() {
		creatures, err = s.creatures.GetAll(r.Context())
	} else {
		creatures, err = s.creatures.Search(r.Context(), filters)
	}
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if creatures == nil {
		creatures = []entities.Creature{}
	}
	respondJSON(w, http.StatusOK, creatures)
}

// GetCreature returns one creature by its slug.
func (s *Server) GetCreature(w http.ResponseWriter, r *http.Request) {
	creature, err := s.creatures.GetByIdentifier(r.Context(), r.PathValue("identifier"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if creature == nil {
		respondNotFound(w, "creature")
		return
	}
	respondJSON(w, http.StatusOK, creature)
}
