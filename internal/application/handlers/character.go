package handlers

import (
	"net/http"

	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/entities"
)

// ListCharacters returns every character, narrowed by the search, race
// and worldId query parameters when present.
func (s *Server) ListCharacters(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := entities.CharacterFilters{
		WorldID: q.Get("worldId"),
		Race:    q.Get("race"),
		Search:  q.Get("search"),
	}

	var (
		characters []entities.Character
		err        error
	)
	if filters.IsZero() {
		characters, err = s.characters.GetAll(r.Context())
	} else {
		characters, err = s.characters.Search(r.Context(), filters)
	}
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if characters == nil {
		characters = []entities.Character{}
	}
	respondJSON(w, http.StatusOK, characters)
}

// GetCharacter returns one character by its slug.
func (s *Server) GetCharacter(w http.ResponseWriter, r *http.Request) {
	character, err := s.characters.GetByIdentifier(r.Context(), r.PathValue("identifier"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if character == nil {
		respondNotFound(w, "character")
		return
	}
	respondJSON(w, http.StatusOK, character)
}
