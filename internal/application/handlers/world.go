package handlers

import (
	"net/http"

	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/entities"
)

// ListWorlds returns every world ordered by English name.
func (s *Server) ListWorlds(w http.ResponseWriter, r *http.Request) {
	worlds, err := s.worlds.GetAll(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if worlds == nil {
		worlds = []entities.World{}
	}
	respondJSON(w, http.StatusOK, worlds)
}

// GetWorld returns one world by its slug. With ?places=true the world's
// place references are expanded into summaries.
func (s *Server) GetWorld(w http.ResponseWriter, r *http.Request) {
	identifier := r.PathValue("identifier")

	if r.URL.Query().Get("places") == "true" {
		world, err := s.worlds.GetWithPlaces(r.Context(), identifier)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		if world == nil {
			respondNotFound(w, "world")
			return
		}
		respondJSON(w, http.StatusOK, world)
		return
	}

	world, err := s.worlds.GetByIdentifier(r.Context(), identifier)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if world == nil {
		respondNotFound(w, "world")
		return
	}
	respondJSON(w, http.StatusOK, world)
}
