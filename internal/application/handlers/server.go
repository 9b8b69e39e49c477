// Package handlers exposes the read API over HTTP: per-kind list and
// detail endpoints, the catalog endpoints backed by the filter engine,
// and a health check. Handlers translate service results into status
// codes; backing-store detail never crosses this boundary.
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/GY-CODING/heralds-of-chaos-web/internal/application/catalog"
	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/services"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server is the HTTP server for the read API.
type Server struct {
	log        *slog.Logger
	server     *http.Server
	mux        *http.ServeMux
	characters *services.CharacterService
	creatures  *services.CreatureService
	items      *services.ItemService
	places     *services.PlaceService
	worlds     *services.WorldService
	catalog    *catalog.Service
	pinger     Pinger
}

// NewServer creates a Server listening on addr with all routes wired.
func NewServer(
	log *slog.Logger,
	addr string,
	characters *services.CharacterService,
	creatures *services.CreatureService,
	items *services.ItemService,
	places *services.PlaceService,
	worlds *services.WorldService,
	catalogSvc *catalog.Service,
	pinger Pinger,
) *Server {
	s := &Server{
		log:        log,
		mux:        http.NewServeMux(),
		characters: characters,
		creatures:  creatures,
		items:      items,
		places:     places,
		worlds:     worlds,
		catalog:    catalogSvc,
		pinger:     pinger,
	}

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.withRequestLog(s.mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	s.mux.HandleFunc("GET /api/characters", s.ListCharacters)
	s.mux.HandleFunc("GET /api/characters/{identifier}", s.GetCharacter)
	s.mux.HandleFunc("GET /api/creatures", s.ListCreatures)
	s.mux.HandleFunc("GET /api/creatures/{identifier}", s.GetCreature)
	s.mux.HandleFunc("GET /api/items", s.ListItems)
	s.mux.HandleFunc("GET /api/items/{identifier}", s.GetItem)
	s.mux.HandleFunc("GET /api/places", s.ListPlaces)
	s.mux.HandleFunc("GET /api/places/{identifier}", s.GetPlace)
	s.mux.HandleFunc("GET /api/worlds", s.ListWorlds)
	s.mux.HandleFunc("GET /api/worlds/{identifier}", s.GetWorld)
	s.mux.HandleFunc("GET /api/catalog/{kind}", s.GetCatalog)
	s.mux.HandleFunc("GET /healthz", s.Healthz)

	return s
}

// Handler returns the server's handler chain, for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start runs the server until it is shut down.
func (s *Server) Start() error {
	s.log.Info("server started", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down server")
	return s.server.Shutdown(ctx)
}

// Healthz pings the backing store.
func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	if err := s.pinger.Ping(r.Context()); err != nil {
		s.log.Error("health check failed", "error", err)
		respondError(w, http.StatusServiceUnavailable, "store unreachable")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
