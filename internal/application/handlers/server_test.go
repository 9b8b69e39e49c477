package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GY-CODING/heralds-of-chaos-web/internal/application/catalog"
	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/entities"
	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/mocks"
	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/services"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error { return p.err }

type fixtures struct {
	characters *mocks.CharacterRepository
	creatures  *mocks.CreatureRepository
	items      *mocks.ItemRepository
	places     *mocks.PlaceRepository
	worlds     *mocks.WorldRepository
	pinger     stubPinger
}

func defaultFixtures() *fixtures {
	return &fixtures{
		characters: &mocks.CharacterRepository{Characters: []entities.Character{
			{
				Entity: entities.Entity{
					ID:         "65f0a1",
					Identifier: "thor",
					Name:       entities.LocalizedText{EN: "Thor", ES: "Thor"},
				},
				Race:  entities.LocalizedText{EN: "God", ES: "Dios"},
				World: "65f0w1",
			},
		}},
		creatures: &mocks.CreatureRepository{},
		items:     &mocks.ItemRepository{},
		places: &mocks.PlaceRepository{Places: []entities.Place{
			{
				Entity: entities.Entity{
					ID:         "65f0p1",
					Identifier: "valhalla",
					Name:       entities.LocalizedText{EN: "Valhalla", ES: "Valhalla"},
				},
				WorldID: "65f0w1",
			},
		}},
		worlds: &mocks.WorldRepository{Worlds: []entities.World{
			{
				Entity: entities.Entity{
					ID:         "65f0w1",
					Identifier: "asgard",
					Name:       entities.LocalizedText{EN: "Asgard", ES: "Asgard"},
				},
				MainColor: "#c9a227",
				Places:    []string{"65f0p1"},
			},
		}},
	}
}

func newTestServer(f *fixtures) *Server {
	log := slog.New(slog.DiscardHandler)
	characters := services.NewCharacterService(f.characters, log)
	creatures := services.NewCreatureService(f.creatures, log)
	items := services.NewItemService(f.items, log)
	places := services.NewPlaceService(f.places, f.worlds, log)
	worlds := services.NewWorldService(f.worlds, f.places, log)
	catalogSvc := catalog.NewService(characters, creatures, items, places, worlds, log)
	return NewServer(log, ":0", characters, creatures, items, places, worlds, catalogSvc, f.pinger)
}

func doRequest(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestListCharacters(t *testing.T) {
	srv := newTestServer(defaultFixtures())

	rec := doRequest(t, srv, "/api/characters")
	require.Equal(t, http.StatusOK, rec.Code)

	var characters []entities.Character
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &characters))
	require.Len(t, characters, 1)
	assert.Equal(t, "thor", characters[0].Identifier)
}

func TestListCharactersFiltered(t *testing.T) {
	srv := newTestServer(defaultFixtures())

	rec := doRequest(t, srv, "/api/characters?race=giant")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetCharacter(t *testing.T) {
	srv := newTestServer(defaultFixtures())

	rec := doRequest(t, srv, "/api/characters/thor")
	require.Equal(t, http.StatusOK, rec.Code)

	var character entities.Character
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &character))
	assert.Equal(t, "Thor", character.Name.EN)
}

func TestGetCharacterNotFound(t *testing.T) {
	srv := newTestServer(defaultFixtures())

	rec := doRequest(t, srv, "/api/characters/baldr")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"character not found"}`, rec.Body.String())
}

func TestGetCharacterStoreFailure(t *testing.T) {
	f := defaultFixtures()
	f.characters.Err = errors.New("connection reset by peer")
	srv := newTestServer(f)

	rec := doRequest(t, srv, "/api/characters/thor")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"failed to fetch character"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestGetWorldWithPlaces(t *testing.T) {
	srv := newTestServer(defaultFixtures())

	rec := doRequest(t, srv, "/api/worlds/asgard?places=true")
	require.Equal(t, http.StatusOK, rec.Code)

	var world struct {
		Identifier string                  `json:"identifier"`
		Places     []entities.PlaceSummary `json:"places"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &world))
	assert.Equal(t, "asgard", world.Identifier)
	require.Len(t, world.Places, 1)
	assert.Equal(t, entities.PlaceSummary{Identifier: "valhalla", Name: "Valhalla"}, world.Places[0])
}

func TestGetPlaceWithWorldSummary(t *testing.T) {
	srv := newTestServer(defaultFixtures())

	rec := doRequest(t, srv, "/api/places/valhalla")
	require.Equal(t, http.StatusOK, rec.Code)

	var place entities.PlaceWithWorld
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &place))
	require.NotNil(t, place.World)
	assert.Equal(t, "asgard", place.World.Identifier)
}

func TestGetCatalogCharacters(t *testing.T) {
	srv := newTestServer(defaultFixtures())

	rec := doRequest(t, srv, "/api/catalog/characters?lang=es&race=dios")
	require.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Results          []entities.CharacterWithWorld `json:"results"`
		ResultCount      int                           `json:"resultCount"`
		HasActiveFilters bool                          `json:"hasActiveFilters"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page.Results, 1)
	assert.Equal(t, "thor", page.Results[0].Identifier)
	assert.Equal(t, "asgard", page.Results[0].World.Identifier)
	assert.Equal(t, 1, page.ResultCount)
	assert.True(t, page.HasActiveFilters)
}

func TestGetCatalogUnknownKind(t *testing.T) {
	srv := newTestServer(defaultFixtures())

	rec := doRequest(t, srv, "/api/catalog/runes")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(defaultFixtures())

	rec := doRequest(t, srv, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHealthzStoreDown(t *testing.T) {
	f := defaultFixtures()
	f.pinger = stubPinger{err: errors.New("no reachable servers")}
	srv := newTestServer(f)

	rec := doRequest(t, srv, "/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRequestIDHeader(t *testing.T) {
	srv := newTestServer(defaultFixtures())

	rec := doRequest(t, srv, "/api/worlds")
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}
