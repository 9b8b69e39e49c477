package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/entities"
	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/ports"
)

// Stable place failure messages.
var (
	ErrFetchPlaces  = errors.New("failed to fetch places")
	ErrFetchPlace   = errors.New("failed to fetch place")
	ErrSearchPlaces = errors.New("failed to search places")
	ErrCountPlaces  = errors.New("failed to count places")
)

// PlaceService manages place read operations and resolves a place's
// world into a summary.
type PlaceService struct {
	places ports.PlaceRepository
	worlds ports.WorldRepository
	log    *slog.Logger
}

// NewPlaceService creates a new PlaceService.
func NewPlaceService(places ports.PlaceRepository, worlds ports.WorldRepository, log *slog.Logger) *PlaceService {
	return &PlaceService{places: places, worlds: worlds, log: log}
}

// GetAll returns every place.
func (s *PlaceService) GetAll(ctx context.Context) ([]entities.Place, error) {
	places, err := s.places.FindAll(ctx)
	if err != nil {
		s.log.Error("fetching places", "error", err)
		return nil, ErrFetchPlaces
	}
	return places, nil
}

// GetByIdentifier returns the place with the given slug, with its world
// resolved into a summary when the place belongs to one. A world
// reference that resolves to nothing yields the place without a summary;
// that is a data condition, not an error.
func (s *PlaceService) GetByIdentifier(ctx context.Context, identifier string) (*entities.PlaceWithWorld, error) {
	if identifier == "" {
		return nil, entities.ErrIdentifierRequired
	}
	place, err := s.places.FindByIdentifier(ctx, identifier)
	if err != nil {
		s.log.Error("fetching place", "identifier", identifier, "error", err)
		return nil, ErrFetchPlace
	}
	if place == nil {
		return nil, nil
	}

	result := &entities.PlaceWithWorld{Place: *place}
	if place.WorldID == "" {
		return result, nil
	}

	world, err := s.worlds.FindByID(ctx, place.WorldID)
	if err != nil {
		s.log.Error("fetching place world", "identifier", identifier, "worldId", place.WorldID, "error", err)
		return nil, ErrFetchPlace
	}
	if world == nil {
		s.log.Warn("place references missing world", "identifier", identifier, "worldId", place.WorldID)
		return result, nil
	}

	result.World = &entities.WorldSummary{
		Identifier: world.Identifier,
		Name:       world.Name,
		MainColor:  world.MainColor,
	}
	return result, nil
}

// Search returns the places matching the filters.
func (s *PlaceService) Search(ctx context.Context, filters entities.PlaceFilters) ([]entities.Place, error) {
	places, err := s.places.FindWithFilters(ctx, filters)
	if err != nil {
		s.log.Error("searching places", "error", err)
		return nil, ErrSearchPlaces
	}
	return places, nil
}

// Count returns the total number of places.
func (s *PlaceService) Count(ctx context.Context) (int, error) {
	count, err := s.places.Count(ctx)
	if err != nil {
		s.log.Error("counting places", "error", err)
		return 0, ErrCountPlaces
	}
	return count, nil
}
