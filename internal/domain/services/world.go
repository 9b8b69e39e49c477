package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/entities"
	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/ports"
)

// Stable world failure messages.
var (
	ErrFetchWorlds          = errors.New("failed to fetch worlds")
	ErrFetchWorld           = errors.New("failed to fetch world")
	ErrFetchWorldWithPlaces = errors.New("failed to fetch world with places")
	ErrCountWorlds          = errors.New("failed to count worlds")
)

// WorldService manages world read operations, including expansion of a
// world's place references into summaries.
type WorldService struct {
	worlds ports.WorldRepository
	places ports.PlaceRepository
	log    *slog.Logger
}

// NewWorldService creates a new WorldService.
func NewWorldService(worlds ports.WorldRepository, places ports.PlaceRepository, log *slog.Logger) *WorldService {
	return &WorldService{worlds: worlds, places: places, log: log}
}

// GetAll returns every world ordered by English name.
func (s *WorldService) GetAll(ctx context.Context) ([]entities.World, error) {
	worlds, err := s.worlds.FindAllSorted(ctx)
	if err != nil {
		s.log.Error("fetching worlds", "error", err)
		return nil, ErrFetchWorlds
	}
	return worlds, nil
}

// GetByIdentifier returns the world with the given slug, or (nil, nil)
// when none matches.
func (s *WorldService) GetByIdentifier(ctx context.Context, identifier string) (*entities.World, error) {
	if identifier == "" {
		return nil, entities.ErrIdentifierRequired
	}
	world, err := s.worlds.FindByIdentifier(ctx, identifier)
	if err != nil {
		s.log.Error("fetching world", "identifier", identifier, "error", err)
		return nil, ErrFetchWorld
	}
	return world, nil
}

// GetWithPlaces returns the world with the given slug and its place
// references expanded into summaries, preserving the stored order.
// References that resolve to nothing are omitted and logged.
func (s *WorldService) GetWithPlaces(ctx context.Context, identifier string) (*entities.WorldWithPlaces, error) {
	if identifier == "" {
		return nil, entities.ErrIdentifierRequired
	}
	world, err := s.worlds.FindByIdentifier(ctx, identifier)
	if err != nil {
		s.log.Error("fetching world", "identifier", identifier, "error", err)
		return nil, ErrFetchWorldWithPlaces
	}
	if world == nil {
		return nil, nil
	}

	result := &entities.WorldWithPlaces{World: *world, Places: []entities.PlaceSummary{}}
	if len(world.Places) == 0 {
		return result, nil
	}

	places, err := s.places.FindByIDs(ctx, world.Places)
	if err != nil {
		s.log.Error("fetching world places", "identifier", identifier, "error", err)
		return nil, ErrFetchWorldWithPlaces
	}
	byID := make(map[string]entities.Place, len(places))
	for _, p := range places {
		byID[p.ID] = p
	}
	for _, id := range world.Places {
		p, ok := byID[id]
		if !ok {
			s.log.Warn("world references missing place", "identifier", identifier, "placeId", id)
			continue
		}
		result.Places = append(result.Places, entities.PlaceSummary{
			Identifier: p.Identifier,
			Name:       p.Name.EN,
		})
	}
	return result, nil
}

// Count returns the total number of worlds.
func (s *WorldService) Count(ctx context.Context) (int, error) {
	count, err := s.worlds.Count(ctx)
	if err != nil {
		s.log.Error("counting worlds", "error", err)
		return 0, ErrCountWorlds
	}
	return count, nil
}
