// Package catalog assembles the browsable listing pages: it joins
// entities to their worlds, runs the filter engine over the joined
// dataset, and returns results together with the enriched filter
// configurations a UI needs to render the page.
package catalog

import (
	"context"
	"log/slog"

	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/entities"
	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/filter"
	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/services"
)

// Page is the assembled view of one catalog listing.
type Page[T filter.Record] struct {
	Results          []T             `json:"results"`
	Filters          []filter.Config `json:"filters"`
	ResultCount      int             `json:"resultCount"`
	HasActiveFilters bool            `json:"hasActiveFilters"`
}

// Service builds catalog pages from the per-kind domain services.
type Service struct {
	characters *services.CharacterService
	creatures  *services.CreatureService
	items      *services.ItemService
	places     *services.PlaceService
	worlds     *services.WorldService
	log        *slog.Logger
}

// NewService creates a new catalog Service.
func NewService(
	characters *services.CharacterService,
	creatures *services.CreatureService,
	items *services.ItemService,
	places *services.PlaceService,
	worlds *services.WorldService,
	log *slog.Logger,
) *Service {
	return &Service{
		characters: characters,
		creatures:  creatures,
		items:      items,
		places:     places,
		worlds:     worlds,
		log:        log,
	}
}

// Characters assembles the character catalog: every character joined to
// its world summary, filtered by values, labeled for locale.
func (s *Service) Characters(ctx context.Context, locale entities.Locale, values filter.Values) (*Page[entities.CharacterWithWorld], error) {
	characters, err := s.characters.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	worlds, err := s.worlds.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	joined := s.joinWorlds(characters, worlds)
	return buildPage(joined, characterFilters(), locale, values), nil
}

// Creatures assembles the creature catalog.
func (s *Service) Creatures(ctx context.Context, locale entities.Locale, values filter.Values) (*Page[entities.Creature], error) {
	creatures, err := s.creatures.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return buildPage(creatures, creatureFilters(), locale, values), nil
}

// Items assembles the item catalog.
func (s *Service) Items(ctx context.Context, locale entities.Locale, values filter.Values) (*Page[entities.Item], error) {
	items, err := s.items.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return buildPage(items, itemFilters(), locale, values), nil
}

// Places assembles the place catalog.
func (s *Service) Places(ctx context.Context, locale entities.Locale, values filter.Values) (*Page[entities.Place], error) {
	places, err := s.places.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return buildPage(places, placeFilters(), locale, values), nil
}

// Worlds assembles the world catalog.
func (s *Service) Worlds(ctx context.Context, locale entities.Locale, values filter.Values) (*Page[entities.World], error) {
	worlds, err := s.worlds.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return buildPage(worlds, worldFilters(), locale, values), nil
}

// joinWorlds attaches a world summary to each character. A reference
// that resolves to nothing gets the unknown-world placeholder and a
// warning; rendering never fails on a dangling reference.
func (s *Service) joinWorlds(characters []entities.Character, worlds []entities.World) []entities.CharacterWithWorld {
	byID := make(map[string]entities.World, len(worlds))
	for _, w := range worlds {
		byID[w.ID] = w
	}
	out := make([]entities.CharacterWithWorld, 0, len(characters))
	for _, c := range characters {
		joined := entities.CharacterWithWorld{Character: c, World: entities.UnknownWorld()}
		if w, ok := byID[c.World]; ok {
			joined.World = entities.WorldSummary{
				Identifier: w.Identifier,
				Name:       w.Name,
				MainColor:  w.MainColor,
				Image:      w.Image,
			}
		} else if c.World != "" {
			s.log.Warn("character references missing world", "identifier", c.Identifier, "worldId", c.World)
		}
		out = append(out, joined)
	}
	return out
}

func buildPage[T filter.Record](data []T, configs []filter.Config, locale entities.Locale, values filter.Values) *Page[T] {
	engine := filter.NewEngine(data, configs, locale)
	engine.SetValues(values)
	results := engine.Results()
	return &Page[T]{
		Results:          results,
		Filters:          engine.Configs(),
		ResultCount:      len(results),
		HasActiveFilters: engine.HasActive(),
	}
}
