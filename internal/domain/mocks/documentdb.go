// Package mocks provides in-memory implementations of the domain ports
// for service and handler tests.
package mocks

import (
	"context"
	"strings"

	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/entities"
)

// CharacterRepository is a mock implementation of ports.CharacterRepository.
type CharacterRepository struct {
	Characters []entities.Character
	Err        error
}

// FindAll returns every character.
func (m *CharacterRepository) FindAll(_ context.Context) ([]entities.Character, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Characters, nil
}

// FindByIdentifier finds a character by its slug.
func (m *CharacterRepository) FindByIdentifier(_ context.Context, identifier string) (*entities.Character, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Characters {
		if m.Characters[i].Identifier == identifier {
			return &m.Characters[i], nil
		}
	}
	return nil, nil
}

// FindByID finds a character by its storage id.
func (m *CharacterRepository) FindByID(_ context.Context, id string) (*entities.Character, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Characters {
		if m.Characters[i].ID == id {
			return &m.Characters[i], nil
		}
	}
	return nil, nil
}

// FindByWorld returns the characters referencing the given world.
func (m *CharacterRepository) FindByWorld(_ context.Context, worldID string) ([]entities.Character, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []entities.Character
	for _, c := range m.Characters {
		if c.World == worldID {
			out = append(out, c)
		}
	}
	return out, nil
}

// FindWithFilters returns the characters matching the filters.
func (m *CharacterRepository) FindWithFilters(_ context.Context, filters entities.CharacterFilters) ([]entities.Character, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []entities.Character
	for _, c := range m.Characters {
		if filters.WorldID != "" && c.World != filters.WorldID {
			continue
		}
		if filters.Race != "" && !containsFold(c.Race.Values(), filters.Race) {
			continue
		}
		if filters.Search != "" && !containsFold(append(c.Name.Values(), c.Description.Values()...), filters.Search) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// Count returns the number of characters.
func (m *CharacterRepository) Count(_ context.Context) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.Characters), nil
}

// CreatureRepository is a mock implementation of ports.CreatureRepository.
type CreatureRepository struct {
	Creatures []entities.Creature
	Err       error
}

// FindAll returns every creature.
func (m *CreatureRepository) FindAll(_ context.Context) ([]entities.Creature, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Creatures, nil
}

// FindByIdentifier finds a creature by its slug.
func (m *CreatureRepository) FindByIdentifier(_ context.Context, identifier string) (*entities.Creature, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Creatures {
		if m.Creatures[i].Identifier == identifier {
			return &m.Creatures[i], nil
		}
	}
	return nil, nil
}

// FindByID finds a creature by its storage id.
func (m *CreatureRepository) FindByID(_ context.Context, id string) (*entities.Creature, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Creatures {
		if m.Creatures[i].ID == id {
			return &m.Creatures[i], nil
		}
	}
	return nil, nil
}

// FindWithFilters returns the creatures matching the filters.
func (m *CreatureRepository) FindWithFilters(_ context.Context, filters entities.CreatureFilters) ([]entities.Creature, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []entities.Creature
	for _, c := range m.Creatures {
		if filters.Race != "" && !containsFold(c.Race.Values(), filters.Race) {
			continue
		}
		if filters.Search != "" && !containsFold(append(c.Name.Values(), c.Description.Values()...), filters.Search) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// Count returns the number of creatures.
func (m *CreatureRepository) Count(_ context.Context) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.Creatures), nil
}

// ItemRepository is a mock implementation of ports.ItemRepository.
type ItemRepository struct {
	Items []entities.Item
	Err   error
}

// FindAll returns every item.
func (m *ItemRepository) FindAll(_ context.Context) ([]entities.Item, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Items, nil
}

// FindByIdentifier finds an item by its slug.
func (m *ItemRepository) FindByIdentifier(_ context.Context, identifier string) (*entities.Item, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Items {
		if m.Items[i].Identifier == identifier {
			return &m.Items[i], nil
		}
	}
	return nil, nil
}

// FindByID finds an item by its storage id.
func (m *ItemRepository) FindByID(_ context.Context, id string) (*entities.Item, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Items {
		if m.Items[i].ID == id {
			return &m.Items[i], nil
		}
	}
	return nil, nil
}

// FindWithFilters returns the items matching the filters.
func (m *ItemRepository) FindWithFilters(_ context.Context, filters entities.ItemFilters) ([]entities.Item, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []entities.Item
	for _, it := range m.Items {
		if filters.Type != "" && !containsFold(it.Type.Values(), filters.Type) {
			continue
		}
		if filters.Search != "" && !containsFold(append(it.Name.Values(), it.Description.Values()...), filters.Search) {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

// Count returns the number of items.
func (m *ItemRepository) Count(_ context.Context) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.Items), nil
}

// PlaceRepository is a mock implementation of ports.PlaceRepository.
type PlaceRepository struct {
	Places []entities.Place
	Err    error
}

// FindAll returns every place.
func (m *PlaceRepository) FindAll(_ context.Context) ([]entities.Place, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Places, nil
}

// FindByIdentifier finds a place by its slug.
func (m *PlaceRepository) FindByIdentifier(_ context.Context, identifier string) (*entities.Place, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Places {
		if m.Places[i].Identifier == identifier {
			return &m.Places[i], nil
		}
	}
	return nil, nil
}

// FindByID finds a place by its storage id.
func (m *PlaceRepository) FindByID(_ context.Context, id string) (*entities.Place, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Places {
		if m.Places[i].ID == id {
			return &m.Places[i], nil
		}
	}
	return nil, nil
}

// FindByIDs returns the places whose storage id is in ids.
func (m *PlaceRepository) FindByIDs(_ context.Context, ids []string) ([]entities.Place, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []entities.Place
	for _, p := range m.Places {
		if wanted[p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}

// FindWithFilters returns the places matching the filters.
func (m *PlaceRepository) FindWithFilters(_ context.Context, filters entities.PlaceFilters) ([]entities.Place, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []entities.Place
	for _, p := range m.Places {
		if filters.WorldID != "" && p.WorldID != filters.WorldID {
			continue
		}
		if filters.Search != "" && !containsFold(append(p.Name.Values(), p.Description.Values()...), filters.Search) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// Count returns the number of places.
func (m *PlaceRepository) Count(_ context.Context) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.Places), nil
}

// WorldRepository is a mock implementation of ports.WorldRepository.
type WorldRepository struct {
	Worlds []entities.World
	Err    error
}

// FindAll returns every world.
func (m *WorldRepository) FindAll(_ context.Context) ([]entities.World, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Worlds, nil
}

// FindAllSorted returns every world sorted by English name.
func (m *WorldRepository) FindAllSorted(_ context.Context) ([]entities.World, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]entities.World, len(m.Worlds))
	copy(out, m.Worlds)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Name.EN < out[j-1].Name.EN; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out, nil
}

// FindByIdentifier finds a world by its slug.
func (m *WorldRepository) FindByIdentifier(_ context.Context, identifier string) (*entities.World, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Worlds {
		if m.Worlds[i].Identifier == identifier {
			return &m.Worlds[i], nil
		}
	}
	return nil, nil
}

// FindByID finds a world by its storage id.
func (m *WorldRepository) FindByID(_ context.Context, id string) (*entities.World, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Worlds {
		if m.Worlds[i].ID == id {
			return &m.Worlds[i], nil
		}
	}
	return nil, nil
}

// Count returns the number of worlds.
func (m *WorldRepository) Count(_ context.Context) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.Worlds), nil
}

// containsFold reports whether any value contains term, case-insensitively.
func containsFold(values []string, term string) bool {
	term = strings.ToLower(term)
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), term) {
			return true
		}
	}
	return false
}
