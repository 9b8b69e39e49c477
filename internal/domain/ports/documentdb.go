// Package ports defines the interfaces between the domain and its
// infrastructure: the per-kind document repositories and the cache.
package ports

import (
	"context"

	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/entities"
)

// Repository operations return (nil, nil) when no document matches;
// absence is a result, not an error. Backing-store failures are logged
// where they occur and propagated unchanged.

// CharacterRepository reads character documents.
type CharacterRepository interface {
	// FindAll returns every character, serialized.
	FindAll(ctx context.Context) ([]entities.Character, error)

	// FindByIdentifier finds a character by its URL slug.
	FindByIdentifier(ctx context.Context, identifier string) (*entities.Character, error)

	// FindByID finds a character by its opaque storage id. A malformed
	// id is an error, not an absence.
	FindByID(ctx context.Context, id string) (*entities.Character, error)

	// FindByWorld returns the characters referencing the given world,
	// matching every stored reference encoding.
	FindByWorld(ctx context.Context, worldID string) ([]entities.Character, error)

	// FindWithFilters returns the characters matching the filters,
	// combined with AND semantics across fields.
	FindWithFilters(ctx context.Context, filters entities.CharacterFilters) ([]entities.Character, error)

	// Count returns the total number of characters.
	Count(ctx context.Context) (int, error)
}

// CreatureRepository reads creature documents.
type CreatureRepository interface {
	FindAll(ctx context.Context) ([]entities.Creature, error)
	FindByIdentifier(ctx context.Context, identifier string) (*entities.Creature, error)
	FindByID(ctx context.Context, id string) (*entities.Creature, error)
	FindWithFilters(ctx context.Context, filters entities.CreatureFilters) ([]entities.Creature, error)
	Count(ctx context.Context) (int, error)
}

// ItemRepository reads item documents.
type ItemRepository interface {
	FindAll(ctx context.Context) ([]entities.Item, error)
	FindByIdentifier(ctx context.Context, identifier string) (*entities.Item, error)
	FindByID(ctx context.Context, id string) (*entities.Item, error)
	FindWithFilters(ctx context.Context, filters entities.ItemFilters) ([]entities.Item, error)
	Count(ctx context.Context) (int, error)
}

// PlaceRepository reads place documents.
type PlaceRepository interface {
	FindAll(ctx context.Context) ([]entities.Place, error)
	FindByIdentifier(ctx context.Context, identifier string) (*entities.Place, error)
	FindByID(ctx context.Context, id string) (*entities.Place, error)

	// FindByIDs returns the places whose storage id is in ids. Ids that
	// are malformed or match nothing are skipped, not errors.
	FindByIDs(ctx context.Context, ids []string) ([]entities.Place, error)

	FindWithFilters(ctx context.Context, filters entities.PlaceFilters) ([]entities.Place, error)
	Count(ctx context.Context) (int, error)
}

// WorldRepository reads world documents.
type WorldRepository interface {
	FindAll(ctx context.Context) ([]entities.World, error)

	// FindAllSorted returns every world ordered by English name ascending.
	FindAllSorted(ctx context.Context) ([]entities.World, error)

	FindByIdentifier(ctx context.Context, identifier string) (*entities.World, error)
	FindByID(ctx context.Context, id string) (*entities.World, error)
	Count(ctx context.Context) (int, error)
}
