package mongodb

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/entities"
)

// ItemRepository reads item documents from MongoDB.
type ItemRepository struct {
	collection[entities.Item]
}

// NewItemRepository creates a new ItemRepository.
func NewItemRepository(db *mongo.Database, log *slog.Logger) *ItemRepository {
	return &ItemRepository{
		collection: newCollection[entities.Item](db, "items", "items", log),
	}
}

// FindAll returns every item.
func (r *ItemRepository) FindAll(ctx context.Context) ([]entities.Item, error) {
	return r.find(ctx, bson.D{})
}

// FindByIdentifier finds an item by its slug.
func (r *ItemRepository) FindByIdentifier(ctx context.Context, identifier string) (*entities.Item, error) {
	return r.findOne(ctx, bson.M{"identifier": identifier})
}

// FindByID finds an item by its storage id.
func (r *ItemRepository) FindByID(ctx context.Context, id string) (*entities.Item, error) {
	return r.findByID(ctx, id)
}

// FindWithFilters returns the items matching the filters.
func (r *ItemRepository) FindWithFilters(ctx context.Context, filters entities.ItemFilters) ([]entities.Item, error) {
	var clauses []bson.M
	if filters.Type != "" {
		clauses = append(clauses, searchClause(filters.Type, "type"))
	}
	if filters.Search != "" {
		clauses = append(clauses, searchClause(filters.Search, "name", "description"))
	}
	return r.find(ctx, andFilter(clauses))
}

// Count returns the total number of items.
func (r *ItemRepository) Count(ctx context.Context) (int, error) {
	return r.count(ctx)
}
