package mongodb

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/entities"
)

// CreatureRepository reads creature documents from MongoDB.
type CreatureRepository struct {
	collection[entities.Creature]
}

// NewCreatureRepository creates a new CreatureRepository.
func NewCreatureRepository(db *mongo.Database, log *slog.Logger) *CreatureRepository {
	return &CreatureRepository{
		collection: newCollection[entities.Creature](db, "creatures", "creatures", log),
	}
}

// FindAll returns every creature.
func (r *CreatureRepository) FindAll(ctx context.Context) ([]entities.Creature, error) {
	return r.find(ctx, bson.D{})
}

// FindByIdentifier finds a creature by its slug.
func (r *CreatureRepository) FindByIdentifier(ctx context.Context, identifier string) (*entities.Creature, error) {
	return r.findOne(ctx, bson.M{"identifier": identifier})
}

// FindByID finds a creature by its storage id.
func (r *CreatureRepository) FindByID(ctx context.Context, id string) (*entities.Creature, error) {
	return r.findByID(ctx, id)
}

// FindWithFilters returns the creatures matching the filters.
func (r *CreatureRepository) FindWithFilters(ctx context.Context, filters entities.CreatureFilters) ([]entities.Creature, error) {
	var clauses []bson.M
	if filters.Race != "" {
		clauses = append(clauses, searchClause(filters.Race, "race"))
	}
	if filters.Search != "" {
		clauses = append(clauses, searchClause(filters.Search, "name", "description"))
	}
	return r.find(ctx, andFilter(clauses))
}

// Count returns the total number of creatures.
func (r *CreatureRepository) Count(ctx context.Context) (int, error) {
	return r.count(ctx)
}
