package mongodb

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/entities"
)

// CharacterRepository reads character documents from MongoDB.
type CharacterRepository struct {
	collection[entities.Character]
}

// NewCharacterRepository creates a new CharacterRepository.
func NewCharacterRepository(db *mongo.Database, log *slog.Logger) *CharacterRepository {
	return &CharacterRepository{
		collection: newCollection[entities.Character](db, "characters", "characters", log),
	}
}

// FindAll returns every character.
func (r *CharacterRepository) FindAll(ctx context.Context) ([]entities.Character, error) {
	return r.find(ctx, bson.D{})
}

// FindByIdentifier finds a character by its slug.
func (r *CharacterRepository) FindByIdentifier(ctx context.Context, identifier string) (*entities.Character, error) {
	return r.findOne(ctx, bson.M{"identifier": identifier})
}

// FindByID finds a character by its storage id.
func (r *CharacterRepository) FindByID(ctx context.Context, id string) (*entities.Character, error) {
	return r.findByID(ctx, id)
}

// FindByWorld returns the characters referencing the given world, in
// any of the stored reference encodings.
func (r *CharacterRepository) FindByWorld(ctx context.Context, worldID string) ([]entities.Character, error) {
	return r.find(ctx, refClauses("world", worldID))
}

// FindWithFilters returns the characters matching the filters, AND
// across fields.
func (r *CharacterRepository) FindWithFilters(ctx context.Context, filters entities.CharacterFilters) ([]entities.Character, error) {
	var clauses []bson.M
	if filters.WorldID != "" {
		clauses = append(clauses, refClauses("world", filters.WorldID))
	}
	if filters.Race != "" {
		clauses = append(clauses, searchClause(filters.Race, "race"))
	}
	if filters.Search != "" {
		clauses = append(clauses, searchClause(filters.Search, "name", "description"))
	}
	return r.find(ctx, andFilter(clauses))
}

// Count returns the total number of characters.
func (r *CharacterRepository) Count(ctx context.Context) (int, error) {
	return r.count(ctx)
}
