package mongodb

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/entities"
)

// PlaceRepository reads place documents from MongoDB.
type PlaceRepository struct {
	collection[entities.Place]
}

// NewPlaceRepository creates a new PlaceRepository.
func NewPlaceRepository(db *mongo.Database, log *slog.Logger) *PlaceRepository {
	return &PlaceRepository{
		collection: newCollection[entities.Place](db, "places", "places", log),
	}
}

// FindAll returns every place.
func (r *PlaceRepository) FindAll(ctx context.Context) ([]entities.Place, error) {
	return r.find(ctx, bson.D{})
}

// FindByIdentifier finds a place by its slug.
func (r *PlaceRepository) FindByIdentifier(ctx context.Context, identifier string) (*entities.Place, error) {
	return r.findOne(ctx, bson.M{"identifier": identifier})
}

// FindByID finds a place by its storage id.
func (r *PlaceRepository) FindByID(ctx context.Context, id string) (*entities.Place, error) {
	return r.findByID(ctx, id)
}

// FindByIDs returns the places whose storage id is in ids. Malformed
// ids are skipped; ids that match nothing simply contribute no result.
func (r *PlaceRepository) FindByIDs(ctx context.Context, ids []string) ([]entities.Place, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	in := make(bson.A, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			in = append(in, oid)
		}
	}
	if len(in) == 0 {
		return nil, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": in}})
}

// FindWithFilters returns the places matching the filters.
func (r *PlaceRepository) FindWithFilters(ctx context.Context, filters entities.PlaceFilters) ([]entities.Place, error) {
	var clauses []bson.M
	if filters.WorldID != "" {
		clauses = append(clauses, refClauses("worldId", filters.WorldID))
	}
	if filters.Search != "" {
		clauses = append(clauses, searchClause(filters.Search, "name", "description"))
	}
	return r.find(ctx, andFilter(clauses))
}

// Count returns the total number of places.
func (r *PlaceRepository) Count(ctx context.Context) (int, error) {
	return r.count(ctx)
}
