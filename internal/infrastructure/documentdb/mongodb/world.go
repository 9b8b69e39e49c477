package mongodb

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/entities"
)

// WorldRepository reads world documents from MongoDB.
type WorldRepository struct {
	collection[entities.World]
}

// NewWorldRepository creates a new WorldRepository.
func NewWorldRepository(db *mongo.Database, log *slog.Logger) *WorldRepository {
	return &WorldRepository{
		collection: newCollection[entities.World](db, "worlds", "worlds", log),
	}
}

// FindAll returns every world.
func (r *WorldRepository) FindAll(ctx context.Context) ([]entities.World, error) {
	return r.find(ctx, bson.D{})
}

// FindAllSorted returns every world ordered by English name ascending.
func (r *WorldRepository) FindAllSorted(ctx context.Context) ([]entities.World, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name.en", Value: 1}})
	return r.find(ctx, bson.D{}, opts)
}

// FindByIdentifier finds a world by its slug.
func (r *WorldRepository) FindByIdentifier(ctx context.Context, identifier string) (*entities.World, error) {
	return r.findOne(ctx, bson.M{"identifier": identifier})
}

// FindByID finds a world by its storage id.
func (r *WorldRepository) FindByID(ctx context.Context, id string) (*entities.World, error) {
	return r.findByID(ctx, id)
}

// Count returns the total number of worlds.
func (r *WorldRepository) Count(ctx context.Context) (int, error) {
	return r.count(ctx)
}
