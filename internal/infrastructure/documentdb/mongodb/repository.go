package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// localizedFields are the locale keys a localized text document carries.
var localizedFields = []string{"en", "es", "de"}

// collection is the shared query helper under the per-kind repositories.
// Failures are logged with the operation and kind, then propagated
// unchanged; translation to stable messages happens in the services.
type collection[T any] struct {
	col  *mongo.Collection
	kind string
	log  *slog.Logger
}

func newCollection[T any](db *mongo.Database, name, kind string, log *slog.Logger) collection[T] {
	return collection[T]{
		col:  db.Collection(name),
		kind: kind,
		log:  log,
	}
}

// find runs a filtered query and decodes every document through the
// serializer.
func (c *collection[T]) find(ctx context.Context, filter any, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := c.col.Find(ctx, filter, opts...)
	if err != nil {
		c.log.Error("find failed", "kind", c.kind, "error", err)
		return nil, fmt.Errorf("finding %s: %w", c.kind, err)
	}
	defer cursor.Close(ctx)

	var out []T
	for cursor.Next(ctx) {
		doc, err := decodeDocument[T](cursor.Current)
		if err != nil {
			c.log.Error("decode failed", "kind", c.kind, "error", err)
			return nil, fmt.Errorf("decoding %s: %w", c.kind, err)
		}
		out = append(out, *doc)
	}
	if err := cursor.Err(); err != nil {
		c.log.Error("cursor failed", "kind", c.kind, "error", err)
		return nil, fmt.Errorf("iterating %s: %w", c.kind, err)
	}
	return out, nil
}

// findOne runs a single-document query. No match is (nil, nil).
func (c *collection[T]) findOne(ctx context.Context, filter any) (*T, error) {
	raw, err := c.col.FindOne(ctx, filter).Raw()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		c.log.Error("findOne failed", "kind", c.kind, "error", err)
		return nil, fmt.Errorf("finding %s: %w", c.kind, err)
	}
	doc, err := decodeDocument[T](raw)
	if err != nil {
		c.log.Error("decode failed", "kind", c.kind, "error", err)
		return nil, fmt.Errorf("decoding %s: %w", c.kind, err)
	}
	return doc, nil
}

// findByID looks a document up by its hex storage id. A malformed id is
// an error, not an absence.
func (c *collection[T]) findByID(ctx context.Context, id string) (*T, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid %s id %q: %w", c.kind, id, err)
	}
	return c.findOne(ctx, bson.M{"_id": oid})
}

// count returns the number of documents in the collection.
func (c *collection[T]) count(ctx context.Context) (int, error) {
	n, err := c.col.CountDocuments(ctx, bson.D{})
	if err != nil {
		c.log.Error("count failed", "kind", c.kind, "error", err)
		return 0, fmt.Errorf("counting %s: %w", c.kind, err)
	}
	return int(n), nil
}

// searchClause matches term case-insensitively as a substring of the
// given localized fields, OR across locales.
func searchClause(term string, fields ...string) bson.M {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
	or := make(bson.A, 0, len(fields)*len(localizedFields))
	for _, field := range fields {
		for _, locale := range localizedFields {
			or = append(or, bson.M{field + "." + locale: pattern})
		}
	}
	return bson.M{"$or": or}
}

// andFilter combines facet clauses with AND semantics. No clauses means
// match everything.
func andFilter(clauses []bson.M) any {
	switch len(clauses) {
	case 0:
		return bson.D{}
	case 1:
		return clauses[0]
	default:
		return bson.M{"$and": clauses}
	}
}

// refClauses matches a reference field against every encoding the seed
// data uses for the given hex id.
func refClauses(field, id string) bson.M {
	or := bson.A{
		bson.M{field: id},
		bson.M{field + ".oid": id},
	}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		or = append(or,
			bson.M{field: oid},
			bson.M{field + ".$id": oid},
			bson.M{field + ".$id.$oid": id},
		)
	}
	return bson.M{"$or": or}
}
