package mongodb

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// SerializeDocument normalizes a raw document for decoding into the
// domain model: _id is stringified, reference-shaped top-level values
// are replaced by their id, and arrays are normalized element-wise one
// level deep. Scalars and localized-text documents pass through
// untouched. The transform is pure; the input is never modified.
func SerializeDocument(raw bson.Raw) (bson.D, error) {
	elems, err := raw.Elements()
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	out := make(bson.D, 0, len(elems))
	for _, elem := range elems {
		key := elem.Key()
		val := elem.Value()

		switch {
		case key == "_id":
			if id, ok := RefID(val); ok {
				out = append(out, bson.E{Key: key, Value: id})
				continue
			}
			out = append(out, bson.E{Key: key, Value: val})
		case val.Type == bsontype.ObjectID:
			out = append(out, bson.E{Key: key, Value: val.ObjectID().Hex()})
		case val.Type == bsontype.EmbeddedDocument && isReference(val):
			id, _ := RefID(val)
			out = append(out, bson.E{Key: key, Value: id})
		case val.Type == bsontype.Array:
			out = append(out, bson.E{Key: key, Value: serializeArray(val)})
		default:
			out = append(out, bson.E{Key: key, Value: val})
		}
	}
	return out, nil
}

// serializeArray normalizes array elements one level deep: reference
// shapes become id strings, everything else passes through.
func serializeArray(v bson.RawValue) bson.A {
	values, err := v.Array().Values()
	if err != nil {
		return bson.A{}
	}
	out := make(bson.A, 0, len(values))
	for _, elem := range values {
		switch {
		case elem.Type == bsontype.ObjectID:
			out = append(out, elem.ObjectID().Hex())
		case elem.Type == bsontype.EmbeddedDocument && isReference(elem):
			id, _ := RefID(elem)
			out = append(out, id)
		default:
			out = append(out, elem)
		}
	}
	return out
}

// isReference reports whether an embedded document carries one of the
// reference keys. Plain nested documents, localized text included, are
// left alone.
func isReference(v bson.RawValue) bool {
	_, ok := RefID(v)
	return ok && v.Type == bsontype.EmbeddedDocument
}

// decodeDocument serializes raw and decodes it into T.
func decodeDocument[T any](raw bson.Raw) (*T, error) {
	doc, err := SerializeDocument(raw)
	if err != nil {
		return nil, err
	}
	data, err := bson.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("re-encoding document: %w", err)
	}
	var out T
	if err := bson.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	return &out, nil
}
