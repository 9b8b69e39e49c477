// Package mongodb implements the document repositories over MongoDB.
// The seed data encodes cross-entity references in several physical
// shapes; everything is normalized to plain hex id strings before a
// document leaves this package.
package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// RefID extracts the canonical hex id from a reference value. It
// accepts every encoding present in the seed data: a plain id string, a
// native ObjectID, a DBRef document (whose $id may itself be an
// ObjectID or an extended-JSON {$oid} document), and the bare {oid}
// document shape. It never fails on malformed input; the second return
// reports whether the value was resolvable.
func RefID(v bson.RawValue) (string, bool) {
	switch v.Type {
	case bsontype.String:
		s := v.StringValue()
		return s, s != ""
	case bsontype.ObjectID:
		return v.ObjectID().Hex(), true
	case bsontype.EmbeddedDocument:
		doc := v.Document()
		for _, key := range []string{"$id", "$oid", "oid"} {
			if inner, err := doc.LookupErr(key); err == nil {
				return RefID(inner)
			}
		}
	}
	return "", false
}

// RefIDs normalizes a list of reference values, dropping unresolvable
// elements and preserving the order of the rest. A non-array value
// yields nil.
func RefIDs(v bson.RawValue) []string {
	if v.Type != bsontype.Array {
		return nil
	}
	values, err := v.Array().Values()
	if err != nil {
		return nil
	}
	ids := make([]string, 0, len(values))
	for _, elem := range values {
		if id, ok := RefID(elem); ok {
			ids = append(ids, id)
		}
	}
	return ids
}
