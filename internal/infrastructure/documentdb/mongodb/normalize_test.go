package mongodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testHex = "65f0c0ffee0ddba11b0a710a"

func rawValue(t *testing.T, value any) bson.RawValue {
	t.Helper()
	data, err := bson.Marshal(bson.D{{Key: "v", Value: value}})
	require.NoError(t, err)
	return bson.Raw(data).Lookup("v")
}

func TestRefIDEncodings(t *testing.T) {
	oid, err := primitive.ObjectIDFromHex(testHex)
	require.NoError(t, err)

	tests := []struct {
		name  string
		value any
	}{
		{name: "plain string", value: testHex},
		{name: "native ObjectID", value: oid},
		{name: "dbref with ObjectID", value: bson.D{{Key: "$ref", Value: "worlds"}, {Key: "$id", Value: oid}}},
		{name: "dbref with extended json", value: bson.D{{Key: "$id", Value: bson.D{{Key: "$oid", Value: testHex}}}}},
		{name: "bare oid document", value: bson.D{{Key: "oid", Value: testHex}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := RefID(rawValue(t, tt.value))
			require.True(t, ok)
			assert.Equal(t, testHex, id)
		})
	}
}

func TestRefIDUnresolvable(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{name: "empty string", value: ""},
		{name: "number", value: int32(42)},
		{name: "plain document", value: bson.D{{Key: "en", Value: "Odin"}}},
		{name: "nil", value: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := RefID(rawValue(t, tt.value))
			assert.False(t, ok)
		})
	}
}

func TestRefIDsDropsUnresolvablePreservingOrder(t *testing.T) {
	oid, err := primitive.ObjectIDFromHex(testHex)
	require.NoError(t, err)
	other := "65f0c0ffee0ddba11b0a710b"

	list := bson.A{
		other,
		int32(7),
		bson.D{{Key: "$id", Value: oid}},
		bson.D{{Key: "en", Value: "not a ref"}},
	}

	ids := RefIDs(rawValue(t, list))
	assert.Equal(t, []string{other, testHex}, ids)
}

func TestRefIDsNonArray(t *testing.T) {
	assert.Nil(t, RefIDs(rawValue(t, "not-a-list")))
}
