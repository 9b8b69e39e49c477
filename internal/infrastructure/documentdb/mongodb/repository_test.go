package mongodb

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSearchClauseCoversLocalesAndFields(t *testing.T) {
	clause := searchClause("odin", "name", "description")

	or, ok := clause["$or"].(bson.A)
	require.True(t, ok)
	assert.Len(t, or, 6)

	first, ok := or[0].(bson.M)
	require.True(t, ok)
	pattern, ok := first["name.en"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "odin", pattern.Pattern)
	assert.Equal(t, "i", pattern.Options)
}

func TestSearchClauseQuotesMetaCharacters(t *testing.T) {
	clause := searchClause("what?", "name")

	or := clause["$or"].(bson.A)
	pattern := or[0].(bson.M)["name.en"].(primitive.Regex)
	assert.Equal(t, `what\?`, pattern.Pattern)
}

func TestSearchClauseMatchesSubstring(t *testing.T) {
	// Facet terms narrow by substring, like free-text search: "go" must
	// match a race of "God".
	clause := searchClause("go", "race")

	or := clause["$or"].(bson.A)
	require.Len(t, or, 3)
	pattern := or[0].(bson.M)["race.en"].(primitive.Regex)

	re, err := regexp.Compile("(?i)" + pattern.Pattern)
	require.NoError(t, err)
	assert.True(t, re.MatchString("God"))
	assert.False(t, re.MatchString("Giant"))
}

func TestAndFilter(t *testing.T) {
	assert.Equal(t, bson.D{}, andFilter(nil))

	single := bson.M{"identifier": "odin"}
	assert.Equal(t, any(single), andFilter([]bson.M{single}))

	combined := andFilter([]bson.M{single, {"race.en": "God"}})
	m, ok := combined.(bson.M)
	require.True(t, ok)
	assert.Len(t, m["$and"], 2)
}

func TestRefClausesCoversEncodings(t *testing.T) {
	clause := refClauses("world", testHex)

	or, ok := clause["$or"].(bson.A)
	require.True(t, ok)
	// string, {oid}, native ObjectID, DBRef $id, extended-json $id.$oid
	assert.Len(t, or, 5)
}

func TestRefClausesMalformedID(t *testing.T) {
	clause := refClauses("world", "not-hex")

	or := clause["$or"].(bson.A)
	// only the string-shaped encodings can match a non-hex id
	assert.Len(t, or, 2)
}
