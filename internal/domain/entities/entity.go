package entities

// Entity holds the fields shared by every entity kind.
//
// ID is the opaque storage id (an ObjectID hex string after
// serialization). Identifier is the human-readable unique slug used in
// URLs and as the external lookup key; it is immutable once seeded.
type Entity struct {
	ID          string        `bson:"_id" json:"id"`
	Identifier  string        `bson:"identifier" json:"identifier"`
	Name        LocalizedText `bson:"name" json:"name"`
	Description LocalizedText `bson:"description" json:"description"`
	Image       string        `bson:"image" json:"image"`
}

// WorldSummary is the denormalized world shape attached to characters
// and places at read time. Image is only populated for character views.
type WorldSummary struct {
	Identifier string        `json:"identifier"`
	Name       LocalizedText `json:"name"`
	MainColor  string        `json:"mainColor"`
	Image      string        `json:"image,omitempty"`
}

// UnknownWorld is the placeholder summary substituted when a character's
// world reference does not resolve. Rendering must never fail on a
// dangling reference.
func UnknownWorld() WorldSummary {
	return WorldSummary{
		Identifier: "unknown",
		Name:       LocalizedText{EN: "Unknown", ES: "Desconocido", DE: "Unbekannt"},
		MainColor:  "#888888",
	}
}
