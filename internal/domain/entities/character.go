package entities

// Character is a figure of Norse mythology tied to one of the nine worlds.
// World holds the referenced world's storage id; the seed data encodes it
// in several physical shapes, all normalized to a plain id string before
// a Character leaves the repository layer.
type Character struct {
	Entity `bson:",inline"`
	Title  LocalizedText `bson:"title" json:"title"`
	Race   LocalizedText `bson:"race" json:"race"`
	World  string        `bson:"world,omitempty" json:"world,omitempty"`
}

// CharacterWithWorld is a Character with its world reference resolved
// into a denormalized summary. Computed at read time, never persisted.
type CharacterWithWorld struct {
	Character
	World WorldSummary `json:"world"`
}

// FilterField exposes filterable fields by path for the filter engine.
func (c CharacterWithWorld) FilterField(path string) any {
	switch path {
	case "identifier":
		return c.Identifier
	case "name":
		return c.Name
	case "title":
		return c.Title
	case "race":
		return c.Race
	case "world.identifier":
		return c.World.Identifier
	case "world.name":
		return c.World.Name
	}
	return nil
}

// CharacterFilters narrows character list queries.
type CharacterFilters struct {
	WorldID string
	Race    string
	Search  string
}

// IsZero reports whether no filter is set.
func (f CharacterFilters) IsZero() bool {
	return f == CharacterFilters{}
}
