package entities

// Place is a location within one of the nine worlds. WorldID is a plain
// storage id; unlike Character.World it is stored in a single encoding.
type Place struct {
	Entity  `bson:",inline"`
	WorldID string `bson:"worldId,omitempty" json:"worldId,omitempty"`
}

// PlaceWithWorld is a Place with its world resolved into a summary.
// World is nil when the place has no world or the reference is dangling.
type PlaceWithWorld struct {
	Place
	World *WorldSummary `json:"world,omitempty"`
}

// FilterField exposes filterable fields by path for the filter engine.
func (p Place) FilterField(path string) any {
	switch path {
	case "identifier":
		return p.Identifier
	case "name":
		return p.Name
	}
	return nil
}

// PlaceFilters narrows place list queries.
type PlaceFilters struct {
	WorldID string
	Search  string
}

// IsZero reports whether no filter is set.
func (f PlaceFilters) IsZero() bool {
	return f == PlaceFilters{}
}
