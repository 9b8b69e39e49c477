package entities

// Creature is a beast or monster of Norse mythology. Creatures are not
// bound to a world.
type Creature struct {
	Entity `bson:",inline"`
	Race   LocalizedText `bson:"race" json:"race"`
}

// FilterField exposes filterable fields by path for the filter engine.
func (c Creature) FilterField(path string) any {
	switch path {
	case "identifier":
		return c.Identifier
	case "name":
		return c.Name
	case "race":
		return c.Race
	}
	return nil
}

// CreatureFilters narrows creature list queries.
type CreatureFilters struct {
	Race   string
	Search string
}

// IsZero reports whether no filter is set.
func (f CreatureFilters) IsZero() bool {
	return f == CreatureFilters{}
}
