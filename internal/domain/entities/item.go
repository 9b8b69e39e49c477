package entities

// Item is an artifact of Norse mythology, such as a weapon or relic.
type Item struct {
	Entity `bson:",inline"`
	Type   LocalizedText `bson:"type" json:"type"`
}

// FilterField exposes filterable fields by path for the filter engine.
func (i Item) FilterField(path string) any {
	switch path {
	case "identifier":
		return i.Identifier
	case "name":
		return i.Name
	case "type":
		return i.Type
	}
	return nil
}

// ItemFilters narrows item list queries.
type ItemFilters struct {
	Type   string
	Search string
}

// IsZero reports whether no filter is set.
func (f ItemFilters) IsZero() bool {
	return f == ItemFilters{}
}
