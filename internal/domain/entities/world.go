package entities

// World is one of the nine worlds of Norse cosmology. Places holds the
// storage ids of the places belonging to the world, in seed order;
// heterogeneous reference encodings are normalized to plain ids by the
// repository layer.
type World struct {
	Entity       `bson:",inline"`
	Places       []string `bson:"places,omitempty" json:"places,omitempty"`
	DetailedIcon string   `bson:"detailedIcon" json:"detailedIcon"`
	MainColor    string   `bson:"mainColor" json:"mainColor"`
}

// PlaceSummary is the minimal place shape embedded in WorldWithPlaces.
// Name carries the English name, matching what the detail pages render.
type PlaceSummary struct {
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
}

// WorldWithPlaces is a World with its place references resolved into
// summaries. Dangling references are omitted; the relative order of the
// resolvable ones is preserved.
type WorldWithPlaces struct {
	World
	Places []PlaceSummary `json:"places"`
}

// FilterField exposes filterable fields by path for the filter engine.
func (w World) FilterField(path string) any {
	switch path {
	case "identifier":
		return w.Identifier
	case "name":
		return w.Name
	}
	return nil
}
