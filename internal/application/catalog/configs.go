package catalog

import (
	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/entities"
	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/filter"
)

// Filter declarations per kind. IDs double as query parameter names;
// dynamic selects derive their options from the dataset at build time.

func searchFilter() filter.Config {
	return filter.Config{
		ID:          "search",
		Kind:        filter.Text,
		Label:       entities.LocalizedText{EN: "Search", ES: "Buscar", DE: "Suchen"},
		Placeholder: entities.LocalizedText{EN: "Search by name...", ES: "Buscar por nombre...", DE: "Nach Name suchen..."},
	}
}

func characterFilters() []filter.Config {
	return []filter.Config{
		searchFilter(),
		{
			ID:          "race",
			Kind:        filter.Select,
			Label:       entities.LocalizedText{EN: "Race", ES: "Raza", DE: "Rasse"},
			Placeholder: entities.LocalizedText{EN: "All races", ES: "Todas las razas", DE: "Alle Rassen"},
			Dynamic:     true,
		},
		{
			ID:          "world.name",
			Kind:        filter.Select,
			Label:       entities.LocalizedText{EN: "World", ES: "Mundo", DE: "Welt"},
			Placeholder: entities.LocalizedText{EN: "All worlds", ES: "Todos los mundos", DE: "Alle Welten"},
			Dynamic:     true,
		},
	}
}

func creatureFilters() []filter.Config {
	return []filter.Config{
		searchFilter(),
		{
			ID:          "race",
			Kind:        filter.Select,
			Label:       entities.LocalizedText{EN: "Race", ES: "Raza", DE: "Rasse"},
			Placeholder: entities.LocalizedText{EN: "All races", ES: "Todas las razas", DE: "Alle Rassen"},
			Dynamic:     true,
		},
	}
}

func itemFilters() []filter.Config {
	return []filter.Config{
		searchFilter(),
		{
			ID:          "type",
			Kind:        filter.Select,
			Label:       entities.LocalizedText{EN: "Type", ES: "Tipo", DE: "Typ"},
			Placeholder: entities.LocalizedText{EN: "All types", ES: "Todos los tipos", DE: "Alle Typen"},
			Dynamic:     true,
		},
	}
}

func placeFilters() []filter.Config {
	return []filter.Config{searchFilter()}
}

func worldFilters() []filter.Config {
	return []filter.Config{searchFilter()}
}
