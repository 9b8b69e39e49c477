package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/entities"
	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/mocks"
)

func testWorlds() []entities.World {
	return []entities.World{
		{
			Entity: entities.Entity{
				ID:         "65f0w2",
				Identifier: "midgard",
				Name:       entities.LocalizedText{EN: "Midgard", ES: "Midgard", DE: "Midgard"},
			},
			MainColor: "#3b7a57",
		},
		{
			Entity: entities.Entity{
				ID:         "65f0w1",
				Identifier: "asgard",
				Name:       entities.LocalizedText{EN: "Asgard", ES: "Asgard", DE: "Asgard"},
			},
			MainColor: "#c9a227",
			Places:    []string{"65f0p1", "65f0p2", "65f0p3"},
		},
	}
}

func testPlaces() []entities.Place {
	return []entities.Place{
		{
			Entity: entities.Entity{
				ID:         "65f0p1",
				Identifier: "valhalla",
				Name:       entities.LocalizedText{EN: "Valhalla", ES: "Valhalla", DE: "Walhalla"},
			},
			WorldID: "65f0w1",
		},
		{
			Entity: entities.Entity{
				ID:         "65f0p3",
				Identifier: "bifrost",
				Name:       entities.LocalizedText{EN: "Bifrost", ES: "Bifrost", DE: "Bifröst"},
			},
			WorldID: "65f0w1",
		},
	}
}

func TestWorldServiceGetAllSorted(t *testing.T) {
	repo := &mocks.WorldRepository{Worlds: testWorlds()}
	svc := NewWorldService(repo, &mocks.PlaceRepository{}, discardLogger())

	worlds, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, worlds, 2)
	assert.Equal(t, "asgard", worlds[0].Identifier)
	assert.Equal(t, "midgard", worlds[1].Identifier)
}

func TestWorldServiceGetByIdentifier(t *testing.T) {
	repo := &mocks.WorldRepository{Worlds: testWorlds()}
	svc := NewWorldService(repo, &mocks.PlaceRepository{}, discardLogger())

	world, err := svc.GetByIdentifier(context.Background(), "asgard")
	require.NoError(t, err)
	require.NotNil(t, world)
	assert.Equal(t, "#c9a227", world.MainColor)

	world, err = svc.GetByIdentifier(context.Background(), "niflheim")
	require.NoError(t, err)
	assert.Nil(t, world)
}

func TestWorldServiceGetWithPlaces(t *testing.T) {
	worlds := &mocks.WorldRepository{Worlds: testWorlds()}
	places := &mocks.PlaceRepository{Places: testPlaces()}
	svc := NewWorldService(worlds, places, discardLogger())

	result, err := svc.GetWithPlaces(context.Background(), "asgard")
	require.NoError(t, err)
	require.NotNil(t, result)

	// 65f0p2 resolves to nothing and is omitted; the stored order of the
	// survivors is preserved.
	require.Len(t, result.Places, 2)
	assert.Equal(t, entities.PlaceSummary{Identifier: "valhalla", Name: "Valhalla"}, result.Places[0])
	assert.Equal(t, entities.PlaceSummary{Identifier: "bifrost", Name: "Bifrost"}, result.Places[1])
}

func TestWorldServiceGetWithPlacesNoPlaces(t *testing.T) {
	worlds := &mocks.WorldRepository{Worlds: testWorlds()}
	svc := NewWorldService(worlds, &mocks.PlaceRepository{}, discardLogger())

	result, err := svc.GetWithPlaces(context.Background(), "midgard")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Empty(t, result.Places)
	assert.NotNil(t, result.Places, "places should serialize as [], not null")
}

func TestWorldServiceGetWithPlacesNotFound(t *testing.T) {
	svc := NewWorldService(&mocks.WorldRepository{}, &mocks.PlaceRepository{}, discardLogger())

	result, err := svc.GetWithPlaces(context.Background(), "niflheim")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestWorldServiceGetWithPlacesRepoError(t *testing.T) {
	worlds := &mocks.WorldRepository{Worlds: testWorlds()}
	places := &mocks.PlaceRepository{Err: errors.New("boom")}
	svc := NewWorldService(worlds, places, discardLogger())

	result, err := svc.GetWithPlaces(context.Background(), "asgard")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrFetchWorldWithPlaces)
}

func TestWorldServiceCount(t *testing.T) {
	repo := &mocks.WorldRepository{Worlds: testWorlds()}
	svc := NewWorldService(repo, &mocks.PlaceRepository{}, discardLogger())

	count, err := svc.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
