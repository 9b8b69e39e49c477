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

func TestPlaceServiceGetByIdentifierResolvesWorld(t *testing.T) {
	places := &mocks.PlaceRepository{Places: testPlaces()}
	worlds := &mocks.WorldRepository{Worlds: testWorlds()}
	svc := NewPlaceService(places, worlds, discardLogger())

	result, err := svc.GetByIdentifier(context.Background(), "valhalla")
	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotNil(t, result.World)
	assert.Equal(t, "asgard", result.World.Identifier)
	assert.Equal(t, "#c9a227", result.World.MainColor)
	assert.Empty(t, result.World.Image)
}

func TestPlaceServiceGetByIdentifierDanglingWorld(t *testing.T) {
	places := &mocks.PlaceRepository{Places: []entities.Place{
		{
			Entity:  entities.Entity{ID: "65f0p9", Identifier: "ginnungagap"},
			WorldID: "no-such-world",
		},
	}}
	svc := NewPlaceService(places, &mocks.WorldRepository{}, discardLogger())

	result, err := svc.GetByIdentifier(context.Background(), "ginnungagap")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Nil(t, result.World)
}

func TestPlaceServiceGetByIdentifierNoWorld(t *testing.T) {
	places := &mocks.PlaceRepository{Places: []entities.Place{
		{Entity: entities.Entity{ID: "65f0p8", Identifier: "yggdrasil"}},
	}}
	svc := NewPlaceService(places, &mocks.WorldRepository{}, discardLogger())

	result, err := svc.GetByIdentifier(context.Background(), "yggdrasil")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Nil(t, result.World)
}

func TestPlaceServiceGetByIdentifierNotFound(t *testing.T) {
	svc := NewPlaceService(&mocks.PlaceRepository{}, &mocks.WorldRepository{}, discardLogger())

	result, err := svc.GetByIdentifier(context.Background(), "helheim")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestPlaceServiceGetByIdentifierWorldError(t *testing.T) {
	places := &mocks.PlaceRepository{Places: testPlaces()}
	worlds := &mocks.WorldRepository{Err: errors.New("boom")}
	svc := NewPlaceService(places, worlds, discardLogger())

	result, err := svc.GetByIdentifier(context.Background(), "valhalla")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrFetchPlace)
}

func TestPlaceServiceSearch(t *testing.T) {
	places := &mocks.PlaceRepository{Places: testPlaces()}
	svc := NewPlaceService(places, &mocks.WorldRepository{}, discardLogger())

	results, err := svc.Search(context.Background(), entities.PlaceFilters{Search: "walhalla"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "valhalla", results[0].Identifier)
}

func TestPlaceServiceGetAllError(t *testing.T) {
	places := &mocks.PlaceRepository{Err: errors.New("boom")}
	svc := NewPlaceService(places, &mocks.WorldRepository{}, discardLogger())

	_, err := svc.GetAll(context.Background())
	assert.ErrorIs(t, err, ErrFetchPlaces)
}
