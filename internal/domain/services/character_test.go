package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/entities"
	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testCharacters() []entities.Character {
	return []entities.Character{
		{
			Entity: entities.Entity{
				ID:         "65f0a1",
				Identifier: "odin",
				Name:       entities.LocalizedText{EN: "Odin", ES: "Odín", DE: "Odin"},
			},
			Race:  entities.LocalizedText{EN: "God", ES: "Dios", DE: "Gott"},
			World: "65f0w1",
		},
		{
			Entity: entities.Entity{
				ID:         "65f0a2",
				Identifier: "fenrir",
				Name:       entities.LocalizedText{EN: "Fenrir", ES: "Fenrir", DE: "Fenrir"},
			},
			Race:  entities.LocalizedText{EN: "Wolf", ES: "Lobo", DE: "Wolf"},
			World: "65f0w2",
		},
	}
}

func TestCharacterServiceGetAll(t *testing.T) {
	repo := &mocks.CharacterRepository{Characters: testCharacters()}
	svc := NewCharacterService(repo, discardLogger())

	characters, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, characters, 2)
}

func TestCharacterServiceGetAllError(t *testing.T) {
	repo := &mocks.CharacterRepository{Err: errors.New("connection reset")}
	svc := NewCharacterService(repo, discardLogger())

	characters, err := svc.GetAll(context.Background())
	assert.Nil(t, characters)
	assert.ErrorIs(t, err, ErrFetchCharacters)
	// Backing-store detail must not leak into the returned error.
	assert.NotContains(t, err.Error(), "connection reset")
}

func TestCharacterServiceGetByIdentifier(t *testing.T) {
	repo := &mocks.CharacterRepository{Characters: testCharacters()}
	svc := NewCharacterService(repo, discardLogger())

	character, err := svc.GetByIdentifier(context.Background(), "odin")
	require.NoError(t, err)
	require.NotNil(t, character)
	assert.Equal(t, "Odin", character.Name.EN)
}

func TestCharacterServiceGetByIdentifierNotFound(t *testing.T) {
	repo := &mocks.CharacterRepository{Characters: testCharacters()}
	svc := NewCharacterService(repo, discardLogger())

	character, err := svc.GetByIdentifier(context.Background(), "baldr")
	require.NoError(t, err)
	assert.Nil(t, character)
}

func TestCharacterServiceGetByIdentifierEmpty(t *testing.T) {
	repo := &mocks.CharacterRepository{Characters: testCharacters()}
	svc := NewCharacterService(repo, discardLogger())

	character, err := svc.GetByIdentifier(context.Background(), "")
	assert.Nil(t, character)
	assert.ErrorIs(t, err, entities.ErrIdentifierRequired)
}

func TestCharacterServiceGetByWorld(t *testing.T) {
	repo := &mocks.CharacterRepository{Characters: testCharacters()}
	svc := NewCharacterService(repo, discardLogger())

	characters, err := svc.GetByWorld(context.Background(), "65f0w1")
	require.NoError(t, err)
	require.Len(t, characters, 1)
	assert.Equal(t, "odin", characters[0].Identifier)
}

func TestCharacterServiceGetByWorldEmpty(t *testing.T) {
	repo := &mocks.CharacterRepository{Characters: testCharacters()}
	svc := NewCharacterService(repo, discardLogger())

	characters, err := svc.GetByWorld(context.Background(), "")
	assert.Nil(t, characters)
	assert.ErrorIs(t, err, entities.ErrWorldIDRequired)
}

func TestCharacterServiceSearch(t *testing.T) {
	repo := &mocks.CharacterRepository{Characters: testCharacters()}
	svc := NewCharacterService(repo, discardLogger())

	characters, err := svc.Search(context.Background(), entities.CharacterFilters{Race: "god"})
	require.NoError(t, err)
	require.Len(t, characters, 1)
	assert.Equal(t, "odin", characters[0].Identifier)
}

func TestCharacterServiceSearchError(t *testing.T) {
	repo := &mocks.CharacterRepository{Err: errors.New("boom")}
	svc := NewCharacterService(repo, discardLogger())

	_, err := svc.Search(context.Background(), entities.CharacterFilters{})
	assert.ErrorIs(t, err, ErrSearchCharacters)
}

func TestCharacterServiceCount(t *testing.T) {
	repo := &mocks.CharacterRepository{Characters: testCharacters()}
	svc := NewCharacterService(repo, discardLogger())

	count, err := svc.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
