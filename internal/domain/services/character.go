// Package services holds the per-kind domain services: argument
// validation, cross-entity enrichment, and translation of backing-store
// failures into stable, detail-free messages. Not-found stays (nil, nil)
// all the way up; callers decide how to present absence.
package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/entities"
	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/ports"
)

// Stable character failure messages. Internal detail stays in the logs.
var (
	ErrFetchCharacters        = errors.New("failed to fetch characters")
	ErrFetchCharacter         = errors.New("failed to fetch character")
	ErrFetchCharactersByWorld = errors.New("failed to fetch characters by world")
	ErrSearchCharacters       = errors.New("failed to search characters")
	ErrCountCharacters        = errors.New("failed to count characters")
)

// CharacterService manages character read operations.
type CharacterService struct {
	repo ports.CharacterRepository
	log  *slog.Logger
}

// NewCharacterService creates a new CharacterService.
func NewCharacterService(repo ports.CharacterRepository, log *slog.Logger) *CharacterService {
	return &CharacterService{repo: repo, log: log}
}

// GetAll returns every character.
func (s *CharacterService) GetAll(ctx context.Context) ([]entities.Character, error) {
	characters, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("fetching characters", "error", err)
		return nil, ErrFetchCharacters
	}
	return characters, nil
}

// GetByIdentifier returns the character with the given slug, or
// (nil, nil) when none matches.
func (s *CharacterService) GetByIdentifier(ctx context.Context, identifier string) (*entities.Character, error) {
	if identifier == "" {
		return nil, entities.ErrIdentifierRequired
	}
	character, err := s.repo.FindByIdentifier(ctx, identifier)
	if err != nil {
		s.log.Error("fetching character", "identifier", identifier, "error", err)
		return nil, ErrFetchCharacter
	}
	return character, nil
}

// GetByWorld returns the characters belonging to the given world.
func (s *CharacterService) GetByWorld(ctx context.Context, worldID string) ([]entities.Character, error) {
	if worldID == "" {
		return nil, entities.ErrWorldIDRequired
	}
	characters, err := s.repo.FindByWorld(ctx, worldID)
	if err != nil {
		s.log.Error("fetching characters by world", "worldId", worldID, "error", err)
		return nil, ErrFetchCharactersByWorld
	}
	return characters, nil
}

// Search returns the characters matching the filters.
func (s *CharacterService) Search(ctx context.Context, filters entities.CharacterFilters) ([]entities.Character, error) {
	characters, err := s.repo.FindWithFilters(ctx, filters)
	if err != nil {
		s.log.Error("searching characters", "error", err)
		return nil, ErrSearchCharacters
	}
	return characters, nil
}

// Count returns the total number of characters.
func (s *CharacterService) Count(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		s.log.Error("counting characters", "error", err)
		return 0, ErrCountCharacters
	}
	return count, nil
}
