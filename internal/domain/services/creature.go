package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/entities"
	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/ports"
)

// Stable creature failure messages.
var (
	ErrFetchCreatures  = errors.New("failed to fetch creatures")
	ErrFetchCreature   = errors.New("failed to fetch creature")
	ErrSearchCreatures = errors.New("failed to search creatures")
	ErrCountCreatures  = errors.New("failed to count creatures")
)

// CreatureService manages creature read operations.
type CreatureService struct {
	repo ports.CreatureRepository
	log  *slog.Logger
}

// NewCreatureService creates a new CreatureService.
func NewCreatureService(repo ports.CreatureRepository, log *slog.Logger) *CreatureService {
	return &CreatureService{repo: repo, log: log}
}

// GetAll returns every creature.
func (s *CreatureService) GetAll(ctx context.Context) ([]entities.Creature, error) {
	creatures, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("fetching creatures", "error", err)
		return nil, ErrFetchCreatures
	}
	return creatures, nil
}

// GetByIdentifier returns the creature with the given slug, or
// (nil, nil) when none matches.
func (s *CreatureService) GetByIdentifier(ctx context.Context, identifier string) (*entities.Creature, error) {
	if identifier == "" {
		return nil, entities.ErrIdentifierRequired
	}
	creature, err := s.repo.FindByIdentifier(ctx, identifier)
	if err != nil {
		s.log.Error("fetching creature", "identifier", identifier, "error", err)
		return nil, ErrFetchCreature
	}
	return creature, nil
}

// Search returns the creatures matching the filters.
func (s *CreatureService) Search(ctx context.Context, filters entities.CreatureFilters) ([]entities.Creature, error) {
	creatures, err := s.repo.FindWithFilters(ctx, filters)
	if err != nil {
		s.log.Error("searching creatures", "error", err)
		return nil, ErrSearchCreatures
	}
	return creatures, nil
}

// Count returns the total number of creatures.
func (s *CreatureService) Count(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		s.log.Error("counting creatures", "error", err)
		return 0, ErrCountCreatures
	}
	return count, nil
}
