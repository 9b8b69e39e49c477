package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/entities"
	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/ports"
)

// Stable item failure messages.
var (
	ErrFetchItems  = errors.New("failed to fetch items")
	ErrFetchItem   = errors.New("failed to fetch item")
	ErrSearchItems = errors.New("failed to search items")
	ErrCountItems  = errors.New("failed to count items")
)

// ItemService manages item read operations.
type ItemService struct {
	repo ports.ItemRepository
	log  *slog.Logger
}

// NewItemService creates a new ItemService.
func NewItemService(repo ports.ItemRepository, log *slog.Logger) *ItemService {
	return &ItemService{repo: repo, log: log}
}

// GetAll returns every item.
func (s *ItemService) GetAll(ctx context.Context) ([]entities.Item, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("fetching items", "error", err)
		return nil, ErrFetchItems
	}
	return items, nil
}

// GetByIdentifier returns the item with the given slug, or (nil, nil)
// when none matches.
func (s *ItemService) GetByIdentifier(ctx context.Context, identifier string) (*entities.Item, error) {
	if identifier == "" {
		return nil, entities.ErrIdentifierRequired
	}
	item, err := s.repo.FindByIdentifier(ctx, identifier)
	if err != nil {
		s.log.Error("fetching item", "identifier", identifier, "error", err)
		return nil, ErrFetchItem
	}
	return item, nil
}

// Search returns the items matching the filters.
func (s *ItemService) Search(ctx context.Context, filters entities.ItemFilters) ([]entities.Item, error) {
	items, err := s.repo.FindWithFilters(ctx, filters)
	if err != nil {
		s.log.Error("searching items", "error", err)
		return nil, ErrSearchItems
	}
	return items, nil
}

// Count returns the total number of items.
func (s *ItemService) Count(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		s.log.Error("counting items", "error", err)
		return 0, ErrCountItems
	}
	return count, nil
}
