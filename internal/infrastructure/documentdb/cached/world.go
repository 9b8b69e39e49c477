// Package cached decorates document repositories with a cache-aside
// layer. Worlds are the hot join target of the catalog pages and the
// dataset is small and read-only, so entries are cached whole. Cache
// failures are logged and fall through to the store; the cache can
// never make a request fail.
package cached

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/entities"
	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/ports"
)

// WorldRepository is a cache-aside decorator over a WorldRepository.
type WorldRepository struct {
	inner ports.WorldRepository
	cache ports.Cache
	ttl   time.Duration
	log   *slog.Logger
}

// NewWorldRepository wraps inner with the given cache.
func NewWorldRepository(inner ports.WorldRepository, cache ports.Cache, ttl time.Duration, log *slog.Logger) *WorldRepository {
	return &WorldRepository{inner: inner, cache: cache, ttl: ttl, log: log}
}

// FindAll returns every world, from cache when possible.
func (r *WorldRepository) FindAll(ctx context.Context) ([]entities.World, error) {
	return cachedList(ctx, r, "worlds:all", r.inner.FindAll)
}

// FindAllSorted returns every world ordered by English name, from cache
// when possible.
func (r *WorldRepository) FindAllSorted(ctx context.Context) ([]entities.World, error) {
	return cachedList(ctx, r, "worlds:sorted", r.inner.FindAllSorted)
}

// FindByIdentifier finds a world by its slug. Absence is not cached.
func (r *WorldRepository) FindByIdentifier(ctx context.Context, identifier string) (*entities.World, error) {
	return r.cachedOne(ctx, "worlds:identifier:"+identifier, func(ctx context.Context) (*entities.World, error) {
		return r.inner.FindByIdentifier(ctx, identifier)
	})
}

// FindByID finds a world by its storage id. Absence is not cached.
func (r *WorldRepository) FindByID(ctx context.Context, id string) (*entities.World, error) {
	return r.cachedOne(ctx, "worlds:id:"+id, func(ctx context.Context) (*entities.World, error) {
		return r.inner.FindByID(ctx, id)
	})
}

// Count returns the total number of worlds, straight from the store.
func (r *WorldRepository) Count(ctx context.Context) (int, error) {
	return r.inner.Count(ctx)
}

func cachedList(ctx context.Context, r *WorldRepository, key string, load func(context.Context) ([]entities.World, error)) ([]entities.World, error) {
	if cached, ok := r.lookup(ctx, key); ok {
		var worlds []entities.World
		if err := json.Unmarshal([]byte(cached), &worlds); err == nil {
			return worlds, nil
		}
		r.log.Warn("discarding malformed cache entry", "key", key)
	}

	worlds, err := load(ctx)
	if err != nil {
		return nil, err
	}
	r.store(ctx, key, worlds)
	return worlds, nil
}

func (r *WorldRepository) cachedOne(ctx context.Context, key string, load func(context.Context) (*entities.World, error)) (*entities.World, error) {
	if cached, ok := r.lookup(ctx, key); ok {
		var world entities.World
		if err := json.Unmarshal([]byte(cached), &world); err == nil {
			return &world, nil
		}
		r.log.Warn("discarding malformed cache entry", "key", key)
	}

	world, err := load(ctx)
	if err != nil || world == nil {
		return world, err
	}
	r.store(ctx, key, world)
	return world, nil
}

func (r *WorldRepository) lookup(ctx context.Context, key string) (string, bool) {
	cached, ok, err := r.cache.Get(ctx, key)
	if err != nil {
		r.log.Warn("cache get failed", "key", key, "error", err)
		return "", false
	}
	return cached, ok
}

func (r *WorldRepository) store(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		r.log.Warn("cache encode failed", "key", key, "error", err)
		return
	}
	if err := r.cache.Set(ctx, key, string(data), r.ttl); err != nil {
		r.log.Warn("cache set failed", "key", key, "error", err)
	}
}
