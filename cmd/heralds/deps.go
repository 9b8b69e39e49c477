package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/GY-CODING/heralds-of-chaos-web/internal/application/catalog"
	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/ports"
	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/services"
	rediscache "github.com/GY-CODING/heralds-of-chaos-web/internal/infrastructure/cache/redis"
	"github.com/GY-CODING/heralds-of-chaos-web/internal/infrastructure/config"
	"github.com/GY-CODING/heralds-of-chaos-web/internal/infrastructure/documentdb/cached"
	"github.com/GY-CODING/heralds-of-chaos-web/internal/infrastructure/documentdb/mongodb"
)

// Deps holds the high-level dependencies commands work with.
type Deps struct {
	Config     *config.Config
	Log        *slog.Logger
	Client     *mongodb.Client
	Characters *services.CharacterService
	Creatures  *services.CreatureService
	Items      *services.ItemService
	Places     *services.PlaceService
	Worlds     *services.WorldService
	Catalog    *catalog.Service
}

// withDeps loads config, connects the backing stores and builds the
// service graph, then calls fn. Cleanup happens on return.
func withDeps(ctx context.Context, fn func(context.Context, *Deps) error) error {
	cfg, err := config.Load(globalConfigFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	client, err := mongodb.Connect(ctx, cfg.MongoDB)
	if err != nil {
		return fmt.Errorf("connecting to mongodb: %w", err)
	}
	defer func() {
		if err := client.Close(context.Background()); err != nil {
			log.Error("closing mongodb client", "error", err)
		}
	}()

	db := client.Database()
	characterRepo := mongodb.NewCharacterRepository(db, log)
	creatureRepo := mongodb.NewCreatureRepository(db, log)
	itemRepo := mongodb.NewItemRepository(db, log)
	placeRepo := mongodb.NewPlaceRepository(db, log)

	var worldRepo ports.WorldRepository = mongodb.NewWorldRepository(db, log)
	if cfg.CacheEnabled() {
		redisClient := rediscache.NewClient(cfg.Redis.Addr)
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("closing redis client", "error", err)
			}
		}()
		worldRepo = cached.NewWorldRepository(worldRepo, redisClient, cfg.Redis.TTL, log)
		log.Info("world cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.TTL)
	}

	characters := services.NewCharacterService(characterRepo, log)
	creatures := services.NewCreatureService(creatureRepo, log)
	items := services.NewItemService(itemRepo, log)
	places := services.NewPlaceService(placeRepo, worldRepo, log)
	worlds := services.NewWorldService(worldRepo, placeRepo, log)

	deps := &Deps{
		Config:     cfg,
		Log:        log,
		Client:     client,
		Characters: characters,
		Creatures:  creatures,
		Items:      items,
		Places:     places,
		Worlds:     worlds,
		Catalog:    catalog.NewService(characters, creatures, items, places, worlds, log),
	}

	return fn(ctx, deps)
}
