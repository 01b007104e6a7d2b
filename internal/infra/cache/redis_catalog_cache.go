// Package cache keeps catalog reference data in redis.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"surplus/config"
	"surplus/internal/domain/entity"
	"surplus/internal/domain/service"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	categoriesKey     = "surplus:catalog:categories"
	defaultCatalogTTL = time.Hour
)

// cachedCategory is the JSON shape stored in redis.
type cachedCategory struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type redisCatalogCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisCatalogCache wraps an existing client. A non-positive ttl uses the default.
func NewRedisCatalogCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) service.CatalogCache {
	if ttl <= 0 {
		ttl = defaultCatalogTTL
	}

	return &redisCatalogCache{client: client, ttl: ttl, logger: logger}
}

// GetCategories reports a miss on any redis or decoding failure.
func (c *redisCatalogCache) GetCategories(ctx context.Context) ([]*entity.Category, bool) {
	raw, err := c.client.Get(ctx, categoriesKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "catalog cache read failed", slog.Any("error", err))
		}

		return nil, false
	}

	var cached []cachedCategory
	if err := json.Unmarshal(raw, &cached); err != nil {
		c.logger.WarnContext(ctx, "catalog cache entry is corrupt", slog.Any("error", err))

		return nil, false
	}

	categories := make([]*entity.Category, 0, len(cached))
	for _, item := range cached {
		categories = append(categories, &entity.Category{ID: item.ID, Name: item.Name, Image: item.Image})
	}

	return categories, true
}

func (c *redisCatalogCache) SetCategories(ctx context.Context, categories []*entity.Category) error {
	cached := make([]cachedCategory, 0, len(categories))
	for _, category := range categories {
		cached = append(cached, cachedCategory{ID: category.ID, Name: category.Name, Image: category.Image})
	}

	raw, err := json.Marshal(cached)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.Wrap(c.client.Set(ctx, categoriesKey, raw, c.ttl).Err(), "failed to cache categories")
}

// noopCatalogCache always misses.
type noopCatalogCache struct{}

func (noopCatalogCache) GetCategories(context.Context) ([]*entity.Category, bool) {
	return nil, false
}

func (noopCatalogCache) SetCategories(context.Context, []*entity.Category) error {
	return nil
}

// CacheParams holds dependencies for CatalogCache, injected by Fx
type CacheParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewCatalogCache connects to redis when redis.addr is configured and falls back to a no-op cache otherwise.
func NewCatalogCache(params CacheParams) service.CatalogCache {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, catalog cache disabled")

		return noopCatalogCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// Startup continues without redis; reads degrade to the database.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("redis unreachable, catalog cache will miss",
					slog.String("addr", cfg.Addr),
					slog.Any("error", err),
				)
			}

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return NewRedisCatalogCache(client, cfg.CatalogTTL, params.Logger)
}

// Module provides the catalog cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewCatalogCache),
)
