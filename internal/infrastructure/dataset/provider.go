package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	cache "github.com/patrickmn/go-cache"

	"bnb_finder/internal/domain/entity"
	"bnb_finder/pkg/contextx"
	"bnb_finder/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const snapshotCacheKey = "dataset-snapshot"

type loader interface {
	Load(ctx context.Context) (RawDataset, error)
}

// Provider собирает срез датасета и держит его в кеше, чтобы каждый запрос
// дашборда не перечитывал источники заново.
type Provider struct {
	loader  loader
	cleaner Cleaner
	city    string
	cache   *cache.Cache
}

func NewProvider(loader loader, city string, ttl time.Duration) *Provider {
	return &Provider{
		loader:  loader,
		cleaner: NewCleaner(),
		city:    city,
		cache:   cache.New(ttl, ttl),
	}
}

// Snapshot отдаёт закешированный срез или собирает новый, если кеш протух.
func (p *Provider) Snapshot(ctx context.Context) (*entity.Snapshot, error) {
	if cached, found := p.cache.Get(snapshotCacheKey); found {
		return cached.(*entity.Snapshot), nil //nolint:forcetypeassert
	}

	return p.Reload(ctx)
}

// Reload пересобирает срез из источников, не дожидаясь истечения кеша.
func (p *Provider) Reload(ctx context.Context) (*entity.Snapshot, error) {
	start := time.Now()

	raw, err := p.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loader.Load: %w", err)
	}

	snapshot := &entity.Snapshot{
		City:           p.city,
		Listings:       p.cleaner.CleanListings(raw.Listings),
		Neighbourhoods: p.cleaner.Neighbourhoods(raw.Neighbourhoods),
		Restaurants:    p.cleaner.Restaurants(raw.Restaurants),
		ReviewCount:    len(raw.Reviews.Rows),
		LoadedAt:       time.Now(),
	}

	p.cache.Set(snapshotCacheKey, snapshot, cache.DefaultExpiration)

	logger(ctx).Info(
		"dataset snapshot rebuilt",
		slog.String(logx.FieldCity, p.city),
		slog.Int("listings", len(snapshot.Listings)),
		slog.Int("droppedListings", len(raw.Listings.Rows)-len(snapshot.Listings)),
		slog.Int("restaurants", len(snapshot.Restaurants)),
		slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
	)

	return snapshot, nil
}
