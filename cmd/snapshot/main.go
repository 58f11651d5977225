package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"bnb_finder/internal/config"
	"bnb_finder/internal/domain/service/insight"
	"bnb_finder/internal/infrastructure/dataset"
	"bnb_finder/internal/infrastructure/persistence"
	"bnb_finder/pkg/application/connectors"
	"bnb_finder/pkg/contextx"
	"bnb_finder/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(log)

	if err := run(ctx, log); err != nil {
		log.Error("snapshot failed", logx.Error(err))
		os.Exit(1)
	}

	log.Info("snapshot finished")
}

func run(ctx context.Context, log *slog.Logger) error {
	ctx = contextx.WithLogger(ctx, log)

	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	if cfg.Postgres.DSN == "" {
		return errors.New("PG_DSN is required for snapshot")
	}

	// 2. Database
	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
	db := pg.Client(ctx)
	defer pg.Close(ctx)

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}
	log.Info("database connection OK")

	// 3. Свежий срез датасета
	loader := dataset.NewLoader(dataset.Locations{
		Listings:       cfg.Dataset.ListingsLocation,
		Neighbourhoods: cfg.Dataset.NeighbourhoodsLocation,
		Reviews:        cfg.Dataset.ReviewsLocation,
		Restaurants:    cfg.Dataset.RestaurantsLocation,
	})

	provider := dataset.NewProvider(loader, cfg.Dataset.City, cfg.Dataset.CacheTTL)

	snapshot, err := provider.Reload(ctx)
	if err != nil {
		return fmt.Errorf("provider.Reload: %w", err)
	}

	// 4. Архивируем срез
	repo := persistence.NewListingRepository(db)

	if err := repo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("repo.EnsureSchema: %w", err)
	}

	if err := repo.ReplaceAll(ctx, snapshot.City, snapshot.LoadedAt, snapshot.Listings); err != nil {
		return fmt.Errorf("repo.ReplaceAll: %w", err)
	}

	count, err := repo.CountByCity(ctx, snapshot.City)
	if err != nil {
		return fmt.Errorf("repo.CountByCity: %w", err)
	}

	// 5. Сводка по срезу
	report := insight.NewInsightService().Report(snapshot.Listings)

	log.Info(
		"listings archived",
		slog.String(logx.FieldCity, snapshot.City),
		slog.Int("stored", count),
		slog.Float64("averagePrice", report.AveragePrice),
		slog.Float64("minPrice", report.MinPrice),
		slog.Float64("maxPrice", report.MaxPrice),
	)

	if report.MostExpensive != nil {
		log.Info(
			"most expensive listing",
			slog.String("name", report.MostExpensive.Name),
			slog.Float64("price", report.MostExpensive.Price),
		)
	}

	return nil
}
