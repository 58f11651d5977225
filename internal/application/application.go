package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"golang.org/x/sync/errgroup"

	"bnb_finder/internal/config"
	"bnb_finder/internal/domain/service/catalog"
	"bnb_finder/internal/infrastructure/dataset"
	"bnb_finder/internal/server"
	"bnb_finder/pkg/application/modules"
	"bnb_finder/pkg/contextx"
	"bnb_finder/pkg/httpx"
	"bnb_finder/pkg/logx"
	"bnb_finder/pkg/middlewarex"
)

func Run(ctx context.Context, log *slog.Logger) error {
	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	// 2. Logger нужного уровня
	log = slog.New(tint.NewHandler(os.Stdout, &tint.Options{Level: cfg.Logger.Level}))
	slog.SetDefault(log)
	ctx = contextx.WithLogger(ctx, log)

	// 3. Источники датасета и кеш среза
	masker := logx.NewSensitiveDataMasker()

	// Файлы датасета весят мегабайты, их тела в лог не пишем.
	var transport http.RoundTripper = httpx.NewLoggingRoundTripper(
		http.DefaultTransport,
		httpx.WithSensitiveDataMasker(masker),
		httpx.WithLogFieldMaxLen(cfg.Logger.FieldMaxLen),
		httpx.WithoutBodyDump(),
	)
	if cfg.Dataset.AuthToken != "" {
		transport = httpx.NewAuthBearerRoundTripper(transport, dataset.NewStaticTokenAuth(cfg.Dataset.AuthToken))
	}

	loader := dataset.NewLoader(dataset.Locations{
		Listings:       cfg.Dataset.ListingsLocation,
		Neighbourhoods: cfg.Dataset.NeighbourhoodsLocation,
		Reviews:        cfg.Dataset.ReviewsLocation,
		Restaurants:    cfg.Dataset.RestaurantsLocation,
	}).WithHTTPClient(&http.Client{
		Timeout:   cfg.Dataset.HTTPTimeout,
		Transport: transport,
	})

	provider := dataset.NewProvider(loader, cfg.Dataset.City, cfg.Dataset.CacheTTL)

	// Прогреваем кеш заранее. Ошибка не фатальна: сервер поднимется,
	// а readiness останется красным, пока источники не починят.
	if _, err := provider.Snapshot(ctx); err != nil {
		log.Warn("dataset warmup failed", logx.Error(err))
	}

	// 4. HTTP сервер дашборда
	catalogService := catalog.NewCatalogService()

	srv := server.NewServer(
		server.NewDatasetServer(
			provider,
			cfg.App.Name,
			fmt.Sprintf("Rental listings and restaurants insights for %s", cfg.Dataset.City),
		),
		server.NewListingServer(provider, catalogService),
		server.NewRestaurantServer(provider, catalogService),
	)

	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.RequestLogging(masker, cfg.Logger.FieldMaxLen),
		middlewarex.ResponseLogging(masker, cfg.Logger.FieldMaxLen),
		middlewarex.Recovery,
	)
	srv.RegisterRoutes(router)

	httpServer := &http.Server{
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	// 5. Модули
	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, httpServer)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
		ReadyCheck: func(ctx context.Context) error {
			_, err := provider.Snapshot(ctx)

			return err
		},
	}.Run(ctx, g)

	modules.MetricServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Metrics.ListenAddress,
	}.Run(ctx, g)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}
