package metrics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bnb_finder/pkg/contextx"
	"bnb_finder/pkg/logx"
)

const httpServerReadHeaderTimeout = 5 * time.Second

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Options label the app_build_info metric.
type Options struct {
	Name    string
	Version string
}

// PrometheusServer serves /metrics from its own registry: the go and process
// collectors plus a build info gauge.
type PrometheusServer struct {
	listenAddress string
	options       Options
}

func NewPrometheusServer(
	listenAddress string,
	options Options,
) PrometheusServer {
	return PrometheusServer{
		listenAddress: listenAddress,
		options:       options,
	}
}

func (p PrometheusServer) Run(ctx context.Context) error {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		p.buildInfo(),
	)

	mux := http.NewServeMux()

	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              p.listenAddress,
		Handler:           mux,
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()

		if err := httpServer.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger(ctx).Error("httpServer.Shutdown", logx.Error(err))
		}
	}()

	logger(ctx).Info("prometheus server started", slog.String("address", p.listenAddress))

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("httpServer.ListenAndServe: %w", err)
	}

	logger(ctx).Info("prometheus server stopped")

	return nil
}

func (p PrometheusServer) buildInfo() prometheus.Gauge {
	buildInfo := prometheus.NewGauge(prometheus.GaugeOpts{ //nolint:exhaustruct
		Name: "app_build_info",
		Help: "Application name and version.",
		ConstLabels: prometheus.Labels{
			"name":    p.options.Name,
			"version": p.options.Version,
		},
	})
	buildInfo.Set(1)

	return buildInfo
}
