package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/maxpoletaev/kvdns/api"
	"github.com/maxpoletaev/kvdns/failover"
	"github.com/maxpoletaev/kvdns/metrics"
	"github.com/maxpoletaev/kvdns/records"
)

type shutdownFunc func(ctx context.Context) error

var noopShutdown = func(ctx context.Context) error { return nil }

func setupLogger() (kitlog.Logger, shutdownFunc) {
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)

	if !opts.Verbose {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	return logger, noopShutdown
}

func setupMetrics() (*metrics.Collector, http.Handler, error) {
	reg := prometheus.NewRegistry()

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	collector, err := metrics.New(reg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	return collector, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

func clientOptions(logger kitlog.Logger, observer failover.Observer) ([]failover.Option, error) {
	source, err := failover.ParseAddrSource(opts.Cluster.AddrSource)
	if err != nil {
		return nil, err
	}

	options := []failover.Option{
		failover.WithLogger(logger),
		failover.WithAddrSource(source),
		failover.WithMaxAttempts(opts.Cluster.MaxAttempts),
		failover.WithRetryDelay(opts.Cluster.RetryDelay),
		failover.WithDialTimeout(opts.Cluster.DialTimeout),
		failover.WithDiscoveryAttempts(opts.Cluster.DiscoveryAttempts),
	}

	if observer != nil {
		options = append(options, failover.WithObserver(observer))
	}

	if opts.Cluster.Seed != 0 {
		options = append(options, failover.WithSeed(opts.Cluster.Seed))
	}

	return options, nil
}

func setupClient(ctx context.Context, logger kitlog.Logger, observer failover.Observer) (*failover.Client, shutdownFunc, error) {
	options, err := clientOptions(logger, observer)
	if err != nil {
		return nil, nil, err
	}

	client, err := failover.New(ctx, opts.Cluster.Endpoint, options...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to %s: %w", opts.Cluster.Endpoint, err)
	}

	shutdown := func(ctx context.Context) error {
		level.Debug(logger).Log("msg", "closing cluster client")

		if err := client.Close(); err != nil {
			return fmt.Errorf("failed to close cluster client: %w", err)
		}

		return nil
	}

	return client, shutdown, nil
}

func setupRecords(client *failover.Client) *records.Service {
	return records.New(client, opts.Records.Prefix)
}

func setupAPIServer(
	g *errgroup.Group,
	bindAddr string,
	service *records.Service,
	client *failover.Client,
	metricsHandler http.Handler,
	logger kitlog.Logger,
) (*http.Server, shutdownFunc) {
	restAPI := &http.Server{
		Addr:    bindAddr,
		Handler: api.CreateRouter(service, client, metricsHandler),
	}

	g.Go(func() error {
		level.Info(logger).Log("msg", "starting API server", "addr", bindAddr)

		if err := restAPI.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("failed to start REST API server: %w", err)
		}

		return nil
	})

	shutdown := func(ctx context.Context) error {
		logger.Log("msg", "shutting down API server")

		if err := restAPI.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown REST API server: %w", err)
		}

		return nil
	}

	return restAPI, shutdown
}
