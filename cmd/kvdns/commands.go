package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/sync/errgroup"

	"github.com/maxpoletaev/kvdns/failover"
	"github.com/maxpoletaev/kvdns/workload"
)

const shutdownTimeout = 10 * time.Second

// withClient runs fn against a connected client and closes it afterwards.
func withClient(fn func(ctx context.Context, client *failover.Client, logger kitlog.Logger) error) error {
	logger, closeLogger := setupLogger()
	defer closeLogger(context.Background())

	client, closeClient, err := setupClient(appctx, logger, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err := closeClient(context.Background()); err != nil {
			level.Warn(logger).Log("msg", "failed to shutdown component", "err", err)
		}
	}()

	return fn(appctx, client, logger)
}

type serveCommand struct {
	BindAddr string `long:"bind-addr" description:"address to bind the REST API server" env:"BIND_ADDR" default:":8000"`
}

func (cmd *serveCommand) Execute([]string) error {
	logger, closeLogger := setupLogger()

	collector, metricsHandler, err := setupMetrics()
	if err != nil {
		return err
	}

	client, closeClient, err := setupClient(appctx, logger, collector)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(appctx)
	service := setupRecords(client)
	_, closeAPIServer := setupAPIServer(g, cmd.BindAddr, service, client, metricsHandler, logger)

	// The API server must stop accepting requests before the client is closed.
	shutdownOrder := []shutdownFunc{
		closeAPIServer,
		closeClient,
		closeLogger,
	}

	g.Go(func() error {
		<-ctx.Done()
		level.Info(logger).Log("msg", "shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs []error

		for _, f := range shutdownOrder {
			if err := f(shutdownCtx); err != nil {
				level.Error(logger).Log("msg", "failed to shutdown component", "err", err)
				errs = append(errs, err)
			}
		}

		return errors.Join(errs...)
	})

	return g.Wait()
}

type simulateCommand struct {
	Iterations   int   `long:"iterations" description:"number of workload steps" env:"ITERATIONS" default:"1000"`
	WorkloadSeed int64 `long:"workload-seed" description:"workload generator seed" env:"WORKLOAD_SEED" default:"1"`
}

func (cmd *simulateCommand) Execute([]string) error {
	return withClient(func(ctx context.Context, client *failover.Client, logger kitlog.Logger) error {
		ops := workload.Generate(cmd.Iterations, cmd.WorkloadSeed)
		report, err := workload.Run(ctx, setupRecords(client), ops, logger)

		level.Info(logger).Log(
			"msg", "workload finished",
			"total", report.Total,
			"created", report.Created,
			"deleted", report.Deleted,
			"retrieved", report.Retrieved,
			"failed", report.Failed,
			"mismatched", report.Mismatched,
			"elapsed", report.Elapsed,
		)

		return err
	})
}

type putCommand struct {
	Args struct {
		Name string `positional-arg-name:"NAME"`
		IP   string `positional-arg-name:"IP"`
	} `positional-args:"yes" required:"yes"`
}

func (cmd *putCommand) Execute([]string) error {
	return withClient(func(ctx context.Context, client *failover.Client, _ kitlog.Logger) error {
		rec, err := setupRecords(client).Publish(ctx, cmd.Args.Name, cmd.Args.IP)
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stdout, "%s\t%s\n", rec.Name, rec.Addr)

		return nil
	})
}

type getCommand struct {
	Args struct {
		Name string `positional-arg-name:"NAME"`
	} `positional-args:"yes" required:"yes"`
}

func (cmd *getCommand) Execute([]string) error {
	return withClient(func(ctx context.Context, client *failover.Client, _ kitlog.Logger) error {
		rec, err := setupRecords(client).Lookup(ctx, cmd.Args.Name)
		if err != nil {
			return err
		}

		fmt.Fprintln(os.Stdout, rec.Addr)

		return nil
	})
}

type deleteCommand struct {
	Args struct {
		Name string `positional-arg-name:"NAME"`
	} `positional-args:"yes" required:"yes"`
}

func (cmd *deleteCommand) Execute([]string) error {
	return withClient(func(ctx context.Context, client *failover.Client, _ kitlog.Logger) error {
		return setupRecords(client).Unpublish(ctx, cmd.Args.Name)
	})
}

type nodesCommand struct{}

func (cmd *nodesCommand) Execute([]string) error {
	return withClient(func(_ context.Context, client *failover.Client, _ kitlog.Logger) error {
		current := client.Current()

		for _, node := range client.Nodes() {
			marker := " "
			if node == current {
				marker = "*"
			}

			fmt.Fprintf(os.Stdout, "%s %s\n", marker, node)
		}

		return nil
	})
}
