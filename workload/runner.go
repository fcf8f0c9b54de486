package workload

import (
	"context"
	"errors"
	"fmt"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/maxpoletaev/kvdns/internal/multierror"
	"github.com/maxpoletaev/kvdns/records"
)

var ErrMismatch = errors.New("retrieved address does not match")

// Executor applies workload operations to the record store.
type Executor interface {
	Publish(ctx context.Context, name, ip string) (records.Record, error)
	Lookup(ctx context.Context, name string) (records.Record, error)
	Unpublish(ctx context.Context, name string) error
}

// Report summarizes a workload run.
type Report struct {
	Total      int
	Created    int
	Deleted    int
	Retrieved  int
	Failed     int
	Mismatched int
	Elapsed    time.Duration
}

// Run applies the operations one by one. Failed operations do not stop the
// run; their errors are returned combined, keyed by the operation index.
func Run(ctx context.Context, exec Executor, ops []Op, logger kitlog.Logger) (Report, error) {
	var report Report

	errs := multierror.New[int]()
	start := time.Now()

	for idx, op := range ops {
		if err := ctx.Err(); err != nil {
			report.Elapsed = time.Since(start)
			return report, err
		}

		report.Total++

		err := apply(ctx, exec, op)
		if err != nil {
			if errors.Is(err, ErrMismatch) {
				report.Mismatched++
			}

			report.Failed++
			errs.Add(idx, err)

			level.Warn(logger).Log(
				"msg", "operation failed",
				"idx", idx,
				"op", op.Kind,
				"device", op.DeviceName,
				"err", err,
			)

			continue
		}

		switch op.Kind {
		case Create:
			report.Created++
		case Delete:
			report.Deleted++
		case Retrieve:
			report.Retrieved++
		}

		level.Debug(logger).Log("msg", "operation applied", "idx", idx, "op", op.Kind, "device", op.DeviceName)
	}

	report.Elapsed = time.Since(start)

	return report, errs.Combined()
}

func apply(ctx context.Context, exec Executor, op Op) error {
	switch op.Kind {
	case Create:
		_, err := exec.Publish(ctx, op.DeviceName, op.IP)
		return err
	case Delete:
		return exec.Unpublish(ctx, op.DeviceName)
	case Retrieve:
		rec, err := exec.Lookup(ctx, op.DeviceName)
		if err != nil {
			return err
		}

		if rec.Addr.String() != op.IP {
			return fmt.Errorf("%w: %s: want %s, got %s", ErrMismatch, op.DeviceName, op.IP, rec.Addr)
		}

		return nil
	default:
		return fmt.Errorf("unknown operation kind %d", op.Kind)
	}
}
