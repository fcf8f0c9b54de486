package handler

//go:generate mockgen -destination=facilities_mock_test.go -package=handler -source=facilities.go

import (
	"context"

	"github.com/maxpoletaev/kvdns/failover"
	"github.com/maxpoletaev/kvdns/records"
)

type RecordService interface {
	Publish(ctx context.Context, name, ip string) (records.Record, error)
	Lookup(ctx context.Context, name string) (records.Record, error)
	Unpublish(ctx context.Context, name string) error
}

type Cluster interface {
	Nodes() []failover.Node
	Current() failover.Node
}
