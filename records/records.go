package records

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"strings"
	"unicode"

	"github.com/maxpoletaev/kvdns/nodeclient"
)

// DefaultPrefix is the key prefix under which device records are stored.
const DefaultPrefix = "/kvdns/devices/"

const maxNameLength = 253

var (
	ErrInvalidRecord = errors.New("invalid record")
	ErrNotFound      = nodeclient.ErrNotFound
)

// KV is the key-value store the records are kept in.
type KV interface {
	Put(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// Record maps a device name to its IP address.
type Record struct {
	Name string
	Addr netip.Addr
}

// Service publishes device records to the store.
type Service struct {
	kv     KV
	prefix string
}

func New(kv KV, prefix string) *Service {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	return &Service{
		kv:     kv,
		prefix: prefix,
	}
}

func (s *Service) key(name string) string {
	return s.prefix + name
}

// Publish stores the address of the device, replacing the previous one.
func (s *Service) Publish(ctx context.Context, name, ip string) (Record, error) {
	if err := validateName(name); err != nil {
		return Record{}, err
	}

	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	if err := s.kv.Put(ctx, s.key(name), addr.String()); err != nil {
		return Record{}, fmt.Errorf("failed to publish %q: %w", name, err)
	}

	return Record{Name: name, Addr: addr}, nil
}

// Lookup returns the address of the device or ErrNotFound.
func (s *Service) Lookup(ctx context.Context, name string) (Record, error) {
	if err := validateName(name); err != nil {
		return Record{}, err
	}

	value, err := s.kv.Get(ctx, s.key(name))
	if err != nil {
		return Record{}, fmt.Errorf("failed to lookup %q: %w", name, err)
	}

	addr, err := netip.ParseAddr(value)
	if err != nil {
		return Record{}, fmt.Errorf("corrupted record %q: %w", name, err)
	}

	return Record{Name: name, Addr: addr}, nil
}

// Unpublish removes the device record. Removing a missing record is not an error.
func (s *Service) Unpublish(ctx context.Context, name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	if err := s.kv.Delete(ctx, s.key(name)); err != nil {
		return fmt.Errorf("failed to unpublish %q: %w", name, err)
	}

	return nil
}

func validateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty device name", ErrInvalidRecord)
	case len(name) > maxNameLength:
		return fmt.Errorf("%w: device name is longer than %d bytes", ErrInvalidRecord, maxNameLength)
	case strings.Contains(name, "/"):
		return fmt.Errorf("%w: device name contains '/'", ErrInvalidRecord)
	case strings.IndexFunc(name, unicode.IsControl) >= 0:
		return fmt.Errorf("%w: device name contains control characters", ErrInvalidRecord)
	}

	return nil
}
