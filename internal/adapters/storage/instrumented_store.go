package storage

import (
	"context"

	"meteorenard.app/internal/ports"
	"meteorenard.app/pkg/errors"
)

// InstrumentedStore records the outcome of every operation. A missing key
// on Get counts as a success.
type InstrumentedStore struct {
	Store
	metrics ports.MetricsCollector
}

func NewInstrumentedStore(store Store, metrics ports.MetricsCollector) *InstrumentedStore {
	return &InstrumentedStore{Store: store, metrics: metrics}
}

func (s *InstrumentedStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.Store.Get(ctx, key)
	s.metrics.RecordStoreOperation(ctx, "get", err == nil || errors.IsNotFoundError(err))
	return value, err
}

func (s *InstrumentedStore) Set(ctx context.Context, key string, value []byte) error {
	err := s.Store.Set(ctx, key, value)
	s.metrics.RecordStoreOperation(ctx, "set", err == nil)
	return err
}

func (s *InstrumentedStore) Delete(ctx context.Context, key string) error {
	err := s.Store.Delete(ctx, key)
	s.metrics.RecordStoreOperation(ctx, "delete", err == nil)
	return err
}

func (s *InstrumentedStore) Exists(ctx context.Context, key string) (bool, error) {
	ok, err := s.Store.Exists(ctx, key)
	s.metrics.RecordStoreOperation(ctx, "exists", err == nil)
	return ok, err
}
