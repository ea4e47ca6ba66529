package storage

import (
	"context"
	"fmt"

	"meteorenard.app/internal/ports"
	"meteorenard.app/pkg/errors"
)

const (
	StoreTypeMemory   = "memory"
	StoreTypeRedis    = "redis"
	StoreTypeDatabase = "database"
)

// Store is a KeyValueStore backend that owns a connection
type Store interface {
	ports.KeyValueStore
	Ping(ctx context.Context) error
	Close() error
}

// NewStore builds the backend selected by config.Type
func NewStore(config *ports.StoreConfig) (Store, error) {
	if config == nil {
		return nil, errors.NewConfigurationError("store config cannot be nil", nil)
	}

	switch config.Type {
	case StoreTypeMemory:
		return NewMemoryStore(), nil
	case StoreTypeRedis:
		store, err := NewRedisStore(&config.Redis)
		if err != nil {
			return nil, err
		}
		return store, nil
	case StoreTypeDatabase:
		db, err := OpenDatabase(config.Database)
		if err != nil {
			return nil, err
		}
		return &DatabaseStore{db: db}, nil
	default:
		return nil, errors.NewConfigurationError(fmt.Sprintf("unsupported store type: %s", config.Type), nil)
	}
}
