package storage

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"meteorenard.app/internal/mocks"
	"meteorenard.app/internal/ports"
	"meteorenard.app/pkg/errors"
)

// exerciseStore runs the behaviour every backend shares
func exerciseStore(t *testing.T, store ports.KeyValueStore) {
	t.Helper()
	ctx := context.Background()
	key := "meteorenard_current_location"

	t.Run("MissingKeyIsNotFound", func(t *testing.T) {
		_, err := store.Get(ctx, key)
		assert.True(t, errors.IsNotFoundError(err))

		exists, err := store.Exists(ctx, key)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("SetAndGet", func(t *testing.T) {
		value := []byte(`{"name":"Montréal","latitude":45.5017,"longitude":-73.5673}`)
		require.NoError(t, store.Set(ctx, key, value))

		got, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, value, got)

		exists, err := store.Exists(ctx, key)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, key, []byte(`first`)))
		require.NoError(t, store.Set(ctx, key, []byte(`second`)))

		got, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, []byte(`second`), got)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, key, []byte(`x`)))
		require.NoError(t, store.Delete(ctx, key))
		require.NoError(t, store.Delete(ctx, key), "deleting a missing key is not an error")

		_, err := store.Get(ctx, key)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("InvalidArguments", func(t *testing.T) {
		_, err := store.Get(ctx, "")
		assert.True(t, errors.IsValidationError(err))
		assert.True(t, errors.IsValidationError(store.Set(ctx, "", []byte("x"))))
		assert.True(t, errors.IsValidationError(store.Set(ctx, key, nil)))
		assert.True(t, errors.IsValidationError(store.Delete(ctx, "")))
		_, err = store.Exists(ctx, "")
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	exerciseStore(t, store)

	t.Run("ValuesAreCopied", func(t *testing.T) {
		ctx := context.Background()
		value := []byte("true")
		require.NoError(t, store.Set(ctx, "flag", value))
		value[0] = 'X'

		got, err := store.Get(ctx, "flag")
		require.NoError(t, err)
		assert.Equal(t, "true", string(got))
	})

	assert.NoError(t, store.Ping(context.Background()))
	assert.NoError(t, store.Close())
}

// setupMockRedis creates a mock Redis server for testing
func setupMockRedis(t *testing.T) (*miniredis.Miniredis, *ports.RedisConfig) {
	t.Helper()

	mockRedis := miniredis.RunT(t)
	return mockRedis, &ports.RedisConfig{
		Addr:         mockRedis.Addr(),
		KeyPrefix:    "test:",
		DialTimeout:  5,
		ReadTimeout:  3,
		WriteTimeout: 3,
	}
}

func TestRedisStore(t *testing.T) {
	mockRedis, config := setupMockRedis(t)

	store, err := NewRedisStore(config)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	exerciseStore(t, store)

	t.Run("KeysArePrefixedAndPersistent", func(t *testing.T) {
		require.NoError(t, store.Set(context.Background(), "meteorenard_preschool_mode", []byte("true")))
		assert.True(t, mockRedis.Exists("test:meteorenard_preschool_mode"))
		assert.Zero(t, mockRedis.TTL("test:meteorenard_preschool_mode"))
	})

	t.Run("ServerDown", func(t *testing.T) {
		mockRedis.SetError("ERR server unavailable")
		defer mockRedis.SetError("")

		_, err := store.Get(context.Background(), "anything")
		assert.True(t, errors.IsStorageError(err))
		assert.True(t, errors.IsStorageError(store.Ping(context.Background())))
	})
}

func TestNewRedisStore_Errors(t *testing.T) {
	_, err := NewRedisStore(nil)
	assert.True(t, errors.IsConfigurationError(err))

	_, err = NewRedisStore(&ports.RedisConfig{Addr: "invalid:address:port", DialTimeout: 1, ReadTimeout: 1, WriteTimeout: 1})
	assert.True(t, errors.IsStorageError(err))
}

func setupTestDB(t *testing.T) *DatabaseStore {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := OpenDatabase(ports.DatabaseConfig{
		Driver: DriverSQLite,
		Path:   fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
	})
	require.NoError(t, err)

	store, err := NewDatabaseStore(db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestDatabaseStore(t *testing.T) {
	store := setupTestDB(t)
	exerciseStore(t, store)
	assert.NoError(t, store.Ping(context.Background()))

	t.Run("OneRowPerKey", func(t *testing.T) {
		ctx := context.Background()
		require.NoError(t, store.Set(ctx, "k", []byte("1")))
		require.NoError(t, store.Set(ctx, "k", []byte("2")))

		var count int64
		require.NoError(t, store.db.Model(&PreferenceModel{}).Where("pref_key = ?", "k").Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}

func TestOpenDatabase_UnsupportedDriver(t *testing.T) {
	_, err := OpenDatabase(ports.DatabaseConfig{Driver: "mysql"})
	assert.True(t, errors.IsConfigurationError(err))

	_, err = NewDatabaseStore(nil)
	assert.True(t, errors.IsConfigurationError(err))
}

func TestPostgresDSN(t *testing.T) {
	dsn := PostgresDSN(ports.DatabaseConfig{
		Host: "localhost", Port: 5432, User: "renard", Password: "secret", Name: "meteo", SSLMode: "disable",
	})
	assert.Equal(t, "host=localhost port=5432 user=renard password=secret dbname=meteo sslmode=disable", dsn)
}

func TestNewStore(t *testing.T) {
	_, redisConfig := setupMockRedis(t)

	tests := []struct {
		name         string
		config       *ports.StoreConfig
		expectError  bool
		expectedType interface{}
	}{
		{name: "NilConfig", expectError: true},
		{name: "Memory", config: &ports.StoreConfig{Type: StoreTypeMemory}, expectedType: &MemoryStore{}},
		{name: "Redis", config: &ports.StoreConfig{Type: StoreTypeRedis, Redis: *redisConfig}, expectedType: &RedisStore{}},
		{
			name:         "Database",
			config:       &ports.StoreConfig{Type: StoreTypeDatabase, Database: ports.DatabaseConfig{Driver: DriverSQLite, Path: "file:factory?mode=memory&cache=shared"}},
			expectedType: &DatabaseStore{},
		},
		{name: "Unknown", config: &ports.StoreConfig{Type: "etcd"}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewStore(tt.config)
			if tt.expectError {
				assert.True(t, errors.IsConfigurationError(err))
				assert.Nil(t, store)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.expectedType, store)
			assert.NoError(t, store.Close())
		})
	}
}

func TestInstrumentedStore(t *testing.T) {
	metrics := mocks.NewMetricsCollector(t)
	store := NewInstrumentedStore(NewMemoryStore(), metrics)
	ctx := context.Background()

	metrics.EXPECT().RecordStoreOperation(mock.Anything, "get", true).Twice()
	metrics.EXPECT().RecordStoreOperation(mock.Anything, "set", true).Once()
	metrics.EXPECT().RecordStoreOperation(mock.Anything, "set", false).Once()
	metrics.EXPECT().RecordStoreOperation(mock.Anything, "exists", true).Once()
	metrics.EXPECT().RecordStoreOperation(mock.Anything, "delete", true).Once()

	_, err := store.Get(ctx, "missing")
	assert.True(t, errors.IsNotFoundError(err))
	require.NoError(t, store.Set(ctx, "k", []byte("v")))
	assert.Error(t, store.Set(ctx, "", []byte("v")))
	_, err = store.Get(ctx, "k")
	require.NoError(t, err)
	ok, err := store.Exists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, store.Delete(ctx, "k"))
	assert.NoError(t, store.Ping(ctx))
}
