package storage

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"meteorenard.app/internal/ports"
	"meteorenard.app/pkg/errors"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// PreferenceModel represents one stored key-value pair
type PreferenceModel struct {
	Key       string `gorm:"column:pref_key;primaryKey"`
	Value     []byte `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PreferenceModel) TableName() string {
	return "preferences"
}

// DatabaseStore implements KeyValueStore port on a single GORM table
type DatabaseStore struct {
	db *gorm.DB
}

// OpenDatabase connects with the configured driver and migrates the preferences table
func OpenDatabase(config ports.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch config.Driver {
	case DriverPostgres:
		dialector = postgres.Open(PostgresDSN(config))
	case DriverSQLite:
		path := config.Path
		if path == "" {
			path = "file::memory:?cache=shared"
		}
		dialector = sqlite.Open(path)
	default:
		return nil, errors.NewConfigurationError(fmt.Sprintf("unsupported database driver: %s", config.Driver), nil)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, errors.NewDatabaseError("failed to connect to database", err)
	}

	if err := db.AutoMigrate(&PreferenceModel{}); err != nil {
		return nil, errors.NewDatabaseError("failed to migrate preferences table", err)
	}
	return db, nil
}

// PostgresDSN builds a key/value connection string
func PostgresDSN(config ports.DatabaseConfig) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.Name, config.SSLMode)
}

// NewDatabaseStore creates a store over an open, migrated connection
func NewDatabaseStore(db *gorm.DB) (*DatabaseStore, error) {
	if db == nil {
		return nil, errors.NewConfigurationError("database connection cannot be nil", nil)
	}
	return &DatabaseStore{db: db}, nil
}

func (s *DatabaseStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("store key cannot be empty")
	}

	var model PreferenceModel
	result := s.db.WithContext(ctx).Where("pref_key = ?", key).First(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("key not found")
		}
		return nil, errors.NewDatabaseError("failed to read preference", result.Error)
	}
	return model.Value, nil
}

func (s *DatabaseStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errors.NewValidationError("store key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("store value cannot be nil")
	}

	model := PreferenceModel{Key: key, Value: value}
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "pref_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&model)
	if result.Error != nil {
		return errors.NewDatabaseError("failed to save preference", result.Error)
	}
	return nil
}

func (s *DatabaseStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("store key cannot be empty")
	}

	result := s.db.WithContext(ctx).Where("pref_key = ?", key).Delete(&PreferenceModel{})
	if result.Error != nil {
		return errors.NewDatabaseError("failed to delete preference", result.Error)
	}
	return nil
}

func (s *DatabaseStore) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("store key cannot be empty")
	}

	var count int64
	result := s.db.WithContext(ctx).Model(&PreferenceModel{}).Where("pref_key = ?", key).Count(&count)
	if result.Error != nil {
		return false, errors.NewDatabaseError("failed to check preference", result.Error)
	}
	return count > 0, nil
}

// Ping verifies database connectivity
func (s *DatabaseStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.NewDatabaseError("failed to get underlying database connection", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.NewDatabaseError("database ping failed", err)
	}
	return nil
}

func (s *DatabaseStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.NewDatabaseError("failed to get underlying database connection", err)
	}
	return sqlDB.Close()
}
