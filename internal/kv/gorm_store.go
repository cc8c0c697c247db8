package kv

import (
	"context"
	"errors"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sabur-pro/rayan-admin/config"
	"github.com/sabur-pro/rayan-admin/internal/logger"
)

// GormStore persists keys in a kv_entries table. The sqlite driver is the
// default for the single-user deployment; postgres is available for shared
// installs.
type GormStore struct {
	DB *gorm.DB
}

type kvEntry struct {
	Key   string `gorm:"type:varchar(100);primaryKey"`
	Value string `gorm:"type:text;not null"`
}

func (kvEntry) TableName() string {
	return "kv_entries"
}

func NewGormStore(cfg *config.Config) (*GormStore, error) {
	var dialector gorm.Dialector
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		dialector = sqlite.Open(cfg.Storage.SQLitePath)
	case config.BackendPostgres:
		dialector = postgres.Open(cfg.Storage.DSN)
	default:
		return nil, errors.New("gorm store requires sqlite or postgres backend")
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		logger.Error().
			Err(err).
			Str("backend", string(cfg.Storage.Backend)).
			Msg("Failed to open storage database")
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to access underlying database handle")
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.Storage.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Storage.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Storage.ConnMaxLifetime)

	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		logger.Error().Err(err).Msg("Failed to migrate kv_entries table")
		return nil, err
	}

	logger.Info().
		Str("backend", string(cfg.Storage.Backend)).
		Msg("Storage database ready")

	return &GormStore{DB: db}, nil
}

func (s *GormStore) Get(ctx context.Context, key string) (string, bool, error) {
	var entry kvEntry
	err := s.DB.WithContext(ctx).Where("key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

func (s *GormStore) Set(ctx context.Context, key, value string) error {
	entry := kvEntry{Key: key, Value: value}
	return s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&entry).Error
}

func (s *GormStore) Delete(ctx context.Context, key string) error {
	return s.DB.WithContext(ctx).Where("key = ?", key).Delete(&kvEntry{}).Error
}
