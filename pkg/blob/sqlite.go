package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// StateBlob is the single-table schema backing the sqlite adapter.
type StateBlob struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     []byte    `gorm:"column:value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName pins the table the adapter owns.
func (StateBlob) TableName() string {
	return "state_blobs"
}

// SQLiteStore is the file-backed adapter, the closest analog to the
// browser's local storage: one namespaced row per persisted store.
type SQLiteStore struct {
	conn *gorm.DB
}

// NewSQLiteStore opens (or creates) the database at path and migrates
// the blob table.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	silent := gormlogger.New(
		log.New(io.Discard, "", log.LstdFlags),
		gormlogger.Config{LogLevel: gormlogger.Silent},
	)

	conn, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:                 silent,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite store: %w", err)
	}
	if err := conn.AutoMigrate(&StateBlob{}); err != nil {
		return nil, fmt.Errorf("migrating state blobs: %w", err)
	}
	return &SQLiteStore{conn: conn}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var row StateBlob
	err := s.conn.WithContext(ctx).First(&row, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return row.Value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	row := StateBlob{Key: key, Value: value}
	return s.conn.WithContext(ctx).Save(&row).Error
}

func (s *SQLiteStore) Del(ctx context.Context, key string) error {
	return s.conn.WithContext(ctx).Delete(&StateBlob{}, "key = ?", key).Error
}

// Close releases the underlying connection.
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
