// Package gormkv provides a SQLite-backed implementation of the KV medium.
package gormkv

import (
	"errors"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Record is a single key-value row.
type Record struct {
	Key   string `gorm:"primarykey;size:255"`
	Value string
}

// TableName returns the table name for Record.
func (Record) TableName() string {
	return "collections"
}

// Store implements domain.KV using a SQLite database.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the SQLite database at path and migrates the
// key-value table.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("migrate kv table: %w", err)
	}
	return &Store{db: db}, nil
}

// NewWithDB creates a Store over an existing gorm DB. Useful for testing.
func NewWithDB(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Available reports whether the database handle is usable.
func (s *Store) Available() bool {
	return s != nil && s.db != nil
}

// Get returns the stored value for key, and whether it was present.
func (s *Store) Get(key string) (string, bool, error) {
	var rec Record
	if err := s.db.First(&rec, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read value: %w", err)
	}
	return rec.Value, true, nil
}

// Set stores value under key, replacing any prior value.
func (s *Store) Set(key, value string) error {
	rec := Record{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("write value: %w", err)
	}
	return nil
}

// Ensure Store implements KV.
var _ domain.KV = (*Store)(nil)
