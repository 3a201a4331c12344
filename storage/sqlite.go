package storage

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// kvEntry is one row of the kv_entries table
type kvEntry struct {
	Key   string `gorm:"column:entry_key;primaryKey;type:varchar(255)"`
	Value string `gorm:"column:entry_value;type:text;not null"`
}

func (kvEntry) TableName() string { return "kv_entries" }

// SQLiteStore keeps entries in a single SQLite table through gorm
type SQLiteStore struct {
	db *gorm.DB
}

// NewSQLiteStore opens the database at path and migrates the schema
// ":memory:" opens a private in-memory database
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, errors.New("storage: sqlite backend requires a path")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, errors.Wrap(err, "storage: create database directory")
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "storage: open sqlite")
	}

	// One connection keeps ":memory:" databases alive across calls
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, errors.Wrap(err, "storage: migrate kv_entries")
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(key string) (string, error) {
	var entry kvEntry
	err := s.db.Where("entry_key = ?", key).Take(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", errors.Wrapf(err, "storage: get %q", key)
	}
	return entry.Value, nil
}

func (s *SQLiteStore) Set(key, value string) error {
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"entry_value"}),
	}).Create(&kvEntry{Key: key, Value: value}).Error
	if err != nil {
		return errors.Wrapf(err, "storage: set %q", key)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.Wrap(err, "storage: sqlite handle")
	}
	return sqlDB.Close()
}
