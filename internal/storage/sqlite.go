// Package storage persists generated share quotes to a local SQLite file.
// The store is optional: batch runs work identically without one.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Summary is one recorded share-quote result.
type Summary struct {
	ID          string `gorm:"primaryKey;type:varchar(36)"`
	SongID      string `gorm:"index:idx_song_id"`
	SongName    string
	SummaryText string
	Score       float64
	Status      string
	CreatedAt   time.Time
}

// Store wraps the SQLite summary database.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the summary database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating db dir: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sql.DB from gorm: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&Summary{}); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Save records one result row and returns its generated id.
func (s *Store) Save(songID, songName, summaryText string, score float64, status string) (string, error) {
	row := Summary{
		ID:          uuid.NewString(),
		SongID:      songID,
		SongName:    songName,
		SummaryText: summaryText,
		Score:       score,
		Status:      status,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return "", fmt.Errorf("saving summary for %s: %w", songID, err)
	}
	return row.ID, nil
}

// BySongID returns the most recent summary recorded for a song, or nil
// when none exists.
func (s *Store) BySongID(songID string) (*Summary, error) {
	var row Summary
	err := s.db.Where("song_id = ?", songID).Order("created_at desc").First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying summary for %s: %w", songID, err)
	}
	return &row, nil
}

// List returns up to limit summaries, newest first. limit <= 0 means all.
func (s *Store) List(limit int) ([]Summary, error) {
	q := s.db.Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []Summary
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing summaries: %w", err)
	}
	return rows, nil
}

// DeleteBySongID removes every summary recorded for a song.
func (s *Store) DeleteBySongID(songID string) error {
	if err := s.db.Where("song_id = ?", songID).Delete(&Summary{}).Error; err != nil {
		return fmt.Errorf("deleting summaries for %s: %w", songID, err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
