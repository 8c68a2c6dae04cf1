// Package storage is the durable key-value layer behind the cart and the
// checkout session. Each browser session owns two records, mirroring the two
// local-storage keys the web front end relies on.
package storage

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Fixed storage keys. They must stay stable across reloads and releases.
const (
	CartKey     = "doce-encanto-cart"
	CheckoutKey = "doce-encanto-checkout"
)

// Record is one durable key-value entry scoped to a session.
type Record struct {
	ID        uint   `gorm:"primary_key"`
	SessionID string `gorm:"index"`
	Key       string `gorm:"index"`
	Payload   string `gorm:"type:text"`
	UpdatedAt time.Time
}

// Store wraps the sqlite database holding session records.
type Store struct {
	db *gorm.DB
}

// Open connects to the sqlite database at path and runs migrations.
func Open(path string) (*Store, error) {
	db, err := gorm.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	if err := db.AutoMigrate(&Record{}).Error; err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get loads the payload stored under key for the session. A missing record
// returns ok=false; read failures are treated the same way so callers can
// always fall back to a default.
func (s *Store) Get(sessionID, key string) (payload string, ok bool) {
	var rec Record
	err := s.db.Where("session_id = ? AND key = ?", sessionID, key).First(&rec).Error
	if err != nil {
		return "", false
	}
	return rec.Payload, true
}

// Put overwrites the payload stored under key for the session, creating the
// record on first write.
func (s *Store) Put(sessionID, key, payload string) error {
	var rec Record
	err := s.db.Where("session_id = ? AND key = ?", sessionID, key).First(&rec).Error
	if gorm.IsRecordNotFoundError(err) {
		rec = Record{SessionID: sessionID, Key: key, Payload: payload}
		return s.db.Create(&rec).Error
	}
	if err != nil {
		return err
	}
	rec.Payload = payload
	return s.db.Save(&rec).Error
}

// Delete removes the record stored under key for the session, if any.
func (s *Store) Delete(sessionID, key string) error {
	return s.db.Where("session_id = ? AND key = ?", sessionID, key).Delete(&Record{}).Error
}
