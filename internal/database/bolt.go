// Package database provides data persistence using BoltDB.
package database

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/amaumene/gocatalog/internal/models"
	bolt "go.etcd.io/bbolt"
)

const (
	// Default database file permissions
	dbFileMode = 0600
	dbDirMode  = 0755

	// Default database filename
	defaultDBFile = "catalog.db"

	openTimeout = 2 * time.Second
)

var genresBucket = []byte("genres")

// Database defines the interface for data persistence operations.
type Database interface {
	// GetGenreSnapshot returns the stored snapshot for kind, or nil if none
	GetGenreSnapshot(kind models.MediaKind) (*models.GenreSnapshot, error)
	// StoreGenreSnapshot replaces the snapshot for its kind
	StoreGenreSnapshot(snapshot *models.GenreSnapshot) error
	ListGenreSnapshots() ([]models.GenreSnapshot, error)
	// DeleteStaleSnapshots removes snapshots fetched before now minus olderThan
	DeleteStaleSnapshots(olderThan time.Duration) (int, error)
	Close() error
}

// BoltDB implements the Database interface using BoltDB.
type BoltDB struct {
	db *bolt.DB
}

// boltGenreSnapshot is the stored form of a genre snapshot.
type boltGenreSnapshot struct {
	Kind      string      `json:"kind"`
	Genres    []boltGenre `json:"genres"`
	FetchedAt time.Time   `json:"fetched_at"`
}

type boltGenre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// NewBolt creates a new BoltDB database instance.
// If dbPath is empty, uses the default database file in current directory.
func NewBolt(dbPath string) (*BoltDB, error) {
	if dbPath == "" {
		dbPath = filepath.Join(".", defaultDBFile)
	}

	// Ensure database directory exists
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, dbDirMode); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := bolt.Open(dbPath, dbFileMode, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(genresBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create genres bucket: %w", err)
	}

	return &BoltDB{db: db}, nil
}

// Close closes the database connection.
func (b *BoltDB) Close() error {
	return b.db.Close()
}

// GetGenreSnapshot retrieves the genre snapshot for a media kind.
// Returns nil if not found, without error.
func (b *BoltDB) GetGenreSnapshot(kind models.MediaKind) (*models.GenreSnapshot, error) {
	var stored *boltGenreSnapshot
	err := b.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(genresBucket).Get([]byte(kind))
		if data == nil {
			return nil
		}
		stored = &boltGenreSnapshot{}
		return json.Unmarshal(data, stored)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get genre snapshot: %w", err)
	}
	if stored == nil {
		return nil, nil
	}

	snapshot := convertToSnapshot(stored)
	return &snapshot, nil
}

// StoreGenreSnapshot stores a genre snapshot keyed by its kind.
// A zero FetchedAt is stamped with the current time.
func (b *BoltDB) StoreGenreSnapshot(snapshot *models.GenreSnapshot) error {
	if snapshot == nil || snapshot.Kind == "" {
		return fmt.Errorf("genre snapshot requires a kind")
	}

	stored := boltGenreSnapshot{
		Kind:      string(snapshot.Kind),
		Genres:    make([]boltGenre, len(snapshot.Genres)),
		FetchedAt: snapshot.FetchedAt,
	}
	if stored.FetchedAt.IsZero() {
		stored.FetchedAt = time.Now()
	}
	for i, g := range snapshot.Genres {
		stored.Genres[i] = boltGenre{ID: g.ID, Name: g.Name}
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to encode genre snapshot: %w", err)
	}

	err = b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(genresBucket).Put([]byte(stored.Kind), data)
	})
	if err != nil {
		return fmt.Errorf("failed to store genre snapshot: %w", err)
	}

	return nil
}

// ListGenreSnapshots returns every stored snapshot ordered by kind.
func (b *BoltDB) ListGenreSnapshots() ([]models.GenreSnapshot, error) {
	var snapshots []models.GenreSnapshot
	err := b.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(genresBucket).ForEach(func(_, v []byte) error {
			var stored boltGenreSnapshot
			if err := json.Unmarshal(v, &stored); err != nil {
				return err
			}
			snapshots = append(snapshots, convertToSnapshot(&stored))
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list genre snapshots: %w", err)
	}

	sort.Slice(snapshots, func(i, j int) bool { return snapshots[i].Kind < snapshots[j].Kind })
	return snapshots, nil
}

// DeleteStaleSnapshots removes snapshots older than the given duration.
// Used primarily for cleanup operations.
func (b *BoltDB) DeleteStaleSnapshots(olderThan time.Duration) (int, error) {
	cutoffTime := time.Now().Add(-olderThan)
	deleted := 0

	err := b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(genresBucket)
		var stale [][]byte
		err := bucket.ForEach(func(k, v []byte) error {
			var stored boltGenreSnapshot
			if err := json.Unmarshal(v, &stored); err != nil {
				return err
			}
			if stored.FetchedAt.Before(cutoffTime) {
				stale = append(stale, append([]byte(nil), k...))
			}
			return nil
		})
		if err != nil {
			return err
		}
		// keys cannot be deleted while iterating with ForEach
		for _, k := range stale {
			if err := bucket.Delete(k); err != nil {
				return err
			}
			deleted++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale snapshots: %w", err)
	}

	return deleted, nil
}

// convertToSnapshot converts the stored form to models.GenreSnapshot.
func convertToSnapshot(stored *boltGenreSnapshot) models.GenreSnapshot {
	genres := make([]models.Genre, len(stored.Genres))
	for i, g := range stored.Genres {
		genres[i] = models.Genre{ID: g.ID, Name: g.Name}
	}
	return models.GenreSnapshot{
		Kind:      models.MediaKind(stored.Kind),
		Genres:    genres,
		FetchedAt: stored.FetchedAt,
	}
}
