package services

import (
	"sync"
	"time"

	"github.com/amaumene/gocatalog/internal/cache"
	"github.com/amaumene/gocatalog/internal/constants"
	"github.com/amaumene/gocatalog/pkg/logger"
)

// snapshotPruner is the part of database.Database the cleanup uses.
type snapshotPruner interface {
	DeleteStaleSnapshots(olderThan time.Duration) (int, error)
}

// CleanupService removes expired cache entries and genre snapshots that
// are too old to serve as a fallback.
type CleanupService struct {
	cache           *cache.LRUCache
	db              snapshotPruner
	logger          logger.Logger
	retentionPeriod time.Duration
	mu              sync.Mutex
}

// NewCleanupService creates a new cleanup service. Either store may be nil.
func NewCleanupService(c *cache.LRUCache, db snapshotPruner, log logger.Logger) *CleanupService {
	return &CleanupService{
		cache:           c,
		db:              db,
		logger:          log,
		retentionPeriod: constants.GenreSnapshotRetention,
	}
}

// SetRetentionPeriod sets how long to keep genre snapshots
func (c *CleanupService) SetRetentionPeriod(duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.retentionPeriod = duration
}

// CleanupNow performs one cleanup pass and reports what it removed.
func (c *CleanupService) CleanupNow() (cacheEntries, snapshots int) {
	c.mu.Lock()
	retention := c.retentionPeriod
	c.mu.Unlock()

	if c.cache != nil {
		cacheEntries = c.cache.CleanExpired()
	}

	if c.db != nil {
		deleted, err := c.db.DeleteStaleSnapshots(retention)
		if err != nil {
			c.logger.Errorf("[Cleanup] failed to prune genre snapshots: %v", err)
		}
		snapshots = deleted
	}

	if cacheEntries > 0 || snapshots > 0 {
		c.logger.Infof("[Cleanup] removed %d expired cache entries and %d stale snapshots", cacheEntries, snapshots)
	} else {
		c.logger.Debugf("[Cleanup] nothing to clean up")
	}
	return cacheEntries, snapshots
}
