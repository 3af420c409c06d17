// Package memory provides an in-memory record cache, mainly for tests;
// nothing survives process exit.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/custodia-labs/readmegen-cli/internal/core/domain"
	"github.com/custodia-labs/readmegen-cli/internal/core/ports/driven"
)

// Ensure RecordCache implements the interface.
var _ driven.RecordCache = (*RecordCache)(nil)

// RecordCache is a thread-safe in-memory implementation of driven.RecordCache.
type RecordCache struct {
	mu      sync.RWMutex
	records map[string]*domain.RepositoryRecord
}

// NewRecordCache creates an empty in-memory record cache.
func NewRecordCache() *RecordCache {
	return &RecordCache{
		records: make(map[string]*domain.RepositoryRecord),
	}
}

// Get returns the cached record for ref if present and younger than maxAge.
func (c *RecordCache) Get(_ context.Context, ref domain.RepoRef, maxAge time.Duration) (*domain.RepositoryRecord, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	record, ok := c.records[ref.String()]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if maxAge > 0 && time.Since(record.FetchedAt) > maxAge {
		return nil, domain.ErrNotFound
	}

	copied := *record
	return &copied, nil
}

// Put stores or replaces the cached record for ref.
func (c *RecordCache) Put(_ context.Context, ref domain.RepoRef, record *domain.RepositoryRecord) error {
	if record == nil {
		return domain.ErrInvalidInput
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	copied := *record
	c.records[ref.String()] = &copied
	return nil
}

// Purge removes the cached record for ref if present.
func (c *RecordCache) Purge(_ context.Context, ref domain.RepoRef) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.records, ref.String())
	return nil
}

// Close is a no-op for the in-memory cache.
func (c *RecordCache) Close() error {
	return nil
}
