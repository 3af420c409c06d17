package driven

import (
	"context"
	"time"

	"github.com/custodia-labs/readmegen-cli/internal/core/domain"
)

// RecordCache stores fetched repository records so that switching templates
// does not refetch metadata. Generated documents are never persisted; only
// the raw fetch result is.
type RecordCache interface {
	// Get returns the cached record for ref if one exists and is younger
	// than maxAge. Returns domain.ErrNotFound when absent or stale.
	Get(ctx context.Context, ref domain.RepoRef, maxAge time.Duration) (*domain.RepositoryRecord, error)

	// Put stores or replaces the cached record for ref.
	Put(ctx context.Context, ref domain.RepoRef, record *domain.RepositoryRecord) error

	// Purge removes the cached record for ref if present.
	Purge(ctx context.Context, ref domain.RepoRef) error

	// Close releases underlying resources.
	Close() error
}
