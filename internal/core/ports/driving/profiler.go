package driving

import (
	"context"

	"github.com/custodia-labs/readmegen-cli/internal/core/domain"
)

// ProfilerService turns repository references into analysed profiles.
type ProfilerService interface {
	// Analyze fetches metadata for ref (through the cache when one is
	// configured) and builds the repository profile.
	Analyze(ctx context.Context, ref domain.RepoRef) (*domain.RepositoryProfile, error)

	// BuildProfile computes a profile from an already-fetched record.
	// It is pure: the same record always yields the same profile.
	BuildProfile(record *domain.RepositoryRecord) (*domain.RepositoryProfile, error)
}
