package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/readmegen-cli/internal/core/domain"
	"github.com/custodia-labs/readmegen-cli/internal/core/ports/driven"
	"github.com/custodia-labs/readmegen-cli/internal/core/ports/driving"
	"github.com/custodia-labs/readmegen-cli/internal/logger"
)

// Ensure Profiler implements the interface.
var _ driving.ProfilerService = (*Profiler)(nil)

// DefaultCacheTTL is how long a cached repository record stays fresh.
const DefaultCacheTTL = 15 * time.Minute

// Profiler normalises fetched repository metadata into immutable profiles
// and derives the capability set.
type Profiler struct {
	fetcher  driven.RepositoryFetcher
	cache    driven.RecordCache
	cacheTTL time.Duration
}

// NewProfiler creates a profiler. The cache is optional; pass nil to fetch
// on every call. A non-positive ttl falls back to DefaultCacheTTL.
func NewProfiler(fetcher driven.RepositoryFetcher, cache driven.RecordCache, ttl time.Duration) *Profiler {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Profiler{
		fetcher:  fetcher,
		cache:    cache,
		cacheTTL: ttl,
	}
}

// Analyze resolves the record for ref (from cache when fresh, otherwise via
// the fetcher) and builds its profile.
func (s *Profiler) Analyze(ctx context.Context, ref domain.RepoRef) (*domain.RepositoryProfile, error) {
	record, err := s.resolveRecord(ctx, ref)
	if err != nil {
		return nil, err
	}
	return s.BuildProfile(record)
}

func (s *Profiler) resolveRecord(ctx context.Context, ref domain.RepoRef) (*domain.RepositoryRecord, error) {
	if s.cache != nil {
		record, err := s.cache.Get(ctx, ref, s.cacheTTL)
		if err == nil {
			logger.Debug("profiler: cache hit for %s", ref)
			return record, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Warn("profiler: cache read failed for %s: %v", ref, err)
		}
	}

	if s.fetcher == nil {
		return nil, domain.ErrFetcherUnavailable
	}

	logger.Debug("profiler: fetching metadata for %s", ref)
	record, err := s.fetcher.Fetch(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", ref, err)
	}

	if s.cache != nil {
		if err := s.cache.Put(ctx, ref, record); err != nil {
			// Caching is best effort; generation must not depend on it.
			logger.Warn("profiler: cache write failed for %s: %v", ref, err)
		}
	}

	return record, nil
}

// BuildProfile computes the immutable profile for an already-fetched record.
// Capabilities are fully derivable from the record's other fields, so the
// same record always yields the same profile.
func (s *Profiler) BuildProfile(record *domain.RepositoryRecord) (*domain.RepositoryProfile, error) {
	if record == nil {
		return nil, fmt.Errorf("%w: nil repository record", domain.ErrInvalidInput)
	}

	profile := &domain.RepositoryProfile{
		Name:               record.Name,
		Description:        record.Description,
		OwnerLogin:         record.OwnerLogin,
		CanonicalURL:       record.CanonicalURL,
		PrimaryLanguage:    record.PrimaryLanguage,
		LanguageByteCounts: copyInt64Map(record.LanguageByteCounts),
		StarCount:          record.StarCount,
		ForkCount:          record.ForkCount,
		Topics:             copySlice(record.Topics),
		HasLicense:         record.HasLicense,
		FileEntries:        copySlice(record.FileEntries),
		Dependencies:       copyStringMap(record.Dependencies),
		DevDependencies:    copyStringMap(record.DevDependencies),
		Scripts:            copyStringMap(record.Scripts),
	}
	if record.HasLicense {
		profile.LicenseName = record.LicenseName
	}

	profile.Capabilities = DetectCapabilities(record)

	if err := profile.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("profiler: %s has %d capabilities", profile.Name, len(profile.Capabilities))
	return profile, nil
}

// copyStringMap returns a defensive copy, never nil.
func copyStringMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// copyInt64Map returns a defensive copy, never nil.
func copyInt64Map(m map[string]int64) map[string]int64 {
	out := make(map[string]int64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// copySlice returns a defensive copy, never nil.
func copySlice[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}
