package driven

import (
	"context"

	"github.com/custodia-labs/readmegen-cli/internal/core/domain"
)

// RepositoryFetcher retrieves raw repository metadata from an upstream
// source. It is the external fetch collaborator: the core's contract begins
// once a well-formed record exists, so transport, retries and pagination
// live behind this interface.
//
// Fetch must resolve every sub-resource it can (repository record,
// languages, root listing, dependency manifest) and represent missing
// optional sub-resources as empty fields on the record rather than failing.
type RepositoryFetcher interface {
	// Fetch returns the normalised metadata record for the repository.
	Fetch(ctx context.Context, ref domain.RepoRef) (*domain.RepositoryRecord, error)
}
