package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownTemplate indicates a template selector outside the fixed set.
	// This is caller misuse: the assembler rejects it before generating any
	// output rather than silently substituting a default.
	ErrUnknownTemplate = errors.New("unknown template")

	// ErrInvalidRepoRef indicates a repository reference that could not be
	// parsed into owner and name.
	ErrInvalidRepoRef = errors.New("invalid repository reference")

	// ErrFetcherUnavailable indicates no repository fetcher is configured.
	ErrFetcherUnavailable = errors.New("repository fetcher unavailable")

	// ErrRateLimited indicates the upstream API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
