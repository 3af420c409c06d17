package domain

import (
	"fmt"
	"strings"
	"time"
)

// RepoRef identifies a repository by owner and name.
type RepoRef struct {
	Owner string
	Name  string
}

// String returns the "owner/name" form.
func (r RepoRef) String() string {
	return r.Owner + "/" + r.Name
}

// ParseRepoRef resolves a repository reference from user input. Accepted
// forms are a full GitHub URL (https://github.com/owner/repo, with optional
// .git suffix or trailing path) or a bare "owner/repo" pair.
func ParseRepoRef(input string) (RepoRef, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return RepoRef{}, fmt.Errorf("%w: empty reference", ErrInvalidRepoRef)
	}

	// Strip scheme and host for URL forms.
	if idx := strings.Index(s, "github.com/"); idx >= 0 {
		s = s[idx+len("github.com/"):]
	}
	s = strings.TrimPrefix(s, "/")

	parts := strings.Split(s, "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return RepoRef{}, fmt.Errorf("%w: %q", ErrInvalidRepoRef, input)
	}

	name := strings.TrimSuffix(parts[1], ".git")
	if name == "" {
		return RepoRef{}, fmt.Errorf("%w: %q", ErrInvalidRepoRef, input)
	}

	return RepoRef{Owner: parts[0], Name: name}, nil
}

// RepositoryRecord is the raw, normalised result of the metadata fetch.
// It is the profiler's input contract: optional sub-resources that were
// absent upstream are represented as empty fields, never as errors.
type RepositoryRecord struct {
	Name            string
	Description     string
	OwnerLogin      string
	CanonicalURL    string
	PrimaryLanguage string

	LanguageByteCounts map[string]int64

	StarCount int
	ForkCount int

	Topics []string

	HasLicense  bool
	LicenseName string

	// FileEntries is the shallow root listing (one level, no recursion).
	FileEntries []FileEntry

	// Dependency manifest contents. All empty when no manifest exists.
	Dependencies    map[string]string
	DevDependencies map[string]string
	Scripts         map[string]string

	// FetchedAt records when the metadata was retrieved. Used by caching
	// layers only; it never influences generated output.
	FetchedAt time.Time
}
