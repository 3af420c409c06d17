package github

import (
	"context"
	"fmt"
	"sync"
	"time"

	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/readmegen-cli/internal/core/domain"
	"github.com/custodia-labs/readmegen-cli/internal/core/ports/driven"
	"github.com/custodia-labs/readmegen-cli/internal/logger"
)

// Ensure Fetcher implements the interface.
var _ driven.RepositoryFetcher = (*Fetcher)(nil)

// Fetcher retrieves repository metadata from GitHub and normalises it into
// a domain record. The repository record itself is mandatory; languages,
// the root listing and the dependency manifest are optional sub-resources
// whose absence yields empty fields, not errors.
type Fetcher struct {
	client *Client
}

// NewFetcher creates a metadata fetcher backed by the given client.
func NewFetcher(client *Client) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch resolves all metadata for ref. The languages and root-listing
// calls are independent and run concurrently once the repository record
// has been fetched.
func (f *Fetcher) Fetch(ctx context.Context, ref domain.RepoRef) (*domain.RepositoryRecord, error) {
	repository, err := f.client.GetRepository(ctx, ref.Owner, ref.Name)
	if err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrRepoNotFound, ref)
		}
		return nil, err
	}

	var (
		wg        sync.WaitGroup
		languages map[string]int
		listing   []*gh.RepositoryContent
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		langs, err := f.client.ListLanguages(ctx, ref.Owner, ref.Name)
		if err != nil {
			logger.Warn("github: listing languages for %s failed: %v", ref, err)
			return
		}
		languages = langs
	}()
	go func() {
		defer wg.Done()
		contents, err := f.client.ListRootContents(ctx, ref.Owner, ref.Name)
		if err != nil {
			logger.Warn("github: listing root contents for %s failed: %v", ref, err)
			return
		}
		listing = contents
	}()
	wg.Wait()

	record := buildRecord(ref, repository, languages, listing)

	// The manifest fetch depends on the listing, so it runs after.
	if hasRootFile(listing, ManifestFileName) {
		f.attachManifest(ctx, ref, record)
	}

	record.FetchedAt = time.Now().UTC()
	return record, nil
}

// attachManifest fetches and parses package.json into the record.
// Failures degrade to an empty manifest.
func (f *Fetcher) attachManifest(ctx context.Context, ref domain.RepoRef, record *domain.RepositoryRecord) {
	raw, err := f.client.GetFileContent(ctx, ref.Owner, ref.Name, ManifestFileName)
	if err != nil {
		logger.Warn("github: fetching %s for %s failed: %v", ManifestFileName, ref, err)
		return
	}

	m, err := parseManifest([]byte(raw))
	if err != nil {
		logger.Warn("github: %v", err)
		return
	}

	record.Dependencies = m.Dependencies
	record.DevDependencies = m.DevDependencies
	record.Scripts = m.Scripts
}

// buildRecord normalises API responses into a domain record.
func buildRecord(
	ref domain.RepoRef,
	repository *gh.Repository,
	languages map[string]int,
	listing []*gh.RepositoryContent,
) *domain.RepositoryRecord {
	record := &domain.RepositoryRecord{
		Name:               repository.GetName(),
		Description:        repository.GetDescription(),
		OwnerLogin:         ref.Owner,
		CanonicalURL:       repository.GetHTMLURL(),
		PrimaryLanguage:    repository.GetLanguage(),
		LanguageByteCounts: make(map[string]int64, len(languages)),
		StarCount:          repository.GetStargazersCount(),
		ForkCount:          repository.GetForksCount(),
		Topics:             repository.Topics,
		FileEntries:        make([]domain.FileEntry, 0, len(listing)),
		Dependencies:       map[string]string{},
		DevDependencies:    map[string]string{},
		Scripts:            map[string]string{},
	}

	if record.Name == "" {
		record.Name = ref.Name
	}
	if owner := repository.GetOwner().GetLogin(); owner != "" {
		record.OwnerLogin = owner
	}
	if record.CanonicalURL == "" {
		record.CanonicalURL = "https://github.com/" + ref.String()
	}

	if license := repository.GetLicense(); license != nil {
		record.HasLicense = true
		record.LicenseName = license.GetName()
	}

	for lang, bytes := range languages {
		record.LanguageByteCounts[lang] = int64(bytes)
	}

	for _, entry := range listing {
		kind := domain.FileKindFile
		if entry.GetType() == "dir" {
			kind = domain.FileKindDirectory
		}
		record.FileEntries = append(record.FileEntries, domain.FileEntry{
			Name: entry.GetName(),
			Kind: kind,
			Path: entry.GetPath(),
		})
	}

	return record
}

// hasRootFile reports whether the listing contains a file with the name.
func hasRootFile(listing []*gh.RepositoryContent, name string) bool {
	for _, entry := range listing {
		if entry.GetName() == name && entry.GetType() == "file" {
			return true
		}
	}
	return false
}
