package github

import (
	"testing"

	gh "github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/readmegen-cli/internal/core/domain"
)

func TestBuildRecord_NormalisesFields(t *testing.T) {
	ref := domain.RepoRef{Owner: "acme", Name: "demo"}
	repository := &gh.Repository{
		Name:            gh.Ptr("demo"),
		Description:     gh.Ptr("A demo repository"),
		HTMLURL:         gh.Ptr("https://github.com/acme/demo"),
		Language:        gh.Ptr("TypeScript"),
		StargazersCount: gh.Ptr(42),
		ForksCount:      gh.Ptr(7),
		Topics:          []string{"web", "api"},
		Owner:           &gh.User{Login: gh.Ptr("acme")},
		License:         &gh.License{Name: gh.Ptr("MIT License")},
	}
	languages := map[string]int{"TypeScript": 9000, "CSS": 100}
	listing := []*gh.RepositoryContent{
		{Name: gh.Ptr(".github"), Type: gh.Ptr("dir"), Path: gh.Ptr(".github")},
		{Name: gh.Ptr("package.json"), Type: gh.Ptr("file"), Path: gh.Ptr("package.json")},
	}

	record := buildRecord(ref, repository, languages, listing)

	assert.Equal(t, "demo", record.Name)
	assert.Equal(t, "A demo repository", record.Description)
	assert.Equal(t, "acme", record.OwnerLogin)
	assert.Equal(t, "https://github.com/acme/demo", record.CanonicalURL)
	assert.Equal(t, "TypeScript", record.PrimaryLanguage)
	assert.Equal(t, int64(9000), record.LanguageByteCounts["TypeScript"])
	assert.Equal(t, 42, record.StarCount)
	assert.Equal(t, 7, record.ForkCount)
	assert.Equal(t, []string{"web", "api"}, record.Topics)
	assert.True(t, record.HasLicense)
	assert.Equal(t, "MIT License", record.LicenseName)

	require.Len(t, record.FileEntries, 2)
	assert.Equal(t, domain.FileKindDirectory, record.FileEntries[0].Kind)
	assert.Equal(t, domain.FileKindFile, record.FileEntries[1].Kind)
}

func TestBuildRecord_FallbacksForSparseResponse(t *testing.T) {
	ref := domain.RepoRef{Owner: "acme", Name: "demo"}

	record := buildRecord(ref, &gh.Repository{}, nil, nil)

	assert.Equal(t, "demo", record.Name)
	assert.Equal(t, "acme", record.OwnerLogin)
	assert.Equal(t, "https://github.com/acme/demo", record.CanonicalURL)
	assert.False(t, record.HasLicense)
	assert.Empty(t, record.LicenseName)

	// Optional sub-resources degrade to empty fields, never nil.
	assert.NotNil(t, record.LanguageByteCounts)
	assert.NotNil(t, record.FileEntries)
	assert.NotNil(t, record.Dependencies)
	assert.NotNil(t, record.DevDependencies)
	assert.NotNil(t, record.Scripts)
}

func TestHasRootFile(t *testing.T) {
	listing := []*gh.RepositoryContent{
		{Name: gh.Ptr("package.json"), Type: gh.Ptr("file")},
		{Name: gh.Ptr("docs"), Type: gh.Ptr("dir")},
	}

	assert.True(t, hasRootFile(listing, "package.json"))
	assert.False(t, hasRootFile(listing, "docs"))
	assert.False(t, hasRootFile(listing, "README.md"))
	assert.False(t, hasRootFile(nil, "package.json"))
}
