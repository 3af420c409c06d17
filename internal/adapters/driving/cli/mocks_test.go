package cli

import (
	"context"
	"testing"
	"time"

	"github.com/custodia-labs/readmegen-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/readmegen-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/readmegen-cli/internal/core/domain"
	"github.com/custodia-labs/readmegen-cli/internal/core/services"
)

// mockProfiler returns a canned profile for any reference.
type mockProfiler struct {
	profile *domain.RepositoryProfile
	err     error
}

func (m *mockProfiler) Analyze(_ context.Context, _ domain.RepoRef) (*domain.RepositoryProfile, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.profile, nil
}

func (m *mockProfiler) BuildProfile(_ *domain.RepositoryRecord) (*domain.RepositoryProfile, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.profile, nil
}

func testProfile() *domain.RepositoryProfile {
	return &domain.RepositoryProfile{
		Name:            "demo",
		Description:     "A demo repository",
		OwnerLogin:      "acme",
		CanonicalURL:    "https://github.com/acme/demo",
		PrimaryLanguage: "TypeScript",
		LanguageByteCounts: map[string]int64{
			"TypeScript": 9000,
			"CSS":        100,
		},
		StarCount:       42,
		ForkCount:       7,
		HasLicense:      true,
		LicenseName:     "MIT License",
		Dependencies:    map[string]string{"react": "^18.0.0"},
		DevDependencies: map[string]string{"jest": "^29.0.0"},
		Scripts:         map[string]string{"test": "jest"},
		Capabilities: []domain.Capability{
			domain.CapabilityReactApp,
			domain.CapabilityUnitTesting,
		},
	}
}

// setupTestServices wires mock services into the command tree and returns
// a cleanup that restores the uninitialised state.
func setupTestServices(t *testing.T) func() {
	t.Helper()

	store, err := file.NewConfigStore(t.TempDir())
	if err != nil {
		t.Fatalf("creating config store: %v", err)
	}

	cache := memory.NewRecordCache()
	if putErr := cache.Put(context.Background(),
		domain.RepoRef{Owner: "acme", Name: "demo"},
		&domain.RepositoryRecord{Name: "demo", FetchedAt: time.Now().UTC()},
	); putErr != nil {
		t.Fatalf("seeding cache: %v", putErr)
	}

	SetServices(Services{
		Profiler:    &mockProfiler{profile: testProfile()},
		Generator:   services.NewGenerator(),
		ConfigStore: store,
		RecordCache: cache,
	})

	return func() {
		SetServices(Services{})
		resetGenerateFlags()
	}
}

// resetGenerateFlags restores generate's package-level flag state so tests
// do not leak settings into each other.
func resetGenerateFlags() {
	generateTemplate = string(domain.TemplateStandard)
	generateOutput = ""
	generateFormat = "markdown"
	generateCopy = false
	generateStdout = false
	generateRefresh = false
	analyzeJSON = false
}
