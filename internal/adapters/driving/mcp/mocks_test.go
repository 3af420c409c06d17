package mcp

import (
	"context"

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
		OwnerLogin:      "acme",
		Description:     "A demo repository",
		CanonicalURL:    "https://github.com/acme/demo",
		PrimaryLanguage: "TypeScript",
		LanguageByteCounts: map[string]int64{
			"TypeScript": 9000,
		},
		StarCount:   42,
		ForkCount:   7,
		HasLicense:  true,
		LicenseName: "MIT License",
		Capabilities: []domain.Capability{
			domain.CapabilityReactApp,
		},
	}
}

func testPorts() *Ports {
	return &Ports{
		Profiler:  &mockProfiler{profile: testProfile()},
		Generator: services.NewGenerator(),
	}
}
