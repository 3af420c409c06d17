package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/readmegen-cli/internal/core/domain"
)

func TestDetectCapabilities_NilRecord(t *testing.T) {
	got := DetectCapabilities(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDetectCapabilities_Frameworks(t *testing.T) {
	record := &domain.RepositoryRecord{
		Name: "app",
		Dependencies: map[string]string{
			"react":   "^18.0.0",
			"express": "^4.18.0",
		},
		DevDependencies: map[string]string{
			"typescript": "^5.0.0",
		},
	}

	got := DetectCapabilities(record)

	assert.Equal(t, []domain.Capability{
		domain.CapabilityReactApp,
		domain.CapabilityExpressServer,
		domain.CapabilityTypeScript,
	}, got)
}

func TestDetectCapabilities_DependencySectionDoesNotMatter(t *testing.T) {
	// Framework rules match either dependency map.
	inDev := &domain.RepositoryRecord{
		Name:            "app",
		DevDependencies: map[string]string{"vue": "^3.0.0"},
	}
	inDeps := &domain.RepositoryRecord{
		Name:         "app",
		Dependencies: map[string]string{"vue": "^3.0.0"},
	}

	assert.Equal(t, DetectCapabilities(inDeps), DetectCapabilities(inDev))
	assert.Contains(t, DetectCapabilities(inDev), domain.CapabilityVueApp)
}

func TestDetectCapabilities_ExactPackageNamesOnly(t *testing.T) {
	record := &domain.RepositoryRecord{
		Name: "app",
		Dependencies: map[string]string{
			"react-dom":     "^18.0.0",
			"@angular/core": "^17.0.0",
			"next-auth":     "^4.0.0",
		},
	}

	assert.Empty(t, DetectCapabilities(record))
}

func TestDetectCapabilities_TestTooling(t *testing.T) {
	tests := []struct {
		name    string
		devDeps map[string]string
		want    []domain.Capability
	}{
		{"jest", map[string]string{"jest": "^29.0.0"}, []domain.Capability{domain.CapabilityUnitTesting}},
		{"vitest", map[string]string{"vitest": "^1.0.0"}, []domain.Capability{domain.CapabilityUnitTesting}},
		{"mocha", map[string]string{"mocha": "^10.0.0"}, []domain.Capability{domain.CapabilityUnitTesting}},
		{"cypress", map[string]string{"cypress": "^13.0.0"}, []domain.Capability{domain.CapabilityE2ETesting}},
		{"playwright", map[string]string{"playwright": "^1.40.0"}, []domain.Capability{domain.CapabilityE2ETesting}},
		{"both kinds", map[string]string{"jest": "1", "cypress": "1"},
			[]domain.Capability{domain.CapabilityUnitTesting, domain.CapabilityE2ETesting}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := &domain.RepositoryRecord{Name: "app", DevDependencies: tt.devDeps}
			assert.Equal(t, tt.want, DetectCapabilities(record))
		})
	}
}

func TestDetectCapabilities_TestPackagesMustBeDevDependencies(t *testing.T) {
	record := &domain.RepositoryRecord{
		Name:         "app",
		Dependencies: map[string]string{"jest": "^29.0.0", "cypress": "^13.0.0"},
	}

	assert.Empty(t, DetectCapabilities(record))
}

func TestDetectCapabilities_BuildTooling(t *testing.T) {
	record := &domain.RepositoryRecord{
		Name: "app",
		DevDependencies: map[string]string{
			"vite":     "^5.0.0",
			"eslint":   "^8.0.0",
			"prettier": "^3.0.0",
		},
	}

	got := DetectCapabilities(record)

	assert.Equal(t, []domain.Capability{
		domain.CapabilityModernBuild,
		domain.CapabilityLinting,
		domain.CapabilityFormatting,
	}, got)
}

func TestDetectCapabilities_RootListingSignals(t *testing.T) {
	record := &domain.RepositoryRecord{
		Name: "app",
		FileEntries: []domain.FileEntry{
			{Name: ".github", Kind: domain.FileKindDirectory},
			{Name: "docs", Kind: domain.FileKindDirectory},
			{Name: "Dockerfile", Kind: domain.FileKindFile},
		},
	}

	got := DetectCapabilities(record)

	assert.Equal(t, []domain.Capability{
		domain.CapabilityCICD,
		domain.CapabilityDocumentation,
		domain.CapabilityDockerSupport,
	}, got)
}

func TestDetectCapabilities_GithubFileDoesNotTriggerCICD(t *testing.T) {
	record := &domain.RepositoryRecord{
		Name: "app",
		FileEntries: []domain.FileEntry{
			{Name: ".github", Kind: domain.FileKindFile},
		},
	}

	assert.Empty(t, DetectCapabilities(record))
}

func TestDetectCapabilities_DocsSubstringMatches(t *testing.T) {
	record := &domain.RepositoryRecord{
		Name: "app",
		FileEntries: []domain.FileEntry{
			{Name: "api-docs", Kind: domain.FileKindDirectory},
		},
	}

	assert.Equal(t, []domain.Capability{domain.CapabilityDocumentation}, DetectCapabilities(record))
}

func TestDetectCapabilities_TopicSignals(t *testing.T) {
	record := &domain.RepositoryRecord{
		Name:   "app",
		Topics: []string{"rest-api", "webapp", "mobile-first"},
	}

	got := DetectCapabilities(record)

	assert.Equal(t, []domain.Capability{
		domain.CapabilityAPIDevelopment,
		domain.CapabilityWebApp,
		domain.CapabilityMobileDev,
	}, got)
}

func TestDetectCapabilities_DuplicateTopicSignalsCollapse(t *testing.T) {
	record := &domain.RepositoryRecord{
		Name:   "app",
		Topics: []string{"api", "graphql-api", "api-gateway"},
	}

	assert.Equal(t, []domain.Capability{domain.CapabilityAPIDevelopment}, DetectCapabilities(record))
}

func TestDetectCapabilities_ResultIsCanonicallyOrdered(t *testing.T) {
	// Signals arranged so naive append order would differ from canonical.
	record := &domain.RepositoryRecord{
		Name:   "app",
		Topics: []string{"mobile"},
		FileEntries: []domain.FileEntry{
			{Name: "Dockerfile", Kind: domain.FileKindFile},
		},
		Dependencies: map[string]string{"react": "^18.0.0"},
	}

	got := DetectCapabilities(record)

	assert.Equal(t, []domain.Capability{
		domain.CapabilityReactApp,
		domain.CapabilityDockerSupport,
		domain.CapabilityMobileDev,
	}, got)
}
