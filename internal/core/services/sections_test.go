package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/readmegen-cli/internal/core/domain"
)

func TestPackageManager_LockfilePrecedence(t *testing.T) {
	tests := []struct {
		name    string
		entries []domain.FileEntry
		want    string
	}{
		{"no lockfile", nil, "npm"},
		{"yarn lockfile", []domain.FileEntry{{Name: "yarn.lock"}}, "yarn"},
		{"pnpm lockfile", []domain.FileEntry{{Name: "pnpm-lock.yaml"}}, "pnpm"},
		{"pnpm beats yarn", []domain.FileEntry{
			{Name: "yarn.lock"},
			{Name: "pnpm-lock.yaml"},
		}, "pnpm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := &domain.RepositoryProfile{Name: "demo", FileEntries: tt.entries}
			assert.Equal(t, tt.want, packageManager(profile))
		})
	}
}

func TestRenderInstallation_AllSteps(t *testing.T) {
	profile := &domain.RepositoryProfile{
		Name:         "demo",
		CanonicalURL: "https://github.com/acme/demo",
		Dependencies: map[string]string{"react": "^18.0.0"},
		FileEntries: []domain.FileEntry{
			{Name: ".env.example"},
			{Name: "pnpm-lock.yaml"},
		},
		Scripts: map[string]string{
			"dev":    "vite",
			"test":   "jest",
			"custom": "echo custom",
		},
	}

	out := renderInstallation(profile, domain.TemplateStandard)

	assert.Contains(t, out, "git clone https://github.com/acme/demo\ncd demo")
	assert.Contains(t, out, "pnpm install")
	assert.Contains(t, out, "cp .env.example .env")
	assert.Contains(t, out, "- `npm run dev` - Start development server")
	assert.Contains(t, out, "- `npm run test` - Run tests")
	// Unrecognised script names are not listed.
	assert.NotContains(t, out, "custom")
}

func TestRenderInstallation_UnknownScriptDescriptionFallsBack(t *testing.T) {
	// A recognised name missing from the description table would fall back
	// to the raw command; with the full table this only shows through the
	// fixed descriptions staying stable.
	profile := &domain.RepositoryProfile{
		Name:    "demo",
		Scripts: map[string]string{"build": "tsc -p ."},
	}

	out := renderInstallation(profile, domain.TemplateStandard)
	assert.Contains(t, out, "- `npm run build` - Build for production")
}

func TestRenderUsage_PriorityOrder(t *testing.T) {
	tests := []struct {
		name    string
		profile *domain.RepositoryProfile
		marker  string
	}{
		{
			"react wins over express",
			&domain.RepositoryProfile{
				Name: "demo",
				Capabilities: []domain.Capability{
					domain.CapabilityReactApp,
					domain.CapabilityExpressServer,
				},
			},
			"### React Application",
		},
		{
			"express without react",
			&domain.RepositoryProfile{
				Name:         "demo",
				Capabilities: []domain.Capability{domain.CapabilityExpressServer},
			},
			"### Server Usage",
		},
		{
			"python primary language",
			&domain.RepositoryProfile{Name: "my-tool", PrimaryLanguage: "Python"},
			"from my_tool import main",
		},
		{
			"generic fallback",
			&domain.RepositoryProfile{Name: "demo", PrimaryLanguage: "Go"},
			"```go\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, renderUsage(tt.profile, domain.TemplateStandard), tt.marker)
		})
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Demo", capitalize("demo"))
	assert.Equal(t, "Demo-app", capitalize("demo-app"))
	assert.Equal(t, "", capitalize(""))
}

func TestUsageFenceLanguage(t *testing.T) {
	assert.Equal(t, "rust",
		usageFenceLanguage(&domain.RepositoryProfile{PrimaryLanguage: "Rust"}))

	// Falls back to the dominant byte-count language.
	assert.Equal(t, "typescript",
		usageFenceLanguage(&domain.RepositoryProfile{
			LanguageByteCounts: map[string]int64{"TypeScript": 100, "CSS": 10},
		}))

	assert.Equal(t, "text", usageFenceLanguage(&domain.RepositoryProfile{}))
}

func TestRenderTesting_SubsectionsFollowCapabilities(t *testing.T) {
	unitOnly := &domain.RepositoryProfile{
		Name:         "demo",
		Capabilities: []domain.Capability{domain.CapabilityUnitTesting},
	}
	out := renderTesting(unitOnly, domain.TemplateStandard)
	assert.Contains(t, out, "### Unit Tests")
	assert.NotContains(t, out, "### E2E Tests")
	assert.Contains(t, out, "### Coverage")

	e2eOnly := &domain.RepositoryProfile{
		Name:         "demo",
		Capabilities: []domain.Capability{domain.CapabilityE2ETesting},
	}
	out = renderTesting(e2eOnly, domain.TemplateStandard)
	assert.NotContains(t, out, "### Unit Tests")
	assert.Contains(t, out, "### E2E Tests")
	assert.Contains(t, out, "### Coverage")
}

func TestRenderDeployment_IndependentSubsections(t *testing.T) {
	profile := &domain.RepositoryProfile{
		Name: "demo",
		Capabilities: []domain.Capability{
			domain.CapabilityDockerSupport,
			domain.CapabilityNextFramework,
			domain.CapabilityReactApp,
		},
	}

	out := renderDeployment(profile, domain.TemplateStandard)

	assert.Contains(t, out, "### Docker")
	assert.Contains(t, out, "docker build -t demo .")
	assert.Contains(t, out, "### Vercel")
	assert.Contains(t, out, "### Netlify")

	// No qualifying capability leaves just the heading.
	bare := renderDeployment(&domain.RepositoryProfile{Name: "demo"}, domain.TemplateStandard)
	assert.Equal(t, "## 🚀 Deployment\n\n", bare)
}

func TestRenderAPIReference_BothStubsMayAppear(t *testing.T) {
	profile := &domain.RepositoryProfile{
		Name: "demo",
		Capabilities: []domain.Capability{
			domain.CapabilityExpressServer,
			domain.CapabilityReactApp,
		},
	}

	out := renderAPIReference(profile, domain.TemplateComprehensive)

	assert.Contains(t, out, "### REST Endpoints")
	assert.Contains(t, out, "### Components")
	assert.Contains(t, out, "<Demo")
}

func TestRenderLicense_FallbackName(t *testing.T) {
	named := &domain.RepositoryProfile{Name: "demo", HasLicense: true, LicenseName: "MIT License"}
	assert.Contains(t, renderLicense(named, domain.TemplateStandard), "under the MIT License")

	unnamed := &domain.RepositoryProfile{Name: "demo", HasLicense: true}
	assert.Contains(t, renderLicense(unnamed, domain.TemplateStandard), "under the Custom License")
}
