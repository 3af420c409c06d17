package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/readmegen-cli/internal/core/domain"
)

func TestLanguageColor(t *testing.T) {
	assert.Equal(t, "00ADD8", languageColor("Go"))
	assert.Equal(t, "3178C6", languageColor("TypeScript"))
	assert.Equal(t, "F7DF1E", languageColor("JavaScript"))
	assert.Equal(t, defaultLanguageColor, languageColor("Brainfuck"))
	assert.Equal(t, defaultLanguageColor, languageColor(""))
}

func TestBuildShields_StarsAndForksAlwaysPresent(t *testing.T) {
	profile := &domain.RepositoryProfile{Name: "demo", OwnerLogin: "acme"}

	shields := buildShields(profile)

	require.Len(t, shields, 2)
	assert.Contains(t, shields[0], "github/stars/acme/demo")
	assert.Contains(t, shields[1], "github/forks/acme/demo")
}

func TestBuildShields_LanguageBadgeUsesLookupColor(t *testing.T) {
	profile := &domain.RepositoryProfile{
		Name:            "demo",
		OwnerLogin:      "acme",
		PrimaryLanguage: "Rust",
	}

	shields := buildShields(profile)

	require.NotEmpty(t, shields)
	assert.Equal(t,
		"![Rust](https://img.shields.io/badge/language-Rust-000000?style=flat-square)",
		shields[0])
}

func TestBuildShields_FixedOrder(t *testing.T) {
	profile := &domain.RepositoryProfile{
		Name:            "demo",
		OwnerLogin:      "acme",
		PrimaryLanguage: "TypeScript",
		HasLicense:      true,
		Capabilities: []domain.Capability{
			domain.CapabilityReactApp,
			domain.CapabilityNextFramework,
			domain.CapabilityTypeScript,
			domain.CapabilityCICD,
		},
	}

	shields := buildShields(profile)
	joined := strings.Join(shields, " ")

	order := []string{
		"badge/language-TypeScript",
		"github/stars",
		"github/forks",
		"github/license",
		"actions/workflow",
		"badge/React-18+",
		"badge/Next.js-13+",
		"badge/TypeScript-4+",
	}

	last := -1
	for _, marker := range order {
		idx := strings.Index(joined, marker)
		require.NotEqual(t, -1, idx, "missing badge %q", marker)
		assert.Greater(t, idx, last, "badge %q out of order", marker)
		last = idx
	}
}

func TestBuildShields_CIBadgeRequiresCapability(t *testing.T) {
	profile := &domain.RepositoryProfile{Name: "demo", OwnerLogin: "acme"}
	assert.NotContains(t, strings.Join(buildShields(profile), " "), "actions/workflow")

	profile.Capabilities = []domain.Capability{domain.CapabilityCICD}
	assert.Contains(t, strings.Join(buildShields(profile), " "), "actions/workflow/status/acme/demo/ci.yml")
}
