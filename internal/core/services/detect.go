package services

import (
	"strings"

	"github.com/custodia-labs/readmegen-cli/internal/core/domain"
)

// Package names that map to testing capabilities. Exact, case-sensitive
// matches against devDependencies keys.
var (
	unitTestPackages = []string{"jest", "vitest", "mocha"}
	e2eTestPackages  = []string{"cypress", "playwright"}
	bundlerPackages  = []string{"vite", "webpack"}
)

// DetectCapabilities derives the capability set from a repository record.
// Every rule is an independent boolean test; all matching rules fire.
// Duplicates collapse and the result is in canonical vocabulary order.
func DetectCapabilities(record *domain.RepositoryRecord) []domain.Capability {
	if record == nil {
		return []domain.Capability{}
	}

	var caps []domain.Capability

	hasDep := func(name string) bool {
		_, inDeps := record.Dependencies[name]
		_, inDev := record.DevDependencies[name]
		return inDeps || inDev
	}
	hasDevDep := func(names []string) bool {
		for _, name := range names {
			if _, ok := record.DevDependencies[name]; ok {
				return true
			}
		}
		return false
	}

	// Framework and library detection.
	if hasDep("react") {
		caps = append(caps, domain.CapabilityReactApp)
	}
	if hasDep("vue") {
		caps = append(caps, domain.CapabilityVueApp)
	}
	if hasDep("angular") {
		caps = append(caps, domain.CapabilityAngularApp)
	}
	if hasDep("next") {
		caps = append(caps, domain.CapabilityNextFramework)
	}
	if hasDep("express") {
		caps = append(caps, domain.CapabilityExpressServer)
	}
	if hasDep("typescript") {
		caps = append(caps, domain.CapabilityTypeScript)
	}

	// Test tooling.
	if hasDevDep(unitTestPackages) {
		caps = append(caps, domain.CapabilityUnitTesting)
	}
	if hasDevDep(e2eTestPackages) {
		caps = append(caps, domain.CapabilityE2ETesting)
	}

	// Build tooling.
	if hasDevDep(bundlerPackages) {
		caps = append(caps, domain.CapabilityModernBuild)
	}
	if _, ok := record.DevDependencies["eslint"]; ok {
		caps = append(caps, domain.CapabilityLinting)
	}
	if _, ok := record.DevDependencies["prettier"]; ok {
		caps = append(caps, domain.CapabilityFormatting)
	}

	// Root listing signals.
	for _, entry := range record.FileEntries {
		switch {
		case entry.Name == ".github" && entry.Kind == domain.FileKindDirectory:
			caps = append(caps, domain.CapabilityCICD)
		case strings.Contains(entry.Name, "docs"):
			caps = append(caps, domain.CapabilityDocumentation)
		case entry.Name == "Dockerfile":
			caps = append(caps, domain.CapabilityDockerSupport)
		}
	}

	// Topic signals. Multiple topics may add the same capability;
	// normalisation collapses them.
	for _, topic := range record.Topics {
		if strings.Contains(topic, "api") {
			caps = append(caps, domain.CapabilityAPIDevelopment)
		}
		if strings.Contains(topic, "web") {
			caps = append(caps, domain.CapabilityWebApp)
		}
		if strings.Contains(topic, "mobile") {
			caps = append(caps, domain.CapabilityMobileDev)
		}
	}

	return domain.NormalizeCapabilities(caps)
}
