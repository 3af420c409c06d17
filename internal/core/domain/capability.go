package domain

// Capability is a named, boolean-detected trait of a repository, drawn from
// a fixed vocabulary. Capabilities are derived data: a pure function of the
// profile's topics, dependency maps, file entries and primary language.
type Capability string

// The capability vocabulary. Declaration order is the canonical detection
// order, which is also the stable order capabilities render in.
const (
	CapabilityReactApp       Capability = "React Application"
	CapabilityVueApp         Capability = "Vue.js Application"
	CapabilityAngularApp     Capability = "Angular Application"
	CapabilityNextFramework  Capability = "Next.js Framework"
	CapabilityExpressServer  Capability = "Express.js Server"
	CapabilityTypeScript     Capability = "TypeScript Support"
	CapabilityUnitTesting    Capability = "Unit Testing"
	CapabilityE2ETesting     Capability = "E2E Testing"
	CapabilityModernBuild    Capability = "Modern Build System"
	CapabilityLinting        Capability = "Code Linting"
	CapabilityFormatting     Capability = "Code Formatting"
	CapabilityCICD           Capability = "CI/CD Pipeline"
	CapabilityDocumentation  Capability = "Documentation"
	CapabilityDockerSupport  Capability = "Docker Support"
	CapabilityAPIDevelopment Capability = "API Development"
	CapabilityWebApp         Capability = "Web Application"
	CapabilityMobileDev      Capability = "Mobile Development"
)

// capabilityOrder fixes the canonical ordering for rendering.
var capabilityOrder = []Capability{
	CapabilityReactApp,
	CapabilityVueApp,
	CapabilityAngularApp,
	CapabilityNextFramework,
	CapabilityExpressServer,
	CapabilityTypeScript,
	CapabilityUnitTesting,
	CapabilityE2ETesting,
	CapabilityModernBuild,
	CapabilityLinting,
	CapabilityFormatting,
	CapabilityCICD,
	CapabilityDocumentation,
	CapabilityDockerSupport,
	CapabilityAPIDevelopment,
	CapabilityWebApp,
	CapabilityMobileDev,
}

// CapabilityVocabulary returns the full vocabulary in canonical order.
func CapabilityVocabulary() []Capability {
	out := make([]Capability, len(capabilityOrder))
	copy(out, capabilityOrder)
	return out
}

// NormalizeCapabilities collapses duplicates and returns the set in
// canonical order. Unknown values are dropped.
func NormalizeCapabilities(caps []Capability) []Capability {
	present := make(map[Capability]bool, len(caps))
	for _, c := range caps {
		present[c] = true
	}

	out := make([]Capability, 0, len(present))
	for _, c := range capabilityOrder {
		if present[c] {
			out = append(out, c)
		}
	}
	return out
}
