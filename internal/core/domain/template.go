package domain

import "fmt"

// Template selects which document sections are eligible for inclusion.
// The set is closed: an unrecognised value is a caller error, not a
// runtime condition the assembler guesses around.
type Template string

// The six supported templates.
const (
	TemplateMinimal         Template = "minimal"
	TemplateStandard        Template = "standard"
	TemplateComprehensive   Template = "comprehensive"
	TemplateProjectSpecific Template = "project-specific"
	TemplateOpenSource      Template = "open-source"
	TemplateEnterprise      Template = "enterprise"
)

// AllTemplates returns the supported templates in catalog order.
func AllTemplates() []Template {
	return []Template{
		TemplateMinimal,
		TemplateStandard,
		TemplateComprehensive,
		TemplateProjectSpecific,
		TemplateOpenSource,
		TemplateEnterprise,
	}
}

// Valid reports whether t is one of the supported templates.
func (t Template) Valid() bool {
	switch t {
	case TemplateMinimal, TemplateStandard, TemplateComprehensive,
		TemplateProjectSpecific, TemplateOpenSource, TemplateEnterprise:
		return true
	default:
		return false
	}
}

// ParseTemplate converts a selector string into a Template.
// Unknown selectors fail fast with ErrUnknownTemplate.
func ParseTemplate(s string) (Template, error) {
	t := Template(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTemplate, s)
	}
	return t, nil
}

// TemplateInfo describes a template for catalog display.
type TemplateInfo struct {
	ID          Template
	Name        string
	Description string
	SuitableFor []string
}

// TemplateCatalog returns display metadata for every template,
// in the same order as AllTemplates.
func TemplateCatalog() []TemplateInfo {
	return []TemplateInfo{
		{
			ID:          TemplateMinimal,
			Name:        "Minimal",
			Description: "Essentials only: title, badges, installation and usage",
			SuitableFor: []string{"small utilities", "prototypes", "scripts"},
		},
		{
			ID:          TemplateStandard,
			Name:        "Standard",
			Description: "Balanced document with features, tech stack and deployment",
			SuitableFor: []string{"most projects", "personal repositories"},
		},
		{
			ID:          TemplateComprehensive,
			Name:        "Comprehensive",
			Description: "Every applicable section, including API reference and testing",
			SuitableFor: []string{"libraries", "frameworks", "well-documented projects"},
		},
		{
			ID:          TemplateProjectSpecific,
			Name:        "Project specific",
			Description: "Sections tailored to what the analysis actually detected",
			SuitableFor: []string{"projects with unusual shapes"},
		},
		{
			ID:          TemplateOpenSource,
			Name:        "Open source",
			Description: "Community-oriented document with contributing guidelines",
			SuitableFor: []string{"open source projects", "community repositories"},
		},
		{
			ID:          TemplateEnterprise,
			Name:        "Enterprise",
			Description: "Adds security, compliance, support and monitoring addenda",
			SuitableFor: []string{"internal tooling", "commercial products"},
		},
	}
}
