package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/custodia-labs/readmegen-cli/internal/core/domain"
	"github.com/custodia-labs/readmegen-cli/internal/core/ports/driving"
)

// Ensure Generator implements the interface.
var _ driving.GeneratorService = (*Generator)(nil)

// Generator assembles the Markdown document from an ordered pipeline of
// section generators. It is stateless: Generate is a pure function of
// (Template, RepositoryProfile) and produces byte-identical output on
// every invocation.
type Generator struct{}

// NewGenerator creates a document generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// section is one entry of the assembly pipeline. The include predicate is
// shared between body rendering and table-of-contents construction, so the
// ToC cannot drift out of sync with the rendered document.
type section struct {
	// tocNames are the logical names this section contributes to the
	// table of contents when included. Structural sections (header,
	// shields, the ToC itself, footer) contribute none.
	tocNames []string

	// include gates the section for a given profile and template.
	include func(p *domain.RepositoryProfile, t domain.Template) bool

	// render produces the Markdown block, terminated by a blank line.
	render func(p *domain.RepositoryProfile, t domain.Template) string
}

// always is the include predicate for unconditional sections.
func always(*domain.RepositoryProfile, domain.Template) bool { return true }

// sectionPipeline is the canonical generator order. Templates gate
// inclusion only; they never reorder sections. Assigned in init because
// renderTableOfContents reads the pipeline back through tocEntries.
var sectionPipeline []section

func init() {
	sectionPipeline = []section{
		{include: always, render: renderHeader},
		{include: always, render: renderShields},
		{include: includeTableOfContents, render: renderTableOfContents},
		{tocNames: []string{"Features"}, include: includeFeatures, render: renderFeatures},
		{tocNames: []string{"Tech Stack"}, include: includeTechStack, render: renderTechStack},
		{tocNames: []string{"Installation"}, include: always, render: renderInstallation},
		{tocNames: []string{"Usage"}, include: always, render: renderUsage},
		{tocNames: []string{"API Reference"}, include: includeAPIReference, render: renderAPIReference},
		{tocNames: []string{"Testing"}, include: includeTesting, render: renderTesting},
		{tocNames: []string{"Deployment"}, include: includeDeployment, render: renderDeployment},
		{tocNames: []string{"Contributing"}, include: includeContributing, render: renderContributing},
		{
			tocNames: []string{"Security", "Compliance", "Enterprise Support", "Monitoring & Analytics"},
			include:  includeEnterprise,
			render:   renderEnterprise,
		},
		{tocNames: []string{"License"}, include: includeLicense, render: renderLicense},
		{include: always, render: renderFooter},
	}
}

// Generate renders the document for the given template and profile.
func (g *Generator) Generate(template domain.Template, profile *domain.RepositoryProfile) (string, error) {
	if !template.Valid() {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownTemplate, string(template))
	}
	if profile == nil {
		return "", fmt.Errorf("%w: nil profile", domain.ErrInvalidInput)
	}

	var b strings.Builder
	for _, sec := range sectionPipeline {
		if !sec.include(profile, template) {
			continue
		}
		b.WriteString(sec.render(profile, template))
	}

	return strings.TrimRight(b.String(), "\n") + "\n", nil
}

// SectionNames returns the table-of-contents entries for this pair, derived
// from the same predicates Generate uses.
func (g *Generator) SectionNames(template domain.Template, profile *domain.RepositoryProfile) ([]string, error) {
	if !template.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownTemplate, string(template))
	}
	if profile == nil {
		return nil, fmt.Errorf("%w: nil profile", domain.ErrInvalidInput)
	}
	return tocEntries(profile, template), nil
}

// tocEntries collects the logical names of every included, listed section.
func tocEntries(p *domain.RepositoryProfile, t domain.Template) []string {
	names := make([]string, 0, len(sectionPipeline))
	for _, sec := range sectionPipeline {
		if len(sec.tocNames) == 0 {
			continue
		}
		if !sec.include(p, t) {
			continue
		}
		names = append(names, sec.tocNames...)
	}
	return names
}

var (
	anchorSpaces  = regexp.MustCompile(`\s+`)
	anchorInvalid = regexp.MustCompile(`[^\w-]`)
)

// anchorFor converts a section name to its Markdown anchor:
// lowercased, whitespace runs become hyphens, non-word characters dropped.
func anchorFor(name string) string {
	anchor := strings.ToLower(name)
	anchor = anchorSpaces.ReplaceAllString(anchor, "-")
	return anchorInvalid.ReplaceAllString(anchor, "")
}

func includeTableOfContents(_ *domain.RepositoryProfile, t domain.Template) bool {
	return t != domain.TemplateMinimal
}

func renderTableOfContents(p *domain.RepositoryProfile, t domain.Template) string {
	entries := tocEntries(p, t)
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("## 📋 Table of Contents\n\n")
	for _, name := range entries {
		fmt.Fprintf(&b, "- [%s](#%s)\n", name, anchorFor(name))
	}
	b.WriteString("\n")
	return b.String()
}
