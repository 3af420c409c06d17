package driving

import (
	"github.com/custodia-labs/readmegen-cli/internal/core/domain"
)

// GeneratorService assembles the final Markdown document.
// Generation is a pure function of (Template, RepositoryProfile): repeated
// calls with the same pair produce byte-identical output.
type GeneratorService interface {
	// Generate renders the document for the given template and profile.
	// An invalid template fails with domain.ErrUnknownTemplate before any
	// output is produced.
	Generate(template domain.Template, profile *domain.RepositoryProfile) (string, error)

	// SectionNames returns the logical names of the sections that would be
	// listed in the table of contents for this pair. It shares the
	// inclusion predicates with Generate, so the list can never drift from
	// the rendered body.
	SectionNames(template domain.Template, profile *domain.RepositoryProfile) ([]string, error)
}
