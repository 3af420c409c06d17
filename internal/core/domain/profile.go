package domain

import "fmt"

// FileKind distinguishes files from directories in a root listing.
type FileKind string

// File entry kinds.
const (
	FileKindFile      FileKind = "file"
	FileKindDirectory FileKind = "directory"
)

// FileEntry is one shallow directory entry from the repository root.
// Depth is exactly one level; the analyzer never recurses.
type FileEntry struct {
	Name string
	Kind FileKind
	Path string
}

// RepositoryProfile is the normalised, read-only record describing one
// analysed repository. It is constructed once by the profiler and never
// mutated afterwards; document generation is a pure function of
// (Template, RepositoryProfile).
type RepositoryProfile struct {
	// Name is the repository name.
	Name string

	// Description is the repository description. May be empty.
	Description string

	// OwnerLogin is the login of the owning user or organisation.
	OwnerLogin string

	// CanonicalURL is the browsable repository URL.
	CanonicalURL string

	// PrimaryLanguage is the dominant language reported upstream.
	// May be empty when the repository has no detected language.
	PrimaryLanguage string

	// LanguageByteCounts maps language name to byte count. Used only for
	// relative-weight ranking, never for insertion order.
	LanguageByteCounts map[string]int64

	// StarCount and ForkCount are non-negative repository stats.
	StarCount int
	ForkCount int

	// Topics are free-form repository tags.
	Topics []string

	// HasLicense reports whether a license was detected.
	// LicenseName is meaningful only when HasLicense is true.
	HasLicense  bool
	LicenseName string

	// FileEntries is the shallow root directory listing.
	FileEntries []FileEntry

	// Dependencies, DevDependencies and Scripts come from the dependency
	// manifest. All three are empty maps when no manifest was found;
	// that is a normal state, not an error.
	Dependencies    map[string]string
	DevDependencies map[string]string
	Scripts         map[string]string

	// Capabilities is the derived trait set, held in canonical order.
	Capabilities []Capability
}

// HasCapability reports whether the profile carries the given capability.
func (p *RepositoryProfile) HasCapability(c Capability) bool {
	for _, have := range p.Capabilities {
		if have == c {
			return true
		}
	}
	return false
}

// HasRootEntry reports whether a root entry with the exact name exists.
func (p *RepositoryProfile) HasRootEntry(name string) bool {
	for _, e := range p.FileEntries {
		if e.Name == name {
			return true
		}
	}
	return false
}

// Validate checks the structural invariants the assembler relies on.
// A profile that fails validation must never reach the assembler.
func (p *RepositoryProfile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: repository name is empty", ErrInvalidInput)
	}
	if p.StarCount < 0 {
		return fmt.Errorf("%w: negative star count %d", ErrInvalidInput, p.StarCount)
	}
	if p.ForkCount < 0 {
		return fmt.Errorf("%w: negative fork count %d", ErrInvalidInput, p.ForkCount)
	}
	for lang, bytes := range p.LanguageByteCounts {
		if bytes < 0 {
			return fmt.Errorf("%w: negative byte count for language %q", ErrInvalidInput, lang)
		}
	}
	return nil
}
