package mcp

import (
	"github.com/custodia-labs/readmegen-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Profiler analyses repositories into profiles.
	Profiler driving.ProfilerService

	// Generator assembles README documents from profiles.
	Generator driving.GeneratorService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Profiler == nil {
		return ErrMissingProfilerService
	}
	if p.Generator == nil {
		return ErrMissingGeneratorService
	}
	return nil
}
