// Package tui provides an interactive terminal user interface: a template
// picker with a live document preview. It implements a driving adapter
// following hexagonal architecture principles.
package tui

import (
	"errors"

	"github.com/custodia-labs/readmegen-cli/internal/core/ports/driving"
)

// ErrMissingProfilerService is returned when the profiler service is not provided.
var ErrMissingProfilerService = errors.New("tui: profiler service is required")

// ErrMissingGeneratorService is returned when the generator service is not provided.
var ErrMissingGeneratorService = errors.New("tui: generator service is required")

// Ports aggregates all driving port interfaces required by the TUI.
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
