// Package mcp provides an MCP (Model Context Protocol) server adapter.
// It enables AI assistants like Claude to analyse repositories and generate
// README documents through readmegen's core services.
package mcp

import "errors"

// ErrMissingProfilerService is returned when the profiler service is not provided.
var ErrMissingProfilerService = errors.New("mcp: profiler service is required")

// ErrMissingGeneratorService is returned when the generator service is not provided.
var ErrMissingGeneratorService = errors.New("mcp: generator service is required")
