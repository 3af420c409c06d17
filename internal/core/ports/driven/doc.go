// Package driven defines the outbound ports of the core: interfaces the
// core services depend on and adapters implement (repository fetching,
// record caching, configuration).
package driven
