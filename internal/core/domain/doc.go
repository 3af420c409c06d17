// Package domain contains the core business entities for readmegen.
//
// The two central types are RepositoryRecord (the raw, normalised result of
// fetching repository metadata) and RepositoryProfile (the immutable analysed
// record the document assembler consumes). Domain types have no dependencies
// on adapters or external services.
package domain
