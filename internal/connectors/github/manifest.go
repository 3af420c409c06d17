package github

import (
	"encoding/json"
	"fmt"
)

// ManifestFileName is the dependency manifest the fetcher looks for in the
// repository root.
const ManifestFileName = "package.json"

// manifest mirrors the fields of package.json the profiler consumes.
type manifest struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Scripts         map[string]string `json:"scripts"`
}

// parseManifest decodes a package.json payload. Missing maps come back
// empty, never nil.
func parseManifest(data []byte) (*manifest, error) {
	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", ManifestFileName, err)
	}

	if m.Dependencies == nil {
		m.Dependencies = map[string]string{}
	}
	if m.DevDependencies == nil {
		m.DevDependencies = map[string]string{}
	}
	if m.Scripts == nil {
		m.Scripts = map[string]string{}
	}
	return &m, nil
}
