package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/readmegen-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for readmegen resources.
	uriScheme = "readmegen://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the template catalog.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "templates",
		Name:        "templates",
		Description: "Catalog of available README templates",
		MIMEType:    "application/json",
	}, s.handleTemplatesResource)
}

// handleTemplatesResource returns the template catalog.
func (s *Server) handleTemplatesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type templateInfo struct {
		ID          string   `json:"id"`
		Name        string   `json:"name"`
		Description string   `json:"description"`
		SuitableFor []string `json:"suitable_for"`
	}

	catalog := domain.TemplateCatalog()
	infos := make([]templateInfo, len(catalog))
	for i, entry := range catalog {
		infos[i] = templateInfo{
			ID:          string(entry.ID),
			Name:        entry.Name,
			Description: entry.Description,
			SuitableFor: entry.SuitableFor,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling templates: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
