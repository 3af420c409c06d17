package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/readmegen-cli/internal/core/domain"
)

// GenerateInput is the input schema for the generate_readme tool.
type GenerateInput struct {
	Repository string `json:"repository" jsonschema:"the repository as owner/name or a GitHub URL"`
	Template   string `json:"template,omitempty" jsonschema:"template id (minimal, standard, comprehensive, project-specific, open-source, enterprise; default standard)"`
}

// GenerateOutput is the output schema for the generate_readme tool.
type GenerateOutput struct {
	Markdown string   `json:"markdown"`
	Template string   `json:"template"`
	Sections []string `json:"sections"`
}

// AnalyzeInput is the input schema for the analyze_repository tool.
type AnalyzeInput struct {
	Repository string `json:"repository" jsonschema:"the repository as owner/name or a GitHub URL"`
}

// AnalyzeOutput is the output schema for the analyze_repository tool.
type AnalyzeOutput struct {
	Name            string           `json:"name"`
	Owner           string           `json:"owner"`
	Description     string           `json:"description,omitempty"`
	PrimaryLanguage string           `json:"primary_language,omitempty"`
	Languages       map[string]int64 `json:"languages,omitempty"`
	Stars           int              `json:"stars"`
	Forks           int              `json:"forks"`
	License         string           `json:"license,omitempty"`
	Capabilities    []string         `json:"capabilities"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate_readme",
		Description: "Generate a README.md document for a GitHub repository",
	}, s.handleGenerate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_repository",
		Description: "Analyse a GitHub repository's languages, dependencies and capabilities",
	}, s.handleAnalyze)
}

// handleGenerate handles the generate_readme tool invocation.
func (s *Server) handleGenerate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GenerateInput,
) (*mcp.CallToolResult, GenerateOutput, error) {
	selector := input.Template
	if selector == "" {
		selector = string(domain.TemplateStandard)
	}

	template, err := domain.ParseTemplate(selector)
	if err != nil {
		return nil, GenerateOutput{}, err
	}

	ref, err := domain.ParseRepoRef(input.Repository)
	if err != nil {
		return nil, GenerateOutput{}, err
	}

	profile, err := s.ports.Profiler.Analyze(ctx, ref)
	if err != nil {
		return nil, GenerateOutput{}, err
	}

	document, err := s.ports.Generator.Generate(template, profile)
	if err != nil {
		return nil, GenerateOutput{}, err
	}

	sections, err := s.ports.Generator.SectionNames(template, profile)
	if err != nil {
		return nil, GenerateOutput{}, err
	}

	return nil, GenerateOutput{
		Markdown: document,
		Template: string(template),
		Sections: sections,
	}, nil
}

// handleAnalyze handles the analyze_repository tool invocation.
func (s *Server) handleAnalyze(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeInput,
) (*mcp.CallToolResult, AnalyzeOutput, error) {
	ref, err := domain.ParseRepoRef(input.Repository)
	if err != nil {
		return nil, AnalyzeOutput{}, err
	}

	profile, err := s.ports.Profiler.Analyze(ctx, ref)
	if err != nil {
		return nil, AnalyzeOutput{}, err
	}

	capabilities := make([]string, len(profile.Capabilities))
	for i, capability := range profile.Capabilities {
		capabilities[i] = string(capability)
	}

	output := AnalyzeOutput{
		Name:            profile.Name,
		Owner:           profile.OwnerLogin,
		Description:     profile.Description,
		PrimaryLanguage: profile.PrimaryLanguage,
		Languages:       profile.LanguageByteCounts,
		Stars:           profile.StarCount,
		Forks:           profile.ForkCount,
		Capabilities:    capabilities,
	}
	if profile.HasLicense {
		output.License = profile.LicenseName
	}

	return nil, output, nil
}
