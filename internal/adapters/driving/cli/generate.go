package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/readmegen-cli/internal/adapters/driven/export"
	"github.com/custodia-labs/readmegen-cli/internal/core/domain"
)

var (
	generateTemplate string
	generateOutput   string
	generateFormat   string
	generateCopy     bool
	generateStdout   bool
	generateRefresh  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [repository]",
	Short: "Generate a README for a repository",
	Long: `Analyse a GitHub repository and generate a README document.

The repository may be given as "owner/name" or as a full GitHub URL.

Examples:
  readmegen generate golang/go
  readmegen generate https://github.com/facebook/react -t comprehensive
  readmegen generate owner/repo -o docs/README.md
  readmegen generate owner/repo --format html -o readme.html
  readmegen generate owner/repo --copy`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateTemplate, "template", "t", string(domain.TemplateStandard),
		fmt.Sprintf("template to use (%s)", templateUsageList()))
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "output file path (default README.md)")
	generateCmd.Flags().StringVar(&generateFormat, "format", "markdown", "output format (markdown, html)")
	generateCmd.Flags().BoolVar(&generateCopy, "copy", false, "copy the document to the clipboard")
	generateCmd.Flags().BoolVar(&generateStdout, "stdout", false, "print the document instead of writing a file")
	generateCmd.Flags().BoolVar(&generateRefresh, "refresh", false, "bypass the record cache and refetch metadata")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if profilerService == nil || generatorService == nil {
		return errors.New("services not configured")
	}

	template, err := domain.ParseTemplate(generateTemplate)
	if err != nil {
		return err
	}

	if generateFormat != "markdown" && generateFormat != "html" {
		return fmt.Errorf("unknown format %q (expected markdown or html)", generateFormat)
	}

	ref, err := domain.ParseRepoRef(args[0])
	if err != nil {
		return err
	}

	ctx := context.Background()

	if generateRefresh && recordCache != nil {
		if err := recordCache.Purge(ctx, ref); err != nil {
			return fmt.Errorf("purging cached record: %w", err)
		}
	}

	profile, err := profilerService.Analyze(ctx, ref)
	if err != nil {
		return fmt.Errorf("analysing %s: %w", ref, err)
	}

	document, err := generatorService.Generate(template, profile)
	if err != nil {
		return fmt.Errorf("generating document: %w", err)
	}

	output := document
	if generateFormat == "html" {
		output, err = export.RenderHTML(profile.Name, document)
		if err != nil {
			return err
		}
	}

	if generateCopy {
		if err := export.CopyToClipboard(output); err != nil {
			return err
		}
		cmd.Println("Copied to clipboard.")
	}

	if generateStdout {
		cmd.Print(output)
		return nil
	}

	path := generateOutput
	if path == "" && generateFormat == "html" {
		path = "README.html"
	}

	written, err := export.WriteMarkdown(path, output)
	if err != nil {
		return err
	}

	cmd.Printf("Wrote %s (%s template)\n", written, template)
	return nil
}

// templateUsageList renders the template ids for flag help text.
func templateUsageList() string {
	all := domain.AllTemplates()
	ids := make([]string, len(all))
	for i, t := range all {
		ids[i] = string(t)
	}
	return strings.Join(ids, ", ")
}
