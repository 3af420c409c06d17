package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/readmegen-cli/internal/core/domain"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available templates",
	Run:   runTemplates,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(cmd *cobra.Command, _ []string) {
	cmd.Println("Available templates:")
	cmd.Println()

	for _, info := range domain.TemplateCatalog() {
		cmd.Printf("  %-18s %s\n", info.ID, info.Name)
		cmd.Printf("  %-18s %s\n", "", info.Description)
		cmd.Printf("  %-18s Suitable for: %s\n", "", strings.Join(info.SuitableFor, ", "))
		cmd.Println()
	}
}
