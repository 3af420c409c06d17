package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/readmegen-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/readmegen-cli/internal/core/domain"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [repository]",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface.

The TUI analyses the repository once, then regenerates the document
preview live as you move through the templates.

Controls:
  ↑/k, ↓/j  - Select template
  PgUp/PgDn - Scroll preview
  r         - Refetch and reanalyse
  q         - Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if profilerService == nil || generatorService == nil {
		return errors.New("services not configured")
	}

	ref, err := domain.ParseRepoRef(args[0])
	if err != nil {
		return err
	}

	ports := &tui.Ports{
		Profiler:  profilerService,
		Generator: generatorService,
	}

	app, err := tui.NewApp(ports, ref)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
