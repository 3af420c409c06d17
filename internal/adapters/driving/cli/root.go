package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/readmegen-cli/internal/core/ports/driven"
	"github.com/custodia-labs/readmegen-cli/internal/core/ports/driving"
	"github.com/custodia-labs/readmegen-cli/internal/logger"
)

// Services the commands depend on. Injected from main via SetServices.
var (
	profilerService  driving.ProfilerService
	generatorService driving.GeneratorService
	configStore      driven.ConfigStore
	recordCache      driven.RecordCache
)

// version is set by Execute.
var version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "readmegen",
	Short: "Generate README documents from GitHub repositories",
	Long: `readmegen analyses a GitHub repository's metadata, dependencies and
file layout, then assembles a professional README.md from one of six
templates. No language model involved; output is deterministic.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

// Services aggregates everything the command tree needs.
type Services struct {
	Profiler    driving.ProfilerService
	Generator   driving.GeneratorService
	ConfigStore driven.ConfigStore
	RecordCache driven.RecordCache
}

// SetServices injects the services the commands use.
func SetServices(s Services) {
	profilerService = s.Profiler
	generatorService = s.Generator
	configStore = s.ConfigStore
	recordCache = s.RecordCache
}

// Execute runs the root command with the given build version.
func Execute(v string) error {
	if v != "" {
		version = v
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
