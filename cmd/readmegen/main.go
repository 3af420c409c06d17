// Command readmegen generates README documents from GitHub repository
// metadata. See `readmegen --help` for usage.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/readmegen-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/readmegen-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/readmegen-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/readmegen-cli/internal/connectors/github"
	"github.com/custodia-labs/readmegen-cli/internal/core/ports/driven"
	"github.com/custodia-labs/readmegen-cli/internal/core/services"
	"github.com/custodia-labs/readmegen-cli/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env file for local development; absence is not an error.
	_ = godotenv.Load()

	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("initialising config store: %w", err)
	}

	recordCache, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("initialising record cache: %w", err)
	}
	defer recordCache.Close()

	client := github.NewClient(context.Background(), resolveToken(configStore))
	fetcher := github.NewFetcher(client)

	profiler := services.NewProfiler(fetcher, recordCache, services.DefaultCacheTTL)
	generator := services.NewGenerator()

	cli.SetServices(cli.Services{
		Profiler:    profiler,
		Generator:   generator,
		ConfigStore: configStore,
		RecordCache: recordCache,
	})

	return cli.Execute(version)
}

// resolveToken returns the GitHub token, environment taking precedence
// over the stored configuration. Empty means anonymous access.
func resolveToken(store driven.ConfigStore) string {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		logger.Debug("using token from GITHUB_TOKEN")
		return token
	}
	return store.GetString("github.token")
}
