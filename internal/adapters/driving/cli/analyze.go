package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/readmegen-cli/internal/core/domain"
)

var analyzeJSON bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze [repository]",
	Short: "Analyse a repository without generating a document",
	Long: `Fetch a repository's metadata and print the computed profile:
languages, dependency counts and detected capabilities.

Examples:
  readmegen analyze golang/go
  readmegen analyze facebook/react --json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output the profile as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if profilerService == nil {
		return errors.New("profiler service not configured")
	}

	ref, err := domain.ParseRepoRef(args[0])
	if err != nil {
		return err
	}

	profile, err := profilerService.Analyze(context.Background(), ref)
	if err != nil {
		return fmt.Errorf("analysing %s: %w", ref, err)
	}

	if analyzeJSON {
		return outputProfileJSON(cmd, profile)
	}

	return outputProfileText(cmd, profile)
}

func outputProfileJSON(cmd *cobra.Command, profile *domain.RepositoryProfile) error {
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling profile: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputProfileText(cmd *cobra.Command, profile *domain.RepositoryProfile) error {
	cmd.Printf("%s/%s\n", profile.OwnerLogin, profile.Name)
	if profile.Description != "" {
		cmd.Printf("  %s\n", profile.Description)
	}
	cmd.Println()

	cmd.Printf("  Stars:    %d\n", profile.StarCount)
	cmd.Printf("  Forks:    %d\n", profile.ForkCount)
	if profile.PrimaryLanguage != "" {
		cmd.Printf("  Language: %s\n", profile.PrimaryLanguage)
	}
	if profile.HasLicense {
		cmd.Printf("  License:  %s\n", profile.LicenseName)
	}

	if len(profile.LanguageByteCounts) > 0 {
		langs := make([]string, 0, len(profile.LanguageByteCounts))
		for lang := range profile.LanguageByteCounts {
			langs = append(langs, lang)
		}
		sort.Slice(langs, func(i, j int) bool {
			bi, bj := profile.LanguageByteCounts[langs[i]], profile.LanguageByteCounts[langs[j]]
			if bi != bj {
				return bi > bj
			}
			return langs[i] < langs[j]
		})

		cmd.Println()
		cmd.Println("  Languages:")
		for _, lang := range langs {
			cmd.Printf("    %-12s %d bytes\n", lang, profile.LanguageByteCounts[lang])
		}
	}

	cmd.Println()
	cmd.Printf("  Dependencies: %d (dev: %d), scripts: %d\n",
		len(profile.Dependencies), len(profile.DevDependencies), len(profile.Scripts))

	if len(profile.Capabilities) > 0 {
		cmd.Println()
		cmd.Println("  Capabilities:")
		for _, capability := range profile.Capabilities {
			cmd.Printf("    - %s\n", capability)
		}
	}

	return nil
}
