// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paper-fetcher CLI: search PubMed,
// fetch the matched articles, extract six fields per article, and write CSV
// or print to the terminal.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the paper-fetcher CLI.
var rootCmd = &cobra.Command{
	Use:   "paper-fetcher <query>",
	Short: "Fetch PubMed papers with company-affiliated authors",
	Long: `paper-fetcher searches PubMed for a free-text term, fetches the matched
articles in one batch, and extracts per article: the PubMed ID, title,
publication date, authors with company affiliations, the matched affiliation
strings, and a best-effort corresponding author email.

Results go to the terminal by default, or to a CSV file with --file. The NCBI
API key is read from the PUBMED_API_KEY environment variable (or
.secrets/pubmed-api-key).`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runFetch,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paper-fetcher.yaml or ~/.config/paper-fetcher/config.yaml)")

	rootCmd.Flags().StringP("file", "f", "", "write results as CSV to this path instead of printing")
	rootCmd.Flags().BoolP("debug", "d", false, "print diagnostic lines (query text, identifier count)")
	rootCmd.Flags().Bool("json", false, "print results as JSON instead of one line per record")
	rootCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	rootCmd.Flags().Int("max-results", 0, "cap on identifiers returned by the search (0 = server default)")
	rootCmd.Flags().String("keywords-file", "", "YAML list of extra company-affiliation keywords")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paper-fetcher")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paper-fetcher"))
		}
	}

	viper.SetDefault("http.timeout", defaultTimeout)
	viper.SetDefault("http.user_agent", defaultUserAgent)
	viper.SetDefault("max_results", 0)

	viper.SetEnvPrefix("PAPER_FETCHER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	// .env is optional; a missing file is not an error.
	godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		// Single failure boundary: one printed line, no stack traces, no
		// partial output. The process exits zero on all paths, matching
		// the tool's documented exit behavior.
		fmt.Fprintf(os.Stderr, "paper-fetcher: error: %v\n", err)
	}
}
