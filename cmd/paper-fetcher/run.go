package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-fetcher/internal/eutils"
	"github.com/pdiddy/paper-fetcher/internal/papers"
	"github.com/pdiddy/paper-fetcher/internal/secrets"
	"github.com/pdiddy/paper-fetcher/pkg/types"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "paper-fetcher/0.1"
)

// runFetch is the whole pipeline: resolve key, search identifiers, fetch
// details, extract records, emit. The key check happens before any network
// activity.
func runFetch(cmd *cobra.Command, args []string) error {
	query := args[0]
	outPath, _ := cmd.Flags().GetString("file")
	debug, _ := cmd.Flags().GetBool("debug")
	asJSON, _ := cmd.Flags().GetBool("json")

	cfg := fetchConfig(cmd)

	apiKey, err := secrets.APIKey(secrets.DefaultDir)
	if err != nil {
		return err
	}

	extra := cfg.CompanyKeywords
	if kwPath, _ := cmd.Flags().GetString("keywords-file"); kwPath != "" {
		fileExtra, err := papers.LoadKeywords(kwPath)
		if err != nil {
			return err
		}
		extra = append(extra, fileExtra...)
	}
	keywords := papers.Keywords(extra)

	if debug {
		fmt.Fprintf(os.Stderr, "query: %s\n", query)
	}

	client := &eutils.Client{
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
		APIKey:     apiKey,
		UserAgent:  cfg.UserAgent,
	}
	ctx := cmd.Context()

	ids, err := client.SearchIDs(ctx, query, cfg.MaxResults)
	if err != nil {
		return err
	}
	if debug {
		fmt.Fprintf(os.Stderr, "identifiers retrieved: %d\n", len(ids))
	}

	raw, err := client.FetchDetails(ctx, ids, os.Stderr)
	if err != nil {
		return err
	}
	if raw == "" {
		fmt.Println("No data fetched.")
		return nil
	}

	records, err := papers.Parse(raw, keywords)
	if err != nil {
		return err
	}

	switch {
	case outPath != "":
		if err := papers.WriteCSVFile(outPath, records); err != nil {
			return err
		}
		fmt.Printf("Wrote %d record(s) to %s\n", len(records), outPath)
	case asJSON:
		return papers.FormatJSON(records, os.Stdout)
	default:
		papers.FormatRecords(records, os.Stdout)
	}
	return nil
}

// fetchConfig merges viper settings (config file, environment) with flag
// overrides.
func fetchConfig(cmd *cobra.Command) types.FetchConfig {
	cfg := types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("http.timeout"),
			UserAgent: viper.GetString("http.user_agent"),
		},
		MaxResults:      viper.GetInt("max_results"),
		CompanyKeywords: viper.GetStringSlice("company_keywords"),
	}

	if t, _ := cmd.Flags().GetDuration("timeout"); t > 0 {
		cfg.Timeout = t
	}
	if m, _ := cmd.Flags().GetInt("max-results"); m > 0 {
		cfg.MaxResults = m
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	return cfg
}
