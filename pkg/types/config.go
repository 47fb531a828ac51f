package types

import "time"

// HTTPConfig holds shared HTTP settings for the two E-utilities calls.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paper-fetcher/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for a fetch run.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults caps the number of identifiers the search returns
	// (retmax). Zero leaves the server default in place.
	MaxResults int `json:"max_results" yaml:"max_results"`

	// CompanyKeywords extends the affiliation classification list.
	// Entries are matched as lower-cased substrings.
	CompanyKeywords []string `json:"company_keywords,omitempty" yaml:"company_keywords,omitempty"`
}
