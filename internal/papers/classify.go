// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package papers

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// DefaultCompanyKeywords is the affiliation classification list. An
// affiliation whose lower-cased text contains any of these substrings is
// treated as a company affiliation. The list is a named policy so it can be
// extended through configuration rather than edited in place.
var DefaultCompanyKeywords = []string{
	"pharma",
	"biotech",
	"inc",
	"ltd",
	"corporation",
}

// Keywords returns DefaultCompanyKeywords extended with extra entries,
// lower-cased. Blank entries are dropped.
func Keywords(extra []string) []string {
	out := make([]string, 0, len(DefaultCompanyKeywords)+len(extra))
	out = append(out, DefaultCompanyKeywords...)
	for _, kw := range extra {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			out = append(out, kw)
		}
	}
	return out
}

// LoadKeywords reads a YAML list of extra classification keywords from path.
// The entries are returned as-is; combine them with the defaults through
// Keywords.
func LoadKeywords(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keywords file: %w", err)
	}
	var extra []string
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return nil, fmt.Errorf("parsing keywords file %s: %w", path, err)
	}
	return extra, nil
}

// IsCompanyAffiliation reports whether the affiliation's lower-cased text
// contains any of the keywords. An empty affiliation never matches.
func IsCompanyAffiliation(affiliation string, keywords []string) bool {
	if affiliation == "" {
		return false
	}
	lower := strings.ToLower(affiliation)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
