// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the paper-fetcher pipeline:
// the flat output record produced per article, the positional author/affiliation
// pair used during extraction, and the fetch configuration.
package types

// Record is the flat output unit, one per PubMed article. Every field is
// always populated: absent scalar data is the literal "N/A", absent list
// data is the empty string. Multi-valued fields are joined with "; " in
// document order.
type Record struct {
	// PubmedID is the article's PMID, or "N/A" when the source omits it.
	PubmedID string `json:"pubmed_id" yaml:"pubmed_id"`

	// Title is the article title, or "N/A".
	Title string `json:"title" yaml:"title"`

	// PublicationDate is the space-joined text of the article's first
	// date container's children (e.g. "2024 Mar 15"), or "N/A".
	PublicationDate string `json:"publication_date" yaml:"publication_date"`

	// NonAcademicAuthors is the "; "-joined list of author names credited
	// with a company affiliation, empty when none matched.
	NonAcademicAuthors string `json:"non_academic_authors" yaml:"non_academic_authors"`

	// CompanyAffiliations is the "; "-joined list of affiliation strings
	// classified as company affiliations, empty when none matched.
	CompanyAffiliations string `json:"company_affiliations" yaml:"company_affiliations"`

	// CorrespondingEmail is the best-effort email extracted from the first
	// affiliation containing "@", or "N/A".
	CorrespondingEmail string `json:"corresponding_email" yaml:"corresponding_email"`
}

// Author pairs a display name with its affiliation text, positionally within
// one article. Affiliation is empty when the source element carries none.
// Credit attribution looks authors up by affiliation value, first match in
// document order, so the pairing order must be preserved.
type Author struct {
	Name        string `json:"name" yaml:"name"`
	Affiliation string `json:"affiliation" yaml:"affiliation"`
}
