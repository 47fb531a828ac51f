// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package papers transforms an EFetch XML response into flat output records
// and renders them as CSV, terminal lines, or JSON.
package papers

import (
	"fmt"
	"strings"

	"github.com/pdiddy/paper-fetcher/internal/xmltree"
	"github.com/pdiddy/paper-fetcher/pkg/types"
)

// ParseError reports a malformed EFetch response body.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing article XML: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse extracts one Record per PubmedArticle element in xmlText, in document
// order. No article is filtered, deduplicated, or reordered. keywords is the
// affiliation classification list; nil selects DefaultCompanyKeywords.
// Malformed input yields a *ParseError.
func Parse(xmlText string, keywords []string) ([]types.Record, error) {
	root, err := xmltree.Parse([]byte(xmlText))
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	if keywords == nil {
		keywords = DefaultCompanyKeywords
	}

	var records []types.Record
	for _, article := range root.FindAll("PubmedArticle") {
		records = append(records, extractRecord(article, keywords))
	}
	return records, nil
}

// extractRecord flattens one article element into a Record.
func extractRecord(article *xmltree.Node, keywords []string) types.Record {
	rec := types.Record{
		PubmedID:           "N/A",
		Title:              "N/A",
		PublicationDate:    "N/A",
		CorrespondingEmail: "N/A",
	}

	if n := article.FindFirst("PMID"); n != nil {
		rec.PubmedID = n.Text()
	}
	if n := article.FindFirst("ArticleTitle"); n != nil {
		rec.Title = n.Text()
	}
	if d := article.FindFirst("PubDate"); d != nil {
		var parts []string
		for _, child := range d.Children() {
			if child.Text() != "" {
				parts = append(parts, child.Text())
			}
		}
		rec.PublicationDate = strings.Join(parts, " ")
	}

	authors := ExtractAuthors(article)

	var nonAcademic, companies []string
	for _, a := range authors {
		if !IsCompanyAffiliation(a.Affiliation, keywords) {
			continue
		}
		companies = append(companies, a.Affiliation)
		// Credit goes to the first author carrying this exact affiliation
		// string, not necessarily the author at this position. Two authors
		// sharing an affiliation both attribute to the first of them.
		for _, b := range authors {
			if b.Affiliation == a.Affiliation {
				nonAcademic = append(nonAcademic, b.Name)
				break
			}
		}
	}
	rec.NonAcademicAuthors = strings.Join(nonAcademic, "; ")
	rec.CompanyAffiliations = strings.Join(companies, "; ")

	// Best-effort email: first affiliation containing "@", last
	// whitespace-delimited token. Not an address parser.
	for _, a := range authors {
		if strings.Contains(a.Affiliation, "@") {
			fields := strings.Fields(a.Affiliation)
			rec.CorrespondingEmail = fields[len(fields)-1]
			break
		}
	}

	return rec
}

// ExtractAuthors returns the article's authors as positional name/affiliation
// pairs, in document order. The display name joins the trimmed fore and last
// names with a single space; a missing fore name leaves no leading space.
// The affiliation is the first Affiliation element at any depth within the
// author element, or empty.
func ExtractAuthors(article *xmltree.Node) []types.Author {
	var authors []types.Author
	for _, a := range article.FindAll("Author") {
		fore := strings.TrimSpace(a.ChildText("ForeName"))
		last := strings.TrimSpace(a.ChildText("LastName"))
		name := strings.TrimSpace(fore + " " + last)

		affiliation := ""
		if n := a.FindFirst("Affiliation"); n != nil {
			affiliation = n.Text()
		}

		authors = append(authors, types.Author{Name: name, Affiliation: affiliation})
	}
	return authors
}
