// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package papers

import (
	"errors"
	"strings"
	"testing"

	"github.com/pdiddy/paper-fetcher/internal/xmltree"
)

const sampleEFetchXML = `<?xml version="1.0"?>
<PubmedArticleSet>
  <PubmedArticle>
    <MedlineCitation>
      <PMID Version="1">38111111</PMID>
      <Article>
        <Journal>
          <JournalIssue>
            <PubDate>
              <Year>2024</Year>
              <Month>Mar</Month>
              <Day>15</Day>
            </PubDate>
          </JournalIssue>
        </Journal>
        <ArticleTitle>A novel kinase inhibitor</ArticleTitle>
        <AuthorList>
          <Author>
            <LastName>Smith</LastName>
            <ForeName>Alice</ForeName>
            <AffiliationInfo>
              <Affiliation>Acme Pharma Inc</Affiliation>
            </AffiliationInfo>
          </Author>
          <Author>
            <LastName>Jones</LastName>
            <ForeName>Bob</ForeName>
            <AffiliationInfo>
              <Affiliation>Dept of Biology, State University, contact: bjones@example.edu</Affiliation>
            </AffiliationInfo>
          </Author>
        </AuthorList>
      </Article>
    </MedlineCitation>
  </PubmedArticle>
  <PubmedArticle>
    <MedlineCitation>
      <PMID Version="1">38222222</PMID>
      <Article>
        <ArticleTitle>A second article</ArticleTitle>
        <AuthorList>
          <Author>
            <LastName>Lee</LastName>
          </Author>
        </AuthorList>
      </Article>
    </MedlineCitation>
  </PubmedArticle>
</PubmedArticleSet>`

func TestParseEmptyArticleSet(t *testing.T) {
	records, err := Parse(`<?xml version="1.0"?><PubmedArticleSet></PubmedArticleSet>`, nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("len(records) = %d, want 0", len(records))
	}
}

func TestParseMalformedXML(t *testing.T) {
	_, err := Parse("<PubmedArticleSet><PubmedArticle>", nil)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got: %v", err)
	}
}

func TestParseTwoArticles(t *testing.T) {
	records, err := Parse(sampleEFetchXML, nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}

	r := records[0]
	if r.PubmedID != "38111111" {
		t.Errorf("PubmedID = %q, want %q", r.PubmedID, "38111111")
	}
	if r.Title != "A novel kinase inhibitor" {
		t.Errorf("Title = %q", r.Title)
	}
	if r.PublicationDate != "2024 Mar 15" {
		t.Errorf("PublicationDate = %q, want %q", r.PublicationDate, "2024 Mar 15")
	}
	if r.NonAcademicAuthors != "Alice Smith" {
		t.Errorf("NonAcademicAuthors = %q, want %q", r.NonAcademicAuthors, "Alice Smith")
	}
	if r.CompanyAffiliations != "Acme Pharma Inc" {
		t.Errorf("CompanyAffiliations = %q, want %q", r.CompanyAffiliations, "Acme Pharma Inc")
	}
	if r.CorrespondingEmail != "bjones@example.edu" {
		t.Errorf("CorrespondingEmail = %q, want %q", r.CorrespondingEmail, "bjones@example.edu")
	}

	// Second article: no PubDate, no affiliations.
	r = records[1]
	if r.PubmedID != "38222222" {
		t.Errorf("PubmedID = %q", r.PubmedID)
	}
	if r.PublicationDate != "N/A" {
		t.Errorf("PublicationDate = %q, want %q", r.PublicationDate, "N/A")
	}
	if r.NonAcademicAuthors != "" {
		t.Errorf("NonAcademicAuthors = %q, want empty", r.NonAcademicAuthors)
	}
	if r.CompanyAffiliations != "" {
		t.Errorf("CompanyAffiliations = %q, want empty", r.CompanyAffiliations)
	}
	if r.CorrespondingEmail != "N/A" {
		t.Errorf("CorrespondingEmail = %q, want %q", r.CorrespondingEmail, "N/A")
	}
}

func TestParseMissingTitle(t *testing.T) {
	const xmlText = `<PubmedArticleSet><PubmedArticle>
		<MedlineCitation><PMID>1</PMID></MedlineCitation>
	</PubmedArticle></PubmedArticleSet>`

	records, err := Parse(xmlText, nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	if records[0].Title != "N/A" {
		t.Errorf("Title = %q, want %q", records[0].Title, "N/A")
	}
}

func TestParseMissingPMID(t *testing.T) {
	const xmlText = `<PubmedArticleSet><PubmedArticle>
		<MedlineCitation><Article><ArticleTitle>Untracked</ArticleTitle></Article></MedlineCitation>
	</PubmedArticle></PubmedArticleSet>`

	records, err := Parse(xmlText, nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if records[0].PubmedID != "N/A" {
		t.Errorf("PubmedID = %q, want %q", records[0].PubmedID, "N/A")
	}
}

// Two authors sharing one affiliation string both attribute credit to
// whichever of them appears first in document order.
func TestParseSharedAffiliationCreditsFirstAuthor(t *testing.T) {
	const xmlText = `<PubmedArticleSet><PubmedArticle>
		<MedlineCitation><PMID>7</PMID><Article>
			<ArticleTitle>Shared affiliation</ArticleTitle>
			<AuthorList>
				<Author>
					<LastName>First</LastName><ForeName>Fay</ForeName>
					<AffiliationInfo><Affiliation>BigPharma Inc</Affiliation></AffiliationInfo>
				</Author>
				<Author>
					<LastName>Second</LastName><ForeName>Sam</ForeName>
					<AffiliationInfo><Affiliation>BigPharma Inc</Affiliation></AffiliationInfo>
				</Author>
			</AuthorList>
		</Article></MedlineCitation>
	</PubmedArticle></PubmedArticleSet>`

	records, err := Parse(xmlText, nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	r := records[0]
	if r.NonAcademicAuthors != "Fay First; Fay First" {
		t.Errorf("NonAcademicAuthors = %q, want first author credited twice", r.NonAcademicAuthors)
	}
	if r.CompanyAffiliations != "BigPharma Inc; BigPharma Inc" {
		t.Errorf("CompanyAffiliations = %q, want both occurrences", r.CompanyAffiliations)
	}
}

func TestParseEmailExtraction(t *testing.T) {
	tests := []struct {
		name        string
		affiliation string
		want        string
	}{
		{"plain", "Dept of X, contact: jdoe@example.com", "jdoe@example.com"},
		{"last token", "a@b.org c@d.org", "c@d.org"},
		{"no email", "State University", "N/A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xmlText := `<PubmedArticleSet><PubmedArticle><MedlineCitation><PMID>1</PMID><Article>
				<AuthorList><Author><LastName>X</LastName>
					<AffiliationInfo><Affiliation>` + tt.affiliation + `</Affiliation></AffiliationInfo>
				</Author></AuthorList>
			</Article></MedlineCitation></PubmedArticle></PubmedArticleSet>`

			records, err := Parse(xmlText, nil)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if got := records[0].CorrespondingEmail; got != tt.want {
				t.Errorf("CorrespondingEmail = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseDateSkipsEmptyChildren(t *testing.T) {
	const xmlText = `<PubmedArticleSet><PubmedArticle><MedlineCitation><PMID>1</PMID><Article>
		<Journal><JournalIssue><PubDate>
			<Year>2023</Year>
			<Season></Season>
			<Month>Jul</Month>
		</PubDate></JournalIssue></Journal>
	</Article></MedlineCitation></PubmedArticle></PubmedArticleSet>`

	records, err := Parse(xmlText, nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := records[0].PublicationDate; got != "2023 Jul" {
		t.Errorf("PublicationDate = %q, want %q", got, "2023 Jul")
	}
}

func TestExtractAuthors(t *testing.T) {
	const xmlText = `<PubmedArticleSet><PubmedArticle><MedlineCitation><Article>
		<AuthorList>
			<Author><LastName>Solo</LastName></Author>
			<Author><LastName> Trimmed </LastName><ForeName> Tess </ForeName></Author>
		</AuthorList>
	</Article></MedlineCitation></PubmedArticle></PubmedArticleSet>`

	root, err := xmltree.Parse([]byte(xmlText))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	authors := ExtractAuthors(root)
	if len(authors) != 2 {
		t.Fatalf("len(authors) = %d, want 2", len(authors))
	}
	// Missing fore name leaves no leading space.
	if authors[0].Name != "Solo" {
		t.Errorf("authors[0].Name = %q, want %q", authors[0].Name, "Solo")
	}
	if authors[1].Name != "Tess Trimmed" {
		t.Errorf("authors[1].Name = %q, want %q", authors[1].Name, "Tess Trimmed")
	}
	if authors[0].Affiliation != "" {
		t.Errorf("authors[0].Affiliation = %q, want empty", authors[0].Affiliation)
	}
}

func TestParseCustomKeywords(t *testing.T) {
	const xmlText = `<PubmedArticleSet><PubmedArticle><MedlineCitation><PMID>1</PMID><Article>
		<AuthorList><Author><LastName>K</LastName>
			<AffiliationInfo><Affiliation>Example GmbH</Affiliation></AffiliationInfo>
		</Author></AuthorList>
	</Article></MedlineCitation></PubmedArticle></PubmedArticleSet>`

	records, err := Parse(xmlText, Keywords([]string{"gmbh"}))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if records[0].CompanyAffiliations != "Example GmbH" {
		t.Errorf("CompanyAffiliations = %q, want custom keyword match", records[0].CompanyAffiliations)
	}
}

func TestRecordsPreserveDocumentOrder(t *testing.T) {
	records, err := Parse(sampleEFetchXML, nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if records[0].PubmedID != "38111111" || records[1].PubmedID != "38222222" {
		t.Errorf("records out of document order: %q, %q", records[0].PubmedID, records[1].PubmedID)
	}
}

func TestIsCompanyAffiliation(t *testing.T) {
	tests := []struct {
		affiliation string
		want        bool
	}{
		{"Acme Pharma Inc", true},
		{"Genomic Biotech Ltd", true},
		{"MegaCorp Corporation", true},
		{"INCANDESCENT LABS", true}, // "inc" substring, known over-match
		{"State University", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.affiliation, func(t *testing.T) {
			if got := IsCompanyAffiliation(tt.affiliation, DefaultCompanyKeywords); got != tt.want {
				t.Errorf("IsCompanyAffiliation(%q) = %v, want %v", tt.affiliation, got, tt.want)
			}
		})
	}
}

func TestKeywords(t *testing.T) {
	got := Keywords([]string{" GmbH ", "", "llc"})
	want := append(append([]string{}, DefaultCompanyKeywords...), "gmbh", "llc")
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Keywords = %v, want %v", got, want)
	}
}
