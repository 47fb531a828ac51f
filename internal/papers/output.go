// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package papers

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/paper-fetcher/pkg/types"
)

// CSVHeader lists the output columns in their fixed order.
var CSVHeader = []string{
	"PubmedID",
	"Title",
	"Publication Date",
	"Non-academic Author(s)",
	"Company Affiliation(s)",
	"Corresponding Author Email",
}

// WriteCSV writes the header row and one row per record to w. Values are
// quoted and escaped per RFC 4180 by encoding/csv.
func WriteCSV(w io.Writer, records []types.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.PubmedID,
			r.Title,
			r.PublicationDate,
			r.NonAcademicAuthors,
			r.CompanyAffiliations,
			r.CorrespondingEmail,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the records to path as UTF-8 CSV. The file is held
// only for the duration of the write and closed on every path.
func WriteCSVFile(path string, records []types.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, records); err != nil {
		return err
	}
	return f.Close()
}

// FormatRecords writes one line per record to w, all six fields named.
func FormatRecords(records []types.Record, w io.Writer) {
	for _, r := range records {
		fmt.Fprintf(w, "PubmedID: %s | Title: %s | Publication Date: %s | Non-academic Author(s): %s | Company Affiliation(s): %s | Corresponding Author Email: %s\n",
			r.PubmedID, r.Title, r.PublicationDate,
			r.NonAcademicAuthors, r.CompanyAffiliations, r.CorrespondingEmail)
	}
}

// FormatJSON writes the records as indented JSON to w.
func FormatJSON(records []types.Record, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
