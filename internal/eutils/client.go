// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package eutils queries the NCBI E-utilities API: ESearch for PubMed
// identifiers matching a term, EFetch for the full article records.
package eutils

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/paper-fetcher/internal/httputil"
	"github.com/pdiddy/paper-fetcher/internal/xmltree"
)

// E-utilities endpoints. Declared as vars so tests can substitute an
// httptest server.
var (
	esearchBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"
	efetchBase  = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"
)

// Client issues E-utilities requests. The API key is sent with both calls.
type Client struct {
	HTTPClient *http.Client
	APIKey     string
	UserAgent  string
}

// RequestError reports a failed E-utilities call: a transport error, a
// non-2xx status, or an unparseable search response.
type RequestError struct {
	Endpoint string
	Status   int
	Err      error
}

func (e *RequestError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s request failed: HTTP %d", e.Endpoint, e.Status)
	}
	return fmt.Sprintf("%s request failed: %v", e.Endpoint, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// SearchIDs queries ESearch for query and returns every Id element found in
// the response, at any depth, in document order. Duplicates and ordering are
// passed through as returned by the server. retMax caps the result count
// when positive; zero leaves the server default in place.
func (c *Client) SearchIDs(ctx context.Context, query string, retMax int) ([]string, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query is empty")
	}

	params := url.Values{
		"db":         {"pubmed"},
		"term":       {query},
		"retmode":    {"xml"},
		"usehistory": {"y"},
		"api_key":    {c.APIKey},
	}
	if retMax > 0 {
		params.Set("retmax", strconv.Itoa(retMax))
	}

	resp, err := httputil.Get(ctx, c.HTTPClient, esearchBase+"?"+params.Encode(), c.UserAgent)
	if err != nil {
		return nil, &RequestError{Endpoint: "esearch", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, &RequestError{Endpoint: "esearch", Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Endpoint: "esearch", Err: err}
	}

	root, err := xmltree.Parse(body)
	if err != nil {
		return nil, &RequestError{Endpoint: "esearch", Err: err}
	}

	var ids []string
	for _, n := range root.FindAll("Id") {
		ids = append(ids, n.Text())
	}
	return ids, nil
}

// FetchDetails queries EFetch for the given identifiers and returns the raw
// XML response body. An empty id list still issues the request. On a non-2xx
// status it writes a diagnostic with the raw body to w and returns an empty
// string with a nil error, so the caller degrades to an empty result set
// instead of aborting. Transport errors propagate as *RequestError.
func (c *Client) FetchDetails(ctx context.Context, ids []string, w io.Writer) (string, error) {
	params := url.Values{
		"db":      {"pubmed"},
		"id":      {strings.Join(ids, ",")},
		"retmode": {"xml"},
		"api_key": {c.APIKey},
	}

	resp, err := httputil.Get(ctx, c.HTTPClient, efetchBase+"?"+params.Encode(), c.UserAgent)
	if err != nil {
		return "", &RequestError{Endpoint: "efetch", Err: err}
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		fmt.Fprintf(w, "efetch returned HTTP %d: %s\n", resp.StatusCode, body)
		return "", nil
	}
	if readErr != nil {
		return "", &RequestError{Endpoint: "efetch", Err: readErr}
	}

	return string(body), nil
}
