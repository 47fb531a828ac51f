// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by the fetch stages.
package httputil

import (
	"context"
	"fmt"
	"net/http"
)

// Get issues a GET request for url with the given User-Agent and returns the
// response. The caller owns the response body. Failures are not retried:
// every request is issued exactly once and any failure is terminal for the
// run.
func Get(ctx context.Context, client *http.Client, url, userAgent string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}
	return client.Do(req)
}
