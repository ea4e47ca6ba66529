// Package external provides adapters for external services.
// These adapters implement the ports for weather providers, city search,
// reverse geocoding and device position.
package external

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"meteorenard.app/internal/ports"
	"meteorenard.app/pkg/errors"
)

// DefaultHTTPTimeout applies when an adapter is built without a timeout
const DefaultHTTPTimeout = 10 * time.Second

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func newHTTPClient(timeout time.Duration) HTTPClient {
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}
	return &http.Client{Timeout: timeout}
}

// getJSON issues a GET against endpoint with query and decodes a 200 body
// into out. Transport failures, non-200 statuses and undecodable bodies are
// provider errors naming the upstream.
func getJSON(ctx context.Context, client HTTPClient, logger ports.Logger, upstream, endpoint string, query url.Values, header http.Header, out interface{}) error {
	target := endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return errors.NewProviderError(fmt.Sprintf("failed to build %s request", upstream), err)
	}
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return errors.NewProviderError(fmt.Sprintf("failed to call %s", upstream), err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Warn("Failed to close response body", ports.F("upstream", upstream), ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return errors.NewProviderError(
			fmt.Sprintf("%s API error: status %d %s", upstream, resp.StatusCode, http.StatusText(resp.StatusCode)), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewProviderError(fmt.Sprintf("failed to decode %s response", upstream), err)
	}
	return nil
}

// round rounds halves up: 2.5 becomes 3, -2.5 becomes -2
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

func roundPtr(v *float64) *int {
	if v == nil {
		return nil
	}
	r := round(*v)
	return &r
}
