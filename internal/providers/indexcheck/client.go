// Package indexcheck probes whether a project website appears in Google's
// search index, using the Custom Search JSON API with a site: query.
// A site absent from the index suggests a young or low-effort project,
// which is exactly the outreach profile the funnel wants.
package indexcheck

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/lumina-labs/lead-funnel/internal/adapter"
	"github.com/lumina-labs/lead-funnel/internal/domain"
)

const PROVIDER_NAME = "google_index"

// DefaultAPIURL is the Custom Search JSON API endpoint
const DefaultAPIURL = "https://www.googleapis.com/customsearch/v1"

var ErrNoAPIKey = errors.New("no API key provided")

// ErrUnprobeableURL marks a website URL that can never produce a probe,
// so callers can retire it from the check queue instead of retrying
var ErrUnprobeableURL = errors.New("website URL cannot be probed")

// searchResponse is the slice of the Custom Search response we care about
type searchResponse struct {
	SearchInformation struct {
		TotalResults string `json:"totalResults"`
	} `json:"searchInformation"`
}

// Client defines the interface for index-check operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/indexcheck_client.go -package=mocks -mock_names=Client=MockIndexChecker
type Client interface {
	// CheckIndexed reports whether the website's domain is present in the
	// search index. The verdict is unknown when the probe itself fails.
	CheckIndexed(ctx context.Context, websiteURL string) (domain.IndexStatus, error)
}

// GoogleIndexClient implements the index check via Google Custom Search
type GoogleIndexClient struct {
	httpClient     adapter.HTTPClient
	apiURL         string
	apiKey         string
	searchEngineID string
	json           adapter.JSON
}

// NewClient creates a new Google index-check client
func NewClient(httpClient adapter.HTTPClient, apiURL, apiKey, searchEngineID string, json adapter.JSON) Client {
	return &GoogleIndexClient{
		httpClient:     httpClient,
		apiURL:         apiURL,
		apiKey:         apiKey,
		searchEngineID: searchEngineID,
		json:           json,
	}
}

// CheckIndexed runs a site: query for the website's domain
func (c *GoogleIndexClient) CheckIndexed(ctx context.Context, websiteURL string) (domain.IndexStatus, error) {
	if c.apiKey == "" || c.searchEngineID == "" {
		return domain.IndexStatusUnknown, ErrNoAPIKey
	}

	host, err := extractHost(websiteURL)
	if err != nil {
		return domain.IndexStatusUnknown, err
	}

	query := url.Values{}
	query.Set("key", c.apiKey)
	query.Set("cx", c.searchEngineID)
	query.Set("q", "site:"+host)
	query.Set("num", "1")

	respBody, err := c.httpClient.GetBytes(ctx, c.apiURL+"?"+query.Encode(), nil)
	if err != nil {
		return domain.IndexStatusUnknown, fmt.Errorf("failed to call search API: %w", err)
	}

	var resp searchResponse
	if err := c.json.Unmarshal(respBody, &resp); err != nil {
		return domain.IndexStatusUnknown, fmt.Errorf("failed to unmarshal search response: %w", err)
	}

	total, err := strconv.ParseInt(resp.SearchInformation.TotalResults, 10, 64)
	if err != nil {
		return domain.IndexStatusUnknown, fmt.Errorf("unexpected totalResults %q", resp.SearchInformation.TotalResults)
	}

	if total > 0 {
		return domain.IndexStatusIndexed, nil
	}
	return domain.IndexStatusNotIndexed, nil
}

// extractHost pulls the bare hostname out of a website URL
func extractHost(raw string) (string, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: failed to parse %q: %v", ErrUnprobeableURL, raw, err)
	}
	host := parsed.Hostname()
	if host == "" {
		// A bare domain without a scheme parses as a path
		parsed, err = url.Parse("https://" + raw)
		if err != nil || parsed.Hostname() == "" {
			return "", fmt.Errorf("%w: no hostname in %q", ErrUnprobeableURL, raw)
		}
		host = parsed.Hostname()
	}
	return host, nil
}
