// Package dexscreener discovers newly listed tokens through the public
// DEXScreener API.
package dexscreener

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lumina-labs/lead-funnel/internal/adapter"
	"github.com/lumina-labs/lead-funnel/internal/domain"
	"github.com/lumina-labs/lead-funnel/internal/logger"
)

const PROVIDER_NAME = "dexscreener"

// DefaultAPIURL is the public API base; the API needs no key
const DefaultAPIURL = "https://api.dexscreener.com"

// BoostedToken represents one entry of the boosted/profile token feeds
type BoostedToken struct {
	URL          string      `json:"url"`
	ChainID      string      `json:"chainId"`
	TokenAddress string      `json:"tokenAddress"`
	Description  string      `json:"description"`
	Links        []TokenLink `json:"links"`
}

// TokenLink is one social or website link attached to a token profile
type TokenLink struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// PairsResponse represents the response of the token-pairs endpoint
type PairsResponse struct {
	SchemaVersion string `json:"schemaVersion"`
	Pairs         []Pair `json:"pairs"`
}

// Pair represents one trading pair of a token
type Pair struct {
	ChainID     string `json:"chainId"`
	DexID       string `json:"dexId"`
	URL         string `json:"url"`
	PairAddress string `json:"pairAddress"`
	BaseToken   struct {
		Address string `json:"address"`
		Name    string `json:"name"`
		Symbol  string `json:"symbol"`
	} `json:"baseToken"`
	PriceUSD string `json:"priceUsd"`
	Volume   struct {
		H24 float64 `json:"h24"`
	} `json:"volume"`
	Liquidity struct {
		USD float64 `json:"usd"`
	} `json:"liquidity"`
	FDV       float64 `json:"fdv"`
	MarketCap float64 `json:"marketCap"`
	// PairCreatedAt is a millisecond epoch timestamp
	PairCreatedAt int64 `json:"pairCreatedAt"`
	Info          struct {
		Websites []TokenLink `json:"websites"`
		Socials  []TokenLink `json:"socials"`
	} `json:"info"`
}

// Client defines the interface for DEXScreener client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/dexscreener_client.go -package=mocks -mock_names=Client=MockDiscoveryClient
type Client interface {
	// DiscoverCandidates returns newly listed tokens passing the filters,
	// newest feed entries first, at most filters.Limit entries
	DiscoverCandidates(ctx context.Context, filters domain.DiscoveryFilters) ([]domain.Candidate, error)
}

// DEXScreenerClient implements the DEXScreener client
type DEXScreenerClient struct {
	httpClient adapter.HTTPClient
	apiURL     string
	json       adapter.JSON
	clock      adapter.Clock
}

// NewClient creates a new DEXScreener client
func NewClient(httpClient adapter.HTTPClient, apiURL string, json adapter.JSON, clock adapter.Clock) Client {
	return &DEXScreenerClient{
		httpClient: httpClient,
		apiURL:     apiURL,
		json:       json,
		clock:      clock,
	}
}

// DiscoverCandidates merges the boosted and latest-profile feeds, resolves
// each token's best trading pair, and applies the economic filters
func (c *DEXScreenerClient) DiscoverCandidates(ctx context.Context, filters domain.DiscoveryFilters) ([]domain.Candidate, error) {
	boosted, err := c.fetchFeed(ctx, "/token-boosts/top/v1")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch boosted tokens: %w", err)
	}
	profiles, err := c.fetchFeed(ctx, "/token-profiles/latest/v1")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest token profiles: %w", err)
	}

	seen := make(map[string]bool)
	feed := make([]BoostedToken, 0, len(boosted)+len(profiles))
	for _, token := range append(boosted, profiles...) {
		if token.TokenAddress == "" || seen[token.TokenAddress] {
			continue
		}
		if !filters.AllowsChain(token.ChainID) {
			continue
		}
		seen[token.TokenAddress] = true
		feed = append(feed, token)
	}

	now := c.clock.Now()
	candidates := make([]domain.Candidate, 0, len(feed))
	for _, token := range feed {
		if filters.Limit > 0 && len(candidates) >= filters.Limit {
			break
		}

		pair, err := c.fetchBestPair(ctx, token.TokenAddress)
		if err != nil {
			logger.WarnCtx(ctx, "skipping token without pair data",
				zap.String("provider", PROVIDER_NAME),
				zap.String("token", token.TokenAddress),
				zap.Error(err))
			continue
		}
		if pair == nil {
			continue
		}

		candidate := c.buildCandidate(token, pair)
		if !passesFilters(&candidate, filters, now) {
			continue
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

// fetchFeed retrieves one of the flat token feeds
func (c *DEXScreenerClient) fetchFeed(ctx context.Context, path string) ([]BoostedToken, error) {
	respBody, err := c.httpClient.GetBytes(ctx, c.apiURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call DEXScreener API: %w", err)
	}

	var tokens []BoostedToken
	if err := c.json.Unmarshal(respBody, &tokens); err != nil {
		return nil, fmt.Errorf("failed to unmarshal DEXScreener feed: %w", err)
	}
	return tokens, nil
}

// fetchBestPair returns the token's deepest-liquidity pair, or nil when the
// token has no pairs yet
func (c *DEXScreenerClient) fetchBestPair(ctx context.Context, tokenAddress string) (*Pair, error) {
	url := fmt.Sprintf("%s/latest/dex/tokens/%s", c.apiURL, tokenAddress)
	respBody, err := c.httpClient.GetBytes(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call DEXScreener API: %w", err)
	}

	var response PairsResponse
	if err := c.json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal DEXScreener pairs: %w", err)
	}
	if len(response.Pairs) == 0 {
		return nil, nil
	}

	best := &response.Pairs[0]
	for i := range response.Pairs {
		if response.Pairs[i].Liquidity.USD > best.Liquidity.USD {
			best = &response.Pairs[i]
		}
	}
	return best, nil
}

// buildCandidate maps a feed entry and its best pair onto a candidate.
// Pair info links win over profile links; the profile fills the gaps.
func (c *DEXScreenerClient) buildCandidate(token BoostedToken, pair *Pair) domain.Candidate {
	candidate := domain.Candidate{
		ContractAddress: token.TokenAddress,
		Name:            pair.BaseToken.Name,
		Symbol:          pair.BaseToken.Symbol,
		Chain:           pair.ChainID,
		Volume24h:       pair.Volume.H24,
		Liquidity:       pair.Liquidity.USD,
		MarketCap:       pair.MarketCap,
	}
	if candidate.Chain == "" {
		candidate.Chain = token.ChainID
	}
	if candidate.MarketCap == 0 {
		candidate.MarketCap = pair.FDV
	}
	if pair.URL != "" {
		candidate.PairURL = &pair.URL
	}
	if pair.PairCreatedAt > 0 {
		created := time.UnixMilli(pair.PairCreatedAt).UTC()
		candidate.PairCreatedAt = &created
	}

	if len(pair.Info.Websites) > 0 && pair.Info.Websites[0].URL != "" {
		candidate.Website = strPtr(pair.Info.Websites[0].URL)
	}
	for _, social := range pair.Info.Socials {
		assignSocial(&candidate, social)
	}
	for _, link := range token.Links {
		assignSocial(&candidate, link)
	}
	return candidate
}

// assignSocial fills an empty social slot on the candidate from one link
func assignSocial(candidate *domain.Candidate, link TokenLink) {
	linkType := strings.ToLower(link.Type)
	if linkType == "" {
		linkType = strings.ToLower(link.Label)
	}
	switch linkType {
	case "telegram":
		if candidate.TelegramURL == nil && link.URL != "" {
			candidate.TelegramURL = strPtr(link.URL)
		}
	case "twitter":
		if candidate.TwitterURL == nil && link.URL != "" {
			candidate.TwitterURL = strPtr(link.URL)
		}
	case "website":
		if candidate.Website == nil && link.URL != "" {
			candidate.Website = strPtr(link.URL)
		}
	}
}

func passesFilters(c *domain.Candidate, filters domain.DiscoveryFilters, now time.Time) bool {
	if c.Volume24h < filters.MinVolume24h {
		return false
	}
	if c.Liquidity < filters.MinLiquidity {
		return false
	}
	if filters.MaxAgeHours > 0 && c.PairCreatedAt != nil && c.AgeHours(now) > filters.MaxAgeHours {
		return false
	}
	return true
}

func strPtr(s string) *string { return &s }
