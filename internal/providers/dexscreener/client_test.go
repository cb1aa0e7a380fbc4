package dexscreener_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumina-labs/lead-funnel/internal/adapter"
	"github.com/lumina-labs/lead-funnel/internal/domain"
	"github.com/lumina-labs/lead-funnel/internal/logger"
	"github.com/lumina-labs/lead-funnel/internal/mocks"
	"github.com/lumina-labs/lead-funnel/internal/providers/dexscreener"
)

const API_URL = "https://api.dexscreener.com"

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

type testSetup struct {
	ctrl       *gomock.Controller
	httpClient *mocks.MockHTTPClient
	clock      *mocks.MockClock
	client     dexscreener.Client
}

func newTestSetup(t *testing.T) *testSetup {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	httpClient := mocks.NewMockHTTPClient(ctrl)
	clock := mocks.NewMockClock(ctrl)
	client := dexscreener.NewClient(httpClient, API_URL, adapter.NewJSON(), clock)

	return &testSetup{
		ctrl:       ctrl,
		httpClient: httpClient,
		clock:      clock,
		client:     client,
	}
}

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

const boostedFeed = `[
	{
		"url": "https://dexscreener.com/solana/So1111",
		"chainId": "solana",
		"tokenAddress": "So1111",
		"description": "Moonbeam Finance",
		"links": [
			{"type": "telegram", "url": "https://t.me/moonbeamfi"},
			{"label": "Website", "url": "https://moonbeam.example"}
		]
	}
]`

const profileFeed = `[
	{
		"url": "https://dexscreener.com/solana/So1111",
		"chainId": "solana",
		"tokenAddress": "So1111"
	},
	{
		"url": "https://dexscreener.com/base/0xdust",
		"chainId": "base",
		"tokenAddress": "0xdust"
	}
]`

const moonbeamPairs = `{
	"schemaVersion": "1.0.0",
	"pairs": [
		{
			"chainId": "solana",
			"dexId": "raydium",
			"url": "https://dexscreener.com/solana/pair1",
			"pairAddress": "pair1",
			"baseToken": {"address": "So1111", "name": "Moonbeam Finance", "symbol": "MOON"},
			"priceUsd": "0.0042",
			"volume": {"h24": 125000},
			"liquidity": {"usd": 30000},
			"fdv": 400000,
			"marketCap": 380000,
			"pairCreatedAt": 1772999400000,
			"info": {
				"websites": [{"label": "Website", "url": "https://moonbeam.example"}],
				"socials": [{"type": "twitter", "url": "https://x.com/moonbeamfi"}]
			}
		},
		{
			"chainId": "solana",
			"dexId": "orca",
			"url": "https://dexscreener.com/solana/pair2",
			"pairAddress": "pair2",
			"baseToken": {"address": "So1111", "name": "Moonbeam Finance", "symbol": "MOON"},
			"volume": {"h24": 90000},
			"liquidity": {"usd": 80000},
			"pairCreatedAt": 1772999400000
		}
	]
}`

const dustPairs = `{
	"schemaVersion": "1.0.0",
	"pairs": [
		{
			"chainId": "base",
			"dexId": "uniswap",
			"pairAddress": "pairdust",
			"baseToken": {"address": "0xdust", "name": "Dust", "symbol": "DUST"},
			"volume": {"h24": 50},
			"liquidity": {"usd": 10},
			"pairCreatedAt": 1772999400000
		}
	]
}`

func TestDiscoverCandidates(t *testing.T) {
	s := newTestSetup(t)
	ctx := context.Background()

	s.clock.EXPECT().Now().Return(testNow).AnyTimes()
	s.httpClient.EXPECT().
		GetBytes(ctx, API_URL+"/token-boosts/top/v1", nil).
		Return([]byte(boostedFeed), nil)
	s.httpClient.EXPECT().
		GetBytes(ctx, API_URL+"/token-profiles/latest/v1", nil).
		Return([]byte(profileFeed), nil)
	// So1111 appears in both feeds but its pairs are fetched once
	s.httpClient.EXPECT().
		GetBytes(ctx, API_URL+"/latest/dex/tokens/So1111", nil).
		Return([]byte(moonbeamPairs), nil)
	s.httpClient.EXPECT().
		GetBytes(ctx, API_URL+"/latest/dex/tokens/0xdust", nil).
		Return([]byte(dustPairs), nil)

	candidates, err := s.client.DiscoverCandidates(ctx, domain.DiscoveryFilters{
		MinVolume24h: 1000,
		MinLiquidity: 5000,
		Limit:        20,
	})
	require.NoError(t, err)
	// The dust token fails both economic thresholds
	require.Len(t, candidates, 1)

	c := candidates[0]
	assert.Equal(t, "So1111", c.ContractAddress)
	assert.Equal(t, "Moonbeam Finance", c.Name)
	assert.Equal(t, "MOON", c.Symbol)
	assert.Equal(t, "solana", c.Chain)
	// The deepest-liquidity pair wins even with lower volume
	assert.Equal(t, float64(80000), c.Liquidity)
	assert.Equal(t, float64(90000), c.Volume24h)
	require.NotNil(t, c.PairURL)
	assert.Equal(t, "https://dexscreener.com/solana/pair2", *c.PairURL)
	// Profile links fill slots the pair info left empty
	require.NotNil(t, c.TelegramURL)
	assert.Equal(t, "https://t.me/moonbeamfi", *c.TelegramURL)
	require.NotNil(t, c.PairCreatedAt)
}

func TestDiscoverCandidatesMaxAge(t *testing.T) {
	s := newTestSetup(t)
	ctx := context.Background()

	s.clock.EXPECT().Now().Return(testNow).AnyTimes()
	s.httpClient.EXPECT().
		GetBytes(ctx, API_URL+"/token-boosts/top/v1", nil).
		Return([]byte(boostedFeed), nil)
	s.httpClient.EXPECT().
		GetBytes(ctx, API_URL+"/token-profiles/latest/v1", nil).
		Return([]byte(`[]`), nil)
	s.httpClient.EXPECT().
		GetBytes(ctx, API_URL+"/latest/dex/tokens/So1111", nil).
		Return([]byte(moonbeamPairs), nil)

	// The pair is over a day old; a tight age cap rejects it
	candidates, err := s.client.DiscoverCandidates(ctx, domain.DiscoveryFilters{
		MaxAgeHours: 1,
		Limit:       20,
	})
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestDiscoverCandidatesChainFilter(t *testing.T) {
	s := newTestSetup(t)
	ctx := context.Background()

	s.clock.EXPECT().Now().Return(testNow).AnyTimes()
	s.httpClient.EXPECT().
		GetBytes(ctx, API_URL+"/token-boosts/top/v1", nil).
		Return([]byte(boostedFeed), nil)
	s.httpClient.EXPECT().
		GetBytes(ctx, API_URL+"/token-profiles/latest/v1", nil).
		Return([]byte(profileFeed), nil)
	// The base-chain token is dropped before its pairs are ever fetched
	s.httpClient.EXPECT().
		GetBytes(ctx, API_URL+"/latest/dex/tokens/So1111", nil).
		Return([]byte(moonbeamPairs), nil)

	candidates, err := s.client.DiscoverCandidates(ctx, domain.DiscoveryFilters{
		Chains: []string{"Solana"},
		Limit:  20,
	})
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "So1111", candidates[0].ContractAddress)
}

func TestDiscoverCandidatesSkipsTokenWithoutPairs(t *testing.T) {
	s := newTestSetup(t)
	ctx := context.Background()

	s.clock.EXPECT().Now().Return(testNow).AnyTimes()
	s.httpClient.EXPECT().
		GetBytes(ctx, API_URL+"/token-boosts/top/v1", nil).
		Return([]byte(boostedFeed), nil)
	s.httpClient.EXPECT().
		GetBytes(ctx, API_URL+"/token-profiles/latest/v1", nil).
		Return([]byte(`[]`), nil)
	s.httpClient.EXPECT().
		GetBytes(ctx, API_URL+"/latest/dex/tokens/So1111", nil).
		Return([]byte(`{"schemaVersion": "1.0.0", "pairs": []}`), nil)

	candidates, err := s.client.DiscoverCandidates(ctx, domain.DiscoveryFilters{Limit: 20})
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestDiscoverCandidatesFeedError(t *testing.T) {
	s := newTestSetup(t)
	ctx := context.Background()

	s.httpClient.EXPECT().
		GetBytes(ctx, API_URL+"/token-boosts/top/v1", nil).
		Return(nil, assert.AnError)

	_, err := s.client.DiscoverCandidates(ctx, domain.DiscoveryFilters{Limit: 20})
	assert.Error(t, err)
}
