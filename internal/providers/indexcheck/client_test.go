package indexcheck_test

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumina-labs/lead-funnel/internal/adapter"
	"github.com/lumina-labs/lead-funnel/internal/domain"
	"github.com/lumina-labs/lead-funnel/internal/mocks"
	"github.com/lumina-labs/lead-funnel/internal/providers/indexcheck"
)

const API_URL = "https://www.googleapis.com/customsearch/v1"

func newTestClient(t *testing.T) (indexcheck.Client, *mocks.MockHTTPClient) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := indexcheck.NewClient(httpClient, API_URL, "test-key", "test-cx", adapter.NewJSON())
	return client, httpClient
}

func TestCheckIndexed(t *testing.T) {
	client, httpClient := newTestClient(t)
	ctx := context.Background()

	httpClient.EXPECT().
		GetBytes(ctx, gomock.Any(), nil).
		DoAndReturn(func(ctx context.Context, rawURL string, headers map[string]string) ([]byte, error) {
			parsed, err := url.Parse(rawURL)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(rawURL, API_URL+"?"))
			assert.Equal(t, "site:moonbeam.example", parsed.Query().Get("q"))
			assert.Equal(t, "test-key", parsed.Query().Get("key"))
			return []byte(`{"searchInformation": {"totalResults": "12"}}`), nil
		})

	status, err := client.CheckIndexed(ctx, "https://moonbeam.example/launch")
	require.NoError(t, err)
	assert.Equal(t, domain.IndexStatusIndexed, status)
}

func TestCheckNotIndexed(t *testing.T) {
	client, httpClient := newTestClient(t)
	ctx := context.Background()

	httpClient.EXPECT().
		GetBytes(ctx, gomock.Any(), nil).
		Return([]byte(`{"searchInformation": {"totalResults": "0"}}`), nil)

	status, err := client.CheckIndexed(ctx, "moonbeam.example")
	require.NoError(t, err)
	assert.Equal(t, domain.IndexStatusNotIndexed, status)
}

func TestCheckIndexedAPIFailure(t *testing.T) {
	client, httpClient := newTestClient(t)
	ctx := context.Background()

	httpClient.EXPECT().
		GetBytes(ctx, gomock.Any(), nil).
		Return(nil, assert.AnError)

	status, err := client.CheckIndexed(ctx, "https://moonbeam.example")
	assert.Error(t, err)
	assert.Equal(t, domain.IndexStatusUnknown, status)
}

func TestCheckIndexedUnprobeableURL(t *testing.T) {
	// No HTTP expectations: a URL with no extractable host never reaches
	// the search API and fails with the sentinel callers retire on
	client, _ := newTestClient(t)
	ctx := context.Background()

	for _, raw := range []string{"://not-a-url", ""} {
		status, err := client.CheckIndexed(ctx, raw)
		assert.ErrorIs(t, err, indexcheck.ErrUnprobeableURL, raw)
		assert.Equal(t, domain.IndexStatusUnknown, status)
	}
}

func TestCheckIndexedWithoutKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	client := indexcheck.NewClient(mocks.NewMockHTTPClient(ctrl), API_URL, "", "", adapter.NewJSON())

	status, err := client.CheckIndexed(context.Background(), "https://moonbeam.example")
	assert.ErrorIs(t, err, indexcheck.ErrNoAPIKey)
	assert.Equal(t, domain.IndexStatusUnknown, status)
}
