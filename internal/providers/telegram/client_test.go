package telegram_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumina-labs/lead-funnel/internal/adapter"
	"github.com/lumina-labs/lead-funnel/internal/domain"
	"github.com/lumina-labs/lead-funnel/internal/messenger"
	"github.com/lumina-labs/lead-funnel/internal/mocks"
	"github.com/lumina-labs/lead-funnel/internal/providers/telegram"
)

const GATEWAY_URL = "http://localhost:8085"

type testSetup struct {
	ctrl       *gomock.Controller
	httpClient *mocks.MockHTTPClient
	client     messenger.Messenger
}

func newTestSetup(t *testing.T) *testSetup {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := telegram.NewClient(httpClient, GATEWAY_URL, "secret-token", adapter.NewJSON())

	return &testSetup{ctrl: ctrl, httpClient: httpClient, client: client}
}

func TestJoinGroup(t *testing.T) {
	s := newTestSetup(t)
	ctx := context.Background()

	s.httpClient.EXPECT().
		PostBytes(ctx, GATEWAY_URL+"/v1/groups/join", gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, url string, headers map[string]string, body []byte) ([]byte, error) {
			assert.Equal(t, "Bearer secret-token", headers["Authorization"])
			assert.NotEmpty(t, headers["X-Request-ID"])
			assert.JSONEq(t, `{"handle": "moonbeamfi"}`, string(body))
			return []byte(`{"handle": "moonbeamfi", "title": "Moonbeam Finance", "member_count": 420}`), nil
		})

	result, err := s.client.JoinGroup(ctx, "moonbeamfi")
	require.NoError(t, err)
	assert.Equal(t, "moonbeamfi", result.GroupHandle)
	assert.Equal(t, "Moonbeam Finance", result.GroupTitle)
	require.NotNil(t, result.MemberCount)
	assert.Equal(t, 420, *result.MemberCount)
	assert.False(t, result.AlreadyMember)
}

func TestJoinGroupFloodWait(t *testing.T) {
	s := newTestSetup(t)
	ctx := context.Background()

	s.httpClient.EXPECT().
		PostBytes(ctx, GATEWAY_URL+"/v1/groups/join", gomock.Any(), gomock.Any()).
		Return(nil, &adapter.StatusError{
			Code: 422,
			Body: []byte(`{"error": {"code": "FLOOD_WAIT", "message": "flood wait", "retry_after_seconds": 300}}`),
		})

	_, err := s.client.JoinGroup(ctx, "moonbeamfi")
	var floodErr *domain.FloodWaitError
	require.ErrorAs(t, err, &floodErr)
	assert.Equal(t, 5*time.Minute, floodErr.RetryAfter)
}

func TestJoinGroupPrivateChannel(t *testing.T) {
	s := newTestSetup(t)
	ctx := context.Background()

	s.httpClient.EXPECT().
		PostBytes(ctx, GATEWAY_URL+"/v1/groups/join", gomock.Any(), gomock.Any()).
		Return(nil, &adapter.StatusError{
			Code: 403,
			Body: []byte(`{"error": {"code": "CHANNEL_PRIVATE", "message": "the channel is private"}}`),
		})

	_, err := s.client.JoinGroup(ctx, "secretgroup")
	assert.ErrorIs(t, err, domain.ErrPrivateEntity)
}

func TestJoinGroupInvalidHandle(t *testing.T) {
	s := newTestSetup(t)
	ctx := context.Background()

	s.httpClient.EXPECT().
		PostBytes(ctx, GATEWAY_URL+"/v1/groups/join", gomock.Any(), gomock.Any()).
		Return(nil, &adapter.StatusError{
			Code: 404,
			Body: []byte(`{"error": {"code": "USERNAME_NOT_OCCUPIED", "message": "nobody owns this username"}}`),
		})

	_, err := s.client.JoinGroup(ctx, "doesnotexist")
	assert.ErrorIs(t, err, domain.ErrInvalidHandle)
}

func TestListAdmins(t *testing.T) {
	s := newTestSetup(t)
	ctx := context.Background()

	s.httpClient.EXPECT().
		GetBytes(ctx, GATEWAY_URL+"/v1/groups/moonbeamfi/admins", gomock.Any()).
		Return([]byte(`{
			"admins": [
				{"handle": "owner_bob", "user_id": "1002", "display_name": "Bob", "is_owner": true},
				{"handle": "mod_alice", "user_id": "1001", "display_name": "Alice"},
				{"handle": "", "user_id": "1003", "display_name": "Hidden"}
			]
		}`), nil)

	admins, err := s.client.ListAdmins(ctx, "moonbeamfi")
	require.NoError(t, err)
	// The admin without a public handle is dropped
	require.Len(t, admins, 2)
	assert.Equal(t, "owner_bob", admins[0].Handle)
	assert.True(t, admins[0].IsOwner)
	assert.Equal(t, "mod_alice", admins[1].Handle)
}

func TestSendMessage(t *testing.T) {
	s := newTestSetup(t)
	ctx := context.Background()

	s.httpClient.EXPECT().
		PostBytes(ctx, GATEWAY_URL+"/v1/messages", gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, url string, headers map[string]string, body []byte) ([]byte, error) {
			assert.JSONEq(t, `{"recipient": "owner_bob", "body": "gm Bob"}`, string(body))
			return []byte(`{"status": "sent"}`), nil
		})

	err := s.client.SendMessage(ctx, "owner_bob", "gm Bob")
	assert.NoError(t, err)
}

func TestSendMessagePrivacyRestricted(t *testing.T) {
	s := newTestSetup(t)
	ctx := context.Background()

	s.httpClient.EXPECT().
		PostBytes(ctx, GATEWAY_URL+"/v1/messages", gomock.Any(), gomock.Any()).
		Return(nil, &adapter.StatusError{
			Code: 403,
			Body: []byte(`{"error": {"code": "PRIVACY_RESTRICTED", "message": "user restricts messages"}}`),
		})

	err := s.client.SendMessage(ctx, "mod_alice", "gm")
	assert.ErrorIs(t, err, domain.ErrPrivacyRestricted)
}

func TestSendMessagePeerFloodDefaultsToLongPause(t *testing.T) {
	s := newTestSetup(t)
	ctx := context.Background()

	s.httpClient.EXPECT().
		PostBytes(ctx, GATEWAY_URL+"/v1/messages", gomock.Any(), gomock.Any()).
		Return(nil, &adapter.StatusError{
			Code: 429,
			Body: []byte(`{"error": {"code": "PEER_FLOOD", "message": "too many requests"}}`),
		})

	err := s.client.SendMessage(ctx, "mod_alice", "gm")
	var floodErr *domain.FloodWaitError
	require.ErrorAs(t, err, &floodErr)
	assert.Equal(t, time.Hour, floodErr.RetryAfter)
}

func TestUnstructuredGatewayErrorPassesThrough(t *testing.T) {
	s := newTestSetup(t)
	ctx := context.Background()

	s.httpClient.EXPECT().
		PostBytes(ctx, GATEWAY_URL+"/v1/messages", gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	err := s.client.SendMessage(ctx, "mod_alice", "gm")
	require.Error(t, err)
	assert.False(t, domain.IsTerminalMessagingError(err))
}
