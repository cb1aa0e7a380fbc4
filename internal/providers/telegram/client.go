// Package telegram implements the messenger capability against a Telegram
// automation gateway: a sidecar service that owns the user session and
// exposes join, admin-listing, and direct-message operations over HTTP.
//
// The gateway reports platform failures as structured JSON error payloads
// on non-2xx responses; this client maps them onto the domain error
// taxonomy. Plain 429s are the gateway's own transient throttling and are
// absorbed by the HTTP adapter's retry, so a FLOOD_WAIT that reaches this
// layer is a real platform-imposed pause.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lumina-labs/lead-funnel/internal/adapter"
	"github.com/lumina-labs/lead-funnel/internal/domain"
	"github.com/lumina-labs/lead-funnel/internal/messenger"
)

const PROVIDER_NAME = "telegram"

// Gateway error codes
const (
	codeFloodWait         = "FLOOD_WAIT"
	codeUsernameInvalid   = "USERNAME_INVALID"
	codeUsernameNotFound  = "USERNAME_NOT_OCCUPIED"
	codeChannelPrivate    = "CHANNEL_PRIVATE"
	codeInviteOnly        = "INVITE_HASH_INVALID"
	codePrivacyRestricted = "PRIVACY_RESTRICTED"
	codePeerFlood         = "PEER_FLOOD"
)

// errorPayload is the gateway's structured error body
type errorPayload struct {
	Error struct {
		Code              string `json:"code"`
		Message           string `json:"message"`
		RetryAfterSeconds int    `json:"retry_after_seconds"`
	} `json:"error"`
}

type joinRequest struct {
	Handle string `json:"handle"`
}

type joinResponse struct {
	Handle        string `json:"handle"`
	Title         string `json:"title"`
	MemberCount   *int   `json:"member_count"`
	AlreadyMember bool   `json:"already_member"`
}

type adminPayload struct {
	Handle      string `json:"handle"`
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	IsOwner     bool   `json:"is_owner"`
}

type adminsResponse struct {
	Admins []adminPayload `json:"admins"`
}

type sendRequest struct {
	Recipient string `json:"recipient"`
	Body      string `json:"body"`
}

// TelegramClient implements messenger.Messenger against the gateway
type TelegramClient struct {
	httpClient adapter.HTTPClient
	apiURL     string
	apiKey     string
	json       adapter.JSON
}

// NewClient creates a new Telegram gateway client
func NewClient(httpClient adapter.HTTPClient, apiURL string, apiKey string, json adapter.JSON) messenger.Messenger {
	return &TelegramClient{
		httpClient: httpClient,
		apiURL:     apiURL,
		apiKey:     apiKey,
		json:       json,
	}
}

func (c *TelegramClient) headers() map[string]string {
	h := map[string]string{
		"Content-Type": "application/json",
		// Request IDs tie gateway logs to funnel logs
		"X-Request-ID": uuid.NewString(),
	}
	if c.apiKey != "" {
		h["Authorization"] = "Bearer " + c.apiKey
	}
	return h
}

// JoinGroup joins the public group identified by handle
func (c *TelegramClient) JoinGroup(ctx context.Context, handle string) (*messenger.JoinResult, error) {
	body, err := c.json.Marshal(joinRequest{Handle: handle})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal join request: %w", err)
	}

	respBody, err := c.httpClient.PostBytes(ctx, c.apiURL+"/v1/groups/join", c.headers(), body)
	if err != nil {
		return nil, c.mapGatewayError(err)
	}

	var resp joinResponse
	if err := c.json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal join response: %w", err)
	}

	return &messenger.JoinResult{
		GroupHandle:   resp.Handle,
		GroupTitle:    resp.Title,
		MemberCount:   resp.MemberCount,
		AlreadyMember: resp.AlreadyMember,
	}, nil
}

// ListAdmins returns the group's administrators, owner included
func (c *TelegramClient) ListAdmins(ctx context.Context, handle string) ([]domain.AdminInfo, error) {
	url := fmt.Sprintf("%s/v1/groups/%s/admins", c.apiURL, handle)
	respBody, err := c.httpClient.GetBytes(ctx, url, c.headers())
	if err != nil {
		return nil, c.mapGatewayError(err)
	}

	var resp adminsResponse
	if err := c.json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal admins response: %w", err)
	}

	admins := make([]domain.AdminInfo, 0, len(resp.Admins))
	for _, a := range resp.Admins {
		// Admins without a public handle cannot be messaged
		if a.Handle == "" {
			continue
		}
		admins = append(admins, domain.AdminInfo{
			Handle:      a.Handle,
			UserID:      a.UserID,
			DisplayName: a.DisplayName,
			IsOwner:     a.IsOwner,
		})
	}
	return admins, nil
}

// SendMessage delivers a direct message to the recipient handle
func (c *TelegramClient) SendMessage(ctx context.Context, recipient, body string) error {
	reqBody, err := c.json.Marshal(sendRequest{Recipient: recipient, Body: body})
	if err != nil {
		return fmt.Errorf("failed to marshal send request: %w", err)
	}

	if _, err := c.httpClient.PostBytes(ctx, c.apiURL+"/v1/messages", c.headers(), reqBody); err != nil {
		return c.mapGatewayError(err)
	}
	return nil
}

// mapGatewayError translates a gateway error response into the domain
// error taxonomy. Errors without a structured payload pass through wrapped.
func (c *TelegramClient) mapGatewayError(err error) error {
	var statusErr *adapter.StatusError
	if !errors.As(err, &statusErr) {
		return fmt.Errorf("failed to call Telegram gateway: %w", err)
	}

	var payload errorPayload
	if jsonErr := c.json.Unmarshal(statusErr.Body, &payload); jsonErr != nil || payload.Error.Code == "" {
		return fmt.Errorf("telegram gateway returned status %d: %w", statusErr.Code, err)
	}

	switch payload.Error.Code {
	case codeFloodWait, codePeerFlood:
		retryAfter := time.Duration(payload.Error.RetryAfterSeconds) * time.Second
		if retryAfter <= 0 {
			// PEER_FLOOD carries no duration; treat it as a long pause
			retryAfter = time.Hour
		}
		return &domain.FloodWaitError{RetryAfter: retryAfter}
	case codeUsernameInvalid, codeUsernameNotFound:
		return fmt.Errorf("%w: %s", domain.ErrInvalidHandle, payload.Error.Message)
	case codeChannelPrivate, codeInviteOnly:
		return fmt.Errorf("%w: %s", domain.ErrPrivateEntity, payload.Error.Message)
	case codePrivacyRestricted:
		return fmt.Errorf("%w: %s", domain.ErrPrivacyRestricted, payload.Error.Message)
	default:
		return fmt.Errorf("telegram gateway error %s: %s", payload.Error.Code, payload.Error.Message)
	}
}
