// Package messenger defines the outreach capability surface: joining a
// lead's group, listing its admins, and sending direct messages. The
// concrete implementation lives in providers/telegram.
package messenger

import (
	"context"

	"github.com/lumina-labs/lead-funnel/internal/domain"
)

// JoinResult describes a completed group join
type JoinResult struct {
	// GroupHandle is the resolved public handle of the joined group
	GroupHandle string
	// GroupTitle is the group's display title
	GroupTitle string
	// MemberCount is the group size when reported by the platform
	MemberCount *int
	// AlreadyMember is set when the account was in the group before the call
	AlreadyMember bool
}

// Messenger is the messaging-platform capability used by the funnel.
//
// Implementations map platform failures onto the domain error taxonomy:
// domain.FloodWaitError for platform-imposed backoff, domain.ErrPrivateEntity
// for unreachable groups, domain.ErrPrivacyRestricted for recipients that
// reject messages from strangers, and domain.ErrInvalidHandle for handles
// the platform does not recognize.
//
//go:generate mockgen -source=messenger.go -destination=../mocks/messenger.go -package=mocks -mock_names=Messenger=MockMessenger
type Messenger interface {
	// JoinGroup joins the public group identified by handle
	JoinGroup(ctx context.Context, handle string) (*JoinResult, error)

	// ListAdmins returns the group's administrators, owner included
	ListAdmins(ctx context.Context, handle string) ([]domain.AdminInfo, error)

	// SendMessage delivers a direct message to the recipient handle
	SendMessage(ctx context.Context, recipient, body string) error
}
