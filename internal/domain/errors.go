package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidHandle is returned when a group URL does not contain a
	// resolvable public handle, or the platform rejects the handle
	ErrInvalidHandle = errors.New("invalid group handle")

	// ErrPrivateEntity is returned when the target group or channel is private
	ErrPrivateEntity = errors.New("private group or channel")

	// ErrPrivacyRestricted is returned when the recipient's privacy settings
	// forbid direct messages from non-contacts
	ErrPrivacyRestricted = errors.New("recipient privacy restricted")

	// ErrLeadNotFound is returned when a lead lookup matches no row
	ErrLeadNotFound = errors.New("lead not found")

	// ErrInvalidCounter is returned when a daily-metric increment names a
	// counter outside the fixed enumeration
	ErrInvalidCounter = errors.New("unknown metric counter")
)

// FloodWaitError is a platform-imposed throttle on the messaging capability.
// It carries the mandatory wait reported by the platform.
type FloodWaitError struct {
	RetryAfter time.Duration
}

func (e *FloodWaitError) Error() string {
	return fmt.Sprintf("flood wait: retry after %s", e.RetryAfter)
}

// IsTerminalMessagingError reports whether err is a per-target failure that
// will not succeed on retry (as opposed to a transient throttle).
func IsTerminalMessagingError(err error) bool {
	return errors.Is(err, ErrInvalidHandle) ||
		errors.Is(err, ErrPrivateEntity) ||
		errors.Is(err, ErrPrivacyRestricted)
}
