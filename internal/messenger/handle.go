package messenger

import (
	"regexp"
	"strings"

	"github.com/lumina-labs/lead-funnel/internal/domain"
)

var (
	tmeLinkRe      = regexp.MustCompile(`(?i)(?:t\.me|telegram\.me)/([a-zA-Z0-9_]+)`)
	atMentionRe    = regexp.MustCompile(`^@([a-zA-Z0-9_]+)$`)
	bareHandleRe   = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	inviteMarkerRe = regexp.MustCompile(`(?i)(?:t\.me|telegram\.me)/(?:joinchat/|\+)`)
)

// reservedPaths are t.me paths that name platform features, not groups
var reservedPaths = map[string]bool{
	"share":       true,
	"addstickers": true,
	"addtheme":    true,
	"proxy":       true,
	"socks":       true,
}

// ExtractHandle pulls a public group or user handle out of a raw link or
// mention. Accepted forms are t.me/name, telegram.me/name, @name, and a
// bare handle. Invite links (t.me/+hash, t.me/joinchat/...) identify private
// groups and yield domain.ErrPrivateEntity; anything else unusable yields
// domain.ErrInvalidHandle.
func ExtractHandle(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", domain.ErrInvalidHandle
	}

	if inviteMarkerRe.MatchString(raw) {
		return "", domain.ErrPrivateEntity
	}

	if m := tmeLinkRe.FindStringSubmatch(raw); m != nil {
		handle := m[1]
		if reservedPaths[strings.ToLower(handle)] {
			return "", domain.ErrInvalidHandle
		}
		return handle, nil
	}

	if m := atMentionRe.FindStringSubmatch(raw); m != nil {
		return m[1], nil
	}

	// A bare handle, but never something that looks like a URL we failed
	// to parse
	if !strings.Contains(raw, "/") && !strings.Contains(raw, ".") && bareHandleRe.MatchString(raw) {
		return raw, nil
	}

	return "", domain.ErrInvalidHandle
}
