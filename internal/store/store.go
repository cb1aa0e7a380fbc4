package store

import (
	"context"
	"time"

	"github.com/lumina-labs/lead-funnel/internal/domain"
	"github.com/lumina-labs/lead-funnel/internal/store/schema"
)

// GroupJoin carries the outcome of one group-join attempt
type GroupJoin struct {
	LeadID      int64
	GroupURL    string
	GroupHandle string
	Success     bool
	Error       *string
	MemberCount *int
	// Throttled marks a platform flood wait: the failed attempt is recorded
	// for audit, but a platform-wide throttle does not consume one of the
	// lead's own join attempts
	Throttled bool
}

// MessageRecord carries the outcome of one direct-message attempt
type MessageRecord struct {
	LeadID   int64
	AdminID  int64
	Body     string
	Template string
	Success  bool
	Error    *string
}

// Store defines the interface for database operations.
//
// All mutating operations are atomic with respect to their own row set:
// a status advance and its metric increment either both happen or neither does.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// Migrate creates or updates the database schema
	Migrate(ctx context.Context) error

	// AddLead inserts a candidate as a new lead, keyed by contract address.
	// Inserting a known address is a no-op that returns the existing ID with
	// created=false and leaves prior outreach state untouched. Daily counters
	// are incremented only on a true first insert.
	AddLead(ctx context.Context, c domain.Candidate) (leadID int64, created bool, err error)

	// GetLead retrieves a lead by internal ID, or nil when absent
	GetLead(ctx context.Context, leadID int64) (*schema.Lead, error)

	// GetLeadByContract retrieves a lead by contract address, or nil when absent
	GetLeadByContract(ctx context.Context, contractAddress string) (*schema.Lead, error)

	// SetLeadStatus updates a lead's funnel status. The store does not enforce
	// ordering; callers must only ever advance.
	SetLeadStatus(ctx context.Context, leadID int64, status domain.LeadStatus) error

	// RecordIndexStatus stores a search-index probe result for a lead.
	// An unknown result clears nothing and records only the check time.
	RecordIndexStatus(ctx context.Context, leadID int64, status domain.IndexStatus) error

	// ListUncontactedLeads returns leads still eligible for a first join:
	// status discovered, a group link present, fewer than maxJoinAttempts
	// failed joins, newest first. With onlyUnindexed set, leads must also
	// have a not-indexed probe result.
	ListUncontactedLeads(ctx context.Context, limit int, onlyUnindexed bool, maxJoinAttempts int) ([]*schema.Lead, error)

	// ListJoinedLeadsWithUncontactedAdmins returns joined leads whose
	// discovered admins have no successful message yet, so partial progress
	// from earlier cycles is resumed.
	ListJoinedLeadsWithUncontactedAdmins(ctx context.Context, limit int) ([]*schema.Lead, error)

	// ListLeadsNeedingIndexCheck returns leads with a website and no probe
	// result yet, newest first
	ListLeadsNeedingIndexCheck(ctx context.Context, limit int) ([]*schema.Lead, error)

	// ListLeads returns leads newest first, optionally filtered by status
	ListLeads(ctx context.Context, status *domain.LeadStatus, limit int) ([]*schema.Lead, error)

	// RecordGroupJoin upserts the membership row for (lead, group URL) and
	// returns its ID. On success it advances the lead to joined and counts
	// groups_joined; on failure it counts join_failures and, unless the
	// attempt was throttled, bumps the lead's join-attempt counter.
	RecordGroupJoin(ctx context.Context, join GroupJoin) (membershipID int64, err error)

	// AddAdmin records a discovered admin, idempotent on (lead, handle).
	// The admins_found counter moves only on first insert.
	AddAdmin(ctx context.Context, leadID, membershipID int64, admin domain.AdminInfo) (adminID int64, created bool, err error)

	// ListUncontactedAdmins returns the lead's admins with no successful
	// message, group owners first then discovery order
	ListUncontactedAdmins(ctx context.Context, leadID int64) ([]*schema.Admin, error)

	// RecordMessage inserts an outreach-message row. On success it advances
	// the lead to contacted and counts dms_sent; on failure it counts dms_failed.
	RecordMessage(ctx context.Context, msg MessageRecord) (messageID int64, err error)

	// WasContacted reports whether any admin of the lead identified by the
	// contract address has a successful message
	WasContacted(ctx context.Context, contractAddress string) (bool, error)

	// RecordResponse marks a message as answered, counts responses_received
	// on the first response, and advances the lead to responded
	RecordResponse(ctx context.Context, messageID int64, text string) error

	// MarkConverted flags a message's outreach as converted, counts
	// conversions on first conversion, and advances the lead to converted
	MarkConverted(ctx context.Context, messageID int64, notes string) error

	// GetDailyMetrics returns the counters for one calendar date, or nil
	// when nothing was recorded that day
	GetDailyMetrics(ctx context.Context, date time.Time) (*schema.DailyMetric, error)

	// GetMetricsRange returns the last N days of counters, newest first
	GetMetricsRange(ctx context.Context, days int) ([]*schema.DailyMetric, error)

	// GetSummaryStats returns all-time funnel aggregates with
	// divide-by-zero-guarded rates
	GetSummaryStats(ctx context.Context) (*domain.SummaryStats, error)

	// LogError appends an entry to the error audit log
	LogError(ctx context.Context, errorType, message, errContext string) error

	// ListRecentErrors returns the newest audit-log entries
	ListRecentErrors(ctx context.Context, limit int) ([]*schema.ErrorLogEntry, error)

	// MarkErrorResolved sets the resolved flag on an audit-log entry
	MarkErrorResolved(ctx context.Context, entryID int64) error

	// Close releases the underlying database connection
	Close() error
}
