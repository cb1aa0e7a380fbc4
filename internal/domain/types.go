package domain

import (
	"strings"
	"time"
)

// LeadStatus represents a lead's position in the outreach funnel.
// Transitions are strictly forward: discovered -> joined -> contacted -> (responded | converted).
type LeadStatus string

const (
	// StatusDiscovered is the initial status assigned when a lead is first inserted
	StatusDiscovered LeadStatus = "discovered"
	// StatusJoined means the lead's messaging group was joined successfully
	StatusJoined LeadStatus = "joined"
	// StatusContacted means at least one direct message was delivered to a group admin
	StatusContacted LeadStatus = "contacted"
	// StatusResponded means a contacted admin replied
	StatusResponded LeadStatus = "responded"
	// StatusConverted means the outreach resulted in a conversion
	StatusConverted LeadStatus = "converted"
)

// statusRank orders statuses along the funnel so regressions can be rejected
var statusRank = map[LeadStatus]int{
	StatusDiscovered: 0,
	StatusJoined:     1,
	StatusContacted:  2,
	StatusResponded:  3,
	StatusConverted:  3,
}

// CanAdvanceTo reports whether moving from s to next is a forward transition
func (s LeadStatus) CanAdvanceTo(next LeadStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to > from
}

// Valid reports whether s is a known funnel status
func (s LeadStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// IndexStatus is the tri-state result of a search-index probe
type IndexStatus string

const (
	IndexStatusIndexed    IndexStatus = "indexed"
	IndexStatusNotIndexed IndexStatus = "not_indexed"
	IndexStatusUnknown    IndexStatus = "unknown"
)

// ActionClass identifies a rate-limited outreach action class.
// Budgets are tracked independently per class.
type ActionClass string

const (
	// ActionJoin covers group-join attempts
	ActionJoin ActionClass = "join"
	// ActionMessage covers direct-message sends
	ActionMessage ActionClass = "message"
)

// Candidate is one token record returned by the discovery client,
// captured at discovery time before it becomes a Lead.
type Candidate struct {
	ContractAddress string
	Name            string
	Symbol          string
	Chain           string
	Website         *string
	TelegramURL     *string
	TwitterURL      *string
	PairURL         *string
	Volume24h       float64
	Liquidity       float64
	MarketCap       float64
	PairCreatedAt   *time.Time
}

// AgeHours returns the candidate's pair age at the given instant,
// or 0 when the creation time is unknown.
func (c *Candidate) AgeHours(now time.Time) float64 {
	if c.PairCreatedAt == nil {
		return 0
	}
	return now.Sub(*c.PairCreatedAt).Hours()
}

// DiscoveryFilters are the economic thresholds applied by the discovery client
type DiscoveryFilters struct {
	// Chains restricts discovery to these chain IDs; empty means any chain
	Chains       []string
	MinVolume24h float64
	MinLiquidity float64
	MaxAgeHours  float64
	Limit        int
}

// AllowsChain reports whether the chain ID passes the chain restriction
func (f *DiscoveryFilters) AllowsChain(chainID string) bool {
	if len(f.Chains) == 0 {
		return true
	}
	for _, c := range f.Chains {
		if strings.EqualFold(c, chainID) {
			return true
		}
	}
	return false
}

// AdminInfo describes one group administrator reported by the messaging capability
type AdminInfo struct {
	Handle      string
	UserID      string
	DisplayName string
	IsOwner     bool
}

// SummaryStats holds all-time funnel aggregates derived from the store.
// Rates are percentages; a zero denominator yields 0, never NaN.
type SummaryStats struct {
	TotalLeads        int64   `json:"total_leads"`
	LeadsWithTelegram int64   `json:"leads_with_telegram"`
	UnindexedSites    int64   `json:"unindexed_sites"`
	GroupsJoined      int64   `json:"groups_joined"`
	LeadsContacted    int64   `json:"leads_contacted"`
	MessagesSent      int64   `json:"messages_sent"`
	ResponsesReceived int64   `json:"responses_received"`
	Conversions       int64   `json:"conversions"`
	ResponseRate      float64 `json:"response_rate"`
	ConversionRate    float64 `json:"conversion_rate"`
}

// Counter names one of the fixed daily-metric columns. The set is closed:
// the store rejects increments for counters outside this enumeration.
type Counter string

const (
	CounterTokensFound        Counter = "tokens_found"
	CounterTokensWithTelegram Counter = "tokens_with_telegram"
	CounterUnindexedSites     Counter = "unindexed_sites_found"
	CounterGroupsJoined       Counter = "groups_joined"
	CounterJoinFailures       Counter = "join_failures"
	CounterAdminsFound        Counter = "admins_found"
	CounterMessagesSent       Counter = "dms_sent"
	CounterMessagesFailed     Counter = "dms_failed"
	CounterResponsesReceived  Counter = "responses_received"
	CounterConversions        Counter = "conversions"
)
