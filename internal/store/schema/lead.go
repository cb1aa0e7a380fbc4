package schema

import (
	"time"

	"github.com/lumina-labs/lead-funnel/internal/domain"
)

// Lead represents the leads table - one discovered token/project tracked
// through the outreach funnel. The contract address is the natural key:
// re-discovering a known address never creates a second row.
type Lead struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ContractAddress is the globally unique on-chain identifier
	ContractAddress string `gorm:"column:contract_address;not null;uniqueIndex;type:text"`
	// Name is the token's display name
	Name string `gorm:"column:name;type:text"`
	// Symbol is the token's ticker symbol
	Symbol string `gorm:"column:symbol;type:text"`
	// Chain identifies the blockchain network (e.g. "solana", "ethereum", "base")
	Chain string `gorm:"column:chain;type:text"`
	// Website is the project website, when published
	Website *string `gorm:"column:website;type:text"`
	// TelegramURL is the messaging-group link, when published
	TelegramURL *string `gorm:"column:telegram_url;type:text"`
	// TwitterURL is the social link, when published
	TwitterURL *string `gorm:"column:twitter_url;type:text"`
	// PairURL is the market-data page for the token's trading pair
	PairURL *string `gorm:"column:pair_url;type:text"`

	// Market metrics captured at discovery time
	Volume24h float64 `gorm:"column:volume_24h"`
	Liquidity float64 `gorm:"column:liquidity"`
	MarketCap float64 `gorm:"column:market_cap"`
	AgeHours  float64 `gorm:"column:age_hours"`

	// Indexed is the search-index probe result (nil until checked)
	Indexed *bool `gorm:"column:is_indexed"`
	// IndexCheckedAt records when the probe last ran
	IndexCheckedAt *time.Time `gorm:"column:index_checked_at"`

	// Status is the lead's funnel position; transitions are forward-only
	Status domain.LeadStatus `gorm:"column:status;not null;default:discovered;type:text;index:idx_leads_status"`
	// JoinAttempts counts failed group joins; leads past the configured
	// ceiling are excluded from further join attempts
	JoinAttempts int `gorm:"column:join_attempts;not null;default:0"`

	DiscoveredAt time.Time `gorm:"column:discovered_at;not null;default:now();index:idx_leads_discovered"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null;default:now()"`

	// Associations
	Memberships []GroupMembership `gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE"`
	Admins      []Admin           `gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE"`
	Messages    []OutreachMessage `gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Lead model
func (Lead) TableName() string {
	return "leads"
}
