package schema

import "time"

// DailyMetric holds one calendar date's funnel counters. Exactly one row
// exists per date; the row is created lazily on the first increment and
// counters only ever grow.
type DailyMetric struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Date is the calendar date the counters cover (UTC, truncated to day)
	Date time.Time `gorm:"column:date;not null;uniqueIndex;type:date"`

	TokensFound         int64 `gorm:"column:tokens_found;not null;default:0"`
	TokensWithTelegram  int64 `gorm:"column:tokens_with_telegram;not null;default:0"`
	UnindexedSitesFound int64 `gorm:"column:unindexed_sites_found;not null;default:0"`
	GroupsJoined        int64 `gorm:"column:groups_joined;not null;default:0"`
	JoinFailures        int64 `gorm:"column:join_failures;not null;default:0"`
	AdminsFound         int64 `gorm:"column:admins_found;not null;default:0"`
	MessagesSent        int64 `gorm:"column:dms_sent;not null;default:0"`
	MessagesFailed      int64 `gorm:"column:dms_failed;not null;default:0"`
	ResponsesReceived   int64 `gorm:"column:responses_received;not null;default:0"`
	Conversions         int64 `gorm:"column:conversions;not null;default:0"`
}

// TableName specifies the table name for the DailyMetric model
func (DailyMetric) TableName() string {
	return "daily_metrics"
}
