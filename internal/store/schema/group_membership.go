package schema

import "time"

// GroupMembership records one join attempt against a lead's messaging group.
// The (lead_id, group_url) pair is unique: a repeated attempt updates the
// existing row instead of inserting a duplicate.
type GroupMembership struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// LeadID references the owning lead
	LeadID int64 `gorm:"column:lead_id;not null;uniqueIndex:idx_memberships_lead_url,priority:1"`
	// GroupURL is the group link as discovered
	GroupURL string `gorm:"column:group_url;not null;type:text;uniqueIndex:idx_memberships_lead_url,priority:2"`
	// GroupHandle is the public handle extracted from the URL
	GroupHandle string `gorm:"column:group_handle;type:text"`
	// JoinedAt records when the attempt was made
	JoinedAt time.Time `gorm:"column:joined_at;not null;default:now()"`
	// JoinSuccess reports whether the join completed
	JoinSuccess bool `gorm:"column:join_success;not null;default:false"`
	// JoinError holds the failure reason for unsuccessful attempts
	JoinError *string `gorm:"column:join_error;type:text"`
	// MemberCount is the group size observed on a successful join
	MemberCount *int `gorm:"column:member_count"`
}

// TableName specifies the table name for the GroupMembership model
func (GroupMembership) TableName() string {
	return "group_memberships"
}
