package schema

import "time"

// Admin is a discovered administrator of a lead's messaging group.
// The (lead_id, handle) pair is unique; re-discovery is a no-op.
type Admin struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// LeadID references the owning lead
	LeadID int64 `gorm:"column:lead_id;not null;uniqueIndex:idx_admins_lead_handle,priority:1"`
	// MembershipID references the join through which the admin was discovered
	MembershipID int64 `gorm:"column:membership_id;not null"`
	// Handle is the admin's public handle, unique within a lead
	Handle string `gorm:"column:handle;not null;type:text;uniqueIndex:idx_admins_lead_handle,priority:2"`
	// UserID is the platform's numeric identity for the admin
	UserID string `gorm:"column:user_id;type:text"`
	// DisplayName is the admin's first/display name
	DisplayName string `gorm:"column:display_name;type:text"`
	// IsOwner marks the group creator; owners are preferred outreach targets
	IsOwner bool `gorm:"column:is_owner;not null;default:false"`

	DiscoveredAt time.Time `gorm:"column:discovered_at;not null;default:now()"`
}

// TableName specifies the table name for the Admin model
func (Admin) TableName() string {
	return "admins"
}
