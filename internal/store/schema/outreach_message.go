package schema

import "time"

// OutreachMessage records one direct-message attempt to an admin. Multiple
// attempts per admin may exist; downstream queries exclude admins with at
// least one successful send.
type OutreachMessage struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// LeadID references the owning lead
	LeadID int64 `gorm:"column:lead_id;not null;index:idx_messages_lead"`
	// AdminID references the targeted admin
	AdminID int64 `gorm:"column:admin_id;not null;index:idx_messages_admin"`
	// Body is the rendered message text as sent
	Body string `gorm:"column:body;not null;type:text"`
	// Template identifies the template the body was rendered from
	Template string `gorm:"column:template;type:text"`

	SentAt time.Time `gorm:"column:sent_at;not null;default:now();index:idx_messages_sent"`
	// SendSuccess reports whether the platform accepted the message
	SendSuccess bool `gorm:"column:send_success;not null;default:false"`
	// SendError holds the failure reason for unsuccessful sends
	SendError *string `gorm:"column:send_error;type:text"`

	// Response tracking
	ResponseReceived bool       `gorm:"column:response_received;not null;default:false"`
	ResponseText     *string    `gorm:"column:response_text;type:text"`
	ResponseAt       *time.Time `gorm:"column:response_at"`

	// Conversion tracking
	Converted       bool    `gorm:"column:converted;not null;default:false"`
	ConversionNotes *string `gorm:"column:conversion_notes;type:text"`
}

// TableName specifies the table name for the OutreachMessage model
func (OutreachMessage) TableName() string {
	return "outreach_messages"
}
