package schema

import "time"

// ErrorLogEntry is an append-only audit record of a pipeline failure.
// Rows are never mutated except for the resolved flag.
type ErrorLogEntry struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Timestamp time.Time `gorm:"column:timestamp;not null;default:now();index:idx_error_log_ts"`
	// ErrorType is a coarse classification (e.g. "cycle", "join", "message")
	ErrorType string `gorm:"column:error_type;type:text"`
	// Message is the error text
	Message string `gorm:"column:message;not null;type:text"`
	// Context carries the lead/admin involved and any extra detail
	Context string `gorm:"column:context;type:text"`
	// Resolved marks entries handled during a manual audit pass
	Resolved bool `gorm:"column:resolved;not null;default:false"`
}

// TableName specifies the table name for the ErrorLogEntry model
func (ErrorLogEntry) TableName() string {
	return "error_log"
}
