package audit

import (
	"time"

	"github.com/google/uuid"
)

// Admin actions recorded in the audit trail.
const (
	ActionLeaveApprove = "LEAVE_APPROVE"
	ActionLeaveReject  = "LEAVE_REJECT"
	ActionHolidaySync  = "HOLIDAY_SYNC"
)

type AuditLog struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Action   string    `gorm:"type:varchar(50);not null;index:idx_audit_logs_action"`
	AdminID  uuid.UUID `gorm:"type:uuid;not null"`
	TargetID *string   `gorm:"type:varchar(100)"`
	Details  *string   `gorm:"type:text"`

	CreatedAt time.Time `gorm:"index:idx_audit_logs_created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
