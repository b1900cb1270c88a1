package notification

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeLeaveApproved = "LEAVE_APPROVED"
	TypeLeaveRejected = "LEAVE_REJECTED"
)

type Notification struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_user"`

	Title   string `gorm:"type:varchar(150);not null"`
	Message string `gorm:"type:text;not null"`
	Type    string `gorm:"type:varchar(30);not null"`
	IsRead  bool   `gorm:"not null;default:false"`

	CreatedAt time.Time
}

func (Notification) TableName() string {
	return "notifications"
}
