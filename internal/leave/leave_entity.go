package leave

import (
	"time"

	"github.com/google/uuid"

	"github.com/Ashokvp-05/hr-management-system-sub001/internal/balance"
)

const (
	TypeSick    = "SICK"
	TypeCasual  = "CASUAL"
	TypeEarned  = "EARNED"
	TypeMedical = "MEDICAL"
	TypeOther   = "OTHER"
	TypeUnpaid  = "UNPAID"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// LeaveRequest rows are created PENDING by the requesting user and
// resolved exactly once by an admin. They are never deleted or
// reopened.
type LeaveRequest struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_requests_user_dates"`

	Type      string    `gorm:"type:varchar(20);not null"`
	StartDate time.Time `gorm:"type:date;not null;index:idx_leave_requests_user_dates"`
	EndDate   time.Time `gorm:"type:date;not null;index:idx_leave_requests_user_dates"`
	Reason    string    `gorm:"type:text"`

	Status          string     `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_leave_requests_status"`
	ApprovedBy      *uuid.UUID `gorm:"type:uuid"`
	RejectionReason *string    `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

func IsValidType(t string) bool {
	switch t {
	case TypeSick, TypeCasual, TypeEarned, TypeMedical, TypeOther, TypeUnpaid:
		return true
	default:
		return false
	}
}

// BalanceFieldForType maps a leave type to the balance field it draws
// from. Types without an entry (MEDICAL, OTHER, UNPAID) are approved
// without any deduction.
func BalanceFieldForType(t string) (field string, ok bool) {
	switch t {
	case TypeSick:
		return balance.FieldSick, true
	case TypeCasual:
		return balance.FieldCasual, true
	case TypeEarned:
		return balance.FieldEarned, true
	default:
		return "", false
	}
}

// TypeLabel is the human name used in balance error messages.
func TypeLabel(t string) string {
	switch t {
	case TypeSick:
		return "Sick Leave"
	case TypeCasual:
		return "Casual Leave"
	case TypeEarned:
		return "Earned Leave"
	default:
		return t
	}
}

// InclusiveDays counts calendar days in [start, end], both ends
// included: start == end is 1 day.
func InclusiveDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
