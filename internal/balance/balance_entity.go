package balance

import (
	"time"

	"github.com/google/uuid"
)

// Default yearly allotments, in days. These mirror the schema defaults
// the HR policy hands out on first access.
const (
	DefaultSickDays   = 10
	DefaultCasualDays = 10
	DefaultEarnedDays = 15
)

// Balance field names, as stored. Only these three leave categories
// carry a balance; other leave types are approved without deduction.
const (
	FieldSick   = "sick"
	FieldCasual = "casual"
	FieldEarned = "earned"
)

type LeaveBalance struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_leave_balances_user_year"`
	Year   int       `gorm:"not null;uniqueIndex:uq_leave_balances_user_year"`

	Sick   int `gorm:"type:int;not null;default:10"`
	Casual int `gorm:"type:int;not null;default:10"`
	Earned int `gorm:"type:int;not null;default:15"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LeaveBalance) TableName() string {
	return "leave_balances"
}

// FieldValue returns the remaining days for a balance field name, or
// -1 for an unknown field.
func (b LeaveBalance) FieldValue(field string) int {
	switch field {
	case FieldSick:
		return b.Sick
	case FieldCasual:
		return b.Casual
	case FieldEarned:
		return b.Earned
	default:
		return -1
	}
}
