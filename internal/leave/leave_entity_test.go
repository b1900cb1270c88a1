package leave_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Ashokvp-05/hr-management-system-sub001/internal/balance"
	"github.com/Ashokvp-05/hr-management-system-sub001/internal/leave"
)

func TestInclusiveDays(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 6, d, 0, 0, 0, 0, time.UTC)
	}

	assert.Equal(t, 1, leave.InclusiveDays(day(10), day(10)))
	assert.Equal(t, 2, leave.InclusiveDays(day(10), day(11)))
	assert.Equal(t, 7, leave.InclusiveDays(day(1), day(7)))

	// Across a month boundary.
	assert.Equal(t, 3, leave.InclusiveDays(
		time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 7, 2, 0, 0, 0, 0, time.UTC),
	))
}

func TestBalanceFieldForType(t *testing.T) {
	tests := []struct {
		leaveType string
		field     string
		deducts   bool
	}{
		{leave.TypeSick, balance.FieldSick, true},
		{leave.TypeCasual, balance.FieldCasual, true},
		{leave.TypeEarned, balance.FieldEarned, true},
		{leave.TypeMedical, "", false},
		{leave.TypeOther, "", false},
		{leave.TypeUnpaid, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.leaveType, func(t *testing.T) {
			field, ok := leave.BalanceFieldForType(tt.leaveType)
			assert.Equal(t, tt.deducts, ok)
			assert.Equal(t, tt.field, field)
		})
	}
}

func TestIsValidType(t *testing.T) {
	assert.True(t, leave.IsValidType("SICK"))
	assert.True(t, leave.IsValidType("UNPAID"))
	assert.False(t, leave.IsValidType("sick"))
	assert.False(t, leave.IsValidType(""))
	assert.False(t, leave.IsValidType("ANNUAL"))
}
