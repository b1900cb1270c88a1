package balance

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	balanceerrors "github.com/Ashokvp-05/hr-management-system-sub001/internal/balance/errors"
)

//go:generate mockgen -source=balance_repo.go -destination=mock/balance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, b *LeaveBalance) error
	FindByUserAndYear(ctx context.Context, userID string, year int) (*LeaveBalance, error)
	// FindByUserAndYearForUpdate takes a row lock; only valid inside a
	// transaction. The approval flow uses it so the check-then-decrement
	// sequence cannot race a concurrent approval on the same row.
	FindByUserAndYearForUpdate(ctx context.Context, userID string, year int) (*LeaveBalance, error)
	// DecrementField subtracts days from the named field, guarded so the
	// field can never go negative. Returns the number of rows updated;
	// zero means the guard rejected the decrement.
	DecrementField(ctx context.Context, id uuid.UUID, field string, days int) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, b *LeaveBalance) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repository) FindByUserAndYear(ctx context.Context, userID string, year int) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("year = ?", year).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) FindByUserAndYearForUpdate(ctx context.Context, userID string, year int) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		Where("year = ?", year).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) DecrementField(ctx context.Context, id uuid.UUID, field string, days int) (int64, error) {
	switch field {
	case FieldSick, FieldCasual, FieldEarned:
	default:
		return 0, balanceerrors.ErrUnknownBalanceField
	}

	res := r.db.WithContext(ctx).Exec(
		fmt.Sprintf(
			"UPDATE leave_balances SET %s = %s - ?, updated_at = now() WHERE id = ? AND %s >= ?",
			field, field, field,
		),
		days, id, days,
	)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
