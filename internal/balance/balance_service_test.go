package balance_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/Ashokvp-05/hr-management-system-sub001/internal/balance"
	balanceerrors "github.com/Ashokvp-05/hr-management-system-sub001/internal/balance/errors"
)

type fakeBalanceRepository struct {
	createFn         func(ctx context.Context, b *balance.LeaveBalance) error
	findFn           func(ctx context.Context, userID string, year int) (*balance.LeaveBalance, error)
	findForUpdateFn  func(ctx context.Context, userID string, year int) (*balance.LeaveBalance, error)
	decrementFieldFn func(ctx context.Context, id uuid.UUID, field string, days int) (int64, error)
	findCallCount    int
}

func (f *fakeBalanceRepository) WithTx(tx *gorm.DB) balance.Repository { return f }

func (f *fakeBalanceRepository) Create(ctx context.Context, b *balance.LeaveBalance) error {
	if f.createFn != nil {
		return f.createFn(ctx, b)
	}
	return nil
}

func (f *fakeBalanceRepository) FindByUserAndYear(ctx context.Context, userID string, year int) (*balance.LeaveBalance, error) {
	f.findCallCount++
	if f.findFn != nil {
		return f.findFn(ctx, userID, year)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBalanceRepository) FindByUserAndYearForUpdate(ctx context.Context, userID string, year int) (*balance.LeaveBalance, error) {
	if f.findForUpdateFn != nil {
		return f.findForUpdateFn(ctx, userID, year)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBalanceRepository) DecrementField(ctx context.Context, id uuid.UUID, field string, days int) (int64, error) {
	if f.decrementFieldFn != nil {
		return f.decrementFieldFn(ctx, id, field, days)
	}
	return 1, nil
}

func TestBalanceService_GetOrCreate(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()
	year := 2026

	t.Run("returns existing row", func(t *testing.T) {
		repo := &fakeBalanceRepository{
			findFn: func(ctx context.Context, uid string, y int) (*balance.LeaveBalance, error) {
				assert.Equal(t, userID, uid)
				assert.Equal(t, year, y)
				return &balance.LeaveBalance{
					ID: uuid.New(), UserID: uuid.MustParse(uid), Year: y,
					Sick: 7, Casual: 3, Earned: 12,
				}, nil
			},
			createFn: func(ctx context.Context, b *balance.LeaveBalance) error {
				t.Error("existing balance must not be recreated")
				return nil
			},
		}

		svc := balance.NewService(repo)
		resp, err := svc.GetOrCreate(ctx, userID, year)

		assert.NoError(t, err)
		assert.Equal(t, 7, resp.Sick)
		assert.Equal(t, 3, resp.Casual)
		assert.Equal(t, 12, resp.Earned)
	})

	t.Run("creates with default allotments on first access", func(t *testing.T) {
		var created *balance.LeaveBalance
		repo := &fakeBalanceRepository{
			findFn: func(ctx context.Context, uid string, y int) (*balance.LeaveBalance, error) {
				return nil, gorm.ErrRecordNotFound
			},
			createFn: func(ctx context.Context, b *balance.LeaveBalance) error {
				created = b
				return nil
			},
		}

		svc := balance.NewService(repo)
		resp, err := svc.GetOrCreate(ctx, userID, year)

		assert.NoError(t, err)
		assert.NotNil(t, created)
		assert.Equal(t, balance.DefaultSickDays, resp.Sick)
		assert.Equal(t, balance.DefaultCasualDays, resp.Casual)
		assert.Equal(t, balance.DefaultEarnedDays, resp.Earned)
		assert.Equal(t, year, resp.Year)
		assert.Equal(t, userID, resp.UserID)
	})

	t.Run("zero year defaults to current year", func(t *testing.T) {
		repo := &fakeBalanceRepository{
			findFn: func(ctx context.Context, uid string, y int) (*balance.LeaveBalance, error) {
				assert.Equal(t, time.Now().UTC().Year(), y)
				return &balance.LeaveBalance{ID: uuid.New(), UserID: uuid.MustParse(uid), Year: y, Sick: 10, Casual: 10, Earned: 15}, nil
			},
		}

		svc := balance.NewService(repo)
		resp, err := svc.GetOrCreate(ctx, userID, 0)

		assert.NoError(t, err)
		assert.Equal(t, time.Now().UTC().Year(), resp.Year)
	})

	t.Run("lost create race resolves by re-reading", func(t *testing.T) {
		winner := &balance.LeaveBalance{
			ID: uuid.New(), UserID: uuid.MustParse(userID), Year: year,
			Sick: 9, Casual: 10, Earned: 15,
		}
		repo := &fakeBalanceRepository{}
		repo.findFn = func(ctx context.Context, uid string, y int) (*balance.LeaveBalance, error) {
			if repo.findCallCount == 1 {
				return nil, gorm.ErrRecordNotFound
			}
			return winner, nil
		}
		repo.createFn = func(ctx context.Context, b *balance.LeaveBalance) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_leave_balances_user_year"}
		}

		svc := balance.NewService(repo)
		resp, err := svc.GetOrCreate(ctx, userID, year)

		assert.NoError(t, err)
		assert.Equal(t, winner.ID.String(), resp.ID)
		assert.Equal(t, 9, resp.Sick)
		assert.Equal(t, 2, repo.findCallCount)
	})

	t.Run("negative unrelated create error propagates", func(t *testing.T) {
		repo := &fakeBalanceRepository{
			findFn: func(ctx context.Context, uid string, y int) (*balance.LeaveBalance, error) {
				return nil, gorm.ErrRecordNotFound
			},
			createFn: func(ctx context.Context, b *balance.LeaveBalance) error {
				return errors.New("connection reset")
			},
		}

		svc := balance.NewService(repo)
		_, err := svc.GetOrCreate(ctx, userID, year)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "connection reset")
	})

	t.Run("negative invalid user id", func(t *testing.T) {
		svc := balance.NewService(&fakeBalanceRepository{})
		_, err := svc.GetOrCreate(ctx, "not-a-uuid", year)

		assert.ErrorIs(t, err, balanceerrors.ErrInvalidUserID)
	})
}

func TestLeaveBalanceFieldValue(t *testing.T) {
	b := balance.LeaveBalance{Sick: 4, Casual: 5, Earned: 6}

	assert.Equal(t, 4, b.FieldValue(balance.FieldSick))
	assert.Equal(t, 5, b.FieldValue(balance.FieldCasual))
	assert.Equal(t, 6, b.FieldValue(balance.FieldEarned))
	assert.Equal(t, 0, b.FieldValue("unknown"))
}
