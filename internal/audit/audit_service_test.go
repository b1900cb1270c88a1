package audit_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/Ashokvp-05/hr-management-system-sub001/internal/audit"
)

type fakeAuditRepository struct {
	createFn     func(ctx context.Context, entry *audit.AuditLog) error
	findRecentFn func(ctx context.Context, limit int) ([]audit.AuditLog, error)
}

func (f *fakeAuditRepository) WithTx(tx *gorm.DB) audit.Repository { return f }

func (f *fakeAuditRepository) Create(ctx context.Context, entry *audit.AuditLog) error {
	if f.createFn != nil {
		return f.createFn(ctx, entry)
	}
	return nil
}

func (f *fakeAuditRepository) FindRecent(ctx context.Context, limit int) ([]audit.AuditLog, error) {
	if f.findRecentFn != nil {
		return f.findRecentFn(ctx, limit)
	}
	return nil, nil
}

func TestAuditService_Log(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		var created *audit.AuditLog
		repo := &fakeAuditRepository{
			createFn: func(ctx context.Context, entry *audit.AuditLog) error {
				created = entry
				return nil
			},
		}

		target := uuid.New().String()
		details := "Sick Leave 2026-03-01 to 2026-03-02"
		svc := audit.NewService(repo)
		svc.Log(ctx, audit.ActionLeaveApprove, adminID, &target, &details)

		assert.NotNil(t, created)
		assert.Equal(t, audit.ActionLeaveApprove, created.Action)
		assert.Equal(t, adminID, created.AdminID.String())
		assert.Equal(t, &target, created.TargetID)
	})

	t.Run("invalid admin id skips the write", func(t *testing.T) {
		repo := &fakeAuditRepository{
			createFn: func(ctx context.Context, entry *audit.AuditLog) error {
				t.Error("no entry should be written for an invalid admin id")
				return nil
			},
		}

		svc := audit.NewService(repo)
		svc.Log(ctx, audit.ActionHolidaySync, "not-a-uuid", nil, nil)
	})

	t.Run("write failure is swallowed", func(t *testing.T) {
		repo := &fakeAuditRepository{
			createFn: func(ctx context.Context, entry *audit.AuditLog) error {
				return errors.New("db down")
			},
		}

		svc := audit.NewService(repo)
		svc.Log(ctx, audit.ActionHolidaySync, adminID, nil, nil)
	})
}

func TestAuditService_GetRecent(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := &fakeAuditRepository{
			findRecentFn: func(ctx context.Context, limit int) ([]audit.AuditLog, error) {
				assert.Equal(t, 100, limit)
				return []audit.AuditLog{
					{ID: uuid.New(), Action: audit.ActionLeaveReject, AdminID: uuid.New()},
				}, nil
			},
		}

		svc := audit.NewService(repo)
		resp, err := svc.GetRecent(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, audit.ActionLeaveReject, resp[0].Action)
	})

	t.Run("negative repo error", func(t *testing.T) {
		repo := &fakeAuditRepository{
			findRecentFn: func(ctx context.Context, limit int) ([]audit.AuditLog, error) {
				return nil, errors.New("db error")
			},
		}

		svc := audit.NewService(repo)
		resp, err := svc.GetRecent(ctx)

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}
