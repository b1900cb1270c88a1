package notification_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Ashokvp-05/hr-management-system-sub001/internal/events"
	"github.com/Ashokvp-05/hr-management-system-sub001/internal/notification"
)

type fakeNotificationRepository struct {
	createFn      func(ctx context.Context, n *notification.Notification) error
	findByUserFn  func(ctx context.Context, userID string, limit int) ([]notification.Notification, error)
	markReadFn    func(ctx context.Context, id, userID string) (int64, error)
	markAllReadFn func(ctx context.Context, userID string) (int64, error)
}

func (f *fakeNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	if f.createFn != nil {
		return f.createFn(ctx, n)
	}
	return nil
}

func (f *fakeNotificationRepository) FindByUser(ctx context.Context, userID string, limit int) ([]notification.Notification, error) {
	if f.findByUserFn != nil {
		return f.findByUserFn(ctx, userID, limit)
	}
	return nil, nil
}

func (f *fakeNotificationRepository) MarkRead(ctx context.Context, id, userID string) (int64, error) {
	if f.markReadFn != nil {
		return f.markReadFn(ctx, id, userID)
	}
	return 1, nil
}

func (f *fakeNotificationRepository) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	if f.markAllReadFn != nil {
		return f.markAllReadFn(ctx, userID)
	}
	return 0, nil
}

func TestNotificationService_NotifyLeaveStatusChanged(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()

	baseEvent := func(status string) events.LeaveStatusChangedEvent {
		return events.LeaveStatusChangedEvent{
			EventType:     "leave_status_changed",
			RequestID:     uuid.New().String(),
			UserID:        userID,
			LeaveType:     "SICK",
			Status:        status,
			StartDate:     "2026-03-01",
			EndDate:       "2026-03-02",
			DaysRequested: 2,
			OccurredAt:    time.Now().UTC(),
		}
	}

	t.Run("approved", func(t *testing.T) {
		var created *notification.Notification
		repo := &fakeNotificationRepository{
			createFn: func(ctx context.Context, n *notification.Notification) error {
				created = n
				return nil
			},
		}

		svc := notification.NewService(repo)
		err := svc.NotifyLeaveStatusChanged(ctx, baseEvent("APPROVED"))

		assert.NoError(t, err)
		assert.NotNil(t, created)
		assert.Equal(t, notification.TypeLeaveApproved, created.Type)
		assert.Equal(t, "Leave request approved", created.Title)
		assert.Contains(t, created.Message, "SICK")
		assert.Contains(t, created.Message, "2026-03-01")
		assert.Equal(t, userID, created.UserID.String())
	})

	t.Run("rejected", func(t *testing.T) {
		var created *notification.Notification
		repo := &fakeNotificationRepository{
			createFn: func(ctx context.Context, n *notification.Notification) error {
				created = n
				return nil
			},
		}

		svc := notification.NewService(repo)
		err := svc.NotifyLeaveStatusChanged(ctx, baseEvent("REJECTED"))

		assert.NoError(t, err)
		assert.Equal(t, notification.TypeLeaveRejected, created.Type)
		assert.Equal(t, "Leave request rejected", created.Title)
	})

	t.Run("negative invalid user id is a malformed event", func(t *testing.T) {
		svc := notification.NewService(&fakeNotificationRepository{})
		event := baseEvent("APPROVED")
		event.UserID = "garbage"

		err := svc.NotifyLeaveStatusChanged(ctx, event)

		// Consumers use this to commit past the message instead of
		// retrying it forever.
		assert.ErrorIs(t, err, notification.ErrMalformedEvent)
	})

	t.Run("negative repo failure is retryable", func(t *testing.T) {
		repo := &fakeNotificationRepository{
			createFn: func(ctx context.Context, n *notification.Notification) error {
				return errors.New("db down")
			},
		}

		svc := notification.NewService(repo)
		err := svc.NotifyLeaveStatusChanged(ctx, baseEvent("APPROVED"))

		assert.Error(t, err)
		assert.NotErrorIs(t, err, notification.ErrMalformedEvent)
	})
}

func TestNotificationService_MarkRead(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()
	id := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		repo := &fakeNotificationRepository{
			markReadFn: func(ctx context.Context, gotID, gotUserID string) (int64, error) {
				assert.Equal(t, id, gotID)
				assert.Equal(t, userID, gotUserID)
				return 1, nil
			},
		}

		svc := notification.NewService(repo)
		assert.NoError(t, svc.MarkRead(ctx, id, userID))
	})

	t.Run("negative wrong owner or missing", func(t *testing.T) {
		repo := &fakeNotificationRepository{
			markReadFn: func(ctx context.Context, id, userID string) (int64, error) {
				return 0, nil
			},
		}

		svc := notification.NewService(repo)
		err := svc.MarkRead(ctx, id, userID)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Notification not found")
	})

	t.Run("negative repo error", func(t *testing.T) {
		repo := &fakeNotificationRepository{
			markReadFn: func(ctx context.Context, id, userID string) (int64, error) {
				return 0, errors.New("db error")
			},
		}

		svc := notification.NewService(repo)
		assert.Error(t, svc.MarkRead(ctx, id, userID))
	})
}

func TestNotificationService_GetMine(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()

	repo := &fakeNotificationRepository{
		findByUserFn: func(ctx context.Context, uid string, limit int) ([]notification.Notification, error) {
			assert.Equal(t, userID, uid)
			assert.Equal(t, 50, limit)
			return []notification.Notification{
				{
					ID:      uuid.New(),
					UserID:  uuid.MustParse(uid),
					Title:   "Leave request approved",
					Message: "Your SICK request from 2026-03-01 to 2026-03-02 was APPROVED",
					Type:    notification.TypeLeaveApproved,
				},
			}, nil
		},
	}

	svc := notification.NewService(repo)
	resp, err := svc.GetMine(ctx, userID)

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, notification.TypeLeaveApproved, resp[0].Type)
	assert.False(t, resp[0].IsRead)
}
