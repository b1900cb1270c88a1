package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Ashokvp-05/hr-management-system-sub001/internal/events"
	"github.com/Ashokvp-05/hr-management-system-sub001/internal/shared/apperror"
)

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	GetMine(ctx context.Context, userID string) ([]NotificationResponse, error)
	MarkRead(ctx context.Context, id, userID string) error
	MarkAllRead(ctx context.Context, userID string) error
	// NotifyLeaveStatusChanged builds and stores the notification for a
	// resolved leave request. Called by the event consumer.
	NotifyLeaveStatusChanged(ctx context.Context, event events.LeaveStatusChangedEvent) error
}

var errNotificationNotFound = apperror.New(
	apperror.CodeNotFound,
	"Notification not found",
	404,
)

// ErrMalformedEvent marks an event that can never be processed, no
// matter how often it is redelivered. Consumers commit past it instead
// of retrying.
var ErrMalformedEvent = errors.New("malformed leave status event")

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetMine(ctx context.Context, userID string) ([]NotificationResponse, error) {
	notifications, err := s.repo.FindByUser(ctx, userID, 50)
	if err != nil {
		return nil, err
	}

	resp := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		resp[i] = NotificationResponse{
			ID:        n.ID.String(),
			UserID:    n.UserID.String(),
			Title:     n.Title,
			Message:   n.Message,
			Type:      n.Type,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	return resp, nil
}

func (s *service) MarkRead(ctx context.Context, id, userID string) error {
	rows, err := s.repo.MarkRead(ctx, id, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return errNotificationNotFound
	}
	return nil
}

func (s *service) MarkAllRead(ctx context.Context, userID string) error {
	_, err := s.repo.MarkAllRead(ctx, userID)
	return err
}

func (s *service) NotifyLeaveStatusChanged(ctx context.Context, event events.LeaveStatusChangedEvent) error {
	userUUID, err := uuid.Parse(event.UserID)
	if err != nil {
		return fmt.Errorf("%w: invalid user id %q: %v", ErrMalformedEvent, event.UserID, err)
	}

	notifType := TypeLeaveApproved
	title := "Leave request approved"
	if event.Status == "REJECTED" {
		notifType = TypeLeaveRejected
		title = "Leave request rejected"
	}

	n := &Notification{
		ID:     uuid.New(),
		UserID: userUUID,
		Title:  title,
		Message: fmt.Sprintf(
			"Your %s request from %s to %s was %s",
			event.LeaveType, event.StartDate, event.EndDate, event.Status,
		),
		Type: notifType,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}

	s.logger.Info("leave status notification created",
		zap.String("user_id", event.UserID),
		zap.String("leave_request_id", event.RequestID),
		zap.String("status", event.Status),
	)
	return nil
}
