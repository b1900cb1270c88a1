package consumer

import (
	"context"
	"encoding/json"
	"errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Ashokvp-05/hr-management-system-sub001/internal/events"
	"github.com/Ashokvp-05/hr-management-system-sub001/internal/notification"
)

// ConsumeLeaveStatusEvents turns leave status changes into user
// notifications. Delivery is at-least-once: a write failure leaves the
// message uncommitted so it is retried on the next fetch.
func ConsumeLeaveStatusEvents(
	ctx context.Context,
	reader *kafkago.Reader,
	notificationService notification.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_status")
	log.Info("leave status consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave status consumer stopped")
				return
			}
			log.Error("fetch leave status message failed", zap.Error(err))
			continue
		}

		var event events.LeaveStatusChangedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			// Unparseable message will never succeed; skip it.
			log.Error("decode leave_status_changed event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := notificationService.NotifyLeaveStatusChanged(ctx, event); err != nil {
			if errors.Is(err, notification.ErrMalformedEvent) {
				// Redelivery will never fix it; skip it.
				log.Error("skipping malformed leave status event",
					zap.String("leave_request_id", event.RequestID),
					zap.Error(err),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}
			log.Error("create leave status notification failed",
				zap.String("leave_request_id", event.RequestID),
				zap.String("user_id", event.UserID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit leave status message failed", zap.Error(err))
			continue
		}

		log.Info("leave status notification delivered",
			zap.String("leave_request_id", event.RequestID),
			zap.String("user_id", event.UserID),
			zap.String("status", event.Status),
		)
	}
}
