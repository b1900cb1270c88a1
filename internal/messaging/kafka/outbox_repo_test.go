package kafka_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Ashokvp-05/hr-management-system-sub001/internal/messaging/kafka"
)

func TestValidateOutboxEvent(t *testing.T) {
	valid := kafka.OutboxEvent{
		ID:            uuid.New().String(),
		AggregateType: "leave_request",
		AggregateID:   uuid.New().String(),
		EventType:     "leave_status_changed",
		Topic:         "hr.leave.status.v1",
		Payload:       []byte(`{"status":"APPROVED"}`),
		Status:        kafka.OutboxStatusPending,
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, kafka.ValidateOutboxEvent(valid))
	})

	t.Run("missing id", func(t *testing.T) {
		e := valid
		e.ID = ""
		assert.Error(t, kafka.ValidateOutboxEvent(e))
	})

	t.Run("missing topic", func(t *testing.T) {
		e := valid
		e.Topic = ""
		assert.Error(t, kafka.ValidateOutboxEvent(e))
	})

	t.Run("empty payload", func(t *testing.T) {
		e := valid
		e.Payload = nil
		assert.Error(t, kafka.ValidateOutboxEvent(e))
	})

	t.Run("unknown status", func(t *testing.T) {
		e := valid
		e.Status = "queued"
		err := kafka.ValidateOutboxEvent(e)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid outbox status")
	})
}
