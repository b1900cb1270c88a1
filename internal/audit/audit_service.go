package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=audit_service.go -destination=mock/audit_service_mock.go -package=mock
type Service interface {
	// Log records an admin action. Best effort: a write failure is
	// logged and swallowed so auditing never breaks the action itself.
	// Actions that must be audited atomically write through the
	// repository inside their own transaction instead.
	Log(ctx context.Context, action, adminID string, targetID, details *string)
	GetRecent(ctx context.Context) ([]AuditLogResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("audit.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Log(ctx context.Context, action, adminID string, targetID, details *string) {
	adminUUID, err := uuid.Parse(adminID)
	if err != nil {
		s.logger.Warn("audit log skipped, invalid admin id",
			zap.String("action", action),
			zap.String("admin_id", adminID),
		)
		return
	}

	entry := &AuditLog{
		ID:       uuid.New(),
		Action:   action,
		AdminID:  adminUUID,
		TargetID: targetID,
		Details:  details,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		s.logger.Error("audit log write failed",
			zap.String("action", action),
			zap.String("admin_id", adminID),
			zap.Error(err),
		)
	}
}

func (s *service) GetRecent(ctx context.Context) ([]AuditLogResponse, error) {
	entries, err := s.repo.FindRecent(ctx, 100)
	if err != nil {
		return nil, err
	}

	resp := make([]AuditLogResponse, len(entries))
	for i, e := range entries {
		resp[i] = AuditLogResponse{
			ID:        e.ID.String(),
			Action:    e.Action,
			AdminID:   e.AdminID.String(),
			TargetID:  e.TargetID,
			Details:   e.Details,
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
		}
	}
	return resp, nil
}
