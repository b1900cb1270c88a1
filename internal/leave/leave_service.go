package leave

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Ashokvp-05/hr-management-system-sub001/internal/audit"
	"github.com/Ashokvp-05/hr-management-system-sub001/internal/balance"
	balanceerrors "github.com/Ashokvp-05/hr-management-system-sub001/internal/balance/errors"
	"github.com/Ashokvp-05/hr-management-system-sub001/internal/events"
	leaveerrors "github.com/Ashokvp-05/hr-management-system-sub001/internal/leave/errors"
	"github.com/Ashokvp-05/hr-management-system-sub001/internal/messaging/kafka"
	"github.com/Ashokvp-05/hr-management-system-sub001/internal/shared/contextutil"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, userID string, req CreateLeaveRequest) (LeaveResponse, error)
	GetMine(ctx context.Context, userID string) ([]LeaveResponse, error)
	GetAll(ctx context.Context) ([]LeaveResponse, error)
	Approve(ctx context.Context, adminID, id string) (LeaveResponse, error)
	Reject(ctx context.Context, adminID, id, reason string) (LeaveResponse, error)
}

type service struct {
	db         *gorm.DB
	repo       Repository
	balances   balance.Repository
	balanceSvc balance.Service
	auditRepo  audit.Repository
	outbox     kafka.OutboxRepository
	logger     *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	balances balance.Repository,
	balanceSvc balance.Service,
	auditRepo audit.Repository,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		balances:   balances,
		balanceSvc: balanceSvc,
		auditRepo:  auditRepo,
		outbox:     outbox,
		logger:     l,
	}
}

func (s *service) Create(ctx context.Context, userID string, req CreateLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("create leave requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("user_id", userID),
		zap.String("type", req.Type),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	userUUID, startDate, endDate, err := validateCreateRequest(userID, req)
	if err != nil {
		s.logger.Warn("create leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	daysRequested := InclusiveDays(startDate, endDate)

	// Overlap is checked first: a request doomed on overlap must fail
	// as an overlap, and must not lazily create a balance row. The
	// check runs again inside the transaction below to close the race
	// with a concurrent insert.
	overlap, err := s.repo.HasOverlappingPeriod(ctx, userID, startDate, endDate)
	if err != nil {
		s.logger.Error("create leave overlap check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if overlap {
		s.logger.Warn("create leave overlap detected",
			zap.String("user_id", userID),
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	// Advisory balance check for early feedback. Nothing is reserved
	// here; the binding check runs inside the approval transaction.
	if field, ok := BalanceFieldForType(req.Type); ok {
		bal, err := s.balanceSvc.GetOrCreate(ctx, userID, time.Now().UTC().Year())
		if err != nil {
			s.logger.Error("create leave balance lookup failed", zap.Error(err))
			return LeaveResponse{}, err
		}
		available := fieldValue(bal, field)
		if available < daysRequested {
			return LeaveResponse{}, leaveerrors.InsufficientBalance(TypeLabel(req.Type), available)
		}
	}

	l := &LeaveRequest{
		ID:        uuid.New(),
		UserID:    userUUID,
		Type:      req.Type,
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    req.Reason,
		Status:    StatusPending,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		overlap, err := qtx.HasOverlappingPeriod(ctx, userID, startDate, endDate)
		if err != nil {
			return err
		}
		if overlap {
			return leaveerrors.ErrLeaveOverlap
		}

		return qtx.Create(ctx, l)
	})
	if err != nil {
		if errors.Is(err, leaveerrors.ErrLeaveOverlap) {
			s.logger.Warn("create leave overlap detected",
				zap.String("user_id", userID),
				zap.String("start_date", req.StartDate),
				zap.String("end_date", req.EndDate),
			)
		} else {
			s.logger.Error("create leave persist failed", zap.Error(err))
		}
		return LeaveResponse{}, err
	}

	s.logger.Info("create leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("user_id", userID),
		zap.Int("days_requested", daysRequested),
	)
	return mapToResponse(*l), nil
}

func (s *service) GetMine(ctx context.Context, userID string) ([]LeaveResponse, error) {
	requests, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(requests), nil
}

func (s *service) GetAll(ctx context.Context) ([]LeaveResponse, error) {
	requests, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(requests), nil
}

func (s *service) Approve(ctx context.Context, adminID, id string) (LeaveResponse, error) {
	return s.updateStatus(ctx, adminID, id, StatusApproved, nil)
}

func (s *service) Reject(ctx context.Context, adminID, id, reason string) (LeaveResponse, error) {
	var rejectionReason *string
	if reason != "" {
		rejectionReason = &reason
	}
	return s.updateStatus(ctx, adminID, id, StatusRejected, rejectionReason)
}

// updateStatus resolves a PENDING request. Everything runs in one
// transaction: the status must still be PENDING when read, and on
// approval the balance check and decrement commit together with the
// status change or not at all.
func (s *service) updateStatus(ctx context.Context, adminID, id, targetStatus string, rejectionReason *string) (LeaveResponse, error) {
	s.logger.Debug("leave status transition requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("leave_id", id),
		zap.String("admin_id", adminID),
		zap.String("target_status", targetStatus),
	)

	adminUUID, err := uuid.Parse(adminID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidAdminID
	}

	var updated LeaveRequest
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		l, err := qtx.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return leaveerrors.ErrRequestNotFound
			}
			return err
		}
		if l.Status != StatusPending {
			return leaveerrors.ErrRequestNotPending
		}

		daysRequested := InclusiveDays(l.StartDate, l.EndDate)

		if targetStatus == StatusApproved {
			if err := s.deductBalance(ctx, tx, l, daysRequested); err != nil {
				return err
			}
		}

		l.Status = targetStatus
		l.ApprovedBy = &adminUUID
		if targetStatus == StatusRejected {
			l.RejectionReason = rejectionReason
		}

		if err := qtx.Update(ctx, l); err != nil {
			return err
		}

		if err := s.writeAuditEntry(ctx, tx, adminUUID, l); err != nil {
			return err
		}
		if err := s.enqueueStatusEvent(ctx, tx, adminID, l, daysRequested); err != nil {
			return err
		}

		updated = *l
		return nil
	})
	if err != nil {
		s.logger.Warn("leave status transition failed",
			zap.String("leave_id", id),
			zap.String("target_status", targetStatus),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	s.logger.Info("leave status transition success",
		zap.String("leave_id", id),
		zap.String("status", targetStatus),
	)
	return mapToResponse(updated), nil
}

// deductBalance runs the authoritative balance check and decrement for
// an approval. The row is read FOR UPDATE and the decrement itself is
// guarded, so a concurrent approval can never drive a field negative.
// The balance row is looked up by the current calendar year, matching
// how requests are filed; requests approved in a different year than
// their dates fall under the year they are approved in.
func (s *service) deductBalance(ctx context.Context, tx *gorm.DB, l *LeaveRequest, daysRequested int) error {
	field, ok := BalanceFieldForType(l.Type)
	if !ok {
		return nil
	}

	qbal := s.balances.WithTx(tx)

	bal, err := qbal.FindByUserAndYearForUpdate(ctx, l.UserID.String(), time.Now().UTC().Year())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return balanceerrors.ErrBalanceNotFound
		}
		return err
	}

	if bal.FieldValue(field) < daysRequested {
		return leaveerrors.InsufficientBalanceOnApproval(TypeLabel(l.Type))
	}

	rows, err := qbal.DecrementField(ctx, bal.ID, field, daysRequested)
	if err != nil {
		return err
	}
	if rows == 0 {
		// Guard tripped despite the locked read. Abort rather than
		// approve without deducting.
		return leaveerrors.InsufficientBalanceOnApproval(TypeLabel(l.Type))
	}

	return nil
}

func (s *service) writeAuditEntry(ctx context.Context, tx *gorm.DB, adminUUID uuid.UUID, l *LeaveRequest) error {
	action := audit.ActionLeaveApprove
	details := TypeLabel(l.Type) + " " + l.StartDate.Format("2006-01-02") + " to " + l.EndDate.Format("2006-01-02")
	if l.Status == StatusRejected {
		action = audit.ActionLeaveReject
		if l.RejectionReason != nil {
			details += ": " + *l.RejectionReason
		}
	}

	targetID := l.UserID.String()
	return s.auditRepo.WithTx(tx).Create(ctx, &audit.AuditLog{
		ID:       uuid.New(),
		Action:   action,
		AdminID:  adminUUID,
		TargetID: &targetID,
		Details:  &details,
	})
}

func (s *service) enqueueStatusEvent(ctx context.Context, tx *gorm.DB, adminID string, l *LeaveRequest, daysRequested int) error {
	event := events.LeaveStatusChangedEvent{
		EventType:     "leave_status_changed",
		RequestID:     l.ID.String(),
		UserID:        l.UserID.String(),
		LeaveType:     l.Type,
		Status:        l.Status,
		StartDate:     l.StartDate.Format("2006-01-02"),
		EndDate:       l.EndDate.Format("2006-01-02"),
		DaysRequested: daysRequested,
		ActorID:       adminID,
		OccurredAt:    time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "leave_request",
		AggregateID:   l.ID.String(),
		EventType:     event.EventType,
		Topic:         events.LeaveStatusChangedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func validateCreateRequest(userID string, req CreateLeaveRequest) (uuid.UUID, time.Time, time.Time, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidUserID
	}
	if !IsValidType(req.Type) {
		return uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidLeaveType
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, err
	}
	if startDate.After(endDate) {
		return uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}
	return userUUID, startDate, endDate, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func fieldValue(b balance.BalanceResponse, field string) int {
	switch field {
	case balance.FieldSick:
		return b.Sick
	case balance.FieldCasual:
		return b.Casual
	case balance.FieldEarned:
		return b.Earned
	default:
		return 0
	}
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:            l.ID.String(),
		UserID:        l.UserID.String(),
		Type:          l.Type,
		StartDate:     l.StartDate.Format("2006-01-02"),
		EndDate:       l.EndDate.Format("2006-01-02"),
		DaysRequested: InclusiveDays(l.StartDate, l.EndDate),
		Reason:        l.Reason,
		Status:        l.Status,
		CreatedAt:     l.CreatedAt.UTC().Format(time.RFC3339),
	}
	if l.ApprovedBy != nil {
		v := l.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	resp.RejectionReason = l.RejectionReason
	return resp
}

func mapToListResponse(requests []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, len(requests))
	for i, l := range requests {
		resp[i] = mapToResponse(l)
	}
	return resp
}
