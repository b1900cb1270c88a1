package balance

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"

	balanceerrors "github.com/Ashokvp-05/hr-management-system-sub001/internal/balance/errors"
)

//go:generate mockgen -source=balance_service.go -destination=mock/balance_service_mock.go -package=mock
type Service interface {
	// GetOrCreate returns the balance for (userID, year), creating it
	// with the default allotments on first access.
	GetOrCreate(ctx context.Context, userID string, year int) (BalanceResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("balance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("balance.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetOrCreate(ctx context.Context, userID string, year int) (BalanceResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return BalanceResponse{}, balanceerrors.ErrInvalidUserID
	}
	if year == 0 {
		year = time.Now().UTC().Year()
	}

	b, err := s.repo.FindByUserAndYear(ctx, userID, year)
	if err == nil {
		return mapToResponse(*b), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("balance lookup failed",
			zap.String("user_id", userID),
			zap.Int("year", year),
			zap.Error(err),
		)
		return BalanceResponse{}, err
	}

	created := &LeaveBalance{
		ID:     uuid.New(),
		UserID: userUUID,
		Year:   year,
		Sick:   DefaultSickDays,
		Casual: DefaultCasualDays,
		Earned: DefaultEarnedDays,
	}
	if err := s.repo.Create(ctx, created); err != nil {
		// A concurrent first access may have inserted the row already;
		// the unique (user_id, year) constraint turns that race into a
		// duplicate-key error we resolve by re-reading.
		if isUniqueViolation(err) {
			s.logger.Debug("balance create lost race, re-reading",
				zap.String("user_id", userID),
				zap.Int("year", year),
			)
			existing, rerr := s.repo.FindByUserAndYear(ctx, userID, year)
			if rerr != nil {
				return BalanceResponse{}, rerr
			}
			return mapToResponse(*existing), nil
		}
		s.logger.Error("balance create failed",
			zap.String("user_id", userID),
			zap.Int("year", year),
			zap.Error(err),
		)
		return BalanceResponse{}, err
	}

	s.logger.Info("balance initialized",
		zap.String("user_id", userID),
		zap.Int("year", year),
	)
	return mapToResponse(*created), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func mapToResponse(b LeaveBalance) BalanceResponse {
	return BalanceResponse{
		ID:     b.ID.String(),
		UserID: b.UserID.String(),
		Year:   b.Year,
		Sick:   b.Sick,
		Casual: b.Casual,
		Earned: b.Earned,
	}
}
