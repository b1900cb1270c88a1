package holiday

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const cacheTTL = time.Hour

//go:generate mockgen -source=holiday_service.go -destination=mock/holiday_service_mock.go -package=mock
type Service interface {
	GetForYear(ctx context.Context, year int) ([]HolidayResponse, error)
	Sync(ctx context.Context, year int) (SyncResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("holiday.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("holiday.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func cacheKey(year int) string {
	return fmt.Sprintf("holidays:%d", year)
}

// GetForYear serves the year's holiday list out of redis when possible.
// Cache misses are collapsed through singleflight so a burst of
// requests after an invalidation loads from the database once.
func (s *service) GetForYear(ctx context.Context, year int) ([]HolidayResponse, error) {
	key := cacheKey(year)

	if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
		var resp []HolidayResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			return resp, nil
		}
		s.logger.Warn("holiday cache entry corrupt, reloading", zap.String("key", key))
	}

	v, err, _ := s.sf.Do(key, func() (any, error) {
		holidays, err := s.repo.FindByYear(ctx, year)
		if err != nil {
			return nil, err
		}
		resp := mapToListResponse(holidays)

		if payload, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, key, payload, cacheTTL).Err(); err != nil {
				s.logger.Warn("holiday cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Error("holiday load failed", zap.Int("year", year), zap.Error(err))
		return nil, err
	}

	return v.([]HolidayResponse), nil
}

// Sync upserts the built-in list for the year and invalidates the
// cache. Re-running it is safe; dates are unique.
func (s *service) Sync(ctx context.Context, year int) (SyncResponse, error) {
	var seed []seedHoliday
	if year == 2026 {
		seed = holidays2026
	}

	s.logger.Info("syncing holidays",
		zap.Int("year", year),
		zap.Int("entries", len(seed)),
	)

	count := 0
	for _, sh := range seed {
		date, err := time.Parse("2006-01-02", sh.Date)
		if err != nil {
			s.logger.Error("holiday seed entry has bad date",
				zap.String("name", sh.Name),
				zap.String("date", sh.Date),
			)
			continue
		}

		h := &Holiday{
			ID:   uuid.New(),
			Name: sh.Name,
			Date: date,
			Year: year,
		}
		if err := s.repo.Upsert(ctx, h); err != nil {
			return SyncResponse{}, err
		}
		count++
	}

	if err := s.rdb.Del(ctx, cacheKey(year)).Err(); err != nil {
		s.logger.Warn("holiday cache invalidation failed", zap.Int("year", year), zap.Error(err))
	}

	return SyncResponse{
		Count:   count,
		Message: fmt.Sprintf("Synced %d holidays for %d", count, year),
	}, nil
}

func mapToListResponse(holidays []Holiday) []HolidayResponse {
	resp := make([]HolidayResponse, len(holidays))
	for i, h := range holidays {
		resp[i] = HolidayResponse{
			ID:        h.ID.String(),
			Name:      h.Name,
			Date:      h.Date.Format("2006-01-02"),
			Year:      h.Year,
			IsFloater: h.IsFloater,
		}
	}
	return resp
}
