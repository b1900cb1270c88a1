package app

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/Ashokvp-05/hr-management-system-sub001/internal/audit"
	"github.com/Ashokvp-05/hr-management-system-sub001/internal/balance"
	"github.com/Ashokvp-05/hr-management-system-sub001/internal/holiday"
	"github.com/Ashokvp-05/hr-management-system-sub001/internal/leave"
	"github.com/Ashokvp-05/hr-management-system-sub001/internal/messaging/kafka"
	"github.com/Ashokvp-05/hr-management-system-sub001/internal/middleware"
	"github.com/Ashokvp-05/hr-management-system-sub001/internal/notification"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	leaveRepo := leave.NewRepository(gormDB)
	balanceRepo := balance.NewRepository(gormDB)
	auditRepo := audit.NewRepository(gormDB)
	holidayRepo := holiday.NewRepository(gormDB)
	notificationRepo := notification.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- Services ---
	balanceService := balance.NewService(balanceRepo)
	auditService := audit.NewService(auditRepo)
	leaveService := leave.NewService(gormDB, leaveRepo, balanceRepo, balanceService, auditRepo, outboxRepo)
	holidayService := holiday.NewService(holidayRepo, rdb)
	notificationService := notification.NewService(notificationRepo)

	// --- Handlers ---
	leaveHandler := leave.NewHandler(leaveService, rdb)
	balanceHandler := balance.NewHandler(balanceService)
	auditHandler := audit.NewHandler(auditService)
	holidayHandler := holiday.NewHandler(holidayService, auditService)
	notificationHandler := notification.NewHandler(notificationService)

	// --- Global middleware ---
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))
	router.Use(middleware.RateLimitByIP(rate.Limit(20), 40))

	// --- Routes ---
	api := router.Group("/api/v1")
	{
		leave.RegisterRoutes(api, leaveHandler, balanceHandler, rdb)
		holiday.RegisterRoutes(api, holidayHandler)
		notification.RegisterRoutes(api, notificationHandler)
		audit.RegisterRoutes(api, auditHandler)
	}

	return nil
}
