package leave

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Ashokvp-05/hr-management-system-sub001/internal/balance"
	"github.com/Ashokvp-05/hr-management-system-sub001/internal/middleware"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	balanceHandler *balance.Handler,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware())
	{
		// Idempotency sits after auth so the cache key is scoped to the
		// authenticated user.
		if redisClient != nil {
			leaves.POST("/request", middleware.Idempotency(redisClient), handler.Create)
		} else {
			leaves.POST("/request", handler.Create)
		}
		leaves.GET("/my-requests", handler.GetMine)
		leaves.GET("/balance", balanceHandler.GetMine)

		leaves.GET("/all", middleware.RoleMiddleware("ADMIN", "HR"), handler.GetAll)
		leaves.PUT("/:id/approve", middleware.RoleMiddleware("ADMIN", "HR"), handler.Approve)
		leaves.PUT("/:id/reject", middleware.RoleMiddleware("ADMIN", "HR"), handler.Reject)
	}
}
