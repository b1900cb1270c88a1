package audit

import (
	"github.com/gin-gonic/gin"

	"github.com/Ashokvp-05/hr-management-system-sub001/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	logs := r.Group("/audit-logs")
	logs.Use(middleware.AuthMiddleware())
	{
		logs.GET("", middleware.RoleMiddleware("ADMIN"), handler.GetRecent)
	}
}
