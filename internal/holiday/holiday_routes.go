package holiday

import (
	"github.com/gin-gonic/gin"

	"github.com/Ashokvp-05/hr-management-system-sub001/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	holidays := r.Group("/holidays")
	holidays.Use(middleware.AuthMiddleware())
	{
		holidays.GET("", handler.GetForYear)
		holidays.POST("/sync", middleware.RoleMiddleware("ADMIN"), handler.Sync)
	}
}
