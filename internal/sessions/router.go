package sessions

import (
	"github.com/sasha-semenenko/planetarium-api-service/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupSessionRoutes(router *gin.RouterGroup, controller Controller) {
	// Authenticated users can browse the session catalog
	publicSessions := router.Group("/show-sessions")
	publicSessions.Use(middleware.JWTAuth())
	{
		publicSessions.GET("", controller.GetAllSessions)
		publicSessions.GET("/:sessionId", controller.GetSession)
	}

	// Admin routes - scheduling is admin-only
	adminSessions := router.Group("/admin/show-sessions")
	adminSessions.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminSessions.POST("", controller.CreateSession)
		adminSessions.PUT("/:sessionId", controller.UpdateSession)
		adminSessions.DELETE("/:sessionId", controller.DeleteSession)
	}
}
