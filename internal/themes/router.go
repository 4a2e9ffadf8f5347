package themes

import (
	"github.com/sasha-semenenko/planetarium-api-service/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupThemeRoutes(router *gin.RouterGroup, controller Controller) {
	// Authenticated users can browse themes
	publicThemes := router.Group("/show-themes")
	publicThemes.Use(middleware.JWTAuth())
	{
		publicThemes.GET("", controller.GetAllThemes)
	}

	// Admin routes - only admins can create themes
	adminThemes := router.Group("/admin/show-themes")
	adminThemes.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminThemes.POST("", controller.CreateTheme)
	}
}
