package shows

import (
	"github.com/sasha-semenenko/planetarium-api-service/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupShowRoutes(router *gin.RouterGroup, controller Controller) {
	// Authenticated users can browse shows
	publicShows := router.Group("/astronomy-shows")
	publicShows.Use(middleware.JWTAuth())
	{
		publicShows.GET("", controller.GetAllShows)
		publicShows.GET("/:showId", controller.GetShow)
	}

	// Admin routes - only admins can create shows and upload artwork
	adminShows := router.Group("/admin/astronomy-shows")
	adminShows.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminShows.POST("", controller.CreateShow)
		adminShows.POST("/:showId/upload-image", controller.UploadImage)
	}
}
