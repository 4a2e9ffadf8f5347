package domes

import (
	"github.com/sasha-semenenko/planetarium-api-service/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupDomeRoutes(router *gin.RouterGroup, controller Controller) {
	// Authenticated users can browse domes
	publicDomes := router.Group("/planetarium-domes")
	publicDomes.Use(middleware.JWTAuth())
	{
		publicDomes.GET("", controller.GetAllDomes)
		publicDomes.GET("/:domeId", controller.GetDome)
	}

	// Admin routes - only admins can create domes
	adminDomes := router.Group("/admin/planetarium-domes")
	adminDomes.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminDomes.POST("", controller.CreateDome)
	}
}
