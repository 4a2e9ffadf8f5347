package reservations

import (
	"github.com/sasha-semenenko/planetarium-api-service/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupReservationRoutes(router *gin.RouterGroup, controller Controller) {
	// Reservations require authentication only; every endpoint is scoped to
	// the caller, so there is no admin surface here.
	reservations := router.Group("/reservations")
	reservations.Use(middleware.JWTAuth(), middleware.RequireRoles("USER", "ADMIN"))
	{
		reservations.POST("", controller.CreateReservation)
		reservations.GET("", controller.GetUserReservations)
		reservations.GET("/:reservationId", controller.GetReservation)
	}
}
