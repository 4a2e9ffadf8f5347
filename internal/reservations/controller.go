package reservations

import (
	"errors"
	"net/http"

	"github.com/sasha-semenenko/planetarium-api-service/internal/domes"
	"github.com/sasha-semenenko/planetarium-api-service/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller interface {
	CreateReservation(c *gin.Context)
	GetReservation(c *gin.Context)
	GetUserReservations(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateReservation(c *gin.Context) {
	userID, userEmail, ok := callerIdentity(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	reservation, err := ctrl.service.CreateReservation(c.Request.Context(), userID, userEmail, req)
	if err != nil {
		status, message := reservationErrorStatus(err)
		response.RespondJSON(c, "error", status, message, nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Reservation created successfully", reservation, nil)
}

func (ctrl *controller) GetReservation(c *gin.Context) {
	userID, _, ok := callerIdentity(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	reservationID, err := uuid.Parse(c.Param("reservationId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid reservation ID", nil, err.Error())
		return
	}

	reservation, err := ctrl.service.GetReservationByID(c.Request.Context(), reservationID, userID)
	if err != nil {
		status, message := reservationErrorStatus(err)
		response.RespondJSON(c, "error", status, message, nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Reservation retrieved successfully", reservation, nil)
}

func (ctrl *controller) GetUserReservations(c *gin.Context) {
	userID, _, ok := callerIdentity(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var query ReservationListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	reservations, err := ctrl.service.GetUserReservations(c.Request.Context(), userID, query)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Reservations retrieved successfully", reservations, nil)
}

// callerIdentity reads the authenticated principal placed by the JWT middleware.
func callerIdentity(c *gin.Context) (uuid.UUID, string, bool) {
	rawID, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, "", false
	}

	idStr, ok := rawID.(string)
	if !ok {
		return uuid.Nil, "", false
	}

	userID, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, "", false
	}

	email, _ := c.Get("user_email")
	emailStr, _ := email.(string)

	return userID, emailStr, true
}

func reservationErrorStatus(err error) (int, string) {
	var seatErr *domes.SeatError
	switch {
	case errors.As(err, &seatErr):
		return http.StatusBadRequest, seatErr.Error()
	case errors.Is(err, ErrEmptyReservation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, ErrSeatTaken):
		return http.StatusConflict, err.Error()
	case errors.Is(err, ErrSessionNotFound), errors.Is(err, ErrReservationNotFound):
		return http.StatusNotFound, err.Error()
	default:
		return http.StatusInternalServerError, err.Error()
	}
}
