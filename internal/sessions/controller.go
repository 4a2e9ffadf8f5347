package sessions

import (
	"errors"
	"net/http"

	"github.com/sasha-semenenko/planetarium-api-service/internal/domes"
	"github.com/sasha-semenenko/planetarium-api-service/internal/shared/utils/response"
	"github.com/sasha-semenenko/planetarium-api-service/internal/shows"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller interface {
	CreateSession(c *gin.Context)
	GetSession(c *gin.Context)
	GetAllSessions(c *gin.Context)
	UpdateSession(c *gin.Context)
	DeleteSession(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateSession(c *gin.Context) {
	var req CreateSessionRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	session, err := ctrl.service.CreateSession(c.Request.Context(), req)
	if err != nil {
		response.RespondJSON(c, "error", sessionErrorStatus(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Show session created successfully", session, nil)
}

func (ctrl *controller) GetSession(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid session ID", nil, err.Error())
		return
	}

	session, err := ctrl.service.GetSessionByID(c.Request.Context(), sessionID)
	if err != nil {
		response.RespondJSON(c, "error", sessionErrorStatus(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Show session retrieved successfully", session, nil)
}

func (ctrl *controller) GetAllSessions(c *gin.Context) {
	var query SessionListQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	sessions, err := ctrl.service.GetAllSessions(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, ErrMalformedDate) || errors.Is(err, ErrInvalidShowID) {
			response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Show sessions retrieved successfully", sessions, nil)
}

func (ctrl *controller) UpdateSession(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid session ID", nil, err.Error())
		return
	}

	var req UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	session, err := ctrl.service.UpdateSession(c.Request.Context(), sessionID, req)
	if err != nil {
		response.RespondJSON(c, "error", sessionErrorStatus(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Show session updated successfully", session, nil)
}

func (ctrl *controller) DeleteSession(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid session ID", nil, err.Error())
		return
	}

	if err := ctrl.service.DeleteSession(c.Request.Context(), sessionID); err != nil {
		response.RespondJSON(c, "error", sessionErrorStatus(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Show session deleted successfully", nil, nil)
}

func sessionErrorStatus(err error) int {
	switch {
	case errors.Is(err, ErrSessionNotFound),
		errors.Is(err, shows.ErrShowNotFound),
		errors.Is(err, domes.ErrDomeNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
