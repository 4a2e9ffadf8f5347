package domes

import (
	"errors"
	"net/http"

	"github.com/sasha-semenenko/planetarium-api-service/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller interface {
	CreateDome(c *gin.Context)
	GetDome(c *gin.Context)
	GetAllDomes(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateDome(c *gin.Context) {
	var req CreateDomeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	dome, err := ctrl.service.CreateDome(c.Request.Context(), req)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Planetarium dome created successfully", dome, nil)
}

func (ctrl *controller) GetDome(c *gin.Context) {
	domeID, err := uuid.Parse(c.Param("domeId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid dome ID", nil, err.Error())
		return
	}

	dome, err := ctrl.service.GetDomeByID(c.Request.Context(), domeID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrDomeNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Planetarium dome retrieved successfully", dome, nil)
}

func (ctrl *controller) GetAllDomes(c *gin.Context) {
	domes, err := ctrl.service.GetAllDomes(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Planetarium domes retrieved successfully", domes, nil)
}
