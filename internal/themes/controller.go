package themes

import (
	"errors"
	"net/http"

	"github.com/sasha-semenenko/planetarium-api-service/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller interface {
	CreateTheme(c *gin.Context)
	GetAllThemes(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateTheme(c *gin.Context) {
	var req CreateThemeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	theme, err := ctrl.service.CreateTheme(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrThemeAlreadyExists) {
			response.RespondJSON(c, "error", http.StatusConflict, err.Error(), nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Show theme created successfully", theme, nil)
}

func (ctrl *controller) GetAllThemes(c *gin.Context) {
	themes, err := ctrl.service.GetAllThemes(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Show themes retrieved successfully", themes, nil)
}
