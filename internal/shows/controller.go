package shows

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sasha-semenenko/planetarium-api-service/internal/shared/config"
	"github.com/sasha-semenenko/planetarium-api-service/internal/shared/utils/response"
	"github.com/sasha-semenenko/planetarium-api-service/internal/themes"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller interface {
	CreateShow(c *gin.Context)
	GetShow(c *gin.Context)
	GetAllShows(c *gin.Context)
	UploadImage(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateShow(c *gin.Context) {
	var req CreateShowRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	show, err := ctrl.service.CreateShow(c.Request.Context(), req)
	if err != nil {
		statusCode := http.StatusBadRequest
		if errors.Is(err, themes.ErrThemeNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Astronomy show created successfully", show, nil)
}

func (ctrl *controller) GetShow(c *gin.Context) {
	showID, err := uuid.Parse(c.Param("showId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid show ID", nil, err.Error())
		return
	}

	show, err := ctrl.service.GetShowByID(c.Request.Context(), showID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrShowNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Astronomy show retrieved successfully", show, nil)
}

func (ctrl *controller) GetAllShows(c *gin.Context) {
	var query ShowListQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	shows, err := ctrl.service.GetAllShows(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, ErrInvalidThemeID) {
			response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Astronomy shows retrieved successfully", shows, nil)
}

// UploadImage handles the upload-image action on a single show resource.
func (ctrl *controller) UploadImage(c *gin.Context) {
	showID, err := uuid.Parse(c.Param("showId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid show ID", nil, err.Error())
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Image file is required", nil, err.Error())
		return
	}

	if maxSize := config.Load().Upload.MaxSize; fileHeader.Size > maxSize {
		response.RespondJSON(c, "error", http.StatusBadRequest,
			fmt.Sprintf("Image exceeds the maximum allowed size of %d bytes", maxSize), nil, nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Failed to read image file", nil, err.Error())
		return
	}
	defer file.Close()

	show, err := ctrl.service.UploadImage(c.Request.Context(), showID, fileHeader.Filename, file)
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrShowNotFound):
			statusCode = http.StatusNotFound
		case errors.Is(err, ErrUnsupportedImageType):
			statusCode = http.StatusBadRequest
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Show image uploaded successfully", show, nil)
}
