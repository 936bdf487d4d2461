package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cinebook/internal/models/request_models"
	"cinebook/internal/services"
	"cinebook/pkg/middleware"
	"cinebook/pkg/utils"
)

type TheaterController struct {
	theaterService services.TheaterService
}

func NewTheaterController(theaterService services.TheaterService) *TheaterController {
	return &TheaterController{theaterService: theaterService}
}

// CreateTheater godoc
// @Summary Create a theater
// @Description Admin only. The manager must be an existing staff account
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.CreateTheaterRequest true "Theater payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/theaters [post]
func (t *TheaterController) CreateTheater(c *gin.Context) {
	var req request_models.CreateTheaterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	theater, err := t.theaterService.CreateTheater(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondWithStatus(c, http.StatusCreated, theater, "Theater created successfully")
}

// ListMyTheaters godoc
// @Summary List managed theaters
// @Description Theaters managed by the authenticated staff member
// @Tags Staff
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Security BearerAuth
// @Router /staff/theaters [get]
func (t *TheaterController) ListMyTheaters(c *gin.Context) {
	staffID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	theaters, err := t.theaterService.ListManagedTheaters(c.Request.Context(), staffID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, theaters, "Theaters fetched successfully")
}
