package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cinebook/internal/models/request_models"
	"cinebook/internal/services"
	"cinebook/pkg/middleware"
	"cinebook/pkg/utils"
)

type FeedbackController struct {
	feedbackService services.FeedbackServiceInterface
}

func NewFeedbackController(feedbackService services.FeedbackServiceInterface) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

// AddFeedback godoc
// @Summary Add feedback
// @Description Add a comment and rating for a theater, or for the app when theater_id is omitted
// @Tags Feedback
// @Accept json
// @Produce json
// @Param request body request_models.AddFeedbackRequest true "Feedback payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /feedback [post]
func (f *FeedbackController) AddFeedback(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.AddFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	var theaterID *uuid.UUID
	if req.TheaterID != "" {
		id, err := uuid.Parse(req.TheaterID)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid theater ID")
			return
		}
		theaterID = &id
	}

	if err := f.feedbackService.AddFeedback(c.Request.Context(), userID, theaterID, req.Comment, req.Rating); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondWithStatus(c, http.StatusCreated, nil, "Feedback added successfully")
}

// ListFeedback godoc
// @Summary List feedback
// @Description Get a paginated list of feedback, newest first
// @Tags Feedback
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Param theater_id query string false "Only feedback for this theater"
// @Success 200 {array} db_models.Feedback
// @Router /feedback [get]
func (f *FeedbackController) ListFeedback(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "10")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size")
		return
	}

	var theaterID *uuid.UUID
	if raw := c.Query("theater_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid theater ID")
			return
		}
		theaterID = &id
	}

	feedbacks, err := f.feedbackService.GetFeedback(c.Request.Context(), theaterID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, feedbacks, "Feedback fetched successfully")
}
