package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cinebook/internal/models/request_models"
	"cinebook/internal/services"
	"cinebook/pkg/middleware"
	"cinebook/pkg/utils"
)

type RevenueStatsController struct {
	revenueStatsService services.RevenueStatsService
}

func NewRevenueStatsController(revenueStatsService services.RevenueStatsService) *RevenueStatsController {
	return &RevenueStatsController{revenueStatsService: revenueStatsService}
}

// GetRevenueStats godoc
// @Summary Revenue statistics of managed theaters
// @Description Paid bookings grouped by day, ISO week or month, paginated, with a summary over the whole window
// @Tags Staff
// @Produce json
// @Param period     query string false "day | week | month (default: day)"
// @Param start_date query string false "YYYY-MM-DD, used only together with end_date"
// @Param end_date   query string false "YYYY-MM-DD, inclusive"
// @Param page       query int    false "Page number (default: 1)"
// @Param limit      query int    false "Buckets per page (default: 10)"
// @Param sort_by    query string false "date | revenue | bookings (default: date)"
// @Param sort_order query string false "asc | desc (default: desc)"
// @Success 200 {object} utils.APIResponse{data=response_models.RevenueStatsPaginatedResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Security BearerAuth
// @Router /staff/revenue-stats [get]
func (r *RevenueStatsController) GetRevenueStats(c *gin.Context) {
	staffID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var q request_models.RevenueStatsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	stats, err := r.revenueStatsService.GetRevenueStats(c.Request.Context(), staffID, q)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Revenue statistics fetched successfully")
}
