package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-admin/models"
	"github.com/yeremiapane/restaurant-admin/services"
	"github.com/yeremiapane/restaurant-admin/utils"
)

type AnalyticsController struct {
	Analytics *services.AnalyticsService
}

func NewAnalyticsController(analytics *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Analytics: analytics}
}

// GetTopSellers
// Endpoint: GET /orders/analytics/top-sellers?status=<status>&limit=<n>
func (ac *AnalyticsController) GetTopSellers(c *gin.Context) {
	var filter services.TopSellerFilter
	if status := c.Query("status"); status != "" {
		st := models.OrderStatus(status)
		filter.Status = &st
	}
	limit, ok := queryInt(c, "limit", 0)
	if !ok {
		return
	}
	filter.Limit = limit

	sellers, err := ac.Analytics.TopSellers(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Top selling menu items", sellers)
}

func (ac *AnalyticsController) GetRevenue(c *gin.Context) {
	summary, err := ac.Analytics.RevenueSummary()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Revenue from delivered orders", summary)
}

func (ac *AnalyticsController) GetDashboardStats(c *gin.Context) {
	stats, err := ac.Analytics.DashboardStats()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Dashboard stats retrieved successfully", stats)
}
