package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pulseboard/pulseboard/analytics"
	"github.com/pulseboard/pulseboard/model"
)

// GetAnalytics serves the aggregated analytics payload of one dashboard,
// optionally filtered by sentiment label and timestamp range.
func (h *Handler) GetAnalytics(c *gin.Context) {
	dashboard, err := h.findOwnedDashboard(c.Param("id"), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	tx, err := applyPostFilters(h.DB.Where("dashboard_id = ?", dashboard.Id), c)
	if err != nil {
		respondError(c, err)
		return
	}

	var posts []model.Post
	if err := tx.Order("timestamp desc").Find(&posts).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": analytics.Aggregate(posts)})
}

// GetInsights serves the heuristic insight cards over the unfiltered
// dashboard posts.
func (h *Handler) GetInsights(c *gin.Context) {
	dashboard, err := h.findOwnedDashboard(c.Param("id"), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	var posts []model.Post
	if err := h.DB.Where("dashboard_id = ?", dashboard.Id).Order("timestamp desc").Find(&posts).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": analytics.Insights(posts)})
}
