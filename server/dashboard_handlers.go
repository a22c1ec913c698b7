package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pulseboard/pulseboard/model"
)

type dashboardInput struct {
	Name string `json:"name" binding:"required"`
}

// CreateDashboard creates an empty dashboard for the authenticated user.
func (h *Handler) CreateDashboard(c *gin.Context) {
	var input dashboardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "dashboard name is required"})
		return
	}

	dashboard := model.Dashboard{
		Id:     uuid.New().String(),
		UserID: userID(c),
		Name:   input.Name,
	}
	if err := h.DB.Create(&dashboard).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": dashboard})
}

// GetDashboards lists the user's dashboards, newest first, with their dataset
// sizes computed on read.
func (h *Handler) GetDashboards(c *gin.Context) {
	var dashboards []model.Dashboard
	if err := h.DB.Where("user_id = ?", userID(c)).Order("created_at desc").Find(&dashboards).Error; err != nil {
		respondError(c, err)
		return
	}

	for i := range dashboards {
		if err := h.countPosts(&dashboards[i]); err != nil {
			respondError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(dashboards), "data": dashboards})
}

// GetDashboard returns one owned dashboard with its dataset size.
func (h *Handler) GetDashboard(c *gin.Context) {
	dashboard, err := h.findOwnedDashboard(c.Param("id"), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.countPosts(dashboard); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": dashboard})
}

// UpdateDashboard renames an owned dashboard.
func (h *Handler) UpdateDashboard(c *gin.Context) {
	dashboard, err := h.findOwnedDashboard(c.Param("id"), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	var input dashboardInput
	if err := c.ShouldBindJSON(&input); err == nil && input.Name != "" {
		dashboard.Name = input.Name
		dashboard.UpdatedAt = time.Now()
		if err := h.DB.Save(dashboard).Error; err != nil {
			respondError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": dashboard})
}

// DeleteDashboard removes an owned dashboard and cascades to all of its
// posts.
func (h *Handler) DeleteDashboard(c *gin.Context) {
	dashboard, err := h.findOwnedDashboard(c.Param("id"), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	// The FK cascade covers migrated databases; the explicit delete keeps the
	// invariant on stores created without the constraint.
	if err := h.DB.Where("dashboard_id = ?", dashboard.Id).Delete(&model.Post{}).Error; err != nil {
		respondError(c, err)
		return
	}
	if err := h.DB.Delete(dashboard).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "dashboard deleted successfully"})
}

func (h *Handler) countPosts(dashboard *model.Dashboard) error {
	return h.DB.Model(&model.Post{}).Where("dashboard_id = ?", dashboard.Id).Count(&dashboard.DatasetSize).Error
}
