// Package server exposes the REST surface of the analytics service: auth,
// dashboard management, post ingestion and edits, and the analytics payloads.
package server

import (
	"net/http"
	"time"

	"github.com/araddon/dateparse"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/pulseboard/pulseboard/ingest"
	"github.com/pulseboard/pulseboard/model"
	Logger "github.com/pulseboard/pulseboard/utils/log"
)

// Handler carries the shared dependencies of all route handlers.
type Handler struct {
	DB         *gorm.DB
	Normalizer *ingest.Normalizer
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Normalizer: ingest.NewNormalizer()}
}

// RegisterRoutes binds all API routes onto the router group. The authed group
// is expected to carry the JWT middleware.
func (h *Handler) RegisterRoutes(public, authed *gin.RouterGroup) {
	public.POST("/auth/register", h.Register)
	public.POST("/auth/login", h.Login)
	authed.GET("/auth/me", h.Me)

	authed.POST("/dashboards", h.CreateDashboard)
	authed.GET("/dashboards", h.GetDashboards)
	authed.GET("/dashboards/:id", h.GetDashboard)
	authed.PUT("/dashboards/:id", h.UpdateDashboard)
	authed.DELETE("/dashboards/:id", h.DeleteDashboard)
	authed.GET("/dashboards/:id/posts", h.GetPosts)

	authed.PUT("/posts/:postId", h.UpdatePost)
	authed.DELETE("/posts/:postId", h.DeletePost)

	authed.POST("/upload/:id", h.Upload)

	authed.GET("/analytics/:id", h.GetAnalytics)
	authed.GET("/analytics/:id/insights", h.GetInsights)
}

// userID returns the authenticated user's id injected by the JWT middleware.
func userID(c *gin.Context) string {
	return c.Request.Header.Get("sub")
}

// findOwnedDashboard loads a dashboard owned by the given user, reporting
// ErrNotFound both for missing and for foreign dashboards.
func (h *Handler) findOwnedDashboard(dashboardID, ownerID string) (*model.Dashboard, error) {
	var dashboard model.Dashboard
	result := h.DB.Where("id = ? AND user_id = ?", dashboardID, ownerID).First(&dashboard)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.Wrap(model.ErrNotFound, "dashboard not found")
		}
		return nil, result.Error
	}
	return &dashboard, nil
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, model.ErrInvalidFormat):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	default:
		Logger.Log.Error("internal error: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal error"})
	}
}

// parseDateBound parses a free-form date filter bound. The "to" bound is
// inclusive of the whole day it names.
func parseDateBound(value string, endOfDay bool) (time.Time, error) {
	t, err := dateparse.ParseLocal(value)
	if err != nil {
		return time.Time{}, errors.Wrapf(model.ErrInvalidFormat, "unparseable date %q", value)
	}
	if endOfDay {
		t = time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, t.Location())
	}
	return t, nil
}
