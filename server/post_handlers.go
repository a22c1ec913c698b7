package server

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/pulseboard/pulseboard/model"
	"github.com/pulseboard/pulseboard/utils"
	Logger "github.com/pulseboard/pulseboard/utils/log"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// sortableColumns whitelists the post columns exposed for sorting.
var sortableColumns = map[string]string{
	"timestamp":       "timestamp",
	"engagementScore": "engagement_score",
	"likes":           "likes",
	"commentsCount":   "comments_count",
	"shares":          "shares",
	"createdAt":       "created_at",
}

type metricsInput struct {
	Likes         *int `json:"likes"`
	CommentsCount *int `json:"commentsCount"`
	Shares        *int `json:"shares"`
}

// applyPostFilters narrows a post query by the optional sentiment and date
// range filters shared between the posts listing and the analytics payload.
func applyPostFilters(tx *gorm.DB, c *gin.Context) (*gorm.DB, error) {
	if sentiment := c.Query("sentiment"); sentiment != "" && sentiment != "all" {
		label, err := model.ParseSentimentLabel(sentiment)
		if err != nil {
			return nil, errors.Wrap(model.ErrInvalidFormat, err.Error())
		}
		tx = tx.Where("sentiment_label = ?", label)
	}
	if dateFrom := c.Query("dateFrom"); dateFrom != "" {
		from, err := parseDateBound(dateFrom, false)
		if err != nil {
			return nil, err
		}
		tx = tx.Where("timestamp >= ?", from)
	}
	if dateTo := c.Query("dateTo"); dateTo != "" {
		to, err := parseDateBound(dateTo, true)
		if err != nil {
			return nil, err
		}
		tx = tx.Where("timestamp <= ?", to)
	}
	return tx, nil
}

// GetPosts lists a dashboard's posts with optional filters, pagination and
// sorting.
func (h *Handler) GetPosts(c *gin.Context) {
	dashboard, err := h.findOwnedDashboard(c.Param("id"), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	if page < 1 {
		page = defaultPage
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if limit < 1 {
		limit = defaultLimit
	}

	column, ok := sortableColumns[c.DefaultQuery("sortBy", "timestamp")]
	if !ok {
		column = "timestamp"
	}
	order := c.DefaultQuery("sortOrder", "desc")
	if !utils.ContainsString([]string{"asc", "desc"}, order) {
		order = "desc"
	}

	tx, err := applyPostFilters(h.DB.Model(&model.Post{}).Where("dashboard_id = ?", dashboard.Id), c)
	if err != nil {
		respondError(c, err)
		return
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		respondError(c, err)
		return
	}

	var posts []model.Post
	if err := tx.Order(column + " " + order).Offset((page - 1) * limit).Limit(limit).Find(&posts).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    posts,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": int(math.Ceil(float64(total) / float64(limit))),
		},
	})
}

// UpdatePost applies partial metric edits to one post and cascades the full
// recompute: engagement, sentiment, emotion, and the performance prediction
// against the dashboard-wide cohort average. The read-then-write runs inside
// one transaction so concurrent edits never predict against a stale average.
func (h *Handler) UpdatePost(c *gin.Context) {
	var input metricsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	var post model.Post
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&post, "id = ?", c.Param("postId")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.Wrap(model.ErrNotFound, "post not found")
			}
			return err
		}
		if err := tx.Where("id = ? AND user_id = ?", post.DashboardID, userID(c)).
			First(&model.Dashboard{}).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.Wrap(model.ErrNotFound, "post not found")
			}
			return err
		}

		if input.Likes != nil {
			post.Likes = clampCount(*input.Likes)
		}
		if input.CommentsCount != nil {
			post.CommentsCount = clampCount(*input.CommentsCount)
		}
		if input.Shares != nil {
			post.Shares = clampCount(*input.Shares)
		}
		post.EngagementScore = post.Likes + post.CommentsCount + post.Shares

		// The cohort average is recomputed over all current posts of the
		// dashboard, including this post's new engagement, not incrementally.
		var cohort []model.Post
		if err := tx.Select("id", "engagement_score").
			Where("dashboard_id = ?", post.DashboardID).Find(&cohort).Error; err != nil {
			return err
		}
		total := 0
		for _, p := range cohort {
			if p.Id == post.Id {
				total += post.EngagementScore
			} else {
				total += p.EngagementScore
			}
		}
		avg := 0.0
		if len(cohort) > 0 {
			avg = float64(total) / float64(len(cohort))
		}

		h.Normalizer.RecomputeMetrics(&post, avg)
		return tx.Save(&post).Error
	})
	if err != nil {
		respondError(c, err)
		return
	}

	Logger.Log.Info("recomputed metrics for post: ", post.Id)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": post})
}

// DeletePost removes one post owned (through its dashboard) by the user.
func (h *Handler) DeletePost(c *gin.Context) {
	var post model.Post
	if err := h.DB.First(&post, "id = ?", c.Param("postId")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, errors.Wrap(model.ErrNotFound, "post not found"))
			return
		}
		respondError(c, err)
		return
	}
	if _, err := h.findOwnedDashboard(post.DashboardID, userID(c)); err != nil {
		respondError(c, errors.Wrap(model.ErrNotFound, "post not found"))
		return
	}

	if err := h.DB.Delete(&post).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "post deleted successfully"})
}

func clampCount(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
