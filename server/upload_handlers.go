package server

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/pulseboard/pulseboard/ingest"
	"github.com/pulseboard/pulseboard/model"
	Logger "github.com/pulseboard/pulseboard/utils/log"
)

// maxUploadBytes caps accepted dataset files at 10MB.
const maxUploadBytes = 10 << 20

// Upload ingests a CSV or JSON dataset file into a dashboard. The whole batch
// either ingests or is rejected: a structural parse failure aborts with
// InvalidFormat and no partial insert. With overwrite=true the dashboard's
// existing posts are replaced.
func (h *Handler) Upload(c *gin.Context) {
	dashboard, err := h.findOwnedDashboard(c.Param("id"), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "no file uploaded"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "file exceeds the 10MB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()
	data, err := ioutil.ReadAll(file)
	if err != nil {
		respondError(c, err)
		return
	}

	rows, err := ingest.ParseRows(fileHeader.Filename, data)
	if err != nil {
		respondError(c, err)
		return
	}

	normalized := h.Normalizer.ProcessBatch(rows)

	posts := make([]model.Post, 0, len(normalized))
	for _, item := range normalized {
		post := model.Post{Id: uuid.New().String(), DashboardID: dashboard.Id}
		if err := copier.Copy(&post, &item); err != nil {
			respondError(c, err)
			return
		}
		post.SetCommentList(item.CommentTexts)
		posts = append(posts, post)
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if c.Query("overwrite") == "true" {
			if err := tx.Where("dashboard_id = ?", dashboard.Id).Delete(&model.Post{}).Error; err != nil {
				return errors.Wrap(err, "failed to overwrite existing posts")
			}
		}
		if len(posts) > 0 {
			if err := tx.Create(&posts).Error; err != nil {
				return errors.Wrap(err, "failed to insert posts")
			}
		}
		dashboard.UpdatedAt = time.Now()
		return tx.Save(dashboard).Error
	})
	if err != nil {
		respondError(c, err)
		return
	}

	Logger.Log.Info("ingested ", len(posts), " posts into dashboard: ", dashboard.Id)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Successfully uploaded %d posts", len(posts)),
		"count":   len(posts),
		"data":    posts,
	})
}
