package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Wonderwall-Inc/golfin-miniapp-server/models"
	"github.com/Wonderwall-Inc/golfin-miniapp-server/utils"
)

// RecordController exposes the audit trail written by the audit
// middleware.
type RecordController struct {
	db *gorm.DB
}

// NewRecordController creates a new RecordController instance.
func NewRecordController(db *gorm.DB) *RecordController {
	return &RecordController{db: db}
}

// ListRecords returns audit rows, newest first, optionally filtered to
// one user.
func (r *RecordController) ListRecords(ctx *gin.Context) {
	skip, limit := parseSkipLimit(ctx.Query("skip"), ctx.Query("limit"))

	query := r.db.Model(&models.Record{})
	if userID := parseUintQuery(ctx.Query("user_id")); userID != 0 {
		query = query.Where("user_id = ?", userID)
	}

	var records []models.Record
	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50700, "failed to count records")
		return
	}
	if err := query.Order("id DESC").Offset(skip).Limit(limit).
		Find(&records).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50701, "failed to list records")
		return
	}

	utils.Success(ctx, gin.H{
		"items": records,
		"pagination": gin.H{
			"skip":  skip,
			"limit": limit,
			"total": total,
		},
	})
}
