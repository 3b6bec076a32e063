package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Wonderwall-Inc/golfin-miniapp-server/models"
	"github.com/Wonderwall-Inc/golfin-miniapp-server/services"
	"github.com/Wonderwall-Inc/golfin-miniapp-server/utils"
)

// ActivityController manages login bookkeeping rows and exposes the
// daily check-in endpoint.
type ActivityController struct {
	db      *gorm.DB
	checkin *services.CheckInService
}

// NewActivityController creates a new ActivityController instance.
func NewActivityController(db *gorm.DB, checkin *services.CheckInService) *ActivityController {
	return &ActivityController{db: db, checkin: checkin}
}

// CreateActivity inserts an activity row for a user that does not have
// one yet.
func (a *ActivityController) CreateActivity(ctx *gin.Context) {
	var req struct {
		UserID uint `json:"user_id" binding:"required"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40400, "invalid request payload")
		return
	}

	var count int64
	if err := a.db.Model(&models.Activity{}).Where("user_id = ?", req.UserID).
		Count(&count).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50400, "failed to check existing activity")
		return
	}
	if count > 0 {
		utils.Error(ctx, http.StatusConflict, 40401, "activity already exists for user")
		return
	}

	activity := models.Activity{UserID: req.UserID}
	if err := a.db.Create(&activity).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50401, "failed to create activity")
		return
	}

	utils.Success(ctx, gin.H{"activity": activity})
}

// GetActivity returns one activity row by id or user_id.
func (a *ActivityController) GetActivity(ctx *gin.Context) {
	query := a.db.Model(&models.Activity{})
	switch {
	case ctx.Query("id") != "":
		query = query.Where("id = ?", parseUintQuery(ctx.Query("id")))
	case ctx.Query("user_id") != "":
		query = query.Where("user_id = ?", parseUintQuery(ctx.Query("user_id")))
	default:
		utils.Error(ctx, http.StatusBadRequest, 40402, "missing lookup parameter")
		return
	}

	var activity models.Activity
	if err := query.First(&activity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40440, "activity not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50402, "failed to load activity")
		return
	}
	utils.Success(ctx, gin.H{"activity": activity})
}

// ListActivities returns activity rows with offset pagination,
// optionally filtered to user_ids.
func (a *ActivityController) ListActivities(ctx *gin.Context) {
	skip, limit := parseSkipLimit(ctx.Query("skip"), ctx.Query("limit"))
	userIDs := parseUserIDs(ctx.Query("user_ids"))

	query := a.db.Model(&models.Activity{})
	if len(userIDs) > 0 {
		query = query.Where("user_id IN ?", userIDs)
	}

	var activities []models.Activity
	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50403, "failed to count activities")
		return
	}
	if err := query.Order("id").Offset(skip).Limit(limit).Find(&activities).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50404, "failed to list activities")
		return
	}

	utils.Success(ctx, gin.H{
		"items": activities,
		"pagination": gin.H{
			"skip":  skip,
			"limit": limit,
			"total": total,
		},
	})
}

// UpdateActivity applies a partial update to activity fields outside the
// evaluator's control (the login fields only move through check-in).
func (a *ActivityController) UpdateActivity(ctx *gin.Context) {
	var req struct {
		ID             uint           `json:"id"`
		UserID         uint           `json:"user_id"`
		LastActionTime *time.Time     `json:"last_action_time"`
		CustomLogs     models.JSONMap `json:"custom_logs"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40403, "invalid request payload")
		return
	}

	query := a.db
	switch {
	case req.ID != 0:
		query = query.Where("id = ?", req.ID)
	case req.UserID != 0:
		query = query.Where("user_id = ?", req.UserID)
	default:
		utils.Error(ctx, http.StatusBadRequest, 40404, "missing activity reference")
		return
	}

	var activity models.Activity
	if err := query.First(&activity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40441, "activity not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50405, "failed to load activity")
		return
	}

	if req.LastActionTime != nil {
		activity.LastActionTime = *req.LastActionTime
	}
	if req.CustomLogs != nil {
		activity.CustomLogs = req.CustomLogs
	}

	if err := a.db.Save(&activity).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50406, "failed to update activity")
		return
	}

	utils.Success(ctx, gin.H{"activity": activity})
}

// CheckIn runs the daily check-in evaluator for the given user and
// returns the resulting activity and point snapshot.
func (a *ActivityController) CheckIn(ctx *gin.Context) {
	var req struct {
		UserID uint `json:"user_id"`
	}
	// Body is optional when the caller is authenticated.
	_ = ctx.ShouldBindJSON(&req)

	userID := req.UserID
	if userID == 0 {
		userID, _ = getUserID(ctx)
	}
	if userID == 0 {
		userID = parseUintQuery(ctx.Query("user_id"))
	}

	result, err := a.checkin.CheckIn(ctx.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			utils.Error(ctx, http.StatusBadRequest, 40405, "missing user id")
		case errors.Is(err, services.ErrNotFound):
			utils.Error(ctx, http.StatusNotFound, 40442, "activity or point not found")
		default:
			utils.Error(ctx, http.StatusInternalServerError, 50407, "check-in failed")
		}
		return
	}

	if result.NewDay {
		utils.InvalidateByPrefix("cache:ranking:points")
	}
	utils.Success(ctx, result)
}

// DeleteActivity removes one activity row by path id.
func (a *ActivityController) DeleteActivity(ctx *gin.Context) {
	var activity models.Activity
	if err := a.db.First(&activity, ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40443, "activity not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50408, "failed to load activity")
		return
	}

	if err := a.db.Delete(&activity).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50409, "failed to delete activity")
		return
	}

	utils.Success(ctx, gin.H{"message": "activity deleted"})
}
