package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Wonderwall-Inc/golfin-miniapp-server/models"
	"github.com/Wonderwall-Inc/golfin-miniapp-server/utils"
)

// PointController manages per-user point ledgers.
type PointController struct {
	db *gorm.DB
}

// NewPointController creates a new PointController instance.
func NewPointController(db *gorm.DB) *PointController {
	return &PointController{db: db}
}

// CreatePoint inserts a ledger for a user that does not have one yet.
func (p *PointController) CreatePoint(ctx *gin.Context) {
	var req struct {
		UserID             uint `json:"user_id" binding:"required"`
		LoginAmount        int  `json:"login_amount"`
		ReferralAmount     int  `json:"referral_amount"`
		ExtraProfitPerHour int  `json:"extra_profit_per_hour"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40300, "invalid request payload")
		return
	}

	var count int64
	if err := p.db.Model(&models.Point{}).Where("user_id = ?", req.UserID).
		Count(&count).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50300, "failed to check existing ledger")
		return
	}
	if count > 0 {
		utils.Error(ctx, http.StatusConflict, 40301, "ledger already exists for user")
		return
	}

	point := models.Point{
		UserID:             req.UserID,
		LoginAmount:        req.LoginAmount,
		ReferralAmount:     req.ReferralAmount,
		ExtraProfitPerHour: req.ExtraProfitPerHour,
	}
	if err := p.db.Create(&point).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50301, "failed to create ledger")
		return
	}

	utils.InvalidateByPrefix("cache:ranking:points")
	utils.Success(ctx, gin.H{"point": point})
}

// GetPoint returns one ledger by id or user_id.
func (p *PointController) GetPoint(ctx *gin.Context) {
	query := p.db.Model(&models.Point{})
	switch {
	case ctx.Query("id") != "":
		query = query.Where("id = ?", parseUintQuery(ctx.Query("id")))
	case ctx.Query("user_id") != "":
		query = query.Where("user_id = ?", parseUintQuery(ctx.Query("user_id")))
	default:
		utils.Error(ctx, http.StatusBadRequest, 40302, "missing lookup parameter")
		return
	}

	var point models.Point
	if err := query.First(&point).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40430, "point not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50302, "failed to load ledger")
		return
	}
	utils.Success(ctx, gin.H{"point": point})
}

// ListPoints returns ledgers with offset pagination, optionally filtered
// to user_ids.
func (p *PointController) ListPoints(ctx *gin.Context) {
	skip, limit := parseSkipLimit(ctx.Query("skip"), ctx.Query("limit"))
	userIDs := parseUserIDs(ctx.Query("user_ids"))

	query := p.db.Model(&models.Point{})
	if len(userIDs) > 0 {
		query = query.Where("user_id IN ?", userIDs)
	}

	var points []models.Point
	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50303, "failed to count ledgers")
		return
	}
	if err := query.Order("id").Offset(skip).Limit(limit).Find(&points).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50304, "failed to list ledgers")
		return
	}

	utils.Success(ctx, gin.H{
		"items": points,
		"pagination": gin.H{
			"skip":  skip,
			"limit": limit,
			"total": total,
		},
	})
}

// UpdatePoint adds to or subtracts from the amount fields of one ledger.
// Subtraction floors at zero.
func (p *PointController) UpdatePoint(ctx *gin.Context) {
	var req struct {
		ID                 uint   `json:"id"`
		UserID             uint   `json:"user_id"`
		Type               string `json:"type" binding:"required,oneof=add minus"`
		LoginAmount        int    `json:"login_amount"`
		ReferralAmount     int    `json:"referral_amount"`
		ExtraProfitPerHour int    `json:"extra_profit_per_hour"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40303, "invalid request payload")
		return
	}
	if req.LoginAmount < 0 || req.ReferralAmount < 0 || req.ExtraProfitPerHour < 0 {
		utils.Error(ctx, http.StatusBadRequest, 40304, "amounts must be non-negative")
		return
	}

	query := p.db
	switch {
	case req.ID != 0:
		query = query.Where("id = ?", req.ID)
	case req.UserID != 0:
		query = query.Where("user_id = ?", req.UserID)
	default:
		utils.Error(ctx, http.StatusBadRequest, 40305, "missing ledger reference")
		return
	}

	var point models.Point
	if err := query.First(&point).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40431, "point not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50305, "failed to load ledger")
		return
	}

	sign := 1
	if req.Type == "minus" {
		sign = -1
	}
	point.LoginAmount = clampNonNegative(point.LoginAmount + sign*req.LoginAmount)
	point.ReferralAmount = clampNonNegative(point.ReferralAmount + sign*req.ReferralAmount)
	point.ExtraProfitPerHour = clampNonNegative(point.ExtraProfitPerHour + sign*req.ExtraProfitPerHour)

	if err := p.db.Save(&point).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50306, "failed to update ledger")
		return
	}

	utils.InvalidateByPrefix("cache:ranking:points")
	utils.Success(ctx, gin.H{"point": point})
}

// DeletePoint removes one ledger by path id.
func (p *PointController) DeletePoint(ctx *gin.Context) {
	var point models.Point
	if err := p.db.First(&point, ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40432, "point not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50307, "failed to load ledger")
		return
	}

	if err := p.db.Delete(&point).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50308, "failed to delete ledger")
		return
	}

	utils.InvalidateByPrefix("cache:ranking:points")
	utils.Success(ctx, gin.H{"message": "point deleted"})
}

type pointRankingRow struct {
	UserID  uint `json:"user_id"`
	Total   int  `json:"total"`
	Ranking int  `json:"ranking"`
}

// PointRanking returns the total-score leaderboard (login + referral)
// computed with a window function. When user_id is set only that user's
// row returns.
func (p *PointController) PointRanking(ctx *gin.Context) {
	userID := parseUintQuery(ctx.Query("user_id"))

	cacheKey := "cache:ranking:points"
	var rows []pointRankingRow
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		if err := json.Unmarshal(b, &rows); err != nil {
			rows = nil
		}
	}
	if rows == nil {
		if err := p.db.Raw(`
			SELECT user_id,
			       login_amount + referral_amount AS total,
			       RANK() OVER (ORDER BY login_amount + referral_amount DESC) AS ranking
			FROM points`).Scan(&rows).Error; err != nil {
			utils.Error(ctx, http.StatusInternalServerError, 50309, "failed to compute ranking")
			return
		}
		utils.CacheSetJSON(cacheKey, rows, rankingCacheTTL)
	}

	if userID != 0 {
		for _, r := range rows {
			if r.UserID == userID {
				utils.Success(ctx, gin.H{"ranking": []pointRankingRow{r}})
				return
			}
		}
		utils.Success(ctx, gin.H{"ranking": []pointRankingRow{}})
		return
	}

	utils.Success(ctx, gin.H{"ranking": rows})
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
