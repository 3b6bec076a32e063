package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Wonderwall-Inc/golfin-miniapp-server/config"
	"github.com/Wonderwall-Inc/golfin-miniapp-server/models"
	"github.com/Wonderwall-Inc/golfin-miniapp-server/utils"
)

const rankingCacheTTL = time.Minute

// FriendController manages referral relationships between users.
type FriendController struct {
	db *gorm.DB
}

// NewFriendController creates a new FriendController instance.
func NewFriendController(db *gorm.DB) *FriendController {
	return &FriendController{db: db}
}

// CreateFriend records a referral pair. The pair is unique in either
// direction.
func (f *FriendController) CreateFriend(ctx *gin.Context) {
	var req struct {
		SenderID   uint   `json:"sender_id" binding:"required"`
		ReceiverID uint   `json:"receiver_id" binding:"required"`
		Status     string `json:"status"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40200, "invalid request payload")
		return
	}
	if req.SenderID == req.ReceiverID {
		utils.Error(ctx, http.StatusBadRequest, 40201, "sender and receiver must differ")
		return
	}

	status := req.Status
	if status == "" {
		status = models.FriendStatusPending
	}
	if status != models.FriendStatusPending && status != models.FriendStatusActive &&
		status != models.FriendStatusRejected {
		utils.Error(ctx, http.StatusBadRequest, 40202, "invalid status")
		return
	}

	var count int64
	if err := f.db.Model(&models.Friend{}).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			req.SenderID, req.ReceiverID, req.ReceiverID, req.SenderID).
		Count(&count).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50200, "failed to check existing pair")
		return
	}
	if count > 0 {
		utils.Error(ctx, http.StatusConflict, 40203, "friend pair already exists")
		return
	}

	friend := models.Friend{
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
		Status:     status,
	}
	if err := f.db.Create(&friend).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50201, "failed to create friend")
		return
	}

	utils.InvalidateByPrefix("cache:ranking:referral")
	utils.Success(ctx, gin.H{"friend": friend})
}

// GetFriend looks up either one row by id or, by user_id, the rows the
// user appears in as sender and as receiver.
func (f *FriendController) GetFriend(ctx *gin.Context) {
	if id := parseUintQuery(ctx.Query("id")); id != 0 {
		var friend models.Friend
		if err := f.db.First(&friend, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Error(ctx, http.StatusNotFound, 40420, "friend not found")
				return
			}
			utils.Error(ctx, http.StatusInternalServerError, 50202, "failed to load friend")
			return
		}
		utils.Success(ctx, gin.H{"friend": friend})
		return
	}

	userID := parseUintQuery(ctx.Query("user_id"))
	if userID == 0 {
		utils.Error(ctx, http.StatusBadRequest, 40204, "missing lookup parameter")
		return
	}

	var asSender, asReceiver []models.Friend
	if err := f.db.Where("sender_id = ?", userID).Find(&asSender).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50203, "failed to load sent referrals")
		return
	}
	if err := f.db.Where("receiver_id = ?", userID).Find(&asReceiver).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50204, "failed to load received referrals")
		return
	}

	utils.Success(ctx, gin.H{"sender": asSender, "receiver": asReceiver})
}

// ListFriends returns friend rows, optionally filtered to users in
// user_ids (matching either side of the pair).
func (f *FriendController) ListFriends(ctx *gin.Context) {
	skip, limit := parseSkipLimit(ctx.Query("skip"), ctx.Query("limit"))
	userIDs := parseUserIDs(ctx.Query("user_ids"))

	query := f.db.Model(&models.Friend{})
	if len(userIDs) > 0 {
		query = query.Where("sender_id IN ? OR receiver_id IN ?", userIDs, userIDs)
	}

	var friends []models.Friend
	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50205, "failed to count friends")
		return
	}
	if err := query.Order("id").Offset(skip).Limit(limit).Find(&friends).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50206, "failed to list friends")
		return
	}

	utils.Success(ctx, gin.H{
		"items": friends,
		"pagination": gin.H{
			"skip":  skip,
			"limit": limit,
			"total": total,
		},
	})
}

// UpdateFriend changes the status of a referral.
func (f *FriendController) UpdateFriend(ctx *gin.Context) {
	var req struct {
		ID     uint   `json:"id" binding:"required"`
		Status string `json:"status" binding:"required"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40205, "invalid request payload")
		return
	}
	if req.Status != models.FriendStatusPending && req.Status != models.FriendStatusActive &&
		req.Status != models.FriendStatusRejected {
		utils.Error(ctx, http.StatusBadRequest, 40206, "invalid status")
		return
	}

	var friend models.Friend
	if err := f.db.First(&friend, req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40421, "friend not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50207, "failed to load friend")
		return
	}

	friend.Status = req.Status
	if err := f.db.Save(&friend).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50208, "failed to update friend")
		return
	}

	utils.Success(ctx, gin.H{"friend": friend})
}

// ClaimFriend marks the referral reward as collected and credits the
// sender's ledger. A repeat claim is a no-op success.
func (f *FriendController) ClaimFriend(ctx *gin.Context) {
	var req struct {
		ID uint `json:"id" binding:"required"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40207, "invalid request payload")
		return
	}

	reward := config.Get().ReferralRewardPoints
	var friend models.Friend
	err := f.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&friend, req.ID).Error; err != nil {
			return err
		}
		if friend.HasClaimed {
			return nil
		}

		var point models.Point
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", friend.SenderID).First(&point).Error; err != nil {
			return err
		}

		friend.HasClaimed = true
		friend.Status = models.FriendStatusActive
		point.ReferralAmount += reward

		if err := tx.Save(&friend).Error; err != nil {
			return err
		}
		return tx.Save(&point).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40422, "friend or point not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50209, "failed to claim referral")
		return
	}

	utils.InvalidateByPrefix("cache:ranking:")
	utils.Success(ctx, gin.H{"friend": friend})
}

type referralRankingRow struct {
	UserID        uint `json:"user_id"`
	ReferralCount int  `json:"referral_count"`
	Ranking       int  `json:"ranking"`
}

// ReferralRanking returns the referral-count leaderboard computed with a
// window function. When user_id is set only that user's row returns.
func (f *FriendController) ReferralRanking(ctx *gin.Context) {
	userID := parseUintQuery(ctx.Query("user_id"))

	cacheKey := "cache:ranking:referral"
	var rows []referralRankingRow
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		if err := json.Unmarshal(b, &rows); err != nil {
			rows = nil
		}
	}
	if rows == nil {
		if err := f.db.Raw(`
			SELECT sender_id AS user_id,
			       COUNT(*) AS referral_count,
			       RANK() OVER (ORDER BY COUNT(*) DESC) AS ranking
			FROM friends
			GROUP BY sender_id`).Scan(&rows).Error; err != nil {
			utils.Error(ctx, http.StatusInternalServerError, 50210, "failed to compute ranking")
			return
		}
		utils.CacheSetJSON(cacheKey, rows, rankingCacheTTL)
	}

	if userID != 0 {
		for _, r := range rows {
			if r.UserID == userID {
				utils.Success(ctx, gin.H{"ranking": []referralRankingRow{r}})
				return
			}
		}
		utils.Success(ctx, gin.H{"ranking": []referralRankingRow{}})
		return
	}

	utils.Success(ctx, gin.H{"ranking": rows})
}
