package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Wonderwall-Inc/golfin-miniapp-server/models"
	"github.com/Wonderwall-Inc/golfin-miniapp-server/utils"
)

// SocialMediaController manages per-user campaign platform links.
type SocialMediaController struct {
	db *gorm.DB
}

// NewSocialMediaController creates a new SocialMediaController instance.
func NewSocialMediaController(db *gorm.DB) *SocialMediaController {
	return &SocialMediaController{db: db}
}

// CreateSocialMedia inserts the platform row for a user that does not
// have one yet.
func (s *SocialMediaController) CreateSocialMedia(ctx *gin.Context) {
	var req struct {
		UserID      uint   `json:"user_id" binding:"required"`
		YoutubeID   string `json:"youtube_id"`
		FacebookID  string `json:"facebook_id"`
		InstagramID string `json:"instagram_id"`
		TelegramID  string `json:"telegram_id"`
		XID         string `json:"x_id"`
		DiscordID   string `json:"discord_id"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40600, "invalid request payload")
		return
	}

	var count int64
	if err := s.db.Model(&models.SocialMedia{}).Where("user_id = ?", req.UserID).
		Count(&count).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50600, "failed to check existing row")
		return
	}
	if count > 0 {
		utils.Error(ctx, http.StatusConflict, 40601, "social media already exists for user")
		return
	}

	sm := models.SocialMedia{
		UserID:      req.UserID,
		YoutubeID:   req.YoutubeID,
		FacebookID:  req.FacebookID,
		InstagramID: req.InstagramID,
		TelegramID:  req.TelegramID,
		XID:         req.XID,
		DiscordID:   req.DiscordID,
	}
	if err := s.db.Create(&sm).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50601, "failed to create social media")
		return
	}

	utils.Success(ctx, gin.H{"social_media": sm})
}

// GetSocialMedia returns one row by id or user_id.
func (s *SocialMediaController) GetSocialMedia(ctx *gin.Context) {
	query := s.db.Model(&models.SocialMedia{})
	switch {
	case ctx.Query("id") != "":
		query = query.Where("id = ?", parseUintQuery(ctx.Query("id")))
	case ctx.Query("user_id") != "":
		query = query.Where("user_id = ?", parseUintQuery(ctx.Query("user_id")))
	default:
		utils.Error(ctx, http.StatusBadRequest, 40602, "missing lookup parameter")
		return
	}

	var sm models.SocialMedia
	if err := query.First(&sm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40460, "social media not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50602, "failed to load social media")
		return
	}
	utils.Success(ctx, gin.H{"social_media": sm})
}

// ListSocialMedia returns rows with offset pagination, optionally
// filtered to user_ids.
func (s *SocialMediaController) ListSocialMedia(ctx *gin.Context) {
	skip, limit := parseSkipLimit(ctx.Query("skip"), ctx.Query("limit"))
	userIDs := parseUserIDs(ctx.Query("user_ids"))

	query := s.db.Model(&models.SocialMedia{})
	if len(userIDs) > 0 {
		query = query.Where("user_id IN ?", userIDs)
	}

	var items []models.SocialMedia
	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50603, "failed to count rows")
		return
	}
	if err := query.Order("id").Offset(skip).Limit(limit).Find(&items).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50604, "failed to list rows")
		return
	}

	utils.Success(ctx, gin.H{
		"items": items,
		"pagination": gin.H{
			"skip":  skip,
			"limit": limit,
			"total": total,
		},
	})
}

// UpdateSocialMedia applies a partial update. Following flags that flip
// to true stamp the matching action date.
func (s *SocialMediaController) UpdateSocialMedia(ctx *gin.Context) {
	var req struct {
		ID     uint `json:"id"`
		UserID uint `json:"user_id"`

		YoutubeID        *string `json:"youtube_id"`
		YoutubeFollowing *bool   `json:"youtube_following"`
		YoutubeViewed    *bool   `json:"youtube_viewed"`

		FacebookID        *string `json:"facebook_id"`
		FacebookFollowing *bool   `json:"facebook_following"`

		InstagramID        *string `json:"instagram_id"`
		InstagramFollowing *bool   `json:"instagram_following"`
		InstagramTagged    *bool   `json:"instagram_tagged"`
		InstagramReposted  *bool   `json:"instagram_reposted"`

		TelegramID        *string `json:"telegram_id"`
		TelegramFollowing *bool   `json:"telegram_following"`

		XID        *string `json:"x_id"`
		XFollowing *bool   `json:"x_following"`

		DiscordID        *string `json:"discord_id"`
		DiscordFollowing *bool   `json:"discord_following"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40603, "invalid request payload")
		return
	}

	query := s.db
	switch {
	case req.ID != 0:
		query = query.Where("id = ?", req.ID)
	case req.UserID != 0:
		query = query.Where("user_id = ?", req.UserID)
	default:
		utils.Error(ctx, http.StatusBadRequest, 40604, "missing row reference")
		return
	}

	var sm models.SocialMedia
	if err := query.First(&sm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40461, "social media not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50605, "failed to load social media")
		return
	}

	now := time.Now()

	if req.YoutubeID != nil {
		sm.YoutubeID = *req.YoutubeID
	}
	if req.YoutubeFollowing != nil {
		sm.YoutubeFollowing = *req.YoutubeFollowing
	}
	if req.YoutubeViewed != nil {
		sm.YoutubeViewed = *req.YoutubeViewed
		if *req.YoutubeViewed {
			sm.YoutubeViewDate = &now
		}
	}

	if req.FacebookID != nil {
		sm.FacebookID = *req.FacebookID
	}
	if req.FacebookFollowing != nil {
		sm.FacebookFollowing = *req.FacebookFollowing
		if *req.FacebookFollowing {
			sm.FacebookFollowedDate = &now
		}
	}

	if req.InstagramID != nil {
		sm.InstagramID = *req.InstagramID
	}
	if req.InstagramFollowing != nil {
		sm.InstagramFollowing = *req.InstagramFollowing
		if *req.InstagramFollowing {
			sm.InstagramFollowedDate = &now
		}
	}
	if req.InstagramTagged != nil {
		sm.InstagramTagged = *req.InstagramTagged
		if *req.InstagramTagged {
			sm.InstagramTaggedDate = &now
		}
	}
	if req.InstagramReposted != nil {
		sm.InstagramReposted = *req.InstagramReposted
		if *req.InstagramReposted {
			sm.InstagramRepostedDate = &now
		}
	}

	if req.TelegramID != nil {
		sm.TelegramID = *req.TelegramID
	}
	if req.TelegramFollowing != nil {
		sm.TelegramFollowing = *req.TelegramFollowing
		if *req.TelegramFollowing {
			sm.TelegramFollowedDate = &now
		}
	}

	if req.XID != nil {
		sm.XID = *req.XID
	}
	if req.XFollowing != nil {
		sm.XFollowing = *req.XFollowing
		if *req.XFollowing {
			sm.XFollowedDate = &now
		}
	}

	if req.DiscordID != nil {
		sm.DiscordID = *req.DiscordID
	}
	if req.DiscordFollowing != nil {
		sm.DiscordFollowing = *req.DiscordFollowing
		if *req.DiscordFollowing {
			sm.DiscordFollowedDate = &now
		}
	}

	if err := s.db.Save(&sm).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50606, "failed to update social media")
		return
	}

	utils.Success(ctx, gin.H{"social_media": sm})
}
