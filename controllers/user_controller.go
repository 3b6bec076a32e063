package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Wonderwall-Inc/golfin-miniapp-server/models"
	"github.com/Wonderwall-Inc/golfin-miniapp-server/utils"
)

// UserController manages the user resource.
type UserController struct {
	db *gorm.DB
}

// NewUserController creates a new UserController instance.
func NewUserController(db *gorm.DB) *UserController {
	return &UserController{db: db}
}

const tokenLifetime = 7 * 24 * time.Hour

// bootstrapUser inserts a user together with its point and activity
// rows. The three inserts commit together or not at all; the check-in
// evaluator relies on both companion rows existing.
func bootstrapUser(tx *gorm.DB, user *models.User) error {
	if err := tx.Create(user).Error; err != nil {
		return err
	}
	if err := tx.Create(&models.Point{UserID: user.ID}).Error; err != nil {
		return err
	}
	return tx.Create(&models.Activity{UserID: user.ID}).Error
}

// CreateUser registers a new player and returns an access token.
func (u *UserController) CreateUser(ctx *gin.Context) {
	var req struct {
		Username      string         `json:"username" binding:"required"`
		TelegramID    string         `json:"telegram_id" binding:"required"`
		ChatID        string         `json:"chat_id"`
		StartParam    string         `json:"start_param"`
		Premium       bool           `json:"premium"`
		WalletAddress string         `json:"wallet_address"`
		Location      string         `json:"location"`
		Nationality   string         `json:"nationality"`
		Age           *int           `json:"age"`
		Gender        string         `json:"gender"`
		Email         string         `json:"email"`
		CustomLogs    models.JSONMap `json:"custom_logs"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40100, "invalid request payload")
		return
	}

	var existing models.User
	err := u.db.Where("telegram_id = ?", req.TelegramID).First(&existing).Error
	if err == nil {
		utils.Error(ctx, http.StatusConflict, 40101, "telegram id already registered")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Error(ctx, http.StatusInternalServerError, 50100, "failed to check existing user")
		return
	}

	user := models.User{
		Username:      strings.TrimSpace(req.Username),
		TelegramID:    strings.TrimSpace(req.TelegramID),
		ChatID:        req.ChatID,
		StartParam:    req.StartParam,
		Premium:       req.Premium,
		WalletAddress: req.WalletAddress,
		Location:      req.Location,
		Nationality:   req.Nationality,
		Age:           req.Age,
		Gender:        req.Gender,
		Email:         req.Email,
		CustomLogs:    req.CustomLogs,
	}

	if err := u.db.Transaction(func(tx *gorm.DB) error {
		return bootstrapUser(tx, &user)
	}); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50101, "failed to create user")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Username, tokenLifetime)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50102, "failed to issue token")
		return
	}

	utils.Success(ctx, gin.H{"user": user, "access_token": token})
}

// GetUserByID returns one user by path id.
func (u *UserController) GetUserByID(ctx *gin.Context) {
	var user models.User
	if err := u.db.First(&user, ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40410, "user not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50103, "failed to load user")
		return
	}
	utils.Success(ctx, gin.H{"user": user})
}

// GetUser looks a user up by id, username, telegram_id or
// wallet_address query values, in that order of precedence.
func (u *UserController) GetUser(ctx *gin.Context) {
	query := u.db.Model(&models.User{})
	switch {
	case ctx.Query("id") != "":
		query = query.Where("id = ?", parseUintQuery(ctx.Query("id")))
	case ctx.Query("username") != "":
		query = query.Where("username = ?", ctx.Query("username"))
	case ctx.Query("telegram_id") != "":
		query = query.Where("telegram_id = ?", ctx.Query("telegram_id"))
	case ctx.Query("wallet_address") != "":
		query = query.Where("wallet_address = ?", ctx.Query("wallet_address"))
	default:
		utils.Error(ctx, http.StatusBadRequest, 40102, "missing lookup parameter")
		return
	}

	var user models.User
	if err := query.First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40411, "user not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50104, "failed to load user")
		return
	}
	utils.Success(ctx, gin.H{"user": user})
}

// ListUsers returns users with offset pagination.
func (u *UserController) ListUsers(ctx *gin.Context) {
	skip, limit := parseSkipLimit(ctx.Query("skip"), ctx.Query("limit"))

	var users []models.User
	var total int64
	if err := u.db.Model(&models.User{}).Count(&total).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50105, "failed to count users")
		return
	}
	if err := u.db.Order("id").Offset(skip).Limit(limit).Find(&users).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50106, "failed to list users")
		return
	}

	utils.Success(ctx, gin.H{
		"items": users,
		"pagination": gin.H{
			"skip":  skip,
			"limit": limit,
			"total": total,
		},
	})
}

// UpdateUser applies a partial update to one user.
func (u *UserController) UpdateUser(ctx *gin.Context) {
	var req struct {
		ID            uint           `json:"id" binding:"required"`
		Username      *string        `json:"username"`
		ChatID        *string        `json:"chat_id"`
		TokenBalance  *int           `json:"token_balance"`
		Active        *bool          `json:"active"`
		Premium       *bool          `json:"premium"`
		WalletAddress *string        `json:"wallet_address"`
		Skin          *string        `json:"skin"`
		InGameItems   models.JSONMap `json:"in_game_items"`
		Location      *string        `json:"location"`
		Nationality   *string        `json:"nationality"`
		Age           *int           `json:"age"`
		Gender        *string        `json:"gender"`
		Email         *string        `json:"email"`
		CustomLogs    models.JSONMap `json:"custom_logs"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40103, "invalid request payload")
		return
	}

	var user models.User
	if err := u.db.First(&user, req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40412, "user not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50107, "failed to load user")
		return
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.ChatID != nil {
		user.ChatID = *req.ChatID
	}
	if req.TokenBalance != nil {
		user.TokenBalance = *req.TokenBalance
	}
	if req.Active != nil {
		user.Active = *req.Active
	}
	if req.Premium != nil {
		user.Premium = *req.Premium
	}
	if req.WalletAddress != nil {
		user.WalletAddress = *req.WalletAddress
	}
	if req.Skin != nil {
		user.Skin = *req.Skin
	}
	if req.InGameItems != nil {
		user.InGameItems = req.InGameItems
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.Nationality != nil {
		user.Nationality = *req.Nationality
	}
	if req.Age != nil {
		user.Age = req.Age
	}
	if req.Gender != nil {
		user.Gender = *req.Gender
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.CustomLogs != nil {
		user.CustomLogs = req.CustomLogs
	}

	if err := u.db.Save(&user).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50108, "failed to update user")
		return
	}

	utils.Success(ctx, gin.H{"user": user})
}

// DeleteUser removes a user and its companion rows.
func (u *UserController) DeleteUser(ctx *gin.Context) {
	var user models.User
	if err := u.db.First(&user, ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40413, "user not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50109, "failed to load user")
		return
	}

	if err := u.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Point{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Activity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.SocialMedia{}).Error; err != nil {
			return err
		}
		if err := tx.Where("sender_id = ? OR receiver_id = ?", user.ID, user.ID).
			Delete(&models.Friend{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	}); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50110, "failed to delete user")
		return
	}

	utils.InvalidateByPrefix("cache:ranking:")
	utils.Success(ctx, gin.H{"message": "user deleted"})
}
