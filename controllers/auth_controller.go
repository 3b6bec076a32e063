package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Wonderwall-Inc/golfin-miniapp-server/config"
	"github.com/Wonderwall-Inc/golfin-miniapp-server/models"
	"github.com/Wonderwall-Inc/golfin-miniapp-server/utils"
)

// AuthController verifies Telegram login payloads and issues tokens.
type AuthController struct {
	db *gorm.DB
}

// NewAuthController creates a new AuthController instance.
func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{db: db}
}

// TelegramLogin validates a Telegram login-widget payload, finds or
// creates the matching user and returns a JWT.
func (a *AuthController) TelegramLogin(ctx *gin.Context) {
	var req utils.TelegramAuthPayload
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40010, "invalid request payload")
		return
	}

	cfg := config.Get()
	if !utils.VerifyTelegramSignature(cfg.TelegramBotToken, req) {
		utils.Error(ctx, http.StatusUnauthorized, 40011, "telegram signature verification failed")
		return
	}

	var user models.User
	err := a.db.Where("telegram_id = ?", req.ID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		username := req.Username
		if username == "" {
			username = req.FirstName
		}
		user = models.User{
			Username:   username,
			TelegramID: req.ID,
		}
		err = a.db.Transaction(func(tx *gorm.DB) error {
			return bootstrapUser(tx, &user)
		})
	}
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50010, "failed to resolve user")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Username, tokenLifetime)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50011, "failed to issue token")
		return
	}

	utils.Success(ctx, gin.H{"user": user, "access_token": token})
}
