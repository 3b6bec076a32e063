package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Wonderwall-Inc/golfin-miniapp-server/models"
	"github.com/Wonderwall-Inc/golfin-miniapp-server/utils"
)

// GameCharacterController manages playable characters and their stats.
type GameCharacterController struct {
	db *gorm.DB
}

// NewGameCharacterController creates a new GameCharacterController instance.
func NewGameCharacterController(db *gorm.DB) *GameCharacterController {
	return &GameCharacterController{db: db}
}

// CreateCharacter inserts a character together with its initial stats
// row in one transaction.
func (g *GameCharacterController) CreateCharacter(ctx *gin.Context) {
	var req struct {
		UserID    uint   `json:"user_id" binding:"required"`
		FirstName string `json:"first_name" binding:"required"`
		LastName  string `json:"last_name" binding:"required"`
		Gender    int    `json:"gender"`
		Title     string `json:"title" binding:"required"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40500, "invalid request payload")
		return
	}

	character := models.GameCharacter{
		UserID:    req.UserID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Gender:    req.Gender,
		Title:     req.Title,
	}
	if character.Gender == 0 {
		character.Gender = 1
	}

	if err := g.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&character).Error; err != nil {
			return err
		}
		stats := models.GameCharacterStats{GameCharacterID: character.ID, Level: 1}
		if err := tx.Create(&stats).Error; err != nil {
			return err
		}
		character.Stats = &stats
		return nil
	}); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50500, "failed to create character")
		return
	}

	utils.Success(ctx, gin.H{"game_character": character})
}

// GetCharacter returns one character by id, or all of a user's
// characters by user_id.
func (g *GameCharacterController) GetCharacter(ctx *gin.Context) {
	if id := parseUintQuery(ctx.Query("id")); id != 0 {
		var character models.GameCharacter
		if err := g.db.Preload("Stats").First(&character, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Error(ctx, http.StatusNotFound, 40450, "character not found")
				return
			}
			utils.Error(ctx, http.StatusInternalServerError, 50501, "failed to load character")
			return
		}
		utils.Success(ctx, gin.H{"game_character": character})
		return
	}

	userID := parseUintQuery(ctx.Query("user_id"))
	if userID == 0 {
		utils.Error(ctx, http.StatusBadRequest, 40501, "missing lookup parameter")
		return
	}

	var characters []models.GameCharacter
	if err := g.db.Preload("Stats").Where("user_id = ?", userID).
		Find(&characters).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50502, "failed to load characters")
		return
	}

	utils.Success(ctx, gin.H{"game_characters": characters})
}

// ListCharacters returns characters with offset pagination, optionally
// filtered to user_ids.
func (g *GameCharacterController) ListCharacters(ctx *gin.Context) {
	skip, limit := parseSkipLimit(ctx.Query("skip"), ctx.Query("limit"))
	userIDs := parseUserIDs(ctx.Query("user_ids"))

	query := g.db.Model(&models.GameCharacter{})
	if len(userIDs) > 0 {
		query = query.Where("user_id IN ?", userIDs)
	}

	var characters []models.GameCharacter
	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50503, "failed to count characters")
		return
	}
	if err := query.Preload("Stats").Order("id").Offset(skip).Limit(limit).
		Find(&characters).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50504, "failed to list characters")
		return
	}

	utils.Success(ctx, gin.H{
		"items": characters,
		"pagination": gin.H{
			"skip":  skip,
			"limit": limit,
			"total": total,
		},
	})
}

// UpdateCharacter applies a partial update to one character.
func (g *GameCharacterController) UpdateCharacter(ctx *gin.Context) {
	var req struct {
		ID         uint           `json:"id" binding:"required"`
		FirstName  *string        `json:"first_name"`
		LastName   *string        `json:"last_name"`
		Gender     *int           `json:"gender"`
		Title      *string        `json:"title"`
		CustomLogs models.JSONMap `json:"custom_logs"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40502, "invalid request payload")
		return
	}

	var character models.GameCharacter
	if err := g.db.First(&character, req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40451, "character not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50505, "failed to load character")
		return
	}

	if req.FirstName != nil {
		character.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		character.LastName = *req.LastName
	}
	if req.Gender != nil {
		character.Gender = *req.Gender
	}
	if req.Title != nil {
		character.Title = *req.Title
	}
	if req.CustomLogs != nil {
		character.CustomLogs = req.CustomLogs
	}

	if err := g.db.Save(&character).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50506, "failed to update character")
		return
	}

	utils.Success(ctx, gin.H{"game_character": character})
}

// UpdateStats applies a partial update to one character's stats row.
func (g *GameCharacterController) UpdateStats(ctx *gin.Context) {
	var req struct {
		GameCharacterID uint `json:"game_character_id" binding:"required"`
		Level           *int `json:"level"`
		ExpPoints       *int `json:"exp_points"`
		Stamina         *int `json:"stamina"`
		Recovery        *int `json:"recovery"`
		Condition       *int `json:"condition"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40503, "invalid request payload")
		return
	}

	var stats models.GameCharacterStats
	if err := g.db.Where("game_character_id = ?", req.GameCharacterID).
		First(&stats).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40452, "character stats not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50507, "failed to load stats")
		return
	}

	if req.Level != nil {
		stats.Level = *req.Level
	}
	if req.ExpPoints != nil {
		stats.ExpPoints = *req.ExpPoints
	}
	if req.Stamina != nil {
		stats.Stamina = *req.Stamina
	}
	if req.Recovery != nil {
		stats.Recovery = *req.Recovery
	}
	if req.Condition != nil {
		stats.Condition = *req.Condition
	}

	if err := g.db.Save(&stats).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50508, "failed to update stats")
		return
	}

	utils.Success(ctx, gin.H{"stats": stats})
}
