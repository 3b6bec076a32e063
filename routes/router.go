package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Wonderwall-Inc/golfin-miniapp-server/config"
	"github.com/Wonderwall-Inc/golfin-miniapp-server/controllers"
	"github.com/Wonderwall-Inc/golfin-miniapp-server/middleware"
	"github.com/Wonderwall-Inc/golfin-miniapp-server/services"
	"github.com/Wonderwall-Inc/golfin-miniapp-server/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Replace default console logger with file-based zap logger
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.Use(middleware.RequestID())
	// Write the audit trail after each mutating request
	r.Use(middleware.AuditRecorder(db))

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	checkinService := services.NewCheckInService(db)

	authController := controllers.NewAuthController(db)
	userController := controllers.NewUserController(db)
	friendController := controllers.NewFriendController(db)
	pointController := controllers.NewPointController(db)
	activityController := controllers.NewActivityController(db, checkinService)
	characterController := controllers.NewGameCharacterController(db)
	socialController := controllers.NewSocialMediaController(db)
	recordController := controllers.NewRecordController(db)

	api := r.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware())
	authGroup.POST("/telegram", authController.TelegramLogin)

	userGroup := api.Group("/user")
	userGroup.Use(middleware.AuthRequired())
	userGroup.POST("/create", middleware.RateLimitMiddleware(), userController.CreateUser)
	userGroup.GET("/detail/:id", userController.GetUserByID)
	userGroup.GET("/detail", userController.GetUser)
	userGroup.GET("/details", userController.ListUsers)
	userGroup.PUT("/update", userController.UpdateUser)
	userGroup.DELETE("/delete/:id", userController.DeleteUser)

	friendGroup := api.Group("/friend")
	friendGroup.Use(middleware.AuthRequired())
	friendGroup.POST("/create", friendController.CreateFriend)
	friendGroup.GET("/detail", friendController.GetFriend)
	friendGroup.GET("/details", friendController.ListFriends)
	friendGroup.PUT("/update", friendController.UpdateFriend)
	friendGroup.PUT("/claim", friendController.ClaimFriend)
	friendGroup.GET("/ranking", friendController.ReferralRanking)

	pointGroup := api.Group("/point")
	pointGroup.Use(middleware.AuthRequired())
	pointGroup.POST("/create", pointController.CreatePoint)
	pointGroup.GET("/detail", pointController.GetPoint)
	pointGroup.GET("/details", pointController.ListPoints)
	pointGroup.PUT("/update", pointController.UpdatePoint)
	pointGroup.GET("/ranking", pointController.PointRanking)
	pointGroup.DELETE("/delete/:id", pointController.DeletePoint)

	activityGroup := api.Group("/activity")
	activityGroup.Use(middleware.AuthRequired())
	activityGroup.POST("/create", activityController.CreateActivity)
	activityGroup.GET("/detail", activityController.GetActivity)
	activityGroup.GET("/details", activityController.ListActivities)
	activityGroup.PUT("/update", activityController.UpdateActivity)
	activityGroup.POST("/check-in", middleware.RateLimitMiddleware(), activityController.CheckIn)
	activityGroup.DELETE("/delete/:id", activityController.DeleteActivity)

	characterGroup := api.Group("/game-character")
	characterGroup.Use(middleware.AuthRequired())
	characterGroup.POST("/create", characterController.CreateCharacter)
	characterGroup.GET("/detail", characterController.GetCharacter)
	characterGroup.GET("/details", characterController.ListCharacters)
	characterGroup.PUT("/update", characterController.UpdateCharacter)
	characterGroup.PUT("/stats/update", characterController.UpdateStats)

	socialGroup := api.Group("/social-media")
	socialGroup.Use(middleware.AuthRequired())
	socialGroup.POST("/create", socialController.CreateSocialMedia)
	socialGroup.GET("/detail", socialController.GetSocialMedia)
	socialGroup.GET("/details", socialController.ListSocialMedia)
	socialGroup.PUT("/update", socialController.UpdateSocialMedia)

	recordGroup := api.Group("/record")
	recordGroup.Use(middleware.AuthRequired())
	recordGroup.GET("/details", recordController.ListRecords)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusNotFound, 40400, "route not found")
	})

	return r
}
