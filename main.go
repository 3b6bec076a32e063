package main

import (
	"github.com/Wonderwall-Inc/golfin-miniapp-server/config"
	"github.com/Wonderwall-Inc/golfin-miniapp-server/models"
	"github.com/Wonderwall-Inc/golfin-miniapp-server/routes"
	"github.com/Wonderwall-Inc/golfin-miniapp-server/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(
		&models.User{},
		&models.Point{},
		&models.Activity{},
		&models.Friend{},
		&models.GameCharacter{},
		&models.GameCharacterStats{},
		&models.SocialMedia{},
		&models.Record{},
	)

	r := routes.SetupRouter(db)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
