package main

import (
	"log"

	"github.com/crickpwa/scorebook/config"
	_ "github.com/crickpwa/scorebook/docs"
	"github.com/crickpwa/scorebook/internal/match"
	"github.com/crickpwa/scorebook/internal/player"
	"github.com/crickpwa/scorebook/internal/team"
	"github.com/crickpwa/scorebook/routes"
)

// @title Scorebook REST API
// @version 1.0
// @description Ball-by-ball cricket match scoring and statistics for a team 🏏.
// @host localhost:8088
// @BasePath /api
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&team.Team{}, &player.Player{},
		&match.Match{}, &match.BallEvent{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	r := routes.SetupRoutes(config.DB, cfg)

	// Use port from loaded configuration
	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
