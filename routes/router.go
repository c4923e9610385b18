package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/crickpwa/scorebook/config"
	"github.com/crickpwa/scorebook/internal/match"
	"github.com/crickpwa/scorebook/internal/player"
	"github.com/crickpwa/scorebook/internal/stats"
	"github.com/crickpwa/scorebook/internal/syncer"
	"github.com/crickpwa/scorebook/internal/team"
)

// SetupRoutes wires repositories, services and controllers onto a gin engine.
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT

	// Welcome page
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`
			<html>
				<head><title>Scorebook</title></head>
				<body style="text-align:center; margin-top: 40px;">
					<h1>Scorebook 🏏</h1>
					<p><a href="/swagger/index.html">API docs</a></p>
				</body>
			</html>
		`))
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	teamRepo := team.NewTeamRepository(db)
	playerRepo := player.NewPlayerRepository(db)
	matchRepo := match.NewMatchRepository(db)

	statsService := stats.NewService(matchRepo, playerRepo)
	matchSyncer := syncer.NewSyncer(matchRepo, cfg.Sync.RemoteURL, time.Duration(cfg.Sync.TimeoutSeconds)*time.Second)

	// API routes
	api := r.Group("/api")
	team.TeamRoutes(api, teamRepo)
	player.PlayerRoutes(api, playerRepo, teamRepo)
	match.MatchRoutes(api, matchRepo, teamRepo, playerRepo, statsService)
	stats.StatsRoutes(api, statsService, teamRepo)
	syncer.SyncRoutes(api, matchSyncer)

	return r
}
