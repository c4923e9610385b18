package match

import (
	"github.com/gin-gonic/gin"

	"github.com/crickpwa/scorebook/internal/player"
	"github.com/crickpwa/scorebook/internal/team"
)

// MatchRoutes sets up all match and ball-ledger routes.
func MatchRoutes(router *gin.RouterGroup, matchRepo MatchRepository, teamRepo team.TeamRepository, playerRepo player.PlayerRepository, recomputer StatsRecomputer) {
	matchController := NewMatchController(matchRepo, teamRepo, playerRepo, recomputer)

	// Match creation and listing hang off the owning team.
	router.POST("/teams/:id/matches", matchController.CreateMatch)
	router.GET("/teams/:id/matches", matchController.GetTeamMatches)

	matches := router.Group("/matches")
	{
		matches.GET("/:id", matchController.GetMatchByID)
		matches.DELETE("/:id", matchController.DeleteMatch)

		// Live scoring and post-match corrections
		matches.POST("/:id/balls", matchController.RecordBall)
		matches.PUT("/:id/balls/:index", matchController.EditBall)

		// Lifecycle
		matches.POST("/:id/end", matchController.EndMatch)
		matches.POST("/:id/recompute", matchController.RecomputeMatch)
	}
}
