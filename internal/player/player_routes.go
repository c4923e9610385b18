package player

import (
	"github.com/gin-gonic/gin"

	"github.com/crickpwa/scorebook/internal/team"
)

// PlayerRoutes sets up all player-related routes.
func PlayerRoutes(router *gin.RouterGroup, playerRepo PlayerRepository, teamRepo team.TeamRepository) {
	playerController := NewPlayerController(playerRepo, teamRepo)

	// Roster management hangs off the owning team.
	router.POST("/teams/:id/players", playerController.CreatePlayer)
	router.GET("/teams/:id/players", playerController.GetTeamPlayers)

	players := router.Group("/players")
	{
		players.GET("/:id", playerController.GetPlayerByID)
		players.PUT("/:id", playerController.UpdatePlayer)
		players.DELETE("/:id", playerController.DeletePlayer)
	}
}
