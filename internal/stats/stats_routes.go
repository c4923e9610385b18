package stats

import (
	"github.com/gin-gonic/gin"

	"github.com/crickpwa/scorebook/internal/team"
)

// StatsRoutes sets up the derived-statistics routes.
func StatsRoutes(router *gin.RouterGroup, service *Service, teamRepo team.TeamRepository) {
	statsController := NewStatsController(service, teamRepo)

	router.GET("/teams/:id/stats", statsController.GetTeamStats)
	router.GET("/players/:id/stats", statsController.GetPlayerStats)
}
