package team

import (
	"github.com/gin-gonic/gin"
)

// TeamRoutes sets up all team-related routes.
func TeamRoutes(router *gin.RouterGroup, teamRepo TeamRepository) {
	teamController := NewTeamController(teamRepo)

	teams := router.Group("/teams")
	{
		teams.POST("", teamController.CreateTeam)
		teams.GET("", teamController.GetTeams)
		teams.GET("/:id", teamController.GetTeamByID)
		teams.PUT("/:id", teamController.UpdateTeam)
		teams.DELETE("/:id", teamController.DeleteTeam)
	}
}
