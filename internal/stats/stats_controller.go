package stats

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/crickpwa/scorebook/internal/team"
	"github.com/crickpwa/scorebook/pkg/responses"
)

// StatsController exposes the derived statistics endpoints.
type StatsController struct {
	service  *Service
	teamRepo team.TeamRepository
}

// NewStatsController creates a new stats controller
func NewStatsController(service *Service, teamRepo team.TeamRepository) *StatsController {
	return &StatsController{service: service, teamRepo: teamRepo}
}

// GetTeamStats godoc
// @Summary Get a team's aggregate statistics
// @Description Played/won/lost, net run rate and league points, recomputed from the team's match set on every call.
// @Tags Stats
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} responses.SuccessResponse{data=TeamStats}
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Router /teams/{id}/stats [get]
func (sc *StatsController) GetTeamStats(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}

	t, err := sc.teamRepo.GetTeamByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch team")
		return
	}
	if t == nil {
		responses.NotFound(c, "Team")
		return
	}

	stats, err := sc.service.TeamStats(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to compute team stats")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", stats)
}

// GetPlayerStats godoc
// @Summary Get a player's career statistics
// @Description Recomputes the player's figures from every match referencing them and refreshes the cached columns.
// @Tags Stats
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} responses.SuccessResponse{data=player.Stats}
// @Failure 404 {object} responses.ErrorResponse "Player not found"
// @Router /players/{id}/stats [get]
func (sc *StatsController) GetPlayerStats(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid player ID")
		return
	}

	stats, err := sc.service.PlayerStats(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to compute player stats")
		return
	}
	if stats == nil {
		responses.NotFound(c, "Player")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", stats)
}
