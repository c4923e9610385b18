package player

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/crickpwa/scorebook/internal/team"
	"github.com/crickpwa/scorebook/pkg/responses"
	"github.com/crickpwa/scorebook/pkg/validator"
)

// PlayerController handles player-related HTTP requests
type PlayerController struct {
	repo     PlayerRepository
	teamRepo team.TeamRepository
}

// NewPlayerController creates a new player controller
func NewPlayerController(repo PlayerRepository, teamRepo team.TeamRepository) *PlayerController {
	return &PlayerController{repo: repo, teamRepo: teamRepo}
}

// --- DTOs for requests ---

// CreatePlayerRequest defines the request payload for adding a player to a team
type CreatePlayerRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Role     string `json:"role" binding:"required,max=50"`
	PhotoURL string `json:"photo_url" binding:"omitempty,url"`
}

// UpdatePlayerRequest defines the request payload for updating a player
type UpdatePlayerRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	Role     *string `json:"role,omitempty" binding:"omitempty,max=50"`
	PhotoURL *string `json:"photo_url,omitempty" binding:"omitempty,url"`
}

// CreatePlayer godoc
// @Summary Add a player to a team
// @Tags Players
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param player body CreatePlayerRequest true "Player creation request"
// @Success 201 {object} responses.SuccessResponse{data=Player}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Router /teams/{id}/players [post]
func (pc *PlayerController) CreatePlayer(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}

	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	t, err := pc.teamRepo.GetTeamByID(uint(teamID))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch team")
		return
	}
	if t == nil {
		responses.NotFound(c, "Team")
		return
	}

	p := Player{
		TeamID:   uint(teamID),
		Name:     req.Name,
		Role:     req.Role,
		PhotoURL: req.PhotoURL,
	}
	if err := pc.repo.CreatePlayer(&p); err != nil {
		responses.InternalServerError(c, "Failed to create player")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Player added successfully", p)
}

// GetTeamPlayers godoc
// @Summary List a team's roster
// @Tags Players
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} responses.SuccessResponse{data=[]Player}
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Router /teams/{id}/players [get]
func (pc *PlayerController) GetTeamPlayers(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}

	t, err := pc.teamRepo.GetTeamByID(uint(teamID))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch team")
		return
	}
	if t == nil {
		responses.NotFound(c, "Team")
		return
	}

	players, err := pc.repo.GetPlayersByTeamID(uint(teamID))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch players")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", players)
}

// GetPlayerByID godoc
// @Summary Get a player by ID
// @Tags Players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} responses.SuccessResponse{data=Player}
// @Failure 404 {object} responses.ErrorResponse "Player not found"
// @Router /players/{id} [get]
func (pc *PlayerController) GetPlayerByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid player ID")
		return
	}

	p, err := pc.repo.GetPlayerByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch player")
		return
	}
	if p == nil {
		responses.NotFound(c, "Player")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", p)
}

// UpdatePlayer godoc
// @Summary Update a player
// @Tags Players
// @Accept json
// @Produce json
// @Param id path int true "Player ID"
// @Param player body UpdatePlayerRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=Player}
// @Failure 404 {object} responses.ErrorResponse "Player not found"
// @Router /players/{id} [put]
func (pc *PlayerController) UpdatePlayer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid player ID")
		return
	}

	var req UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	p, err := pc.repo.GetPlayerByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch player")
		return
	}
	if p == nil {
		responses.NotFound(c, "Player")
		return
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Role != nil {
		p.Role = *req.Role
	}
	if req.PhotoURL != nil {
		p.PhotoURL = *req.PhotoURL
	}

	if err := pc.repo.UpdatePlayer(p); err != nil {
		responses.InternalServerError(c, "Failed to update player")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player updated successfully", p)
}

// DeletePlayer godoc
// @Summary Remove a player
// @Tags Players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse "Player not found"
// @Router /players/{id} [delete]
func (pc *PlayerController) DeletePlayer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid player ID")
		return
	}

	p, err := pc.repo.GetPlayerByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch player")
		return
	}
	if p == nil {
		responses.NotFound(c, "Player")
		return
	}

	if err := pc.repo.DeletePlayer(uint(id)); err != nil {
		responses.InternalServerError(c, "Failed to delete player")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player removed successfully", nil)
}
