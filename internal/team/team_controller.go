package team

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/crickpwa/scorebook/pkg/responses"
	"github.com/crickpwa/scorebook/pkg/validator"
)

// TeamController handles team-related HTTP requests
type TeamController struct {
	repo TeamRepository
}

// NewTeamController creates a new team controller
func NewTeamController(repo TeamRepository) *TeamController {
	return &TeamController{repo: repo}
}

// --- DTOs for requests ---

// CreateTeamRequest defines the request payload for creating a team
type CreateTeamRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=100"`
	Code  string `json:"code" binding:"required,min=2,max=10"`
	Color string `json:"color" binding:"omitempty,hexcolor"`
}

// UpdateTeamRequest defines the request payload for updating a team
type UpdateTeamRequest struct {
	Name  *string `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	Code  *string `json:"code,omitempty" binding:"omitempty,min=2,max=10"`
	Color *string `json:"color,omitempty" binding:"omitempty,hexcolor"`
}

// CreateTeam godoc
// @Summary Create a new team
// @Tags Teams
// @Accept json
// @Produce json
// @Param team body CreateTeamRequest true "Team creation request"
// @Success 201 {object} responses.SuccessResponse{data=Team}
// @Failure 400 {object} responses.ErrorResponse "Validation error or bad request"
// @Failure 409 {object} responses.ErrorResponse "Team with this code already exists"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /teams [post]
func (tc *TeamController) CreateTeam(c *gin.Context) {
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	existing, _ := tc.repo.GetTeamByCode(req.Code)
	if existing != nil {
		responses.SendError(c, http.StatusConflict, "Team with this code already exists", nil)
		return
	}

	team := Team{
		Name:  req.Name,
		Code:  req.Code,
		Color: req.Color,
	}
	if err := tc.repo.CreateTeam(&team); err != nil {
		responses.InternalServerError(c, "Failed to create team")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Team created successfully", team)
}

// GetTeams godoc
// @Summary List teams
// @Tags Teams
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]Team}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /teams [get]
func (tc *TeamController) GetTeams(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	teams, total, err := tc.repo.GetAllTeams(page, limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch teams")
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", teams, total, page, limit)
}

// GetTeamByID godoc
// @Summary Get a team by ID
// @Tags Teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} responses.SuccessResponse{data=Team}
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Router /teams/{id} [get]
func (tc *TeamController) GetTeamByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}

	team, err := tc.repo.GetTeamByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch team")
		return
	}
	if team == nil {
		responses.NotFound(c, "Team")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", team)
}

// UpdateTeam godoc
// @Summary Update a team
// @Tags Teams
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param team body UpdateTeamRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=Team}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Router /teams/{id} [put]
func (tc *TeamController) UpdateTeam(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}

	var req UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	team, err := tc.repo.GetTeamByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch team")
		return
	}
	if team == nil {
		responses.NotFound(c, "Team")
		return
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Code != nil {
		team.Code = *req.Code
	}
	if req.Color != nil {
		team.Color = *req.Color
	}

	if err := tc.repo.UpdateTeam(team); err != nil {
		responses.InternalServerError(c, "Failed to update team")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team updated successfully", team)
}

// DeleteTeam godoc
// @Summary Delete a team
// @Tags Teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Router /teams/{id} [delete]
func (tc *TeamController) DeleteTeam(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}

	team, err := tc.repo.GetTeamByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch team")
		return
	}
	if team == nil {
		responses.NotFound(c, "Team")
		return
	}

	if err := tc.repo.DeleteTeam(uint(id)); err != nil {
		responses.InternalServerError(c, "Failed to delete team")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team deleted successfully", nil)
}
