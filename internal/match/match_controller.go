package match

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/crickpwa/scorebook/internal/player"
	"github.com/crickpwa/scorebook/internal/team"
	"github.com/crickpwa/scorebook/pkg/responses"
	"github.com/crickpwa/scorebook/pkg/validator"
)

// StatsRecomputer refreshes the cached player statistics of a team from its
// full match set. Implemented by the stats service; injected here so a ball
// edit or a match result can trigger a recompute without a package cycle.
type StatsRecomputer interface {
	RecomputeTeam(teamID uint) error
}

// MatchController handles match and ball-ledger HTTP requests
type MatchController struct {
	repo       MatchRepository
	teamRepo   team.TeamRepository
	playerRepo player.PlayerRepository
	recomputer StatsRecomputer
}

// NewMatchController creates a new match controller
func NewMatchController(repo MatchRepository, teamRepo team.TeamRepository, playerRepo player.PlayerRepository, recomputer StatsRecomputer) *MatchController {
	return &MatchController{
		repo:       repo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		recomputer: recomputer,
	}
}

// --- DTOs for requests ---

// CreateMatchRequest defines the request payload for starting a new match
type CreateMatchRequest struct {
	MatchDate *time.Time `json:"match_date,omitempty"`
	Format    string     `json:"format" binding:"omitempty,max=20"`
}

// RecordBallRequest defines the request payload for recording one delivery
type RecordBallRequest struct {
	RunsOffBat   int       `json:"runs_off_bat" binding:"gte=0"`
	Extra        ExtraType `json:"extra" binding:"omitempty,oneof=wide no_ball"`
	IsWicket     bool      `json:"is_wicket"`
	StrikerID    uint      `json:"striker_id" binding:"required"`
	NonStrikerID uint      `json:"non_striker_id" binding:"required"`
	BowlerID     uint      `json:"bowler_id" binding:"required"`
}

// EditBallRequest defines the request payload for a post-match correction
type EditBallRequest struct {
	RunsOffBat *int       `json:"runs_off_bat,omitempty" binding:"omitempty,gte=0"`
	Extra      *ExtraType `json:"extra,omitempty" binding:"omitempty,oneof=wide no_ball"` // empty string clears the extra
	IsWicket   *bool      `json:"is_wicket,omitempty"`
}

// EndMatchRequest defines the request payload for ending a match
type EndMatchRequest struct {
	Result MatchResult `json:"result" binding:"required,oneof=win loss"`
}

// MatchResponse pairs a match with its derived live score.
type MatchResponse struct {
	Match     *Match    `json:"match"`
	LiveScore LiveScore `json:"live_score"`
}

// BallResponse is returned after recording a delivery.
type BallResponse struct {
	Ball      *BallEvent `json:"ball"`
	LiveScore LiveScore  `json:"live_score"`
}

func (mc *MatchController) roster(teamID uint) (map[uint]bool, error) {
	players, err := mc.playerRepo.GetPlayersByTeamID(teamID)
	if err != nil {
		return nil, err
	}
	roster := make(map[uint]bool, len(players))
	for _, p := range players {
		roster[p.ID] = true
	}
	return roster, nil
}

// CreateMatch godoc
// @Summary Start a new match for a team
// @Description Creates an empty match ledger marked pending_sync. Scoring appends balls to it.
// @Tags Matches
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param match body CreateMatchRequest true "Match creation request"
// @Success 201 {object} responses.SuccessResponse{data=Match}
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Router /teams/{id}/matches [post]
func (mc *MatchController) CreateMatch(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}

	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	t, err := mc.teamRepo.GetTeamByID(uint(teamID))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch team")
		return
	}
	if t == nil {
		responses.NotFound(c, "Team")
		return
	}

	m := Match{
		ExternalID: uuid.NewString(),
		TeamID:     uint(teamID),
		MatchDate:  time.Now(),
		Format:     "T20",
		SyncState:  SyncPending,
	}
	if req.MatchDate != nil {
		m.MatchDate = *req.MatchDate
	}
	if req.Format != "" {
		m.Format = req.Format
	}

	if err := mc.repo.CreateMatch(&m); err != nil {
		responses.InternalServerError(c, "Failed to create match")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Match created successfully", m)
}

// GetTeamMatches godoc
// @Summary List a team's matches
// @Tags Matches
// @Produce json
// @Param id path int true "Team ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]Match}
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Router /teams/{id}/matches [get]
func (mc *MatchController) GetTeamMatches(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}

	t, err := mc.teamRepo.GetTeamByID(uint(teamID))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch team")
		return
	}
	if t == nil {
		responses.NotFound(c, "Team")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	matches, total, err := mc.repo.GetMatchesByTeamID(uint(teamID), page, limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch matches")
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", matches, total, page, limit)
}

// GetMatchByID godoc
// @Summary Get a match with its ledger and live score
// @Tags Matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=MatchResponse}
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Router /matches/{id} [get]
func (mc *MatchController) GetMatchByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid match ID")
		return
	}

	m, err := mc.repo.GetMatchByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch match")
		return
	}
	if m == nil {
		responses.NotFound(c, "Match")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", MatchResponse{
		Match:     m,
		LiveScore: ComputeLiveScore(m),
	})
}

// RecordBall godoc
// @Summary Record one delivery
// @Description Appends a single ball to the match ledger. Wides and no-balls occupy a normal ball slot; the scorer enters their run in runs_off_bat.
// @Tags Matches
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param ball body RecordBallRequest true "Delivery outcome"
// @Success 201 {object} responses.SuccessResponse{data=BallResponse}
// @Failure 400 {object} responses.ErrorResponse "Invalid player reference or striker equals non-striker"
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Router /matches/{id}/balls [post]
func (mc *MatchController) RecordBall(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid match ID")
		return
	}

	var req RecordBallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	m, err := mc.repo.GetMatchByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch match")
		return
	}
	if m == nil {
		responses.NotFound(c, "Match")
		return
	}

	roster, err := mc.roster(m.TeamID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch roster")
		return
	}

	ev, err := AppendBall(m, BallCommand{
		RunsOffBat:   req.RunsOffBat,
		Extra:        req.Extra,
		IsWicket:     req.IsWicket,
		StrikerID:    req.StrikerID,
		NonStrikerID: req.NonStrikerID,
		BowlerID:     req.BowlerID,
	}, roster)
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			responses.SendError(c, http.StatusBadRequest, ve.Error(), nil)
			return
		}
		responses.InternalServerError(c, "Failed to record ball")
		return
	}

	if err := mc.repo.AppendBallEvent(ev); err != nil {
		responses.InternalServerError(c, "Failed to record ball")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Ball recorded", BallResponse{
		Ball:      ev,
		LiveScore: ComputeLiveScore(m),
	})
}

// EditBall godoc
// @Summary Correct a recorded delivery
// @Description Patches runs/extra/wicket of the ball at the given 0-based index, re-marks the match pending_sync and recomputes the team's player statistics.
// @Tags Matches
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param index path int true "0-based ball index"
// @Param patch body EditBallRequest true "Fields to correct"
// @Success 200 {object} responses.SuccessResponse{data=BallResponse}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 404 {object} responses.ErrorResponse "Match or ball not found"
// @Router /matches/{id}/balls/{index} [put]
func (mc *MatchController) EditBall(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid match ID")
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		responses.BadRequest(c, "Invalid ball index")
		return
	}

	var req EditBallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	m, err := mc.repo.GetMatchByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch match")
		return
	}
	if m == nil {
		responses.NotFound(c, "Match")
		return
	}

	if err := EditBall(m, index, BallPatch{
		RunsOffBat: req.RunsOffBat,
		Extra:      req.Extra,
		IsWicket:   req.IsWicket,
	}); err != nil {
		var nf *NotFoundError
		var ve *ValidationError
		switch {
		case errors.As(err, &nf):
			responses.NotFound(c, "Ball")
		case errors.As(err, &ve):
			responses.SendError(c, http.StatusBadRequest, ve.Error(), nil)
		default:
			responses.InternalServerError(c, "Failed to edit ball")
		}
		return
	}

	// The corrected ball and the pending_sync mark must land together: a
	// saved correction on a match still marked synced would never be pushed.
	if err := mc.repo.WithTransaction(func(tx MatchRepository) error {
		if err := tx.SaveBallEvent(&m.Balls[index]); err != nil {
			return err
		}
		return tx.MarkPendingSync(m.ID)
	}); err != nil {
		responses.InternalServerError(c, "Failed to save ball")
		return
	}
	if err := mc.recomputer.RecomputeTeam(m.TeamID); err != nil {
		responses.InternalServerError(c, "Failed to recompute statistics")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Ball corrected", BallResponse{
		Ball:      &m.Balls[index],
		LiveScore: ComputeLiveScore(m),
	})
}

// EndMatch godoc
// @Summary End a match and set its result
// @Description Sets win/loss, marks the match pending_sync and recomputes the team's player statistics.
// @Tags Matches
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param result body EndMatchRequest true "Match result"
// @Success 200 {object} responses.SuccessResponse{data=Match}
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Router /matches/{id}/end [post]
func (mc *MatchController) EndMatch(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid match ID")
		return
	}

	var req EndMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	m, err := mc.repo.GetMatchByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch match")
		return
	}
	if m == nil {
		responses.NotFound(c, "Match")
		return
	}

	if err := mc.repo.SetResult(m.ID, req.Result); err != nil {
		responses.InternalServerError(c, "Failed to set match result")
		return
	}
	if err := mc.recomputer.RecomputeTeam(m.TeamID); err != nil {
		responses.InternalServerError(c, "Failed to recompute statistics")
		return
	}

	m.Result = req.Result
	m.SyncState = SyncPending
	responses.SendSuccess(c, http.StatusOK, "Match ended", m)
}

// RecomputeMatch godoc
// @Summary Recompute statistics for a match's team
// @Description Idempotent from-scratch recompute of the owning team's player statistics. Safe to call redundantly.
// @Tags Matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Router /matches/{id}/recompute [post]
func (mc *MatchController) RecomputeMatch(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid match ID")
		return
	}

	m, err := mc.repo.GetMatchByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch match")
		return
	}
	if m == nil {
		responses.NotFound(c, "Match")
		return
	}

	if err := mc.recomputer.RecomputeTeam(m.TeamID); err != nil {
		responses.InternalServerError(c, "Failed to recompute statistics")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Statistics recomputed", nil)
}

// DeleteMatch godoc
// @Summary Delete a match and its ledger
// @Tags Matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Router /matches/{id} [delete]
func (mc *MatchController) DeleteMatch(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid match ID")
		return
	}

	m, err := mc.repo.GetMatchByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch match")
		return
	}
	if m == nil {
		responses.NotFound(c, "Match")
		return
	}

	if err := mc.repo.DeleteMatch(m.ID); err != nil {
		responses.InternalServerError(c, "Failed to delete match")
		return
	}
	// Deleting a match changes history; bring the caches back in line.
	if err := mc.recomputer.RecomputeTeam(m.TeamID); err != nil {
		responses.InternalServerError(c, "Failed to recompute statistics")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match deleted successfully", nil)
}
