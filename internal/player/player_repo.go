package player

import (
	"errors"

	"gorm.io/gorm"
)

// PlayerRepository defines the interface for player data operations
type PlayerRepository interface {
	CreatePlayer(p *Player) error
	GetPlayerByID(id uint) (*Player, error)
	GetPlayersByTeamID(teamID uint) ([]Player, error)
	UpdatePlayer(p *Player) error
	UpdatePlayerStats(id uint, stats Stats) error
	DeletePlayer(id uint) error
}

type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new instance of PlayerRepository
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) CreatePlayer(p *Player) error {
	return r.db.Create(p).Error
}

func (r *playerRepository) GetPlayerByID(id uint) (*Player, error) {
	var p Player
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// GetPlayersByTeamID returns the full roster. Rosters are small enough that
// pagination would only get in the way of scoring and aggregation.
func (r *playerRepository) GetPlayersByTeamID(teamID uint) ([]Player, error) {
	var players []Player
	if err := r.db.Where("team_id = ?", teamID).Order("created_at asc").Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (r *playerRepository) UpdatePlayer(p *Player) error {
	return r.db.Save(p).Error
}

func (r *playerRepository) UpdatePlayerStats(id uint, stats Stats) error {
	return r.db.Model(&Player{}).Where("id = ?", id).Updates(map[string]interface{}{
		"stat_runs":            stats.Runs,
		"stat_wickets":         stats.Wickets,
		"stat_balls_faced":     stats.BallsFaced,
		"stat_balls_bowled":    stats.BallsBowled,
		"stat_runs_conceded":   stats.RunsConceded,
		"stat_batting_average": stats.BattingAverage,
		"stat_strike_rate":     stats.StrikeRate,
		"stat_economy_rate":    stats.EconomyRate,
	}).Error
}

func (r *playerRepository) DeletePlayer(id uint) error {
	return r.db.Delete(&Player{}, id).Error
}
