package player

import "gorm.io/gorm"

// Player is a roster member of a team. The Stats columns are a cache of the
// career figures derived from every match the player appears in; they are
// overwritten wholesale on each recompute, never accumulated in place.
type Player struct {
	gorm.Model
	TeamID   uint   `json:"team_id" gorm:"index;not null"`
	Name     string `json:"name" gorm:"not null"`
	Role     string `json:"role"` // free text, e.g. "Batter", "All-rounder"
	PhotoURL string `json:"photo_url,omitempty"`

	Stats Stats `json:"stats" gorm:"embedded;embeddedPrefix:stat_"`
}

// Stats holds the cached career figures for a player.
type Stats struct {
	Runs         int `json:"runs" gorm:"default:0"`
	Wickets      int `json:"wickets" gorm:"default:0"`
	BallsFaced   int `json:"balls_faced" gorm:"default:0"`
	BallsBowled  int `json:"balls_bowled" gorm:"default:0"`
	RunsConceded int `json:"runs_conceded" gorm:"default:0"`
	// BattingAverage divides runs by the player's own wickets taken. That is
	// how the product has always computed it; kept as-is pending a product
	// decision on switching the divisor to dismissals.
	BattingAverage float64 `json:"batting_average" gorm:"default:0"`
	StrikeRate     float64 `json:"strike_rate" gorm:"default:0"`
	EconomyRate    float64 `json:"economy_rate" gorm:"default:0"`
}
