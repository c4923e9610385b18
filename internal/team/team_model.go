package team

import "gorm.io/gorm"

// Team represents a cricket club tracked by the scorebook. Aggregate
// statistics are never stored on the team; they are recomputed on demand from
// its match set so they can't go stale.
type Team struct {
	gorm.Model
	Name  string `json:"name" gorm:"not null"`
	Code  string `json:"code" gorm:"uniqueIndex;size:10;not null"` // short scoreboard label, e.g. "MUM"
	Color string `json:"color" gorm:"size:7"`                      // hex color for the scoreboard theme
}
