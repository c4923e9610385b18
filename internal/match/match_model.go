package match

import (
	"time"

	"gorm.io/gorm"
)

// ExtraType labels a delivery outcome not struck off the bat.
type ExtraType string

const (
	ExtraNone   ExtraType = ""
	ExtraWide   ExtraType = "wide"
	ExtraNoBall ExtraType = "no_ball"
)

// MatchResult is the outcome of a completed match from the owning team's
// perspective. Empty until the match is ended.
type MatchResult string

const (
	ResultUnset MatchResult = ""
	ResultWin   MatchResult = "win"
	ResultLoss  MatchResult = "loss"
)

// SyncState tracks whether a match has been pushed to the remote.
type SyncState string

const (
	SyncPending SyncState = "pending_sync"
	SyncDone    SyncState = "synced"
)

// Match is one game scored ball-by-ball for a team. The ball ledger is
// append-only during live scoring; after the match ends individual balls may
// still be corrected, which re-marks the match pending_sync.
type Match struct {
	gorm.Model
	// ExternalID is generated at creation and used as the upsert key when
	// pushing to the remote, so redundant pushes stay idempotent.
	ExternalID string      `json:"external_id" gorm:"uniqueIndex;size:36;not null"`
	TeamID     uint        `json:"team_id" gorm:"index;not null"`
	MatchDate  time.Time   `json:"match_date"`
	Format     string      `json:"format" gorm:"default:'T20'"` // free-form label, e.g. "T20"
	Result     MatchResult `json:"result" gorm:"default:''"`
	SyncState  SyncState   `json:"sync_state" gorm:"index;default:'pending_sync'"`

	Balls []BallEvent `json:"balls,omitempty" gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`
}

// BallEvent records one delivery's outcome. Immutable once recorded except
// through an explicit edit of runs/extra/wicket; the positional fields
// (Seq, OverNumber, BallInOver) are fixed by the ball's place in the ledger.
type BallEvent struct {
	gorm.Model
	MatchID uint `json:"match_id" gorm:"index;not null"`
	// Seq is the 0-based position among all recorded balls of the match.
	Seq        int `json:"seq" gorm:"not null"`
	OverNumber int `json:"over_number" gorm:"not null"`  // 1-indexed, cached from Seq
	BallInOver int `json:"ball_in_over" gorm:"not null"` // 1..6, cached from Seq

	RunsOffBat int       `json:"runs_off_bat" gorm:"default:0"`
	Extra      ExtraType `json:"extra" gorm:"default:''"`
	IsWicket   bool      `json:"is_wicket" gorm:"default:false"`

	StrikerID    uint `json:"striker_id" gorm:"index;not null"`
	NonStrikerID uint `json:"non_striker_id" gorm:"not null"`
	BowlerID     uint `json:"bowler_id" gorm:"index;not null"`
}
