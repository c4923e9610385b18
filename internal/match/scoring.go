package match

import (
	"fmt"
	"math"
)

// BallCommand is one delivery as entered by the scorer. Runs off wides and
// no-balls arrive in RunsOffBat (the scorer records 1 for either), so every
// command appends exactly one ball regardless of extra type.
type BallCommand struct {
	RunsOffBat   int
	Extra        ExtraType
	IsWicket     bool
	StrikerID    uint
	NonStrikerID uint
	BowlerID     uint
}

// BallPatch is a partial correction to a recorded ball. Nil fields are left
// untouched. Position-derived fields are not patchable.
type BallPatch struct {
	RunsOffBat *int
	Extra      *ExtraType
	IsWicket   *bool
}

// LiveScore is the derived scoreboard state at any point in a match.
type LiveScore struct {
	TotalRuns    int     `json:"total_runs"`
	Wickets      int     `json:"wickets"`
	OversDisplay string  `json:"overs_display"` // cricket X.Y notation, Y in 0..5
	RunRate      float64 `json:"run_rate"`
}

// PositionToOverBall maps a ball's 0-based position in the ledger to its
// 1-indexed (over, ballInOver) pair. Wides and no-balls occupy a normal slot
// in this model, so position alone determines the pair.
func PositionToOverBall(index int) (over, ballInOver int) {
	return index/6 + 1, index%6 + 1
}

// AppendBall validates cmd against the team roster and appends one ball to
// the match ledger. Prior balls are never touched. Returns the recorded event.
func AppendBall(m *Match, cmd BallCommand, roster map[uint]bool) (*BallEvent, error) {
	if cmd.RunsOffBat < 0 {
		return nil, &ValidationError{Field: "runs_off_bat", Reason: "must be non-negative"}
	}
	if !roster[cmd.StrikerID] {
		return nil, &ValidationError{Field: "striker_id", Reason: fmt.Sprintf("player %d is not on the team", cmd.StrikerID)}
	}
	if !roster[cmd.NonStrikerID] {
		return nil, &ValidationError{Field: "non_striker_id", Reason: fmt.Sprintf("player %d is not on the team", cmd.NonStrikerID)}
	}
	if !roster[cmd.BowlerID] {
		return nil, &ValidationError{Field: "bowler_id", Reason: fmt.Sprintf("player %d is not on the team", cmd.BowlerID)}
	}
	if cmd.StrikerID == cmd.NonStrikerID {
		return nil, &ValidationError{Field: "non_striker_id", Reason: "striker and non-striker must differ"}
	}

	seq := len(m.Balls)
	over, ball := PositionToOverBall(seq)
	ev := BallEvent{
		MatchID:      m.ID,
		Seq:          seq,
		OverNumber:   over,
		BallInOver:   ball,
		RunsOffBat:   cmd.RunsOffBat,
		Extra:        cmd.Extra,
		IsWicket:     cmd.IsWicket,
		StrikerID:    cmd.StrikerID,
		NonStrikerID: cmd.NonStrikerID,
		BowlerID:     cmd.BowlerID,
	}
	m.Balls = append(m.Balls, ev)
	return &m.Balls[seq], nil
}

// EditBall patches the ball at index. Over/ball numbers stay as recorded
// since a stat edit does not move the ball within the ledger.
func EditBall(m *Match, index int, patch BallPatch) error {
	if index < 0 || index >= len(m.Balls) {
		return &NotFoundError{Resource: "ball", ID: index}
	}
	if patch.RunsOffBat != nil {
		if *patch.RunsOffBat < 0 {
			return &ValidationError{Field: "runs_off_bat", Reason: "must be non-negative"}
		}
		m.Balls[index].RunsOffBat = *patch.RunsOffBat
	}
	if patch.Extra != nil {
		m.Balls[index].Extra = *patch.Extra
	}
	if patch.IsWicket != nil {
		m.Balls[index].IsWicket = *patch.IsWicket
	}
	return nil
}

// ComputeLiveScore derives the scoreboard from the full ledger. It is
// recomputed on every call; nothing incremental is kept that could desync.
func ComputeLiveScore(m *Match) LiveScore {
	totalRuns := 0
	wickets := 0
	for _, b := range m.Balls {
		totalRuns += b.RunsOffBat
		if b.IsWicket {
			wickets++
		}
	}

	completed := len(m.Balls) / 6
	into := len(m.Balls) % 6

	// Display uses the conventional X.Y over notation; the run rate uses true
	// fractional overs. The two deliberately disagree mid-over.
	runRate := 0.0
	if overs := float64(completed) + float64(into)/6.0; overs > 0 {
		runRate = round2(float64(totalRuns) / overs)
	}

	return LiveScore{
		TotalRuns:    totalRuns,
		Wickets:      wickets,
		OversDisplay: fmt.Sprintf("%d.%d", completed, into),
		RunRate:      runRate,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
