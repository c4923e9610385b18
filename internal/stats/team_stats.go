package stats

import "github.com/crickpwa/scorebook/internal/match"

// TeamStats is the derived league view of a team's completed matches. It is
// never persisted; staleness is avoided by recomputing on demand.
type TeamStats struct {
	Played     int     `json:"played"`
	Won        int     `json:"won"`
	Lost       int     `json:"lost"`
	NetRunRate float64 `json:"net_run_rate"`
	Points     int     `json:"points"`
}

// ComputeTeamStats aggregates a team's match set. Net run rate here is runs
// scored per over across all matches, on the true fractional-overs basis
// (completed + balls/6), not the X.Y display basis. Opponent runs are not
// tracked, so this is a one-sided run rate rather than a full NRR; a win is
// worth 2 points, ties and no-results nothing.
func ComputeTeamStats(matches []match.Match) TeamStats {
	var ts TeamStats
	totalRuns := 0
	totalOvers := 0.0

	for _, m := range matches {
		ts.Played++
		switch m.Result {
		case match.ResultWin:
			ts.Won++
		case match.ResultLoss:
			ts.Lost++
		}
		for _, b := range m.Balls {
			totalRuns += b.RunsOffBat
		}
		totalOvers += float64(len(m.Balls)/6) + float64(len(m.Balls)%6)/6.0
	}

	if totalOvers > 0 {
		ts.NetRunRate = round2(float64(totalRuns) / totalOvers)
	}
	ts.Points = ts.Won * 2
	return ts
}
