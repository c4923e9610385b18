package stats

import (
	"math"

	"github.com/crickpwa/scorebook/internal/match"
	"github.com/crickpwa/scorebook/internal/player"
)

// RecomputePlayerStats derives a player's career figures from scratch over
// the full authoritative match set. Calling it twice with the same set yields
// the same result; nothing is accumulated across calls, which is what keeps
// repeated saves from double counting.
//
// The formulas follow the product's established behavior exactly:
//   - batting average divides by the player's own wickets taken (floor 1),
//     not by dismissals;
//   - strike rate is runs per 100 balls faced (floor 1 ball);
//   - economy is runs conceded per over bowled, exactly 0 with no balls
//     bowled, never NaN or Inf.
func RecomputePlayerStats(playerID uint, matches []match.Match) player.Stats {
	var s player.Stats
	for _, m := range matches {
		for _, b := range m.Balls {
			if b.StrikerID == playerID {
				s.Runs += b.RunsOffBat
				s.BallsFaced++
			}
			if b.BowlerID == playerID {
				s.BallsBowled++
				s.RunsConceded += b.RunsOffBat
				if b.IsWicket {
					s.Wickets++
				}
			}
		}
	}

	wicketDiv := s.Wickets
	if wicketDiv < 1 {
		wicketDiv = 1
	}
	s.BattingAverage = round2(float64(s.Runs) / float64(wicketDiv))

	facedDiv := s.BallsFaced
	if facedDiv < 1 {
		facedDiv = 1
	}
	s.StrikeRate = round2(float64(s.Runs) / float64(facedDiv) * 100)

	if s.BallsBowled > 0 {
		s.EconomyRate = round2(float64(s.RunsConceded) / (float64(s.BallsBowled) / 6.0))
	}
	return s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
