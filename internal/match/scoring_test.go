package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	striker    = uint(1)
	nonStriker = uint(2)
	bowler     = uint(3)
)

func testRoster() map[uint]bool {
	return map[uint]bool{striker: true, nonStriker: true, bowler: true}
}

func singleCmd(runs int) BallCommand {
	return BallCommand{
		RunsOffBat:   runs,
		StrikerID:    striker,
		NonStrikerID: nonStriker,
		BowlerID:     bowler,
	}
}

func TestPositionToOverBall_Table(t *testing.T) {
	tests := []struct {
		index    int
		wantOver int
		wantBall int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{5, 1, 6},
		{6, 2, 1},
		{11, 2, 6},
		{12, 3, 1},
		{59, 10, 6},
		{60, 11, 1},
	}
	for _, tt := range tests {
		over, ball := PositionToOverBall(tt.index)
		assert.Equal(t, tt.wantOver, over, "over for index %d", tt.index)
		assert.Equal(t, tt.wantBall, ball, "ball for index %d", tt.index)
	}
}

func TestPositionToOverBall_SequenceWraps(t *testing.T) {
	prevOver, prevBall := PositionToOverBall(0)
	require.Equal(t, 1, prevOver)
	require.Equal(t, 1, prevBall)

	for i := 1; i < 120; i++ {
		over, ball := PositionToOverBall(i)
		require.GreaterOrEqual(t, ball, 1)
		require.LessOrEqual(t, ball, 6)
		if prevBall == 6 {
			assert.Equal(t, 1, ball, "ball should wrap after 6 at index %d", i)
			assert.Equal(t, prevOver+1, over, "over should increment on wrap at index %d", i)
		} else {
			assert.Equal(t, prevBall+1, ball, "ball should increase by 1 at index %d", i)
			assert.Equal(t, prevOver, over, "over should be unchanged at index %d", i)
		}
		prevOver, prevBall = over, ball
	}
}

func TestAppendBall_SixSingles(t *testing.T) {
	m := &Match{}
	for i := 0; i < 6; i++ {
		_, err := AppendBall(m, singleCmd(1), testRoster())
		require.NoError(t, err)
	}

	score := ComputeLiveScore(m)
	assert.Equal(t, 6, score.TotalRuns)
	assert.Equal(t, 0, score.Wickets)
	assert.Equal(t, "1.0", score.OversDisplay)
	assert.Equal(t, 6.00, score.RunRate)
}

func TestAppendBall_PositionsCached(t *testing.T) {
	m := &Match{}
	for i := 0; i < 8; i++ {
		ev, err := AppendBall(m, singleCmd(0), testRoster())
		require.NoError(t, err)

		wantOver, wantBall := PositionToOverBall(i)
		assert.Equal(t, i, ev.Seq)
		assert.Equal(t, wantOver, ev.OverNumber)
		assert.Equal(t, wantBall, ev.BallInOver)
	}
}

func TestAppendBall_WicketLeavesRunsAlone(t *testing.T) {
	m := &Match{}
	_, err := AppendBall(m, singleCmd(2), testRoster())
	require.NoError(t, err)

	before := ComputeLiveScore(m)

	cmd := singleCmd(0)
	cmd.IsWicket = true
	_, err = AppendBall(m, cmd, testRoster())
	require.NoError(t, err)

	after := ComputeLiveScore(m)
	assert.Equal(t, before.Wickets+1, after.Wickets)
	assert.Equal(t, before.TotalRuns, after.TotalRuns)
}

func TestAppendBall_WicketWithRuns(t *testing.T) {
	m := &Match{}
	cmd := singleCmd(1)
	cmd.IsWicket = true
	_, err := AppendBall(m, cmd, testRoster())
	require.NoError(t, err)

	score := ComputeLiveScore(m)
	assert.Equal(t, 1, score.TotalRuns)
	assert.Equal(t, 1, score.Wickets)
}

func TestAppendBall_ExtraOccupiesSlot(t *testing.T) {
	m := &Match{}
	cmd := singleCmd(1)
	cmd.Extra = ExtraWide
	_, err := AppendBall(m, cmd, testRoster())
	require.NoError(t, err)

	// A wide still takes one ball slot in this model.
	require.Len(t, m.Balls, 1)
	score := ComputeLiveScore(m)
	assert.Equal(t, 1, score.TotalRuns)
	assert.Equal(t, "0.1", score.OversDisplay)
}

func TestAppendBall_Validation(t *testing.T) {
	tests := []struct {
		name  string
		cmd   BallCommand
		field string
	}{
		{
			name:  "unknown striker",
			cmd:   BallCommand{StrikerID: 99, NonStrikerID: nonStriker, BowlerID: bowler},
			field: "striker_id",
		},
		{
			name:  "unknown non-striker",
			cmd:   BallCommand{StrikerID: striker, NonStrikerID: 99, BowlerID: bowler},
			field: "non_striker_id",
		},
		{
			name:  "unknown bowler",
			cmd:   BallCommand{StrikerID: striker, NonStrikerID: nonStriker, BowlerID: 99},
			field: "bowler_id",
		},
		{
			name:  "striker equals non-striker",
			cmd:   BallCommand{StrikerID: striker, NonStrikerID: striker, BowlerID: bowler},
			field: "non_striker_id",
		},
		{
			name:  "negative runs",
			cmd:   BallCommand{RunsOffBat: -1, StrikerID: striker, NonStrikerID: nonStriker, BowlerID: bowler},
			field: "runs_off_bat",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Match{}
			_, err := AppendBall(m, tt.cmd, testRoster())
			require.Error(t, err)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
			assert.Empty(t, m.Balls, "a rejected command must not append")
		})
	}
}

func TestAppendBall_DoesNotMutatePriorBalls(t *testing.T) {
	m := &Match{}
	_, err := AppendBall(m, singleCmd(4), testRoster())
	require.NoError(t, err)
	first := m.Balls[0]

	_, err = AppendBall(m, singleCmd(6), testRoster())
	require.NoError(t, err)

	assert.Equal(t, first, m.Balls[0])
}

func TestEditBall_OutOfRange(t *testing.T) {
	m := &Match{}
	_, err := AppendBall(m, singleCmd(1), testRoster())
	require.NoError(t, err)

	var nf *NotFoundError
	err = EditBall(m, 1, BallPatch{})
	require.ErrorAs(t, err, &nf)

	err = EditBall(m, -1, BallPatch{})
	require.ErrorAs(t, err, &nf)
}

func TestEditBall_PatchesStatsOnly(t *testing.T) {
	m := &Match{}
	for i := 0; i < 4; i++ {
		_, err := AppendBall(m, singleCmd(1), testRoster())
		require.NoError(t, err)
	}

	runs := 4
	wicket := true
	extra := ExtraNoBall
	require.NoError(t, EditBall(m, 3, BallPatch{RunsOffBat: &runs, IsWicket: &wicket, Extra: &extra}))

	b := m.Balls[3]
	assert.Equal(t, 4, b.RunsOffBat)
	assert.True(t, b.IsWicket)
	assert.Equal(t, ExtraNoBall, b.Extra)

	// Position-derived fields are untouched by a stat edit.
	assert.Equal(t, 3, b.Seq)
	assert.Equal(t, 1, b.OverNumber)
	assert.Equal(t, 4, b.BallInOver)

	score := ComputeLiveScore(m)
	assert.Equal(t, 7, score.TotalRuns)
	assert.Equal(t, 1, score.Wickets)
}

func TestEditBall_NegativeRunsRejected(t *testing.T) {
	m := &Match{}
	_, err := AppendBall(m, singleCmd(1), testRoster())
	require.NoError(t, err)

	runs := -2
	var ve *ValidationError
	require.ErrorAs(t, EditBall(m, 0, BallPatch{RunsOffBat: &runs}), &ve)
	assert.Equal(t, 1, m.Balls[0].RunsOffBat)
}

func TestComputeLiveScore_Empty(t *testing.T) {
	score := ComputeLiveScore(&Match{})
	assert.Equal(t, 0, score.TotalRuns)
	assert.Equal(t, 0, score.Wickets)
	assert.Equal(t, "0.0", score.OversDisplay)
	assert.Equal(t, 0.0, score.RunRate, "no overs must never divide by zero")
}

func TestComputeLiveScore_MidOver(t *testing.T) {
	m := &Match{}
	for i := 0; i < 8; i++ {
		_, err := AppendBall(m, singleCmd(3), testRoster())
		require.NoError(t, err)
	}

	score := ComputeLiveScore(m)
	assert.Equal(t, 24, score.TotalRuns)
	// Display is X.Y notation; the rate divides by true fractional overs.
	assert.Equal(t, "1.2", score.OversDisplay)
	assert.Equal(t, 18.00, score.RunRate) // 24 / (1 + 2/6)
}
