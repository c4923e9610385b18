package stats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crickpwa/scorebook/internal/match"
	"github.com/crickpwa/scorebook/internal/player"
)

// fakeMatchRepo serves canned match snapshots per team.
type fakeMatchRepo struct {
	matchesByTeam map[uint][]match.Match
	snapshotErr   error
}

func (f *fakeMatchRepo) GetAllMatchesByTeamID(teamID uint) ([]match.Match, error) {
	if f.snapshotErr != nil {
		return nil, f.snapshotErr
	}
	return f.matchesByTeam[teamID], nil
}

func (f *fakeMatchRepo) CreateMatch(*match.Match) error          { return nil }
func (f *fakeMatchRepo) GetMatchByID(uint) (*match.Match, error) { return nil, nil }
func (f *fakeMatchRepo) GetMatchesByTeamID(uint, int, int) ([]match.Match, int64, error) {
	return nil, 0, nil
}
func (f *fakeMatchRepo) UpdateMatch(*match.Match) error          { return nil }
func (f *fakeMatchRepo) DeleteMatch(uint) error                  { return nil }
func (f *fakeMatchRepo) AppendBallEvent(*match.BallEvent) error  { return nil }
func (f *fakeMatchRepo) SaveBallEvent(*match.BallEvent) error    { return nil }
func (f *fakeMatchRepo) SetResult(uint, match.MatchResult) error { return nil }
func (f *fakeMatchRepo) MarkPendingSync(uint) error              { return nil }
func (f *fakeMatchRepo) MarkSynced(uint) error                   { return nil }
func (f *fakeMatchRepo) GetPendingSync() ([]match.Match, error)  { return nil, nil }
func (f *fakeMatchRepo) WithTransaction(fn func(match.MatchRepository) error) error {
	return fn(f)
}

// fakePlayerRepo holds a roster and records stat cache writes.
type fakePlayerRepo struct {
	roster []player.Player
	saved  map[uint]player.Stats
}

func (f *fakePlayerRepo) GetPlayerByID(id uint) (*player.Player, error) {
	for i := range f.roster {
		if f.roster[i].ID == id {
			return &f.roster[i], nil
		}
	}
	return nil, nil
}

func (f *fakePlayerRepo) GetPlayersByTeamID(uint) ([]player.Player, error) {
	return f.roster, nil
}

func (f *fakePlayerRepo) UpdatePlayerStats(id uint, stats player.Stats) error {
	if f.saved == nil {
		f.saved = make(map[uint]player.Stats)
	}
	f.saved[id] = stats
	return nil
}

func (f *fakePlayerRepo) CreatePlayer(*player.Player) error { return nil }
func (f *fakePlayerRepo) UpdatePlayer(*player.Player) error { return nil }
func (f *fakePlayerRepo) DeletePlayer(uint) error           { return nil }

func rosteredPlayer(id, teamID uint, cached player.Stats) player.Player {
	p := player.Player{TeamID: teamID, Stats: cached}
	p.ID = id
	return p
}

func TestServiceRecomputeTeam_OverwritesStaleCache(t *testing.T) {
	const teamID = uint(7)
	matchRepo := &fakeMatchRepo{matchesByTeam: map[uint][]match.Match{
		teamID: {fixtureMatch(
			ball(anil, chand, 4, false),
			ball(anil, chand, 1, false),
			ball(bina, chand, 2, false),
		)},
	}}
	playerRepo := &fakePlayerRepo{roster: []player.Player{
		rosteredPlayer(anil, teamID, player.Stats{Runs: 999, BattingAverage: 123.45}),
		rosteredPlayer(bina, teamID, player.Stats{Runs: 999}),
		rosteredPlayer(chand, teamID, player.Stats{EconomyRate: 99.99}),
	}}

	svc := NewService(matchRepo, playerRepo)
	require.NoError(t, svc.RecomputeTeam(teamID))

	// Every rostered player gets a from-scratch overwrite; no stale value survives.
	require.Len(t, playerRepo.saved, 3)
	assert.Equal(t, 5, playerRepo.saved[anil].Runs)
	assert.Equal(t, 5.0, playerRepo.saved[anil].BattingAverage)
	assert.Equal(t, 2, playerRepo.saved[bina].Runs)
	// chand: 3 balls for 7 runs is half an over.
	assert.Equal(t, 14.0, playerRepo.saved[chand].EconomyRate)
}

func TestServicePlayerStats_RefreshesCache(t *testing.T) {
	const teamID = uint(7)
	matchRepo := &fakeMatchRepo{matchesByTeam: map[uint][]match.Match{
		teamID: {fixtureMatch(
			ball(anil, chand, 4, false),
			ball(anil, chand, 1, false),
		)},
	}}
	playerRepo := &fakePlayerRepo{roster: []player.Player{
		rosteredPlayer(anil, teamID, player.Stats{Runs: 999}),
	}}

	svc := NewService(matchRepo, playerRepo)
	s, err := svc.PlayerStats(anil)
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.Equal(t, 5, s.Runs)
	assert.Equal(t, *s, playerRepo.saved[anil], "returned figures and the persisted cache must agree")
}

func TestServicePlayerStats_UnknownPlayer(t *testing.T) {
	svc := NewService(&fakeMatchRepo{}, &fakePlayerRepo{})

	s, err := svc.PlayerStats(42)
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestServicePlayerStats_SnapshotFailureServesCache(t *testing.T) {
	const teamID = uint(7)
	cached := player.Stats{Runs: 12, StrikeRate: 150.0}
	matchRepo := &fakeMatchRepo{snapshotErr: errors.New("connection refused")}
	playerRepo := &fakePlayerRepo{roster: []player.Player{
		rosteredPlayer(anil, teamID, cached),
	}}

	svc := NewService(matchRepo, playerRepo)
	s, err := svc.PlayerStats(anil)

	// A failed snapshot only skips the refresh; the read still succeeds.
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, cached, *s)
	assert.Empty(t, playerRepo.saved, "a skipped refresh must not touch the cache")
}

func TestServiceTeamStats(t *testing.T) {
	const teamID = uint(7)
	matchRepo := &fakeMatchRepo{matchesByTeam: map[uint][]match.Match{
		teamID: {completedMatch(match.ResultWin, ballsWithRuns(2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2)...)},
	}}

	svc := NewService(matchRepo, &fakePlayerRepo{})
	ts, err := svc.TeamStats(teamID)
	require.NoError(t, err)

	assert.Equal(t, TeamStats{Played: 1, Won: 1, Lost: 0, NetRunRate: 12.0, Points: 2}, ts)
}
