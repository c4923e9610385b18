package stats

import (
	"log"

	"github.com/crickpwa/scorebook/internal/match"
	"github.com/crickpwa/scorebook/internal/player"
)

// Service recomputes and persists derived statistics. Each recompute takes a
// single snapshot of the relevant matches before computing, so partially
// written ledgers are never mixed into an aggregate.
type Service struct {
	matchRepo  match.MatchRepository
	playerRepo player.PlayerRepository
}

// NewService creates a stats service over the given repositories.
func NewService(matchRepo match.MatchRepository, playerRepo player.PlayerRepository) *Service {
	return &Service{matchRepo: matchRepo, playerRepo: playerRepo}
}

// RecomputeTeam refreshes the cached career stats of every player on the
// team from the team's full match set. Safe to re-run at any time.
func (s *Service) RecomputeTeam(teamID uint) error {
	matches, err := s.matchRepo.GetAllMatchesByTeamID(teamID)
	if err != nil {
		return err
	}
	players, err := s.playerRepo.GetPlayersByTeamID(teamID)
	if err != nil {
		return err
	}

	for _, p := range players {
		stats := RecomputePlayerStats(p.ID, matches)
		if err := s.playerRepo.UpdatePlayerStats(p.ID, stats); err != nil {
			return err
		}
	}
	return nil
}

// PlayerStats recomputes one player's figures, refreshes the cache, and
// returns them. A nil player means the id is unknown.
func (s *Service) PlayerStats(playerID uint) (*player.Stats, error) {
	p, err := s.playerRepo.GetPlayerByID(playerID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	matches, err := s.matchRepo.GetAllMatchesByTeamID(p.TeamID)
	if err != nil {
		// The cache is still serviceable; a failed snapshot only skips the
		// refresh, it should not fail a read.
		log.Printf("stats: could not snapshot matches for team %d, serving cached stats for player %d: %v", p.TeamID, playerID, err)
		return &p.Stats, nil
	}

	stats := RecomputePlayerStats(playerID, matches)
	if err := s.playerRepo.UpdatePlayerStats(playerID, stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// TeamStats computes the team aggregate over a fresh snapshot.
func (s *Service) TeamStats(teamID uint) (TeamStats, error) {
	matches, err := s.matchRepo.GetAllMatchesByTeamID(teamID)
	if err != nil {
		return TeamStats{}, err
	}
	return ComputeTeamStats(matches), nil
}
