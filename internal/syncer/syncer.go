package syncer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/crickpwa/scorebook/internal/match"
)

// PendingStore is the slice of the match repository the syncer needs.
type PendingStore interface {
	GetPendingSync() ([]match.Match, error)
	MarkSynced(id uint) error
}

// Syncer pushes pending matches to a remote. It is fire-and-forget from the
// scoring path's perspective: nothing in live scoring ever waits on it, and
// calling it redundantly is safe. A match is only pushed while it is still
// pending_sync, and the remote upserts on the match's external id.
type Syncer struct {
	store     PendingStore
	remoteURL string
	client    *http.Client
}

// NewSyncer creates a syncer. An empty remoteURL disables pushing.
func NewSyncer(store PendingStore, remoteURL string, timeout time.Duration) *Syncer {
	return &Syncer{
		store:     store,
		remoteURL: remoteURL,
		client:    &http.Client{Timeout: timeout},
	}
}

// Enabled reports whether a remote is configured.
func (s *Syncer) Enabled() bool {
	return s.remoteURL != ""
}

// pushPayload is the wire shape of one pushed match.
type pushPayload struct {
	ExternalID string            `json:"external_id"`
	TeamID     uint              `json:"team_id"`
	MatchDate  time.Time         `json:"match_date"`
	Format     string            `json:"format"`
	Result     match.MatchResult `json:"result"`
	Balls      []match.BallEvent `json:"balls"`
}

// PushPending pushes every pending_sync match to the remote and marks the
// ones the remote accepted as synced. Matches the remote rejects stay pending
// and are retried on the next call. Returns how many matches were synced.
func (s *Syncer) PushPending(ctx context.Context) (int, error) {
	if !s.Enabled() {
		log.Println("syncer: no remote configured, skipping push")
		return 0, nil
	}

	pending, err := s.store.GetPendingSync()
	if err != nil {
		return 0, fmt.Errorf("failed to load pending matches: %w", err)
	}
	if len(pending) == 0 {
		return 0, nil
	}

	pushed := 0
	var firstErr error
	for _, m := range pending {
		if err := s.pushOne(ctx, &m); err != nil {
			log.Printf("syncer: match %s not accepted, will retry: %v", m.ExternalID, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if err := s.store.MarkSynced(m.ID); err != nil {
			// Worst case the match is pushed again next round; the remote
			// upserts by external id so that is harmless.
			log.Printf("syncer: failed to mark match %s synced: %v", m.ExternalID, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		pushed++
	}
	return pushed, firstErr
}

func (s *Syncer) pushOne(ctx context.Context, m *match.Match) error {
	body, err := json.Marshal(pushPayload{
		ExternalID: m.ExternalID,
		TeamID:     m.TeamID,
		MatchDate:  m.MatchDate,
		Format:     m.Format,
		Result:     m.Result,
		Balls:      m.Balls,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal match: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.remoteURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("remote returned status %d", resp.StatusCode)
	}
	return nil
}
