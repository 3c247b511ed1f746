package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Kash1r/League-Data-Collector/internal/riot"
)

// StoreTimeline persists the raw timeline payload for a match, keyed by
// match ID. Last write wins; reprocessing always starts from this raw
// payload, so no derived state is stored alongside it.
func (db *DB) StoreTimeline(ctx context.Context, matchID string, tl *riot.TimelineResponse) error {
	payload, err := json.Marshal(tl)
	if err != nil {
		return fmt.Errorf("failed to marshal timeline: %w", err)
	}

	frameInterval := tl.Info.FrameInterval
	if frameInterval <= 0 {
		frameInterval = 60000
	}

	_, err = db.pool.Exec(ctx, `
		INSERT INTO timelines (match_id, frame_interval, payload)
		VALUES ($1, $2, $3)
		ON CONFLICT (match_id) DO UPDATE SET
			frame_interval = EXCLUDED.frame_interval,
			payload = EXCLUDED.payload
	`, matchID, frameInterval, payload)
	return err
}

// LoadTimeline retrieves the raw timeline payload for a match. Returns
// ErrNotFound when no timeline has been stored for the match.
func (db *DB) LoadTimeline(ctx context.Context, matchID string) (*riot.TimelineResponse, error) {
	var payload []byte
	err := db.pool.QueryRow(ctx, `
		SELECT payload FROM timelines WHERE match_id = $1
	`, matchID).Scan(&payload)
	if err != nil {
		return nil, noRowsAsNotFound(err)
	}

	var tl riot.TimelineResponse
	if err := json.Unmarshal(payload, &tl); err != nil {
		return nil, fmt.Errorf("failed to unmarshal timeline for %s: %w", matchID, err)
	}
	return &tl, nil
}

// HasTimeline checks whether a timeline payload exists for a match.
func (db *DB) HasTimeline(ctx context.Context, matchID string) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM timelines WHERE match_id = $1)
	`, matchID).Scan(&exists)
	return exists, err
}
